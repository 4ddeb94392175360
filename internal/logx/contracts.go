package logx

import "time"

// Logger is the structured logging surface service code depends on.
// Implementations must be safe for concurrent use.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	With(fields ...Field) Logger
	Sync() error
}

// Field is one key-value pair attached to a log entry.
type Field struct {
	Key   string
	Value any
}

// String builds a string-valued field.
func String(key, value string) Field { return Field{Key: key, Value: value} }

// Int builds an int-valued field.
func Int(key string, value int) Field { return Field{Key: key, Value: value} }

// Int64 builds an int64-valued field.
func Int64(key string, value int64) Field { return Field{Key: key, Value: value} }

// Time builds a time-valued field.
func Time(key string, value time.Time) Field { return Field{Key: key, Value: value} }

// Duration builds a duration-valued field.
func Duration(key string, value time.Duration) Field { return Field{Key: key, Value: value} }

// Any builds a field holding an arbitrary value.
func Any(key string, value any) Field { return Field{Key: key, Value: value} }

// Err builds an error field under the conventional "err" key.
func Err(value error) Field { return Field{Key: "err", Value: value} }
