package logx

import (
	"context"
	"log/slog"
)

type slogAdapter struct {
	base *slog.Logger
}

// NewSlogAdapter wraps a *slog.Logger in the Logger interface.
func NewSlogAdapter(base *slog.Logger) Logger {
	return slogAdapter{base: base}
}

func (a slogAdapter) log(level slog.Level, msg string, fields []Field) {
	ctx := context.Background()
	if !a.base.Enabled(ctx, level) {
		return
	}
	attrs := make([]slog.Attr, len(fields))
	for i, f := range fields {
		attrs[i] = slog.Any(f.Key, f.Value)
	}
	a.base.LogAttrs(ctx, level, msg, attrs...)
}

func (a slogAdapter) Debug(msg string, fields ...Field) { a.log(slog.LevelDebug, msg, fields) }
func (a slogAdapter) Info(msg string, fields ...Field)  { a.log(slog.LevelInfo, msg, fields) }
func (a slogAdapter) Warn(msg string, fields ...Field)  { a.log(slog.LevelWarn, msg, fields) }
func (a slogAdapter) Error(msg string, fields ...Field) { a.log(slog.LevelError, msg, fields) }

// With attaches fields to every entry logged through the returned Logger.
func (a slogAdapter) With(fields ...Field) Logger {
	args := make([]any, 0, len(fields))
	for _, f := range fields {
		args = append(args, slog.Any(f.Key, f.Value))
	}
	return slogAdapter{base: a.base.With(args...)}
}

// Sync is a no-op; slog handlers write through.
func (a slogAdapter) Sync() error { return nil }
