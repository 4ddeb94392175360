package config

import "time"

const defaultPort = 8080

var defaultDB = DB{
	Host: "127.0.0.1",
	Port: "5432",
	User: "dispatch",
	Pass: "dispatch",
	Name: "dispatch_db",
}

var defaultProvider = Provider{
	BaseURL: "https://onfleet.example.com/api/v2",
}

var defaultNotify = Notify{
	BaseURL: "https://sms.example.com/v1",
}

var defaultKafka = Kafka{
	Topic:   "driver-responses",
	GroupID: "dispatch-worker",
}

// Assignment windows are the single source for the engine's fixed
// durations: an unanswered offer becomes sweepable after
// AcceptanceWindow, and a driver with an accepted commitment within
// ConflictBuffer of the appointment is not a candidate.
var defaultAssignment = Assignment{
	AcceptanceWindow: 30 * time.Minute,
	ConflictBuffer:   4 * time.Hour,
	SweepInterval:    5 * time.Minute,
}

var defaultRateLimit = RateLimit{
	Enabled:    false,
	Rate:       20,
	Burst:      40,
	TTL:        10 * time.Minute,
	MaxBuckets: 10000,
}

var defaultGatewayRetry = GatewayRetry{
	MaxAttempts: 4,
	BaseDelay:   150 * time.Millisecond,
	MaxDelay:    2 * time.Second,
}

// DefaultPort returns the default port.
func DefaultPort() int {
	return defaultPort
}

// DefaultDB returns the default database settings.
func DefaultDB() DB {
	return defaultDB
}

// DefaultProvider returns the default task-routing provider settings.
func DefaultProvider() Provider {
	return defaultProvider
}

// DefaultNotify returns the default notification settings.
func DefaultNotify() Notify {
	return defaultNotify
}

// DefaultKafka returns the default Kafka consumer settings.
func DefaultKafka() Kafka {
	return defaultKafka
}

// DefaultAssignment returns the default assignment windows.
func DefaultAssignment() Assignment {
	return defaultAssignment
}

// DefaultGatewayRetry returns the default gateway retry settings.
func DefaultGatewayRetry() GatewayRetry {
	return defaultGatewayRetry
}

// DefaultRateLimit returns the default HTTP rate limit settings.
func DefaultRateLimit() RateLimit {
	return defaultRateLimit
}
