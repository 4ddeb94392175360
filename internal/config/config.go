package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// DB stores database connection settings.
type DB struct {
	Host string
	Port string
	User string
	Pass string
	Name string
}

// DSN returns the postgres connection string.
func (d DB) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		d.User, d.Pass, d.Host, d.Port, d.Name)
}

// Provider stores external task-routing provider settings.
type Provider struct {
	BaseURL       string
	APIKey        string
	NetworkTeamID string
}

// Notify stores offer notification delivery settings.
type Notify struct {
	BaseURL string
	Token   string
	From    string
}

// Kafka stores driver-response consumer settings.
type Kafka struct {
	Brokers []string
	Topic   string
	GroupID string
}

// Assignment stores the assignment engine's time windows.
type Assignment struct {
	AcceptanceWindow time.Duration
	ConflictBuffer   time.Duration
	SweepInterval    time.Duration
}

// GatewayRetry stores the retrying-gateway behaviour.
type GatewayRetry struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
}

// RateLimit stores HTTP per-client rate limit settings.
type RateLimit struct {
	Enabled    bool
	Rate       float64
	Burst      int
	TTL        time.Duration
	MaxBuckets int
}

// Pprof stores the debug profiling server settings. Empty Addr disables it.
type Pprof struct {
	Addr string
	User string
	Pass string
}

// Config stores dispatch service settings.
type Config struct {
	Port       int
	DB         DB
	Provider   Provider
	Notify     Notify
	Kafka      Kafka
	Assignment Assignment
	Retry      GatewayRetry
	RateLimit  RateLimit
	Pprof      Pprof
}

// Load reads configuration in order: .env (if present) → environment → flags.
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("warning: .env not loaded: %v", err)
	}

	cfg := &Config{
		Port:       envInt("PORT", DefaultPort()),
		DB:         DefaultDB(),
		Provider:   DefaultProvider(),
		Notify:     DefaultNotify(),
		Kafka:      DefaultKafka(),
		Assignment: DefaultAssignment(),
		Retry:      DefaultGatewayRetry(),
		RateLimit:  DefaultRateLimit(),
	}

	cfg.DB.Host = envStr("DB_HOST", cfg.DB.Host)
	cfg.DB.Port = envStr("DB_PORT", cfg.DB.Port)
	cfg.DB.User = envStr("DB_USER", cfg.DB.User)
	cfg.DB.Pass = envStr("DB_PASS", cfg.DB.Pass)
	cfg.DB.Name = envStr("DB_NAME", cfg.DB.Name)

	cfg.Provider.BaseURL = envStr("PROVIDER_BASE_URL", cfg.Provider.BaseURL)
	cfg.Provider.APIKey = envStr("PROVIDER_API_KEY", cfg.Provider.APIKey)
	cfg.Provider.NetworkTeamID = envStr("PROVIDER_NETWORK_TEAM_ID", cfg.Provider.NetworkTeamID)

	cfg.Notify.BaseURL = envStr("NOTIFY_BASE_URL", cfg.Notify.BaseURL)
	cfg.Notify.Token = envStr("NOTIFY_TOKEN", cfg.Notify.Token)
	cfg.Notify.From = envStr("NOTIFY_FROM", cfg.Notify.From)

	if v := envStr("KAFKA_BROKERS", ""); v != "" {
		cfg.Kafka.Brokers = splitCSV(v)
	}
	cfg.Kafka.Topic = envStr("KAFKA_TOPIC", cfg.Kafka.Topic)
	cfg.Kafka.GroupID = envStr("KAFKA_GROUP_ID", cfg.Kafka.GroupID)

	cfg.Assignment.AcceptanceWindow = envDuration("ACCEPTANCE_WINDOW", cfg.Assignment.AcceptanceWindow)
	cfg.Assignment.ConflictBuffer = envDuration("CONFLICT_BUFFER", cfg.Assignment.ConflictBuffer)
	cfg.Assignment.SweepInterval = envDuration("SWEEP_INTERVAL", cfg.Assignment.SweepInterval)

	cfg.RateLimit.Enabled = envBool("RATE_LIMIT_ENABLED", cfg.RateLimit.Enabled)
	cfg.RateLimit.Burst = envInt("RATE_LIMIT_BURST", cfg.RateLimit.Burst)
	if v := envStr("RATE_LIMIT_RATE", ""); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.RateLimit.Rate = f
		}
	}

	cfg.Pprof.Addr = envStr("PPROF_ADDR", cfg.Pprof.Addr)
	cfg.Pprof.User = envStr("PPROF_USER", cfg.Pprof.User)
	cfg.Pprof.Pass = envStr("PPROF_PASS", cfg.Pprof.Pass)

	pflag.IntVarP(&cfg.Port, "port", "p", cfg.Port, "port to listen on")
	pflag.Parse()

	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid port: %d", cfg.Port)
	}
	if cfg.Assignment.AcceptanceWindow <= 0 {
		return nil, fmt.Errorf("invalid acceptance window: %s", cfg.Assignment.AcceptanceWindow)
	}
	return cfg, nil
}

func envStr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func envBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func envDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
