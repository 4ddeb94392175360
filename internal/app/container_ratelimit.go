package app

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"driver-dispatch-service/internal/config"
	"driver-dispatch-service/internal/http/middleware/ratelimit"
	"driver-dispatch-service/internal/logx"
)

func newRateLimitClock() ratelimit.Clock { return ratelimit.RealClock{} }

// newRateLimiter picks the limiter implementation from config: a no-op
// when the feature is off, a per-client token bucket otherwise.
func newRateLimiter(cfg *config.Config, clock ratelimit.Clock) ratelimit.Limiter {
	rl := cfg.RateLimit
	if !rl.Enabled {
		return ratelimit.NewNopLimiter()
	}
	return ratelimit.NewTokenBucketLimiter(clock, ratelimit.Config{
		Rate:       rl.Rate,
		Burst:      rl.Burst,
		TTL:        rl.TTL,
		MaxBuckets: rl.MaxBuckets,
	})
}

type rateLimitIn struct {
	dig.In

	Logger  logx.Logger
	Counter prometheus.Counter `name:"rate_limit_exceeded_total"`
	Limiter ratelimit.Limiter
}

func newRateLimitMiddleware(in rateLimitIn) *ratelimit.Middleware {
	return ratelimit.New(in.Logger, in.Counter, in.Limiter)
}
