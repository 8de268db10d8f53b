package middleware

import (
	pkgLog "personal-task-scheduler/pkg/log"
)

// RateLimitConfig tunes the per-client request limiter.
type RateLimitConfig struct {
	RequestsPerMin int
	Enabled        bool
}

type Middleware struct {
	l       pkgLog.Logger
	limiter *rateLimiter
	enabled bool
}

func New(l pkgLog.Logger, cfg RateLimitConfig) Middleware {
	return Middleware{
		l:       l,
		limiter: newRateLimiter(cfg.RequestsPerMin),
		enabled: cfg.Enabled,
	}
}
