package middleware

import (
	"travel-assistant/config"
	"travel-assistant/pkg/log"
)

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

// New builds the middleware set. The rate limiter is nil when disabled.
func New(l log.Logger, rlCfg config.RateLimitConfig) Middleware {
	m := Middleware{l: l}
	if rlCfg.Enabled && rlCfg.RequestsPerMin > 0 {
		m.limiter = newRateLimiter(rlCfg)
	}
	return m
}
