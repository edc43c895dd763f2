package middleware

import (
	"delivery-agent/config"
	"delivery-agent/pkg/log"
)

type Middleware struct {
	l       log.Logger
	limiter *phoneLimiter
}

// New creates the HTTP middleware set. The phone limiter is nil when rate
// limiting is disabled.
func New(l log.Logger, cfg config.RateLimitConfig) Middleware {
	mw := Middleware{l: l}
	if cfg.Enabled && cfg.PerMin > 0 {
		mw.limiter = newPhoneLimiter(cfg.PerMin, cfg.Burst)
	}
	return mw
}
