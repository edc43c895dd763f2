package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"delivery-agent/pkg/metrics"
	"delivery-agent/pkg/response"
)

const (
	maxLimiterKeys = 10000
	limiterTTL     = 10 * time.Minute

	// MaxChatBodyBytes caps the chat request body.
	MaxChatBodyBytes = 1 << 20
)

// phoneLimiter keeps one token bucket per key with auto-cleanup.
type phoneLimiter struct {
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newPhoneLimiter(perMin, burst int) *phoneLimiter {
	if burst <= 0 {
		burst = 1
	}
	return &phoneLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](maxLimiterKeys, nil, limiterTTL),
		rate:     rate.Limit(float64(perMin) / 60.0),
		burst:    burst,
	}
}

func (pl *phoneLimiter) allow(key string) bool {
	limiter, ok := pl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(pl.rate, pl.burst)
		pl.limiters.Add(key, limiter)
	}
	return limiter.Allow()
}

// ChatRateLimit limits chat requests per phone number, falling back to the
// client IP when the body carries none. The body stays cached on the context,
// so the handler binds it with ShouldBindBodyWith.
func (m Middleware) ChatRateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.limiter == nil {
			c.Next()
			return
		}

		key := "ip:" + c.ClientIP()
		if phone := peekPhone(c); phone != "" {
			key = "phone:" + phone
		}

		if !m.limiter.allow(key) {
			metrics.RateLimitRejectedTotal.Inc()
			m.l.Warnf(c.Request.Context(), "middleware.ChatRateLimit: rate limit exceeded for %s", key)
			response.TooManyRequests(c)
			return
		}
		c.Next()
	}
}

func peekPhone(c *gin.Context) string {
	if c.Request.Body == nil {
		return ""
	}
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxChatBodyBytes)

	var body struct {
		Phone string `json:"phone"`
	}
	if err := c.ShouldBindBodyWith(&body, binding.JSON); err != nil {
		return ""
	}
	return body.Phone
}
