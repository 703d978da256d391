package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/fitarc/fitarc/config"
	"github.com/fitarc/fitarc/utils"
)

type clientLimiter struct {
	limiter *rate.Limiter
	expires time.Time
	mu      sync.Mutex
}

var (
	limiters   = map[string]*clientLimiter{}
	limitersMu sync.Mutex
)

const limiterIdleTTL = 5 * time.Minute

// RateLimit applies a per-IP token bucket sized from configuration.
func RateLimit() gin.HandlerFunc {
	cfg := config.Get()
	perMinute := cfg.RateLimitPerMinute
	if perMinute < 1 {
		perMinute = 1
	}
	r := rate.Every(time.Minute / time.Duration(perMinute))
	burst := perMinute / 2
	if burst < 1 {
		burst = 1
	}

	return func(ctx *gin.Context) {
		limiter := limiterFor(ctx.ClientIP(), r, burst)

		limiter.mu.Lock()
		allowed := limiter.limiter.Allow()
		limiter.mu.Unlock()

		if !allowed {
			utils.Error(ctx, http.StatusTooManyRequests, "Rate limit exceeded")
			ctx.Abort()
			return
		}

		ctx.Next()
	}
}

func limiterFor(key string, limit rate.Limit, burst int) *clientLimiter {
	limitersMu.Lock()
	defer limitersMu.Unlock()

	pruneExpiredLocked()

	if l, ok := limiters[key]; ok {
		l.expires = time.Now().Add(limiterIdleTTL)
		return l
	}

	l := &clientLimiter{
		limiter: rate.NewLimiter(limit, burst),
		expires: time.Now().Add(limiterIdleTTL),
	}
	limiters[key] = l
	return l
}

func pruneExpiredLocked() {
	now := time.Now()
	for key, l := range limiters {
		if now.After(l.expires) {
			delete(limiters, key)
		}
	}
}
