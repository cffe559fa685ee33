package middleware

import (
	"net/http"

	"auction-scheduler/internal/handler/httperr"
	"auction-scheduler/internal/pkg/config"
	"auction-scheduler/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

var errRateLimited = errs.New("rate limit exceeded")

// RateLimit shares one token bucket across every route it guards.
func RateLimit(cfg config.SchedulerConfig) gin.HandlerFunc {
	limiter := rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst)
	return func(c *gin.Context) {
		if !limiter.Allow() {
			c.Header("Retry-After", "1")
			httperr.AbortWithError(c, http.StatusTooManyRequests, errRateLimited, httperr.CodeRateLimited, "Too many requests", nil)
			return
		}
		c.Next()
	}
}
