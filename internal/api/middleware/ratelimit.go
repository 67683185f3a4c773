package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/kejingzs/kejing-backend/internal/logger"
	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

// Defaults applied when no rate configuration is supplied
const (
	DefaultRateLimit = 10.0
	DefaultRateBurst = 20
)

// limiterResetInterval bounds the memory held for per-IP limiters
const limiterResetInterval = 10 * time.Minute

// IPRateLimiter manages rate limiters per client IP
type IPRateLimiter struct {
	limiters map[string]*rate.Limiter
	mu       sync.Mutex
	rate     rate.Limit
	burst    int
}

// NewIPRateLimiter creates a new IP-based rate limiter
func NewIPRateLimiter(r rate.Limit, b int) *IPRateLimiter {
	return &IPRateLimiter{
		limiters: make(map[string]*rate.Limiter),
		rate:     r,
		burst:    b,
	}
}

// GetLimiter returns the rate limiter for the given IP
func (i *IPRateLimiter) GetLimiter(ip string) *rate.Limiter {
	i.mu.Lock()
	defer i.mu.Unlock()

	limiter, exists := i.limiters[ip]
	if !exists {
		limiter = rate.NewLimiter(i.rate, i.burst)
		i.limiters[ip] = limiter
	}

	return limiter
}

// reset drops all per-IP state. Clients simply start with a fresh
// bucket afterwards.
func (i *IPRateLimiter) reset() {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.limiters = make(map[string]*rate.Limiter)
}

// RateLimiter returns per-IP rate limiting middleware. Refusals are
// recorded through the security logger so repeated offenders show up
// in the audit trail.
func RateLimiter(requestsPerSecond float64, burst int, secLog *logger.SecurityLogger) echo.MiddlewareFunc {
	if requestsPerSecond <= 0 {
		requestsPerSecond = DefaultRateLimit
	}
	if burst <= 0 {
		burst = DefaultRateBurst
	}

	limiter := NewIPRateLimiter(rate.Limit(requestsPerSecond), burst)

	go func() {
		ticker := time.NewTicker(limiterResetInterval)
		defer ticker.Stop()
		for range ticker.C {
			limiter.reset()
		}
	}()

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ip := c.RealIP()

			if !limiter.GetLimiter(ip).Allow() {
				if secLog != nil {
					secLog.RateLimitExceeded(ip, c.Path())
				}

				c.Response().Header().Set("Retry-After", "60")
				return echo.NewHTTPError(http.StatusTooManyRequests, map[string]string{
					"error":       "rate limit exceeded",
					"code":        "RATE_LIMITED",
					"retry_after": "60",
				})
			}

			return next(c)
		}
	}
}
