package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
)

// Limiter decides whether a request identified by key may proceed.
type Limiter interface {
	Allow(key string) bool
	RetryAfter(key string) time.Duration
}

// RateLimit rejects over-limit requests with 429 and a Retry-After header.
// Requests are keyed by client IP.
func RateLimit(limiter Limiter) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := c.RealIP()
			if !limiter.Allow(key) {
				retry := limiter.RetryAfter(key)
				seconds := int(retry / time.Second)
				if retry%time.Second != 0 || seconds < 1 {
					seconds++
				}
				c.Response().Header().Set(echo.HeaderRetryAfter, strconv.Itoa(seconds))
				return c.JSON(http.StatusTooManyRequests, echo.Map{
					"error": "rate limit exceeded",
				})
			}
			return next(c)
		}
	}
}
