package middleware

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// HitCounter abstracts the fixed-window counter store (Redis).
type HitCounter interface {
	Hit(ctx context.Context, key string) (int64, error)
}

// RateLimit rejects requests once a client IP exceeds maxHits in the
// counter's window. Store errors fail open: a broken Redis must not take
// login down with it.
func RateLimit(counter HitCounter, maxHits int64, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			n, err := counter.Hit(c.Request().Context(), c.RealIP())
			if err != nil {
				log.Warn().Err(err).Msg("rate limit check failed, allowing request")
				return next(c)
			}
			if n > maxHits {
				return echo.NewHTTPError(http.StatusTooManyRequests, "too many requests, try again later")
			}
			return next(c)
		}
	}
}
