package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// LoggerMiddleware creates a middleware for request logging
func LoggerMiddleware(logger *logrus.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// Start timer
			start := time.Now()
			path := c.Request().URL.Path
			raw := c.Request().URL.RawQuery

			// Process request
			err := next(c)

			// Stop timer
			latency := time.Since(start)

			if raw != "" {
				path = path + "?" + raw
			}

			entry := logger.WithFields(logrus.Fields{
				"status":     c.Response().Status,
				"method":     c.Request().Method,
				"path":       path,
				"ip":         c.RealIP(),
				"latency_ms": latency.Milliseconds(),
			})

			if err != nil {
				entry.WithError(err).Error("request failed")
				return err
			}

			entry.Info("request completed")
			return nil
		}
	}
}
