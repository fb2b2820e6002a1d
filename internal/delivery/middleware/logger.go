package middleware

import (
	"log/slog"
	"time"

	"beacon/config"
	deliverycontext "beacon/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// LoggerMiddleware writes an access line per request in debug, and for failed
// requests always. It must run after RequestIDMiddleware.
type LoggerMiddleware struct {
	logger *slog.Logger
	debug  bool
}

func NewLoggerMiddleware(logger *slog.Logger, config *config.Config) *LoggerMiddleware {
	return &LoggerMiddleware{
		logger: logger,
		debug:  config.Env.Debug,
	}
}

func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)

		status := c.Response().Status
		if !m.debug && status < 400 && err == nil {
			return err
		}

		req := c.Request()
		attrs := []slog.Attr{
			slog.String("method", req.Method),
			// Route template, so entry and history IDs do not fan out log queries.
			slog.String("route", c.Path()),
			slog.Int("status", status),
			slog.Duration("latency", time.Since(start)),
			slog.String("remote_ip", c.RealIP()),
		}
		if userID, ok := deliverycontext.GetUserID(c); ok {
			attrs = append(attrs, slog.String("user_id", userID.String()))
		}
		if err != nil {
			attrs = append(attrs, slog.Any("error", err))
		}

		// The request-scoped logger already carries request_id.
		deliverycontext.GetLoggerOrDefault(req.Context(), m.logger).
			LogAttrs(req.Context(), statusLevel(status), "HTTP request", attrs...)

		return err
	}
}

func statusLevel(status int) slog.Level {
	switch {
	case status >= 500:
		return slog.LevelError
	case status >= 400:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}
