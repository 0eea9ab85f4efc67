package middleware

import (
	"log/slog"

	"travelfit/config"

	"github.com/labstack/echo/v4"
	slogecho "github.com/samber/slog-echo"
)

// LoggerMiddleware writes one access log line per request
type LoggerMiddleware struct {
	handler echo.MiddlewareFunc
}

// NewLoggerMiddleware creates a new logger middleware. Successful requests are logged at
// info level only in debug mode; client and server errors are always logged.
// Paths listed in quietPaths are never logged.
func NewLoggerMiddleware(logger *slog.Logger, cfg *config.Config, quietPaths ...string) *LoggerMiddleware {
	defaultLevel := slog.LevelDebug
	if cfg.Env.Debug {
		defaultLevel = slog.LevelInfo
	}

	logConfig := slogecho.Config{
		DefaultLevel:     defaultLevel,
		ClientErrorLevel: slog.LevelWarn,
		ServerErrorLevel: slog.LevelError,
		WithUserAgent:    cfg.Env.Debug,
		WithRequestID:    true,
	}
	if len(quietPaths) > 0 {
		logConfig.Filters = []slogecho.Filter{slogecho.IgnorePath(quietPaths...)}
	}

	return &LoggerMiddleware{
		handler: slogecho.NewWithConfig(logger, logConfig),
	}
}

// Handle processes request logging
func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return m.handler(next)
}
