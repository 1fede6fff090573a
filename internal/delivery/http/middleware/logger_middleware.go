package middleware

import (
	"log/slog"
	"time"

	"marketplace/config"
	deliverycontext "marketplace/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// LoggerMiddleware writes one access log entry per request. Successful
// requests are logged at debug level unless debug mode is on.
type LoggerMiddleware struct {
	logger *slog.Logger
	debug  bool
}

// NewLoggerMiddleware creates a new logger middleware
func NewLoggerMiddleware(logger *slog.Logger, config *config.Config) *LoggerMiddleware {
	return &LoggerMiddleware{
		logger: logger,
		debug:  config.Env.Debug,
	}
}

// Handle processes request logging
func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)
		if err != nil {
			// Let the error handler render the response so the logged status is final.
			c.Error(err)
		}
		m.logRequest(c, start, err)

		return nil
	}
}

// logRequest logs request details
func (m *LoggerMiddleware) logRequest(c echo.Context, start time.Time, err error) {
	req := c.Request()
	res := c.Response()
	latency := time.Since(start)

	fields := []slog.Attr{
		slog.String("method", req.Method),
		slog.String("uri", req.URL.Path),
		slog.String("route", c.Path()),
		slog.Int("status", res.Status),
		slog.Duration("latency", latency),
		slog.String("remote_ip", c.RealIP()),
		slog.String("user_agent", req.UserAgent()),
	}

	if len(req.URL.RawQuery) > 0 {
		fields = append(fields, slog.String("query", req.URL.RawQuery))
	}

	if session := deliverycontext.GetSession(req.Context()); session != nil {
		fields = append(fields, slog.String("user_id", session.UserID.String()))
	}

	if err != nil {
		fields = append(fields, slog.Any("error", err))
	}

	logLevel := slog.LevelDebug
	if m.debug {
		logLevel = slog.LevelInfo
	}
	if res.Status >= 400 {
		logLevel = slog.LevelWarn
	}
	if res.Status >= 500 {
		logLevel = slog.LevelError
	}

	deliverycontext.GetLoggerOrDefault(req.Context(), m.logger).LogAttrs(req.Context(), logLevel, "HTTP Request", fields...)
}
