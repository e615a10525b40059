package middleware

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"cleanbite/config"
	deliverycontext "cleanbite/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// LoggerMiddleware controllable logging middleware. In debug mode every
// request is logged; otherwise only server errors are.
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
		if skipLogging(c) {
			return next(c)
		}

		start := time.Now()
		err := next(c)

		if m.debug || c.Response().Status >= 500 {
			m.logRequest(c, start, err)
		}

		return err
	}
}

// skipLogging leaves out health checks and long-lived event streams.
func skipLogging(c echo.Context) bool {
	req := c.Request()
	if req.URL.Path == "/health" {
		return true
	}

	return strings.Contains(req.Header.Get(echo.HeaderAccept), "text/event-stream")
}

// logRequest logs request details
func (m *LoggerMiddleware) logRequest(c echo.Context, start time.Time, err error) {
	req := c.Request()
	res := c.Response()

	fields := []slog.Attr{
		slog.String("request_id", deliverycontext.GetRequestID(c)),
		slog.String("method", req.Method),
		slog.String("uri", req.URL.Path),
		slog.Int("status", res.Status),
		slog.Duration("latency", time.Since(start)),
		slog.String("remote_ip", c.RealIP()),
		slog.String("user_agent", req.UserAgent()),
		slog.Int64("bytes_out", res.Size),
	}

	if len(req.URL.RawQuery) > 0 {
		fields = append(fields, slog.String("query", req.URL.RawQuery))
	}
	if sessionID := deliverycontext.GetSessionID(c); sessionID != "" {
		fields = append(fields, slog.String("session_id", sessionID))
	}
	if err != nil {
		fields = append(fields, slog.Any("error", err))
	}

	logLevel := slog.LevelInfo
	if res.Status >= 400 {
		logLevel = slog.LevelWarn
	}
	if res.Status >= 500 {
		logLevel = slog.LevelError
	}

	m.logger.LogAttrs(context.Background(), logLevel, "HTTP Request", fields...)
}
