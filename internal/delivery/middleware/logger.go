package middleware

import (
	"log/slog"
	"time"

	"market/config"
	deliverycontext "market/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

const defaultSlowRequestThreshold = time.Second

// LoggerMiddleware writes a detailed request record for every request in
// debug mode, and otherwise only for slow or failed ones.
type LoggerMiddleware struct {
	logger        *slog.Logger
	debug         bool
	slowThreshold time.Duration
}

// NewLoggerMiddleware creates a new logger middleware
func NewLoggerMiddleware(logger *slog.Logger, config *config.Config) *LoggerMiddleware {
	return &LoggerMiddleware{
		logger:        logger,
		debug:         config.Env.Debug,
		slowThreshold: defaultSlowRequestThreshold,
	}
}

// Handle processes request logging
func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)
		latency := time.Since(start)

		// Let the error handler write the response first so the status is final.
		if err != nil {
			c.Error(err)
		}

		status := c.Response().Status
		if m.debug || status >= 500 || latency >= m.slowThreshold {
			m.logRequest(c, start, latency, err)
		}

		return nil
	}
}

// logRequest logs request details
func (m *LoggerMiddleware) logRequest(c echo.Context, start time.Time, latency time.Duration, err error) {
	req := c.Request()
	res := c.Response()

	fields := []slog.Attr{
		slog.String("request_id", deliverycontext.GetRequestID(c)),
		slog.String("method", req.Method),
		slog.String("route", c.Path()),
		slog.String("uri", req.URL.Path),
		slog.Int("status", res.Status),
		slog.Int64("bytes_out", res.Size),
		slog.Duration("latency", latency),
		slog.String("remote_ip", c.RealIP()),
		slog.String("user_agent", req.UserAgent()),
		slog.String("time", start.Format(time.RFC3339)),
	}

	if userID, ok := deliverycontext.PrincipalFromContext(req.Context()); ok {
		fields = append(fields, slog.String("user_id", userID.String()))
	}

	if len(req.URL.RawQuery) > 0 {
		fields = append(fields, slog.String("query", req.URL.RawQuery))
	}

	if err != nil {
		fields = append(fields, slog.Any("error", err))
	}

	msg := "HTTP Request"
	logLevel := slog.LevelInfo
	if latency >= m.slowThreshold {
		msg = "Slow HTTP Request"
		logLevel = slog.LevelWarn
	}
	if res.Status >= 400 {
		logLevel = slog.LevelWarn
	}
	if res.Status >= 500 {
		logLevel = slog.LevelError
	}

	m.logger.LogAttrs(req.Context(), logLevel, msg, fields...)
}
