package logger

import (
	"os"

	"go.uber.org/zap"
)

type CanonicalLogger struct {
	l *zap.Logger
}

// NewLoggerFromEnv creates a new logger based on the LOG_FORMAT environment variable.
// Supported LOG_FORMAT values:
//   - "console" or "development": Human-readable console output with colored levels, ISO8601 timestamps
//   - "json" or "production" (default): Structured JSON output for production environments
//
// The logger automatically skips one caller frame to report the actual calling code
// instead of the wrapper function location.
func NewLoggerFromEnv(component string) (*CanonicalLogger, error) {
	// Read LOG_FORMAT environment variable; empty falls back to "production" in New
	return New(component, os.Getenv("LOG_FORMAT"))
}

// New creates a logger for component using the given format (see NewLoggerFromEnv).
// Unknown or empty formats produce the production configuration.
func New(component, format string) (*CanonicalLogger, error) {
	// Select configuration based on format
	var cfg zap.Config
	switch format {
	case "console", "development":
		cfg = zap.NewDevelopmentConfig()
	default:
		cfg = zap.NewProductionConfig()
	}

	// Build logger with AddCallerSkip(1) to skip the wrapper frame
	// This ensures the caller field shows the actual calling code, not the wrapper
	zapLogger, err := cfg.Build(
		zap.AddCallerSkip(1),
		zap.Fields(zap.String("component", component)),
	)
	if err != nil {
		return nil, err
	}

	return &CanonicalLogger{
		l: zapLogger,
	}, nil
}

// NewFromZap wraps an existing zap logger, e.g. an observer core in tests.
func NewFromZap(l *zap.Logger) *CanonicalLogger {
	return &CanonicalLogger{l: l}
}

// NewNop returns a logger that discards everything.
func NewNop() *CanonicalLogger {
	return &CanonicalLogger{l: zap.NewNop()}
}

func (c *CanonicalLogger) Sync() {
	_ = c.l.Sync()
}

func (c *CanonicalLogger) Info(msg string, fields ...zap.Field) {
	c.l.Info(msg, fields...)
}

func (c *CanonicalLogger) Debug(msg string, fields ...zap.Field) {
	c.l.Debug(msg, fields...)
}

func (c *CanonicalLogger) Error(msg string, fields ...zap.Field) {
	c.l.Error(msg, fields...)
}

func (c *CanonicalLogger) Fatal(msg string, fields ...zap.Field) {
	c.l.Fatal(msg, fields...)
}

func (c *CanonicalLogger) WithError(err error) *CanonicalLogger {
	return &CanonicalLogger{l: c.l.With(zap.Error(err))}
}

// WithRequestID returns a child logger tagged with the request id
func (c *CanonicalLogger) WithRequestID(id string) *CanonicalLogger {
	return &CanonicalLogger{l: c.l.With(zap.String(FieldRequestID, id))}
}

// HTTPError logs a request that ended in an error response
func (c *CanonicalLogger) HTTPError(method, path string, status int, err error) {
	c.l.Error("http_error", zap.String("method", method), zap.String("path", path), zap.Int("status", status), zap.Error(err))
}
