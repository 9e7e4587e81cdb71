package middleware

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/Alwanly/vendor-portal-diagnostics/pkg/logger"
)

// CanonicalLoggerMiddleware creates a middleware that logs once per request
func CanonicalLoggerMiddleware(log *logger.CanonicalLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// Initialize LogContext for this request
		logCtx := logger.NewLogContext()

		// Add LogContext to user context for usecase access
		c.SetUserContext(logger.WithLogContext(c.UserContext(), logCtx))

		// Get request ID from the requestid middleware
		if reqID, ok := c.Locals(RequestIDContextKey).(string); ok && reqID != "" {
			logCtx.AddField(zap.String(logger.FieldRequestID, reqID))
		}

		// Record start time
		start := time.Now()

		// A panic below is recovered here and answered through the error handler,
		// so the logged status matches the 500 the client receives.
		defer func() {
			if r := recover(); r != nil {
				err, ok := r.(error)
				if !ok {
					err = fmt.Errorf("%v", r)
				}
				logCtx.AddField(zap.Bool("panic", true))
				handleError(c, err)
			}

			duration := time.Since(start)
			status := c.Response().StatusCode()

			// Build base fields
			fields := []zap.Field{
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.Int("status", status),
				zap.Duration("duration", duration),
				zap.Int64("duration_ms", duration.Milliseconds()),
			}

			// Add accumulated fields from handlers/usecases
			fields = append(fields, logCtx.Fields()...)

			// Log based on status code
			switch {
			case status >= 500:
				log.Error("http_request", fields...)
			case status >= 400:
				log.Info("http_request_client_error", fields...)
			default:
				log.Info("http_request", fields...)
			}
		}()

		// Errors are resolved here rather than by the app, so the status is final
		// by the time the deferred log line reads it
		if err := c.Next(); err != nil {
			handleError(c, err)
		}
		return nil
	}
}

func handleError(c *fiber.Ctx, err error) {
	if herr := c.App().ErrorHandler(c, err); herr != nil {
		_ = c.SendStatus(fiber.StatusInternalServerError)
	}
}
