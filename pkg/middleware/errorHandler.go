package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Alwanly/vendor-portal-diagnostics/pkg/logger"
)

func ErrorHandler(log *logger.CanonicalLogger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
		}

		// Tag the error line with the request id so it joins the canonical line
		l := log
		if reqID, ok := c.Locals(RequestIDContextKey).(string); ok && reqID != "" {
			l = log.WithRequestID(reqID)
		}
		l.HTTPError(c.Method(), c.Path(), code, err)

		return c.Status(code).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
}
