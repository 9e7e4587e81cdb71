package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
)

// RequestIDContextKey is the fiber locals key holding the request id.
const RequestIDContextKey = "requestid"

// RequestID assigns a UUIDv7 request id unless the caller sent X-Request-ID.
func RequestID() fiber.Handler {
	return requestid.New(requestid.Config{
		Header:     fiber.HeaderXRequestID,
		ContextKey: RequestIDContextKey,
		Generator: func() string {
			return uuid.Must(uuid.NewV7()).String()
		},
	})
}
