package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Alwanly/vendor-portal-diagnostics/internal/server/diagnostics/usecase"
	"github.com/Alwanly/vendor-portal-diagnostics/pkg/deps"
	"github.com/Alwanly/vendor-portal-diagnostics/pkg/logger"
)

// ConfigEchoPath is the route of the config echo endpoint.
const ConfigEchoPath = "/api/test-env"

type Handler struct {
	Logger  *logger.CanonicalLogger
	UseCase usecase.UseCaseInterface
}

func NewHandler(d deps.App) *Handler {
	h := &Handler{
		Logger:  d.Logger,
		UseCase: usecase.NewUseCase(d.Env),
	}

	// Health check endpoint (no auth required)
	d.Fiber.Get("/health", h.health)

	// Diagnostics endpoint. Left unauthenticated like the rest of the debug surface.
	d.Fiber.Get(ConfigEchoPath, h.configEcho)

	return h
}

// configEcho godoc
// @Summary      Echo configuration
// @Description  Report the SMTP, database host and NODE_ENV variables the process sees. SMTP_PASS is reduced to "SET" or "NOT SET"; every other value is returned verbatim and unset variables are null. Query string and body are ignored.
// @Tags         diagnostics
// @Produce      json
// @Success      200 {object} dto.ConfigSnapshot "Current configuration snapshot"
// @Router       /api/test-env [get]
func (h *Handler) configEcho(c *fiber.Ctx) error {
	res := h.UseCase.ConfigSnapshot(c.UserContext())
	return c.Status(res.Code).JSON(res.Data)
}

// health godoc
// @Summary     Health check
// @Description Get service health status (unauthenticated)
// @Tags        health
// @Produce     json
// @Success     200 {object} dto.HealthResponse
// @Router      /health [get]
func (h *Handler) health(c *fiber.Ctx) error {
	res := h.UseCase.Health(c.UserContext())
	return c.Status(res.Code).JSON(res.Data)
}
