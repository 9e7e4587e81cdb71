package deps

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Alwanly/vendor-portal-diagnostics/pkg/envsource"
	"github.com/Alwanly/vendor-portal-diagnostics/pkg/logger"
)

type App struct {
	Fiber  *fiber.App
	Logger *logger.CanonicalLogger
	Env    envsource.Source
}
