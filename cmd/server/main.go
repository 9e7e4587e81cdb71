package main

// @title           Vendor Portal Diagnostics API
// @version         1.0
// @description     Diagnostics service for the vendor portal. Reports the configuration the process sees without exposing the SMTP password.
// @termsOfService  http://swagger.io/terms/
// @contact.name   API Support
// @contact.url    http://www.example.com/support
// @contact.email  support@example.com
// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html
// @host      localhost:3000
// @BasePath  /

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	_ "github.com/Alwanly/vendor-portal-diagnostics/docs/server"
	"github.com/Alwanly/vendor-portal-diagnostics/internal/config"
	"github.com/Alwanly/vendor-portal-diagnostics/internal/server/diagnostics/handler"
	"github.com/Alwanly/vendor-portal-diagnostics/pkg/deps"
	"github.com/Alwanly/vendor-portal-diagnostics/pkg/envsource"
	"github.com/Alwanly/vendor-portal-diagnostics/pkg/logger"
	"github.com/Alwanly/vendor-portal-diagnostics/pkg/middleware"
	swagger "github.com/gofiber/swagger"
)

func main() {
	cfg, err := config.LoadServerConfig()
	if err != nil {
		panic(err)
	}

	log, err := logger.New("diagnostics", cfg.LogFormat)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	log.Info("starting diagnostics service")

	log.Info("configuration loaded",
		logger.String("server_addr", cfg.ServerAddr),
		logger.Duration("shutdown_timeout", cfg.ShutdownTimeout),
		logger.Bool("swagger_enabled", cfg.EnableSwagger),
	)

	app := fiber.New(fiber.Config{
		AppName:               cfg.AppName,
		DisableStartupMessage: true,
		ErrorHandler:          middleware.ErrorHandler(log),
	})

	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(middleware.CanonicalLoggerMiddleware(log))

	handler.NewHandler(deps.App{
		Fiber:  app,
		Logger: log,
		Env:    envsource.OS(),
	})

	if cfg.EnableSwagger {
		app.Get("/swagger/*", swagger.HandlerDefault)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	gErr, gCtx := errgroup.WithContext(ctx)

	gErr.Go(func() error {
		log.Info("diagnostics service is running", logger.String("address", cfg.ServerAddr))
		if err := app.Listen(cfg.ServerAddr); err != nil {
			cancel()
			return err
		}
		return nil
	})

	gErr.Go(func() error {
		<-gCtx.Done()

		if err := app.ShutdownWithTimeout(cfg.ShutdownTimeout); err != nil {
			log.WithError(err).Error("failed to shutdown fiber app")
			return err
		}
		return nil
	})

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		log.Info("listening for shutdown signals")
		<-sigChan
		log.Info("shutdown signal received")
		cancel()
	}()

	if err := gErr.Wait(); err != nil {
		log.WithError(err).Fatal("diagnostics service encountered an error")
	}

	log.Info("diagnostics service stopped gracefully")
}
