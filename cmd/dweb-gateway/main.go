package main

import (
	"context"

	"github.com/LerianStudio/lib-commons/commons/zap"
	"github.com/LerianStudio/dweb-gateway/internal/config"
	"github.com/LerianStudio/dweb-gateway/internal/shutdown"
	"github.com/LerianStudio/dweb-gateway/middleware"
	"github.com/gofiber/fiber/v2"
)

func main() {
	logger := zap.InitializeLogger()

	cfg, err := config.FromEnv()
	if err != nil {
		logger.Fatalf("Invalid configuration: %v", err)
	}

	gatewayClient, err := middleware.NewGatewayClient(cfg, &logger)
	if err != nil {
		logger.Fatalf("Failed to create gateway client: %v", err)
	}

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	// Every path of every host is proxied; there is no local route.
	app.All("/*", gatewayClient.Handler())

	terminator := shutdown.New()
	terminator.SetHandler(func(reason string) {
		logger.Infof("Shutting down: %s", reason)

		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		if err := app.ShutdownWithContext(ctx); err != nil {
			logger.Errorf("HTTP server shutdown failed: %v", err)
		}

		if err := gatewayClient.Shutdown(ctx); err != nil {
			logger.Errorf("Pending cache writes were dropped: %v", err)
		}

		_ = logger.Sync()
	})

	go func() {
		logger.Infof("Starting dweb gateway on %s", cfg.ServerAddress)

		if err := app.Listen(cfg.ServerAddress); err != nil {
			logger.Errorf("HTTP server failed: %v", err)
			terminator.Terminate("server stopped: " + err.Error())
		}
	}()

	terminator.Wait(context.Background())
}
