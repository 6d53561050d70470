package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"saksham-engine/internal/api/routes"
	"saksham-engine/internal/catalog"
	"saksham-engine/internal/config"
	"saksham-engine/internal/logging"
	"saksham-engine/internal/ranker/workers"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig("configs/config.yaml")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logging system
	if err := logging.InitializeLogging(cfg); err != nil {
		log.Fatalf("Failed to initialize logging: %v", err)
	}
	defer logging.CloseLogging()

	logger := logging.GetGlobalLogger()
	logger.Info("Starting Saksham Match Engine")

	// Initialize catalog store
	store := catalog.NewStore(cfg)
	defer store.Close()

	pingCtx, pingCancel := context.WithTimeout(context.Background(), cfg.Redis.Timeout)
	if err := store.Ping(pingCtx); err != nil {
		// Inline ranking still works without redis, so keep starting
		logger.Warn("Catalog store unreachable, catalog endpoints degraded", map[string]interface{}{
			"error": err.Error(),
		})
	}
	pingCancel()

	// Initialize worker pool
	poolManager := workers.NewPoolManager(cfg)
	if err := poolManager.Initialize(); err != nil {
		logger.Fatal("Failed to start worker pool", map[string]interface{}{
			"error": err.Error(),
		})
	}
	defer poolManager.Shutdown()

	// Initialize Echo
	e := echo.New()
	e.HideBanner = true

	// Setup routes
	routes.SetupRoutes(e, cfg, poolManager, store)

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		logger.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		logger.Info("Stopping worker pool...")
		if err := poolManager.Shutdown(); err != nil {
			logger.Error("Error stopping worker pool", map[string]interface{}{
				"error": err.Error(),
			})
		}

		logger.Info("Stopping HTTP server...")
		if err := e.Shutdown(shutdownCtx); err != nil {
			logger.Error("Error shutting down server", map[string]interface{}{
				"error": err.Error(),
			})
		}

		logger.Info("Server shutdown complete")
	}()

	// Start server
	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", map[string]interface{}{
		"address": address,
	})

	if err := e.Start(address); err != nil {
		logger.Fatal("Server failed to start", map[string]interface{}{
			"error": err.Error(),
		})
	}
}
