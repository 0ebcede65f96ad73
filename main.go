package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/garalhogames-hue/HlivePlayer16/internal/config"
	"github.com/garalhogames-hue/HlivePlayer16/internal/logger"
	"github.com/garalhogames-hue/HlivePlayer16/internal/server"
)

func main() {
	ctx := context.Background()

	// Load configuration
	cfg, err := config.Load(ctx)
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	logger.Configure(cfg.LogLevel, cfg.LogFormat)

	logger.Infof("Starting HlivePlayer status service v%s on port %s", config.GetVersion(), cfg.Port)
	logger.Infof("Environment: %s", cfg.Environment)
	logger.Infof("Stream server: %s", cfg.StreamBaseURL())
	if cfg.MockupMode {
		logger.Warn("Mockup mode enabled - status responses are canned")
	}

	// Create server and routes
	srv := server.NewServer(cfg)
	mux := srv.SetupRoutes()

	// Create HTTP server
	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.Infof("Server listening on :%s", cfg.Port)
		if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown error", err)
	}

	logger.Info("Server stopped")
}
