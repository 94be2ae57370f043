// Command api serves animated SVG cards for GitHub READMEs.
//
// Usage:
//
//	readme-svg-api
//	API_PORT=8080 PROFILE_SOURCE=demo readme-svg-api

// @title README SVG API
// @version 1.0.0
// @description Animated SVG cards for GitHub READMEs: profile stats, wave banners, typing effects, terminal windows and loaders.
// @host localhost:8000
// @BasePath /
// @schemes http https
// @contact.name readme-svg
// @license.name MIT
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/albapepper/readme-svg/internal/api"
	"github.com/albapepper/readme-svg/internal/cache"
	"github.com/albapepper/readme-svg/internal/catalog"
	"github.com/albapepper/readme-svg/internal/config"
	"github.com/albapepper/readme-svg/internal/generator"

	_ "github.com/albapepper/readme-svg/docs" // swagger docs
)

func main() {
	// Load .env if present
	_ = godotenv.Load(".env")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	// Context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Reference data is embedded; a parse failure is a build defect.
	cat, err := catalog.Load()
	if err != nil {
		logger.Error("Failed to load catalog", "error", err)
		os.Exit(1)
	}

	// Profile source
	source := generator.SourceFor(cfg, logger)
	if cfg.ProfileSource == config.SourceGitHub && cfg.GitHubToken == "" {
		logger.Warn("GITHUB_TOKEN not set; GitHub allows 60 unauthenticated requests per hour")
	}
	gen := generator.New(source, logger)
	logger.Info("Profile source ready", "source", source.Name())

	// Initialize cache
	appCache := cache.New(cache.Options{
		Enabled:    cfg.CacheEnabled,
		TTL:        cfg.CacheTTL,
		MaxEntries: cfg.CacheMaxEntries,
	})
	defer appCache.Close()
	logger.Info("Cache initialized",
		"enabled", cfg.CacheEnabled, "ttl", cfg.CacheTTL, "max_entries", cfg.CacheMaxEntries)

	// Create router
	router := api.NewRouter(gen, appCache, cat, cfg, logger)

	// Create HTTP server
	addr := cfg.Addr()
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in background
	go func() {
		logger.Info("Starting README SVG API",
			"addr", addr,
			"environment", cfg.Environment,
			"rate_limit", cfg.RateLimitEnabled,
			"docs", fmt.Sprintf("http://localhost:%d/docs/", cfg.APIPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt
	<-ctx.Done()
	logger.Info("Shutting down...")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Shutdown error", "error", err)
	}
	logger.Info("Server stopped")
}
