// Package main is the entry point for the dealer site configuration server.
// It loads configuration, connects to services, sets up routing, and starts
// the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"dealerpress/internal/cache"
	"dealerpress/internal/components"
	"dealerpress/internal/composer"
	"dealerpress/internal/config"
	"dealerpress/internal/database"
	"dealerpress/internal/drafts"
	"dealerpress/internal/handlers"
	"dealerpress/internal/router"
	"dealerpress/internal/store"
	"dealerpress/internal/tenant"
	"dealerpress/internal/theme"
)

func main() {
	// Structured logger — outputs JSON in production, text in development.
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	// A local .env is a development convenience; absence is fine.
	if err := godotenv.Load(); err == nil {
		slog.Debug("loaded .env file")
	}

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
	)

	// Connect to PostgreSQL.
	db, err := database.Connect(cfg.DSN())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Run pending migrations.
	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Seed development data (no-op if data already exists).
	if cfg.IsDev() {
		if err := database.Seed(db); err != nil {
			slog.Error("failed to seed database", "error", err)
			os.Exit(1)
		}
	}

	// Connect to Valkey (Redis-compatible cache).
	valkeyClient, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
	if err != nil {
		slog.Error("failed to connect to valkey", "error", err)
		os.Exit(1)
	}
	defer valkeyClient.Close()

	// Register the built-in theme catalog.
	registry := theme.NewRegistry()
	if err := theme.RegisterBuiltin(registry); err != nil {
		slog.Error("failed to register themes", "error", err)
		os.Exit(1)
	}
	slog.Info("themes registered", "count", registry.Len())

	// Initialize data stores.
	dealerStore := store.NewDealerStore(db)
	customizationStore := store.NewCustomizationStore(db)
	cacheLogStore := store.NewCacheLogStore(db)

	dealers, err := dealerStore.List()
	if err != nil {
		slog.Error("failed to load dealer directory", "error", err)
		os.Exit(1)
	}
	slog.Info("dealer sites loaded", "count", len(dealers))

	// Resolved-config cache in Valkey, dropped whenever a customization
	// changes. The audit log records every invalidation.
	configCache := cache.NewConfigCache(valkeyClient, cfg.ConfigCacheTTL)

	// Core services: the config compositor, the draft/publish workflow, and
	// the per-theme component resolver.
	comp := composer.New(dealerStore, customizationStore, configCache)
	draftService := drafts.NewService(customizationStore, configCache, cacheLogStore)
	componentResolver := components.NewResolver(registry)
	tenants := tenant.NewResolver(dealerStore)

	// Create handler groups with their dependencies.
	publicHandlers := handlers.NewPublic(tenants, comp, componentResolver)
	adminHandlers := handlers.NewAdmin(tenants, draftService)

	// Set up the Chi router with all middleware and routes.
	r := router.New(publicHandlers, adminHandlers)

	// Create the HTTP server with sensible timeouts.
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	// Give active requests up to 30 seconds to complete.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
