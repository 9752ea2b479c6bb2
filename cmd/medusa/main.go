// Package main is the entry point for the Medusa YT Tools local server.
// It loads configuration, opens the embedded database, wires the stores and
// the generation gateway, and starts the HTTP server with graceful shutdown
// support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonaen987-prog/Medusa-YT-Tools/internal/ai"
	"github.com/jonaen987-prog/Medusa-YT-Tools/internal/config"
	"github.com/jonaen987-prog/Medusa-YT-Tools/internal/database"
	"github.com/jonaen987-prog/Medusa-YT-Tools/internal/gateway"
	"github.com/jonaen987-prog/Medusa-YT-Tools/internal/handlers"
	"github.com/jonaen987-prog/Medusa-YT-Tools/internal/kvstore"
	"github.com/jonaen987-prog/Medusa-YT-Tools/internal/router"
	"github.com/jonaen987-prog/Medusa-YT-Tools/internal/store"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	// Load configuration from environment variables. This fails fast when
	// the active AI provider has no API key.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded",
		"addr", cfg.Addr(),
		"data_dir", cfg.DataDir,
		"ai_provider", cfg.AIProvider,
	)

	// Open the embedded SQLite database and run pending migrations.
	db, err := database.Open(cfg.DatabasePath())
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Initialize the key-value layer and the domain stores on top of it.
	kv := kvstore.NewSQLite(db)
	settingsStore := store.NewSettingsStore(kv)
	brandKitStore := store.NewBrandKitStore(kv)
	projectStore := store.NewProjectStore(kv)
	checklistStore := store.NewChecklistStore(kv)

	// Initialize the AI provider registry with all configured providers.
	aiRegistry := ai.NewRegistry(cfg.AIProvider, map[string]ai.ProviderConfig{
		"gemini": {APIKey: cfg.GeminiKey, Model: cfg.GeminiModel, BaseURL: cfg.GeminiBaseURL},
		"openai": {APIKey: cfg.OpenAIKey, Model: cfg.OpenAIModel, BaseURL: cfg.OpenAIBaseURL},
	})

	slog.Info("ai providers initialized",
		"active", aiRegistry.ActiveName(),
		"available", aiRegistry.Available(),
	)

	// The gateway builds the prompts and schemas for every tool on top of
	// whichever provider is active.
	gw := gateway.New(aiRegistry)

	api := handlers.New(gw, settingsStore, brandKitStore, projectStore, checklistStore)
	r := router.New(api)

	// WriteTimeout must accommodate generation endpoints that wait on LLM
	// responses (typically 10-30s, up to 60s for long scripts).
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 90 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

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

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
