// Package main is the entry point for the FunnelPress content API server.
// It loads configuration, opens the JSON-backed content store, sets up
// routing, and starts the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"funnelpress/internal/config"
	"funnelpress/internal/handlers"
	"funnelpress/internal/persist"
	"funnelpress/internal/router"
	"funnelpress/internal/session"
	"funnelpress/internal/store"
)

func main() {
	// Structured logger shared by the whole process.
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	// Load configuration from .env and environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
		"data_file", cfg.DataFile,
	)

	// Open the content store. Initialization is synchronous and happens
	// exactly once, before the server accepts traffic; seeding on first
	// boot, backfilling legacy slugs otherwise.
	gateway := persist.New(cfg.DataFile)
	st, err := store.Open(gateway, store.Options{
		PinnedCourseURLs:     cfg.PinnedCourseURLs,
		DefaultAdminPassword: cfg.AdminPassword,
	})
	if err != nil {
		slog.Error("failed to open content store", "error", err)
		os.Exit(1)
	}

	// Session backend: Redis when configured, in-process otherwise.
	// In non-development environments, session cookies are HTTPS-only.
	var backend session.Backend
	if addr := cfg.RedisAddr(); addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: cfg.RedisPassword,
		})
		if err := client.Ping(context.Background()).Err(); err != nil {
			slog.Error("failed to connect to redis", "error", err, "addr", addr)
			os.Exit(1)
		}
		defer client.Close()
		backend = session.NewRedisBackend(client)
		slog.Info("sessions backed by redis", "addr", addr)
	} else {
		backend = session.NewMemoryBackend()
		slog.Warn("no redis configured, sessions are in-process and do not survive restarts")
	}
	sessionStore := session.NewStore(backend, !cfg.IsDev())

	// Create the handler group and wire the router.
	api := handlers.New(st, sessionStore)
	r := router.New(sessionStore, api, cfg.AllowedOrigins)

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
