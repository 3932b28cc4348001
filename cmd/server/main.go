package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/driftsync/driftsync/internal/config"
	"github.com/driftsync/driftsync/internal/server/handlers"
	"github.com/driftsync/driftsync/internal/server/jwt"
	"github.com/driftsync/driftsync/internal/server/middleware"
	"github.com/driftsync/driftsync/internal/server/storage/sqlite"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	configPath := flag.String("config", "", "Path to YAML config file")
	addr := flag.String("addr", "", "Listen address")
	dbPath := flag.String("db", "", "Path to SQLite database")

	flag.Parse()

	if *showVersion {
		fmt.Printf("DriftSync Server\n")
		fmt.Printf("Version:    %s\n", Version)
		fmt.Printf("Build Date: %s\n", BuildDate)
		fmt.Printf("Git Commit: %s\n", GitCommit)
		os.Exit(0)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	if err := run(*configPath, *addr, *dbPath, logger); err != nil {
		logger.Error("server exited with error", "error", err)
		os.Exit(1)
	}
}

func run(configPath, addr, dbPath string, logger *slog.Logger) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if addr != "" {
		cfg.Server.Addr = addr
	}
	if dbPath != "" {
		cfg.Server.DBPath = dbPath
	}
	if secret := os.Getenv("DRIFTSYNC_JWT_SECRET"); secret != "" {
		cfg.Server.JWTSecret = secret
	}
	if cfg.Server.JWTSecret == "" {
		return errors.New("jwt secret is not configured")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := sqlite.New(ctx, cfg.Server.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("failed to close storage", "error", err)
		}
	}()

	jwtService := jwt.NewService(cfg.Server.JWTSecret, cfg.Server.TokenTTL.Std())

	authHandler := handlers.NewAuthHandler(logger, jwtService)
	syncHandler := handlers.NewSyncHandler(logger, store)
	healthHandler := handlers.NewHealthHandler(logger, Version)

	authMW := middleware.AuthMiddleware(logger, jwtService)

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/health", healthHandler.Health)
	mux.HandleFunc("/api/v1/auth/device", authHandler.DeviceAuth)
	mux.Handle("/api/v1/sync/changes", authMW(http.HandlerFunc(syncHandler.HandleSyncChanges)))
	mux.Handle("/api/v1/sync/resolve-conflict", authMW(http.HandlerFunc(syncHandler.HandleResolveConflict)))

	handler := middleware.RecoveryMiddleware(logger)(middleware.LoggingMiddleware(logger)(mux))

	server := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	return nil
}
