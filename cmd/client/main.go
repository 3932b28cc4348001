package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"

	"github.com/driftsync/driftsync/internal/client/cli"
	"github.com/driftsync/driftsync/internal/client/storage"
	"github.com/driftsync/driftsync/internal/client/storage/boltdb"
	"github.com/driftsync/driftsync/internal/client/transport"
	"github.com/driftsync/driftsync/internal/config"
	"github.com/driftsync/driftsync/internal/engine"
	"github.com/driftsync/driftsync/internal/tracker"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Глобальные флаги
	showVersion := flag.Bool("version", false, "Show version information")
	configPath := flag.String("config", "", "Path to YAML config file")
	serverURL := flag.String("server", "", "Server URL")
	dbPath := flag.String("db", "", "Path to local database")
	deviceID := flag.String("device", "", "Device identifier")
	userID := flag.String("user", "", "User identifier")

	flag.Parse()

	// Show version and exit if requested
	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	// Получаем команду
	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage()
		os.Exit(1)
	}

	command := args[0]

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Флаги имеют приоритет над конфигурацией
	if *serverURL != "" {
		cfg.Client.ServerURL = *serverURL
	}
	if *dbPath != "" {
		cfg.Client.DBPath = *dbPath
	}
	if *deviceID != "" {
		cfg.Client.DeviceID = *deviceID
	}
	if *userID != "" {
		cfg.Client.UserID = *userID
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))

	// Контекст с отменой по сигналу, нужен команде watch
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Открываем BoltDB storage
	boltStorage, err := boltdb.New(ctx, cfg.Client.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := boltStorage.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	device, err := resolveDeviceID(ctx, boltStorage, cfg.Client.DeviceID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to resolve device id: %v\n", err)
		os.Exit(1)
	}

	tr, err := tracker.New(ctx, device, cfg.Client.UserID, boltStorage, boltStorage, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create change tracker: %v\n", err)
		os.Exit(1)
	}

	apiClient := transport.NewClient(cfg.Client.ServerURL, cfg.Client.RequestTimeout.Std())
	// Токен запрашивается лениво: первый отклоненный запрос проходит
	// аутентификацию устройства и повторяется
	apiClient.SetCredentials(device, cfg.Client.UserID)

	eng := engine.New(tr, apiClient, engine.Config{
		Interval:       cfg.Client.SyncInterval.Std(),
		RequestTimeout: cfg.Client.RequestTimeout.Std(),
		BackoffBase:    cfg.Client.BackoffBase.Std(),
		BackoffMax:     cfg.Client.BackoffMax.Std(),
		MaxAttempts:    cfg.Client.MaxAttempts,
	}, logger)

	// Выполняем команду
	cli.New(tr, eng).Run(ctx, command, args[1:])
}

// resolveDeviceID возвращает идентификатор устройства: из конфигурации,
// из локальной базы или генерирует новый и сохраняет его
func resolveDeviceID(ctx context.Context, store storage.MetadataStore, configured string) (string, error) {
	if configured != "" {
		if err := store.SaveDeviceID(ctx, configured); err != nil {
			return "", err
		}
		return configured, nil
	}

	stored, err := store.GetDeviceID(ctx)
	if err == nil {
		return stored, nil
	}
	if !errors.Is(err, storage.ErrMetadataNotFound) {
		return "", err
	}

	generated := uuid.New().String()
	if err := store.SaveDeviceID(ctx, generated); err != nil {
		return "", err
	}

	return generated, nil
}

func printVersion() {
	fmt.Printf("DriftSync Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
