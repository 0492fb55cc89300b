package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/JonMunkholm/pilexchange/internal/cli"
	"github.com/JonMunkholm/pilexchange/internal/config"
	"github.com/JonMunkholm/pilexchange/internal/core"
	_ "github.com/JonMunkholm/pilexchange/internal/core/tables" // Register all tables
	"github.com/JonMunkholm/pilexchange/internal/logging"
)

func main() {
	// Load .env file if it exists (Overload overwrites existing env vars)
	envErr := godotenv.Overload()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

	if envErr != nil {
		slog.Debug("no .env file found, using environment variables")
	} else {
		slog.Debug("loaded .env file (overwriting existing env vars)")
	}
	slog.Debug("configuration loaded", "config", cfg.String(), "tables", core.TableCount())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := cli.Execute(ctx, cfg, os.Args[1:])
	stop()
	os.Exit(code)
}
