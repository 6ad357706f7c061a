package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"flightaudit/internal/audit"
	"flightaudit/internal/config"
	"flightaudit/internal/database"
	"flightaudit/internal/dataset"
	"flightaudit/internal/report"
)

func initLogger(cfg *config.Config) {
	var logLevel slog.Level
	switch cfg.Log.Level {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: logLevel,
	}

	var handler slog.Handler
	if cfg.Log.Format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	slog.SetDefault(slog.New(handler))
}

func main() {
	configPath := flag.String("config", "", "Path to config file (YAML)")
	outputPath := flag.String("output", "", "Path for the violations CSV report")
	flag.Parse()

	// Local .env overrides are read before viper consults the environment.
	_ = godotenv.Load()

	if *configPath != "" {
		os.Setenv("FLIGHTAUDIT_CONFIG_PATH", *configPath)
	}

	cfg, err := config.Load()
	if err != nil {
		basicLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
		basicLogger.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	initLogger(cfg)

	if flag.NArg() > 0 {
		cfg.DatasetDir = flag.Arg(0)
	}
	if *outputPath != "" {
		cfg.OutputPath = *outputPath
	}
	if cfg.DatasetDir == "" {
		fmt.Fprintln(os.Stderr, "Usage: flightaudit [-config file] [-output file.csv] dataset-dir")
		os.Exit(1)
	}

	data, err := dataset.Load(cfg.DatasetDir)
	if err != nil {
		slog.Error("Failed to load dataset", "dir", cfg.DatasetDir, "error", err)
		os.Exit(1)
	}

	violations := audit.New(data).Discover()

	if cfg.OutputPath != "" {
		if err := report.WriteFile(cfg.OutputPath, violations); err != nil {
			slog.Error("Failed to write report", "path", cfg.OutputPath, "error", err)
			os.Exit(1)
		}
		slog.Info("Report written", "path", cfg.OutputPath)
	}

	if cfg.DBPath != "" {
		store, err := database.New(cfg.DBPath)
		if err != nil {
			slog.Error("Failed to open results database", "path", cfg.DBPath, "error", err)
			os.Exit(1)
		}
		defer store.Close()
		if err := store.InsertBatch(time.Now(), violations); err != nil {
			slog.Error("Failed to persist violations", "error", err)
			os.Exit(1)
		}
		slog.Info("Violations persisted", "path", cfg.DBPath, "count", len(violations))
	}

	switch len(violations) {
	case 0:
		fmt.Println("No violations found.")
	case 1:
		fmt.Println("1 violation found.")
	default:
		fmt.Printf("%d violations found.\n", len(violations))
	}
}
