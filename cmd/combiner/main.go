package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"paycli/internal/app"
	"paycli/internal/config"
	"paycli/internal/infrastructure"
)

func main() {
	inputDir := flag.String("input_dir_name", "", "directory containing the .dat input files (required)")
	flag.Parse()

	if *inputDir == "" {
		fmt.Fprintln(os.Stderr, "missing required flag: --input_dir_name")
		flag.Usage()
		os.Exit(2)
	}

	// Optional .env for local overrides, ignored when absent.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Warn("Failed to load config, using defaults", "error", err)
		cfg = config.Default()
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}
	defer infrastructure.CloseLogFile()

	ctx := infrastructure.WithRunID(context.Background(), uuid.NewString())

	logger.InfoContext(ctx, "starting combiner",
		slog.String("input_dir", *inputDir),
		slog.Int("basic_salary_index", cfg.Salary.BasicSalaryIndex),
		slog.Int("allowances_index", cfg.Salary.AllowancesIndex))

	pipeline := app.NewPipeline(logger, cfg)
	if err := pipeline.Run(ctx, *inputDir); err != nil {
		logger.ErrorContext(ctx, "run failed", slog.String("error", err.Error()))
		infrastructure.CloseLogFile()
		os.Exit(1)
	}

	logger.InfoContext(ctx, "run complete")
}
