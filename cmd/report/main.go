package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/jongchichi12/convenience-store-system/internal/catalog"
	"github.com/jongchichi12/convenience-store-system/internal/report"
	"github.com/jongchichi12/convenience-store-system/pkg/config"
	"github.com/jongchichi12/convenience-store-system/pkg/logger"
)

var (
	configPath = flag.String("config", "", "config file path (optional, defaults apply without one)")
	dateFlag   = flag.String("date", "", "reference date in YYYY-MM-DD (overrides config)")
)

func main() {
	flag.Parse()

	// 1. Load config
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if *dateFlag != "" {
		cfg.Report.Date = *dateFlag
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Config validation failed: %v", err)
	}

	// 2. Init logger
	zapLogger, err := logger.NewZapLogger(cfg.App.LogLevel)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zapLogger.Sync()

	ctx := context.Background()
	zapLogger.Infof(ctx, "[Main] %s starting, env: %s", cfg.App.Name, cfg.App.Env)

	// 3. Build the snapshot from the sample catalog and today's ledger
	today, err := cfg.ReferenceDate()
	if err != nil {
		log.Fatalf("Failed to resolve reference date: %v", err)
	}

	snap := &report.Snapshot{
		Products:         catalog.SampleProducts(today),
		Sales:            catalog.SampleSales(),
		Today:            today,
		StockThreshold:   cfg.Report.StockThreshold,
		ExpiryWindowDays: cfg.Report.ExpiryWindowDays,
		TopSellerLimit:   cfg.Report.TopSellerLimit,
		Discount:         cfg.Policy(),
	}

	// 4. Run the report
	engine := report.NewEngine(snap, os.Stdout, zapLogger)
	if err := engine.Run(ctx); err != nil {
		zapLogger.Errorf(ctx, "[Main] report run failed: %v", err)
		os.Exit(1)
	}

	zapLogger.Infof(ctx, "[Main] report finished, sections processed: %d", engine.Stats())
}
