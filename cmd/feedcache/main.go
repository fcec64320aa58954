package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"feedbrief/internal/cache"
	"feedbrief/internal/catalog"
	"feedbrief/internal/config"
	"feedbrief/internal/feed"
	"feedbrief/internal/scheduler"
)

func main() {
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(log)

	cfg, err := config.Load()
	if err != nil {
		log.Error("Failed to load config",
			"error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	fetcher := feed.NewFetcher(cfg.CacheTimeout, log)
	writer := cache.NewWriter(catalog.Default(), fetcher, cfg.OutputDir, os.Stdout, log)

	if err = writer.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Could not cache feeds: %v\n", err)
		os.Exit(1)
	}

	if cfg.RefreshCron == "" {
		return
	}

	sched := scheduler.New(ctx, writer, log)
	if err = sched.Start(cfg.RefreshCron); err != nil {
		log.Error("Failed to start refresh schedule",
			"error", err,
			"spec", cfg.RefreshCron)
		os.Exit(1)
	}
	defer sched.Stop()

	log.Info("Feed cache refresh is scheduled",
		"spec", cfg.RefreshCron,
		"outputDir", cfg.OutputDir)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	sig := <-c
	cancel()

	log.Info("Shutdown signal is received",
		"signal", sig.String())
}
