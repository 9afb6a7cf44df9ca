// Command cleanup purges vocabulary entries soft-deleted longer ago than the
// retention period. Their interaction logs and quiz sessions go with them.
// Run it from a cron job; the server never purges on its own.
//
// Usage: cleanup [-days N] [-timeout 5m]
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/vocab-line-bot/internal/adapter/postgres"
	"github.com/heartmarshall/vocab-line-bot/internal/adapter/postgres/vocabulary"
	"github.com/heartmarshall/vocab-line-bot/internal/app"
	"github.com/heartmarshall/vocab-line-bot/internal/config"
)

func main() {
	days := flag.Int("days", 0, "retention in days; 0 uses QUIZ_DELETED_RETENTION_DAYS")
	timeout := flag.Duration("timeout", 5*time.Minute, "overall deadline")
	flag.Parse()

	cfg, err := config.LoadMaintenance()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if *days > 0 {
		cfg.Retention.DeletedDays = *days
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if err := purge(ctx, cfg, logger); err != nil {
		logger.Error("cleanup failed", slog.String("error", err.Error()))
		cancel()
		os.Exit(1)
	}
}

func purge(ctx context.Context, cfg *config.MaintenanceConfig, logger *slog.Logger) error {
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	cutoff := time.Now().UTC().AddDate(0, 0, -cfg.Retention.DeletedDays)
	n, err := vocabulary.New(pool).HardDeleteOld(ctx, cutoff)
	if err != nil {
		return fmt.Errorf("purge before %s: %w", cutoff.Format(time.RFC3339), err)
	}

	logger.Info("deleted words purged",
		slog.Int64("rows", n),
		slog.Int("retention_days", cfg.Retention.DeletedDays),
		slog.Time("cutoff", cutoff),
	)
	return nil
}
