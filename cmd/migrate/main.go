// Command migrate applies or inspects the database schema.
//
// Usage: migrate [up|down|status]   (default: up)
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/vocab-line-bot/internal/adapter/postgres"
	"github.com/heartmarshall/vocab-line-bot/internal/app"
	"github.com/heartmarshall/vocab-line-bot/internal/config"
	"github.com/heartmarshall/vocab-line-bot/migrations"
)

func main() {
	cmd := "up"
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	cfg, err := config.LoadMaintenance()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if err := run(ctx, cmd, cfg.Database.DSN, logger); err != nil {
		logger.Error("migrate failed", slog.String("command", cmd), slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context, cmd, dsn string, logger *slog.Logger) error {
	m, err := postgres.NewMigrator(dsn, migrations.FS)
	if err != nil {
		return err
	}
	defer m.Close()

	switch cmd {
	case "up":
		return m.Up(ctx, logger)
	case "down":
		return m.Down(ctx, logger)
	case "status":
		return m.Status(ctx, logger)
	default:
		return fmt.Errorf("unknown command %q (want up, down or status)", cmd)
	}
}
