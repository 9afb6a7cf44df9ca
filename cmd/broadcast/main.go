// Command broadcast pushes one quiz to every learner and exits. It is meant
// for cron runners that execute a binary instead of calling the HTTP trigger.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/vocab-line-bot/internal/app"
	"github.com/heartmarshall/vocab-line-bot/internal/config"
	"github.com/heartmarshall/vocab-line-bot/pkg/ctxutil"
)

func main() {
	userID := flag.String("user", "", "quiz only this LINE user id")
	timeout := flag.Duration("timeout", 10*time.Minute, "overall deadline")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	c, err := app.Wire(ctx, cfg, logger)
	if err != nil {
		logger.Error("wire components", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer c.Close()

	if *userID != "" {
		sent, err := c.Quiz.SendQuiz(ctxutil.WithUserID(ctx, *userID))
		if err != nil {
			logger.Error("send quiz failed", slog.String("user_id", *userID), slog.String("error", err.Error()))
			c.Close()
			os.Exit(1)
		}
		logger.Info("send quiz completed", slog.String("user_id", *userID), slog.Bool("sent", sent))
		return
	}

	res, err := c.Quiz.Broadcast(ctx)
	if err != nil {
		logger.Error("broadcast failed", slog.String("error", err.Error()))
		c.Close()
		os.Exit(1)
	}

	logger.Info("broadcast completed",
		slog.Int("learners", res.Learners),
		slog.Int("sent", res.Sent),
		slog.Int("skipped", res.Skipped),
		slog.Int("failed", res.Failed),
	)
}
