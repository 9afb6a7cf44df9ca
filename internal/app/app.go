package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/vocab-line-bot/internal/config"
	"github.com/heartmarshall/vocab-line-bot/internal/transport/rest"
	"github.com/heartmarshall/vocab-line-bot/internal/transport/webhook"
)

// Run loads configuration, wires every component and serves HTTP until ctx
// is cancelled or the process receives SIGINT/SIGTERM.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("quiz_policy", string(cfg.Quiz.Policy)),
		slog.String("gemini_model", cfg.Gemini.Model),
	)

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	c, err := Wire(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer c.Close()

	if cfg.Scheduler.TriggerToken == "" {
		logger.Warn("quiz trigger is not protected; set SCHEDULER_TRIGGER_TOKEN")
	}

	handler := newRouter(logger, cfg.Scheduler, routes{
		health:  rest.NewHealthHandler(c.Pool, Version),
		webhook: webhook.NewHandler(c.LINE, c.LINE, c.Learners, c.Bot, logger),
		trigger: rest.NewQuizTriggerHandler(c.Quiz, logger),
	})

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(gctx), cfg.Server.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("stopped")
	return nil
}
