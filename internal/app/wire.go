package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/vocab-line-bot/internal/adapter/messaging/line"
	"github.com/heartmarshall/vocab-line-bot/internal/adapter/postgres"
	"github.com/heartmarshall/vocab-line-bot/internal/adapter/postgres/interaction"
	learnerrepo "github.com/heartmarshall/vocab-line-bot/internal/adapter/postgres/learner"
	"github.com/heartmarshall/vocab-line-bot/internal/adapter/postgres/quizsession"
	vocabularyrepo "github.com/heartmarshall/vocab-line-bot/internal/adapter/postgres/vocabulary"
	"github.com/heartmarshall/vocab-line-bot/internal/adapter/provider/gemini"
	"github.com/heartmarshall/vocab-line-bot/internal/config"
	"github.com/heartmarshall/vocab-line-bot/internal/service/bot"
	"github.com/heartmarshall/vocab-line-bot/internal/service/learner"
	"github.com/heartmarshall/vocab-line-bot/internal/service/quiz"
	"github.com/heartmarshall/vocab-line-bot/internal/service/vocabulary"
	"github.com/heartmarshall/vocab-line-bot/migrations"
)

// lineHTTPTimeout bounds every Messaging API call.
const lineHTTPTimeout = 15 * time.Second

// Components holds the wired adapters and services shared by the server and
// the one-shot commands.
type Components struct {
	Pool       *pgxpool.Pool
	LINE       *line.Client
	AI         *gemini.Client
	Learners   *learner.Service
	Vocabulary *vocabulary.Service
	Quiz       *quiz.Service
	Bot        *bot.Service
}

// Wire connects to Postgres, Gemini and LINE and builds the services.
// The caller must Close the result.
func Wire(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Components, error) {
	if cfg.Database.AutoMigrate {
		if err := migrate(ctx, cfg.Database.DSN, logger); err != nil {
			return nil, err
		}
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	logger.Info("database connected",
		slog.Int("max_conns", int(cfg.Database.MaxConns)),
	)

	ai, err := gemini.New(ctx, cfg.Gemini, logger)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	lineClient, err := line.New(cfg.LINE, &http.Client{Timeout: lineHTTPTimeout}, logger)
	if err != nil {
		_ = ai.Close()
		pool.Close()
		return nil, fmt.Errorf("create line client: %w", err)
	}

	txm := postgres.NewTxManager(pool)
	learners := learnerrepo.New(pool)
	entries := vocabularyrepo.New(pool)
	sessions := quizsession.New(pool)
	logs := interaction.New(pool)

	learnerSvc := learner.NewService(logger, learners, entries, logs)
	vocabSvc := vocabulary.NewService(logger, entries, ai, vocabulary.Config{
		ListLimit:     cfg.Quiz.ListLimit,
		MaxWordLength: cfg.Quiz.MaxWordLength,
	})
	quizSvc := quiz.NewService(logger, entries, sessions, logs, learners, ai, lineClient, txm, quiz.Config{
		Policy:        cfg.Quiz.Policy,
		CorrectPoints: cfg.Quiz.CorrectPoints,
		WrongPenalty:  cfg.Quiz.WrongPenalty,
		HintPenalty:   cfg.Quiz.HintPenalty,
	})

	return &Components{
		Pool:       pool,
		LINE:       lineClient,
		AI:         ai,
		Learners:   learnerSvc,
		Vocabulary: vocabSvc,
		Quiz:       quizSvc,
		Bot:        bot.NewService(logger, learnerSvc, vocabSvc, quizSvc),
	}, nil
}

// Close releases the Gemini client and the connection pool.
func (c *Components) Close() {
	_ = c.AI.Close()
	c.Pool.Close()
}

func migrate(ctx context.Context, dsn string, logger *slog.Logger) error {
	m, err := postgres.NewMigrator(dsn, migrations.FS)
	if err != nil {
		return fmt.Errorf("open migrator: %w", err)
	}
	defer m.Close()

	if err := m.Up(ctx, logger); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}
