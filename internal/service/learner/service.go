package learner

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/vocab-line-bot/internal/domain"
)

type learnerRepo interface {
	Upsert(ctx context.Context, userID string) (*domain.Learner, error)
	GetByID(ctx context.Context, userID string) (*domain.Learner, error)
}

type vocabularyStats interface {
	Stats(ctx context.Context, userID string) (domain.VocabularyStats, error)
}

type answerStats interface {
	CountByUser(ctx context.Context, userID string) (total, passed int, err error)
}

// Service registers learners and reports their progress.
type Service struct {
	learners learnerRepo
	vocab    vocabularyStats
	answers  answerStats
	log      *slog.Logger
}

// NewService creates a new learner service.
func NewService(
	log *slog.Logger,
	learners learnerRepo,
	vocab vocabularyStats,
	answers answerStats,
) *Service {
	return &Service{
		learners: learners,
		vocab:    vocab,
		answers:  answers,
		log:      log.With("service", "learner"),
	}
}
