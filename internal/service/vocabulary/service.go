package vocabulary

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/vocab-line-bot/internal/domain"
)

type entryRepo interface {
	Create(ctx context.Context, e *domain.VocabularyEntry) (*domain.VocabularyEntry, error)
	SoftDelete(ctx context.Context, userID, wordNormalized string) (*domain.VocabularyEntry, error)
	ListRecent(ctx context.Context, userID string, limit int) ([]domain.VocabularyEntry, error)
}

type wordLookup interface {
	LookupWord(ctx context.Context, word string) (domain.WordLookup, error)
}

// Config holds the tunables of the vocabulary service.
type Config struct {
	ListLimit     int
	MaxWordLength int
}

// Service adds, lists and deletes a learner's words.
type Service struct {
	entries entryRepo
	ai      wordLookup
	cfg     Config
	log     *slog.Logger
}

// NewService creates a new vocabulary service.
func NewService(
	log *slog.Logger,
	entries entryRepo,
	ai wordLookup,
	cfg Config,
) *Service {
	return &Service{
		entries: entries,
		ai:      ai,
		cfg:     cfg,
		log:     log.With("service", "vocabulary"),
	}
}
