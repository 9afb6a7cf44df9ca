package quiz

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/vocab-line-bot/internal/domain"
	"github.com/heartmarshall/vocab-line-bot/pkg/ctxutil"
)

// Start opens a quiz on demand. The caller replies with Question(entry).
// Returns domain.ErrEmptyVocabulary when the learner has no words.
func (s *Service) Start(ctx context.Context) (*domain.VocabularyEntry, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	entry, err := s.entries.PickForQuiz(ctx, userID, s.cfg.Policy)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrEmptyVocabulary
	}
	if err != nil {
		return nil, fmt.Errorf("pick entry: %w", err)
	}

	if err := s.open(ctx, userID, entry); err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "quiz started",
		slog.String("user_id", userID),
		slog.String("entry_id", entry.ID.String()),
	)
	return entry, nil
}
