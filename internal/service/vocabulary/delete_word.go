package vocabulary

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/vocab-line-bot/internal/domain"
	"github.com/heartmarshall/vocab-line-bot/pkg/ctxutil"
)

// DeleteWord removes a word from the learner's list. The row and its history
// stay until the retention cleanup purges them.
func (s *Service) DeleteWord(ctx context.Context, input DeleteWordInput) (*domain.VocabularyEntry, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(s.cfg.MaxWordLength); err != nil {
		return nil, err
	}

	entry, err := s.entries.SoftDelete(ctx, userID, domain.NormalizeText(input.Word))
	if err != nil {
		return nil, fmt.Errorf("delete vocabulary entry: %w", err)
	}

	s.log.InfoContext(ctx, "word deleted",
		slog.String("user_id", userID),
		slog.String("entry_id", entry.ID.String()),
	)
	return entry, nil
}
