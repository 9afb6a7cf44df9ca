package vocabulary

import (
	"context"
	"fmt"

	"github.com/heartmarshall/vocab-line-bot/internal/domain"
	"github.com/heartmarshall/vocab-line-bot/pkg/ctxutil"
)

// ListRecent returns the learner's newest words, up to the configured limit.
func (s *Service) ListRecent(ctx context.Context) ([]domain.VocabularyEntry, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	entries, err := s.entries.ListRecent(ctx, userID, s.cfg.ListLimit)
	if err != nil {
		return nil, fmt.Errorf("list vocabulary: %w", err)
	}
	return entries, nil
}
