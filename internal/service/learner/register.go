package learner

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/vocab-line-bot/internal/domain"
	"github.com/heartmarshall/vocab-line-bot/pkg/ctxutil"
)

// Register creates the learner on first contact. Safe to call on every event.
func (s *Service) Register(ctx context.Context) (*domain.Learner, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	l, err := s.learners.Upsert(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("upsert learner: %w", err)
	}

	if l.CreatedAt.Equal(l.UpdatedAt) {
		s.log.InfoContext(ctx, "learner registered", slog.String("user_id", userID))
	}
	return l, nil
}
