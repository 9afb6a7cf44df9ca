package learner

import (
	"context"
	"fmt"

	"github.com/heartmarshall/vocab-line-bot/internal/domain"
	"github.com/heartmarshall/vocab-line-bot/pkg/ctxutil"
)

// Stats returns score, word counts and answer counts for the current learner.
func (s *Service) Stats(ctx context.Context) (domain.LearnerStats, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.LearnerStats{}, domain.ErrUnauthorized
	}

	l, err := s.learners.GetByID(ctx, userID)
	if err != nil {
		return domain.LearnerStats{}, fmt.Errorf("get learner: %w", err)
	}

	vs, err := s.vocab.Stats(ctx, userID)
	if err != nil {
		return domain.LearnerStats{}, fmt.Errorf("vocabulary stats: %w", err)
	}

	answers, passed, err := s.answers.CountByUser(ctx, userID)
	if err != nil {
		return domain.LearnerStats{}, fmt.Errorf("answer stats: %w", err)
	}

	return domain.LearnerStats{
		Score:    l.Score,
		Total:    vs.Total,
		Mastered: vs.Mastered,
		Answers:  answers,
		Passed:   passed,
	}, nil
}
