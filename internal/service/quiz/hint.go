package quiz

import (
	"context"
	"errors"
	"fmt"

	"github.com/heartmarshall/vocab-line-bot/internal/domain"
	"github.com/heartmarshall/vocab-line-bot/pkg/ctxutil"
)

// HintResult is returned by Hint.
type HintResult struct {
	Entry domain.VocabularyEntry
	// Charged is true only for the first hint of a quiz.
	Charged bool
	Penalty int
	Score   int
}

// Hint reveals the translation of the pending quiz. The penalty applies once
// per quiz; asking again shows the hint for free.
func (s *Service) Hint(ctx context.Context) (*HintResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	pending, err := s.pending(ctx, userID)
	if err != nil {
		return nil, err
	}

	res := &HintResult{Entry: pending.Entry}
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		first, err := s.sessions.MarkHintUsed(ctx, userID)
		if err != nil {
			return fmt.Errorf("mark hint used: %w", err)
		}
		if !first || s.cfg.HintPenalty == 0 {
			return nil
		}
		score, err := s.learners.AddScore(ctx, userID, -s.cfg.HintPenalty)
		if err != nil {
			return fmt.Errorf("charge hint: %w", err)
		}
		res.Charged, res.Penalty, res.Score = true, s.cfg.HintPenalty, score
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (s *Service) pending(ctx context.Context, userID string) (*domain.PendingQuiz, error) {
	p, err := s.sessions.GetPending(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrNoPendingQuiz
	}
	if err != nil {
		return nil, fmt.Errorf("get pending quiz: %w", err)
	}
	return p, nil
}
