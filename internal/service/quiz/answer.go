package quiz

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/vocab-line-bot/internal/domain"
	"github.com/heartmarshall/vocab-line-bot/pkg/ctxutil"
)

// exactMatchModel marks logs graded locally without calling the model.
const exactMatchModel = "exact-match"

// AnswerResult is returned by Answer.
type AnswerResult struct {
	Entry domain.VocabularyEntry
	Grade domain.GradeResult
	Delta int
	Score int
}

// Answer grades free text against the pending quiz and records exactly one
// interaction log. Returns domain.ErrNoPendingQuiz when nothing is pending.
//
// When grading fails the quiz stays open so the learner can answer again.
// A quiz replaced or answered while grading was in flight yields
// domain.ErrNoPendingQuiz and leaves the newer quiz pending.
func (s *Service) Answer(ctx context.Context, answer string) (*AnswerResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	answer = strings.TrimSpace(answer)
	if answer == "" {
		return nil, domain.NewValidationError("answer", "required")
	}

	pending, err := s.pending(ctx, userID)
	if err != nil {
		return nil, err
	}

	grade, err := s.grade(ctx, &pending.Entry, answer)
	if err != nil {
		return nil, fmt.Errorf("grade answer: %w", err)
	}

	delta := -s.cfg.WrongPenalty
	if grade.Passed {
		delta = s.cfg.CorrectPoints
	}

	res := &AnswerResult{Entry: pending.Entry, Grade: grade, Delta: delta}
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		// Claim the quiz that was graded. If it was answered or replaced in
		// the meantime nothing is written.
		err := s.sessions.Close(ctx, userID, pending.Session.EntryID, pending.Session.AskedAt)
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNoPendingQuiz
		}
		if err != nil {
			return fmt.Errorf("close session: %w", err)
		}

		_, err = s.logs.Create(ctx, &domain.InteractionLog{
			EntryID:  pending.Entry.ID,
			UserID:   userID,
			Answer:   answer,
			Passed:   grade.Passed,
			Feedback: grade.Feedback,
			HintUsed: pending.Session.HintUsed,
			Model:    grade.Model,
		})
		if err != nil {
			return fmt.Errorf("create interaction log: %w", err)
		}

		if res.Score, err = s.learners.AddScore(ctx, userID, delta); err != nil {
			return fmt.Errorf("update score: %w", err)
		}

		if grade.Passed {
			if err := s.entries.MarkMastered(ctx, pending.Entry.ID, s.now()); err != nil {
				return fmt.Errorf("mark mastered: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "answer graded",
		slog.String("user_id", userID),
		slog.String("entry_id", pending.Entry.ID.String()),
		slog.Bool("passed", grade.Passed),
		slog.String("model", grade.Model),
	)
	return res, nil
}

// grade accepts an answer identical to the stored translation without a
// model call; everything else goes to the language model.
func (s *Service) grade(ctx context.Context, e *domain.VocabularyEntry, answer string) (domain.GradeResult, error) {
	if norm := domain.NormalizeAnswer(answer); norm != "" && norm == domain.NormalizeAnswer(e.Translation) {
		return domain.GradeResult{Passed: true, Model: exactMatchModel}, nil
	}

	return s.ai.Grade(ctx, domain.GradeRequest{
		Word:        e.Word,
		Meaning:     e.Meaning,
		Translation: e.Translation,
		Answer:      answer,
	})
}
