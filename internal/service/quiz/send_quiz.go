package quiz

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/vocab-line-bot/internal/domain"
	"github.com/heartmarshall/vocab-line-bot/pkg/ctxutil"
)

// SendQuiz pushes one quiz to the learner in ctx. It reports false without
// error when the learner has no words. Every call sends a new quiz; the
// pending one, if any, is replaced.
//
// The message is pushed before the session is stored, so a failed push
// leaves the previous pending quiz untouched.
func (s *Service) SendQuiz(ctx context.Context) (bool, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return false, domain.ErrUnauthorized
	}

	entry, err := s.entries.PickForQuiz(ctx, userID, s.cfg.Policy)
	if errors.Is(err, domain.ErrNotFound) {
		s.log.DebugContext(ctx, "no words to quiz", slog.String("user_id", userID))
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("pick entry: %w", err)
	}

	if err := s.push.Push(ctx, userID, s.Question(entry)); err != nil {
		return false, fmt.Errorf("push quiz: %w", err)
	}

	if err := s.open(ctx, userID, entry); err != nil {
		return false, err
	}

	s.log.InfoContext(ctx, "quiz sent",
		slog.String("user_id", userID),
		slog.String("entry_id", entry.ID.String()),
	)
	return true, nil
}

// Broadcast sends one quiz to every learner. Learners without words are
// skipped; a failure for one learner is counted and does not stop the run.
func (s *Service) Broadcast(ctx context.Context) (domain.BroadcastResult, error) {
	ids, err := s.learners.ListIDs(ctx)
	if err != nil {
		return domain.BroadcastResult{}, fmt.Errorf("list learners: %w", err)
	}

	res := domain.BroadcastResult{Learners: len(ids)}
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		sent, err := s.SendQuiz(ctxutil.WithUserID(ctx, id))
		switch {
		case err != nil:
			res.Failed++
			s.log.WarnContext(ctx, "quiz not sent", slog.String("user_id", id), slog.String("error", err.Error()))
		case sent:
			res.Sent++
		default:
			res.Skipped++
		}
	}

	s.log.InfoContext(ctx, "broadcast finished",
		slog.Int("learners", res.Learners),
		slog.Int("sent", res.Sent),
		slog.Int("skipped", res.Skipped),
		slog.Int("failed", res.Failed),
	)
	return res, nil
}

// open stores entry as the pending quiz and stamps it as quizzed.
func (s *Service) open(ctx context.Context, userID string, entry *domain.VocabularyEntry) error {
	now := s.now()
	return s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.entries.MarkQuizzed(ctx, entry.ID, now); err != nil {
			return fmt.Errorf("mark quizzed: %w", err)
		}
		if err := s.sessions.Open(ctx, domain.QuizSession{UserID: userID, EntryID: entry.ID, AskedAt: now}); err != nil {
			return fmt.Errorf("open session: %w", err)
		}
		return nil
	})
}
