// Package quizsession stores the one outstanding quiz per learner.
package quizsession

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/vocab-line-bot/internal/adapter/postgres"
	"github.com/heartmarshall/vocab-line-bot/internal/adapter/postgres/quizsession/sqlc"
	"github.com/heartmarshall/vocab-line-bot/internal/domain"
)

// Repo provides quiz session persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new quiz session repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Open stores s as the learner's pending quiz.
func (r *Repo) Open(ctx context.Context, s domain.QuizSession) error {
	q := sqlc.New(postgres.QuerierFromCtx(ctx, r.pool))

	err := q.OpenQuizSession(ctx, sqlc.OpenQuizSessionParams{
		UserID:  s.UserID,
		EntryID: s.EntryID,
		AskedAt: s.AskedAt,
	})
	return postgres.MapError(err, "quiz_session", s.UserID)
}

// GetPending returns the pending quiz with its entry, or domain.ErrNotFound.
// A quiz whose word was deleted in the meantime counts as absent.
func (r *Repo) GetPending(ctx context.Context, userID string) (*domain.PendingQuiz, error) {
	q := sqlc.New(postgres.QuerierFromCtx(ctx, r.pool))

	row, err := q.GetPendingQuiz(ctx, userID)
	if err != nil {
		return nil, postgres.MapError(err, "quiz_session", userID)
	}

	return &domain.PendingQuiz{
		Session: domain.QuizSession{
			UserID:   row.QuizSession.UserID,
			EntryID:  row.QuizSession.EntryID,
			HintUsed: row.QuizSession.HintUsed,
			AskedAt:  row.QuizSession.AskedAt,
		},
		Entry: toDomainEntry(row.VocabularyEntry),
	}, nil
}

// MarkHintUsed reports true only the first time it is called for a session.
func (r *Repo) MarkHintUsed(ctx context.Context, userID string) (bool, error) {
	q := sqlc.New(postgres.QuerierFromCtx(ctx, r.pool))

	n, err := q.MarkQuizHintUsed(ctx, userID)
	if err != nil {
		return false, postgres.MapError(err, "quiz_session", userID)
	}
	return n == 1, nil
}

// Close removes the pending quiz only if it is still the one asked about
// entryID at askedAt. Otherwise it returns domain.ErrNotFound and leaves the
// row alone: the quiz was already answered or replaced by a newer one.
func (r *Repo) Close(ctx context.Context, userID string, entryID uuid.UUID, askedAt time.Time) error {
	q := sqlc.New(postgres.QuerierFromCtx(ctx, r.pool))

	n, err := q.CloseQuizSession(ctx, sqlc.CloseQuizSessionParams{
		UserID:  userID,
		EntryID: entryID,
		AskedAt: askedAt,
	})
	if err != nil {
		return postgres.MapError(err, "quiz_session", userID)
	}
	if n == 0 {
		return fmt.Errorf("quiz_session %s: %w", userID, domain.ErrNotFound)
	}
	return nil
}

func toDomainEntry(row sqlc.VocabularyEntry) domain.VocabularyEntry {
	return domain.VocabularyEntry{
		ID:             row.ID,
		UserID:         row.UserID,
		Word:           row.Word,
		WordNormalized: row.WordNormalized,
		Meaning:        row.Meaning,
		Translation:    row.Translation,
		Example:        row.ExampleSentence,
		CreatedAt:      row.CreatedAt,
		LastQuizzedAt:  row.LastQuizzedAt,
		MasteredAt:     row.MasteredAt,
		DeletedAt:      row.DeletedAt,
	}
}
