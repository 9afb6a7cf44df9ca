// Package interaction stores graded quiz answers. Rows are append-only:
// there is no update or delete.
package interaction

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/vocab-line-bot/internal/adapter/postgres"
	"github.com/heartmarshall/vocab-line-bot/internal/adapter/postgres/interaction/sqlc"
	"github.com/heartmarshall/vocab-line-bot/internal/domain"
)

// Repo provides interaction log persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new interaction log repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create appends one log row. An unknown entry id fails the foreign key and
// comes back as domain.ErrNotFound.
func (r *Repo) Create(ctx context.Context, l *domain.InteractionLog) (*domain.InteractionLog, error) {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}

	q := sqlc.New(postgres.QuerierFromCtx(ctx, r.pool))
	row, err := q.CreateInteractionLog(ctx, sqlc.CreateInteractionLogParams{
		ID:       l.ID,
		EntryID:  l.EntryID,
		UserID:   l.UserID,
		Answer:   l.Answer,
		Passed:   l.Passed,
		Feedback: l.Feedback,
		HintUsed: l.HintUsed,
		Model:    l.Model,
	})
	if err != nil {
		return nil, postgres.MapError(err, "interaction_log", l.EntryID)
	}

	return &domain.InteractionLog{
		ID:        row.ID,
		EntryID:   row.EntryID,
		UserID:    row.UserID,
		Answer:    row.Answer,
		Passed:    row.Passed,
		Feedback:  row.Feedback,
		HintUsed:  row.HintUsed,
		Model:     row.Model,
		CreatedAt: row.CreatedAt,
	}, nil
}

// CountByUser returns how many answers a learner gave and how many passed.
func (r *Repo) CountByUser(ctx context.Context, userID string) (total, passed int, err error) {
	q := sqlc.New(postgres.QuerierFromCtx(ctx, r.pool))

	row, err := q.CountInteractionLogsByUser(ctx, userID)
	if err != nil {
		return 0, 0, fmt.Errorf("count interaction_logs %s: %w", userID, err)
	}
	return int(row.Total), int(row.Passed), nil
}
