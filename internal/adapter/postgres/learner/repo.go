// Package learner persists LINE users and their quiz score.
package learner

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/vocab-line-bot/internal/adapter/postgres"
	"github.com/heartmarshall/vocab-line-bot/internal/adapter/postgres/learner/sqlc"
	"github.com/heartmarshall/vocab-line-bot/internal/domain"
)

// Repo provides learner persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new learner repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Upsert registers the learner on first contact and touches updated_at afterwards.
func (r *Repo) Upsert(ctx context.Context, userID string) (*domain.Learner, error) {
	q := sqlc.New(postgres.QuerierFromCtx(ctx, r.pool))

	row, err := q.UpsertLearner(ctx, userID)
	if err != nil {
		return nil, postgres.MapError(err, "learner", userID)
	}

	l := toDomainLearner(row)
	return &l, nil
}

// GetByID returns the learner or domain.ErrNotFound.
func (r *Repo) GetByID(ctx context.Context, userID string) (*domain.Learner, error) {
	q := sqlc.New(postgres.QuerierFromCtx(ctx, r.pool))

	row, err := q.GetLearner(ctx, userID)
	if err != nil {
		return nil, postgres.MapError(err, "learner", userID)
	}

	l := toDomainLearner(row)
	return &l, nil
}

// AddScore adds delta (which may be negative) in one statement and returns the new score.
func (r *Repo) AddScore(ctx context.Context, userID string, delta int) (int, error) {
	q := sqlc.New(postgres.QuerierFromCtx(ctx, r.pool))

	score, err := q.AddLearnerScore(ctx, sqlc.AddLearnerScoreParams{
		Delta:  int32(delta),
		UserID: userID,
	})
	if err != nil {
		return 0, postgres.MapError(err, "learner", userID)
	}
	return int(score), nil
}

// ListIDs returns every learner id, oldest first.
func (r *Repo) ListIDs(ctx context.Context) ([]string, error) {
	q := sqlc.New(postgres.QuerierFromCtx(ctx, r.pool))

	ids, err := q.ListLearnerIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("list learners: %w", err)
	}
	return ids, nil
}

func toDomainLearner(row sqlc.Learner) domain.Learner {
	return domain.Learner{
		UserID:    row.UserID,
		Score:     int(row.Score),
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}
