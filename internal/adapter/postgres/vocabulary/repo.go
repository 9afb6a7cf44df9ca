// Package vocabulary persists the words each learner saved.
package vocabulary

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/vocab-line-bot/internal/adapter/postgres"
	"github.com/heartmarshall/vocab-line-bot/internal/domain"
)

// Repo provides vocabulary entry persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new vocabulary repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const table = "vocabulary_entries"

var columns = []string{
	"id", "user_id", "word", "word_normalized", "meaning", "translation",
	"example_sentence", "created_at", "last_quizzed_at", "mastered_at", "deleted_at",
}

const returningColumns = `RETURNING id, user_id, word, word_normalized, meaning, translation,
	example_sentence, created_at, last_quizzed_at, mastered_at, deleted_at`

const statsSQL = `
SELECT count(*), count(mastered_at)
FROM vocabulary_entries
WHERE user_id = $1 AND deleted_at IS NULL`

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new entry. A second live entry with the same normalized
// word for the same user violates the partial unique index and comes back as
// domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, e *domain.VocabularyEntry) (*domain.VocabularyEntry, error) {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}

	query, args, err := postgres.Builder.
		Insert(table).
		Columns("id", "user_id", "word", "word_normalized", "meaning", "translation", "example_sentence").
		Values(e.ID, e.UserID, e.Word, e.WordNormalized, e.Meaning, e.Translation, e.Example).
		Suffix(returningColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert vocabulary entry: %w", err)
	}

	created, err := scanEntry(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "vocabulary_entry", e.WordNormalized)
	}
	return created, nil
}

// SoftDelete hides the live entry for word. The row and its interaction logs
// stay until HardDeleteOld purges them.
func (r *Repo) SoftDelete(ctx context.Context, userID, wordNormalized string) (*domain.VocabularyEntry, error) {
	query, args, err := postgres.Builder.
		Update(table).
		Set("deleted_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"user_id": userID, "word_normalized": wordNormalized, "deleted_at": nil}).
		Suffix(returningColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build soft delete vocabulary entry: %w", err)
	}

	deleted, err := scanEntry(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "vocabulary_entry", wordNormalized)
	}
	return deleted, nil
}

// HardDeleteOld physically removes entries soft-deleted before threshold.
// Their interaction logs and any stale quiz session go with them.
func (r *Repo) HardDeleteOld(ctx context.Context, threshold time.Time) (int64, error) {
	query, args, err := postgres.Builder.
		Delete(table).
		Where(squirrel.NotEq{"deleted_at": nil}).
		Where(squirrel.Lt{"deleted_at": threshold}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build hard delete vocabulary entries: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("hard delete vocabulary entries: %w", err)
	}
	return tag.RowsAffected(), nil
}

// MarkQuizzed records when the entry was last sent as a quiz.
func (r *Repo) MarkQuizzed(ctx context.Context, id uuid.UUID, at time.Time) error {
	return r.setTimestamp(ctx, id, "last_quizzed_at", at)
}

// MarkMastered sets mastered_at once; later calls keep the first timestamp.
func (r *Repo) MarkMastered(ctx context.Context, id uuid.UUID, at time.Time) error {
	return r.setTimestamp(ctx, id, "mastered_at", squirrel.Expr("COALESCE(mastered_at, ?)", at))
}

func (r *Repo) setTimestamp(ctx context.Context, id uuid.UUID, column string, value any) error {
	query, args, err := postgres.Builder.
		Update(table).
		Set(column, value).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update %s: %w", column, err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "vocabulary_entry", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("vocabulary_entry %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// ListRecent returns the newest live entries of a learner.
func (r *Repo) ListRecent(ctx context.Context, userID string, limit int) ([]domain.VocabularyEntry, error) {
	query, args, err := live(userID).
		OrderBy("created_at DESC", "id").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list vocabulary: %w", err)
	}
	return r.list(ctx, query, args)
}

// PickForQuiz selects one live entry for a quiz. Unmastered words always go
// first; within a group the policy decides. Returns domain.ErrNotFound when
// the learner has no words.
func (r *Repo) PickForQuiz(ctx context.Context, userID string, policy domain.QuizPolicy) (*domain.VocabularyEntry, error) {
	q := live(userID).OrderBy("(mastered_at IS NOT NULL)")

	switch policy {
	case domain.QuizPolicyRandom:
		q = q.OrderBy("random()")
	default:
		q = q.OrderBy("last_quizzed_at ASC NULLS FIRST", "created_at ASC")
	}

	query, args, err := q.Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build pick for quiz: %w", err)
	}

	e, err := scanEntry(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "vocabulary_entry", userID)
	}
	return e, nil
}

// Stats counts live and mastered words for a learner.
func (r *Repo) Stats(ctx context.Context, userID string) (domain.VocabularyStats, error) {
	var s domain.VocabularyStats
	err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, statsSQL, userID).Scan(&s.Total, &s.Mastered)
	if err != nil {
		return domain.VocabularyStats{}, fmt.Errorf("vocabulary stats %s: %w", userID, err)
	}
	return s, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func live(userID string) squirrel.SelectBuilder {
	return postgres.Builder.
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"user_id": userID, "deleted_at": nil})
}

func (r *Repo) list(ctx context.Context, query string, args []any) ([]domain.VocabularyEntry, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query vocabulary: %w", err)
	}
	defer rows.Close()

	var out []domain.VocabularyEntry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan vocabulary entry: %w", err)
		}
		out = append(out, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate vocabulary: %w", err)
	}
	return out, nil
}

func scanEntry(row pgx.Row) (*domain.VocabularyEntry, error) {
	var e domain.VocabularyEntry
	err := row.Scan(
		&e.ID, &e.UserID, &e.Word, &e.WordNormalized, &e.Meaning, &e.Translation,
		&e.Example, &e.CreatedAt, &e.LastQuizzedAt, &e.MasteredAt, &e.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}
