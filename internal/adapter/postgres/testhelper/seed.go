package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/vocab-line-bot/internal/domain"
)

// NewUserID returns a LINE-shaped user id unique to this test run.
func NewUserID() string {
	return "U" + uuid.NewString()[:8] + uuid.NewString()[:8]
}

// SeedLearner inserts a learner with a fresh id and returns the id.
func SeedLearner(t *testing.T, pool *pgxpool.Pool) string {
	t.Helper()

	userID := NewUserID()
	_, err := pool.Exec(context.Background(),
		`INSERT INTO learners (user_id) VALUES ($1)`, userID)
	if err != nil {
		t.Fatalf("testhelper: SeedLearner: %v", err)
	}
	return userID
}

// SeedEntry inserts a vocabulary entry for userID with generated content.
func SeedEntry(t *testing.T, pool *pgxpool.Pool, userID, word string) domain.VocabularyEntry {
	t.Helper()

	e := domain.VocabularyEntry{
		ID:             uuid.New(),
		UserID:         userID,
		Word:           word,
		WordNormalized: domain.NormalizeText(word),
		Meaning:        "meaning of " + word,
		Translation:    "translation of " + word,
		Example:        "An example with " + word + ".",
		CreatedAt:      time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO vocabulary_entries
		   (id, user_id, word, word_normalized, meaning, translation, example_sentence, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		e.ID, e.UserID, e.Word, e.WordNormalized, e.Meaning, e.Translation, e.Example, e.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedEntry %q: %v", word, err)
	}
	return e
}
