package domain

import (
	"time"

	"github.com/google/uuid"
)

// VocabularyEntry is one word a learner saved. Meaning, translation and
// example are filled once from the language model and never rewritten.
type VocabularyEntry struct {
	ID             uuid.UUID
	UserID         string
	Word           string
	WordNormalized string
	Meaning        string
	Translation    string
	Example        string
	CreatedAt      time.Time
	LastQuizzedAt  *time.Time
	MasteredAt     *time.Time
	DeletedAt      *time.Time
}

// IsMastered reports whether the learner has answered a quiz for the word correctly.
func (e *VocabularyEntry) IsMastered() bool {
	return e.MasteredAt != nil
}

// IsDeleted returns true if the entry has been soft-deleted.
func (e *VocabularyEntry) IsDeleted() bool {
	return e.DeletedAt != nil
}

// WordLookup is what the language model returns for a new word.
type WordLookup struct {
	Meaning     string
	Translation string
	Example     string
}

// Complete reports whether every field came back non-empty.
func (l WordLookup) Complete() bool {
	return l.Meaning != "" && l.Translation != "" && l.Example != ""
}

// VocabularyStats summarises a learner's word list.
type VocabularyStats struct {
	Total    int
	Mastered int
}
