package domain

import (
	"time"

	"github.com/google/uuid"
)

// QuizPolicy picks which entry a quiz is about.
type QuizPolicy string

const (
	// QuizPolicyLeastRecent prefers words never quizzed, then the ones quizzed longest ago.
	QuizPolicyLeastRecent QuizPolicy = "least_recent"
	// QuizPolicyRandom picks uniformly among unmastered words.
	QuizPolicyRandom QuizPolicy = "random"
)

func (p QuizPolicy) String() string { return string(p) }

func (p QuizPolicy) IsValid() bool {
	switch p {
	case QuizPolicyLeastRecent, QuizPolicyRandom:
		return true
	}
	return false
}

// QuizSession is the quiz a learner still has to answer. One per learner.
type QuizSession struct {
	UserID   string
	EntryID  uuid.UUID
	HintUsed bool
	AskedAt  time.Time
}

// PendingQuiz joins a session with the entry it asks about.
type PendingQuiz struct {
	Session QuizSession
	Entry   VocabularyEntry
}

// GradeRequest is sent to the language model to judge an answer.
type GradeRequest struct {
	Word        string
	Meaning     string
	Translation string
	Answer      string
}

// GradeResult is the model's verdict on an answer.
type GradeResult struct {
	Passed   bool
	Feedback string
	Examples []string
	Model    string
}

// InteractionLog is an append-only record of one graded answer.
type InteractionLog struct {
	ID        uuid.UUID
	EntryID   uuid.UUID
	UserID    string
	Answer    string
	Passed    bool
	Feedback  string
	HintUsed  bool
	Model     string
	CreatedAt time.Time
}

// BroadcastResult counts what happened during one scheduler trigger.
type BroadcastResult struct {
	Learners int `json:"learners"`
	Sent     int `json:"sent"`
	Skipped  int `json:"skipped"`
	Failed   int `json:"failed"`
}
