package domain

import "time"

// Learner is a LINE user talking to the bot. UserID is the LINE user id.
type Learner struct {
	UserID    string
	Score     int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// LearnerStats is what the stats command shows.
type LearnerStats struct {
	Score    int
	Total    int
	Mastered int
	// Answers and Passed count graded quiz answers.
	Answers int
	Passed  int
}

// PassRate returns the share of passed answers in percent, rounded down.
func (s LearnerStats) PassRate() int {
	if s.Answers == 0 {
		return 0
	}
	return s.Passed * 100 / s.Answers
}
