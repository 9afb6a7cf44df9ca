package quiz

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/vocab-line-bot/internal/domain"
)

type entryRepo interface {
	PickForQuiz(ctx context.Context, userID string, policy domain.QuizPolicy) (*domain.VocabularyEntry, error)
	MarkQuizzed(ctx context.Context, id uuid.UUID, at time.Time) error
	MarkMastered(ctx context.Context, id uuid.UUID, at time.Time) error
}

type sessionRepo interface {
	Open(ctx context.Context, s domain.QuizSession) error
	GetPending(ctx context.Context, userID string) (*domain.PendingQuiz, error)
	MarkHintUsed(ctx context.Context, userID string) (bool, error)
	Close(ctx context.Context, userID string, entryID uuid.UUID, askedAt time.Time) error
}

type logRepo interface {
	Create(ctx context.Context, l *domain.InteractionLog) (*domain.InteractionLog, error)
}

type learnerRepo interface {
	AddScore(ctx context.Context, userID string, delta int) (int, error)
	ListIDs(ctx context.Context) ([]string, error)
}

type grader interface {
	Grade(ctx context.Context, req domain.GradeRequest) (domain.GradeResult, error)
}

type pusher interface {
	Push(ctx context.Context, userID, text string) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Config holds quiz selection and scoring rules.
type Config struct {
	Policy        domain.QuizPolicy
	CorrectPoints int
	WrongPenalty  int
	HintPenalty   int
}

// Service picks words to quiz, delivers quizzes and grades answers.
type Service struct {
	entries  entryRepo
	sessions sessionRepo
	logs     logRepo
	learners learnerRepo
	ai       grader
	push     pusher
	tx       txManager
	cfg      Config
	log      *slog.Logger
	now      func() time.Time
}

// NewService creates a new quiz service.
func NewService(
	log *slog.Logger,
	entries entryRepo,
	sessions sessionRepo,
	logs logRepo,
	learners learnerRepo,
	ai grader,
	push pusher,
	tx txManager,
	cfg Config,
) *Service {
	return &Service{
		entries:  entries,
		sessions: sessions,
		logs:     logs,
		learners: learners,
		ai:       ai,
		push:     push,
		tx:       tx,
		cfg:      cfg,
		log:      log.With("service", "quiz"),
		now:      func() time.Time { return time.Now().UTC() },
	}
}
