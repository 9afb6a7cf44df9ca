package bot

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/vocab-line-bot/internal/domain"
	"github.com/heartmarshall/vocab-line-bot/internal/service/quiz"
	"github.com/heartmarshall/vocab-line-bot/internal/service/vocabulary"
)

type learnerService interface {
	Register(ctx context.Context) (*domain.Learner, error)
	Stats(ctx context.Context) (domain.LearnerStats, error)
}

type vocabularyService interface {
	AddWord(ctx context.Context, input vocabulary.AddWordInput) (*domain.VocabularyEntry, error)
	ListRecent(ctx context.Context) ([]domain.VocabularyEntry, error)
	DeleteWord(ctx context.Context, input vocabulary.DeleteWordInput) (*domain.VocabularyEntry, error)
}

type quizService interface {
	Start(ctx context.Context) (*domain.VocabularyEntry, error)
	Question(e *domain.VocabularyEntry) string
	Hint(ctx context.Context) (*quiz.HintResult, error)
	Answer(ctx context.Context, answer string) (*quiz.AnswerResult, error)
}

// Service turns one inbound chat message into one reply text. The learner
// must be set in ctx with ctxutil.WithUserID.
type Service struct {
	learners learnerService
	words    vocabularyService
	quiz     quizService
	log      *slog.Logger
}

// NewService creates a new bot dispatcher.
func NewService(log *slog.Logger, learners learnerService, words vocabularyService, quiz quizService) *Service {
	return &Service{
		learners: learners,
		words:    words,
		quiz:     quiz,
		log:      log.With("service", "bot"),
	}
}
