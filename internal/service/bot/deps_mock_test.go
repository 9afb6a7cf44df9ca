package bot

import (
	"context"
	"sync"

	"github.com/heartmarshall/vocab-line-bot/internal/domain"
	"github.com/heartmarshall/vocab-line-bot/internal/service/quiz"
	"github.com/heartmarshall/vocab-line-bot/internal/service/vocabulary"
)

var (
	_ learnerService    = &learnerServiceMock{}
	_ vocabularyService = &vocabularyServiceMock{}
	_ quizService       = &quizServiceMock{}
)

// ---------------------------------------------------------------------------
// learnerServiceMock
// ---------------------------------------------------------------------------

type learnerServiceMock struct {
	RegisterFunc func(ctx context.Context) (*domain.Learner, error)
	StatsFunc    func(ctx context.Context) (domain.LearnerStats, error)

	calls struct {
		Register []struct{ Ctx context.Context }
		Stats    []struct{ Ctx context.Context }
	}
	lockRegister sync.RWMutex
	lockStats    sync.RWMutex
}

func (mock *learnerServiceMock) Register(ctx context.Context) (*domain.Learner, error) {
	if mock.RegisterFunc == nil {
		panic("learnerServiceMock.RegisterFunc: method is nil but learnerService.Register was just called")
	}
	mock.lockRegister.Lock()
	mock.calls.Register = append(mock.calls.Register, struct{ Ctx context.Context }{ctx})
	mock.lockRegister.Unlock()
	return mock.RegisterFunc(ctx)
}

func (mock *learnerServiceMock) Stats(ctx context.Context) (domain.LearnerStats, error) {
	if mock.StatsFunc == nil {
		panic("learnerServiceMock.StatsFunc: method is nil but learnerService.Stats was just called")
	}
	mock.lockStats.Lock()
	mock.calls.Stats = append(mock.calls.Stats, struct{ Ctx context.Context }{ctx})
	mock.lockStats.Unlock()
	return mock.StatsFunc(ctx)
}

func (mock *learnerServiceMock) StatsCalls() []struct{ Ctx context.Context } {
	mock.lockStats.RLock()
	defer mock.lockStats.RUnlock()
	return mock.calls.Stats
}

// ---------------------------------------------------------------------------
// vocabularyServiceMock
// ---------------------------------------------------------------------------

type vocabularyServiceMock struct {
	AddWordFunc    func(ctx context.Context, input vocabulary.AddWordInput) (*domain.VocabularyEntry, error)
	ListRecentFunc func(ctx context.Context) ([]domain.VocabularyEntry, error)
	DeleteWordFunc func(ctx context.Context, input vocabulary.DeleteWordInput) (*domain.VocabularyEntry, error)

	calls struct {
		AddWord []struct {
			Ctx   context.Context
			Input vocabulary.AddWordInput
		}
		ListRecent []struct{ Ctx context.Context }
		DeleteWord []struct {
			Ctx   context.Context
			Input vocabulary.DeleteWordInput
		}
	}
	lockAddWord    sync.RWMutex
	lockListRecent sync.RWMutex
	lockDeleteWord sync.RWMutex
}

func (mock *vocabularyServiceMock) AddWord(ctx context.Context, input vocabulary.AddWordInput) (*domain.VocabularyEntry, error) {
	if mock.AddWordFunc == nil {
		panic("vocabularyServiceMock.AddWordFunc: method is nil but vocabularyService.AddWord was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input vocabulary.AddWordInput
	}{Ctx: ctx, Input: input}
	mock.lockAddWord.Lock()
	mock.calls.AddWord = append(mock.calls.AddWord, callInfo)
	mock.lockAddWord.Unlock()
	return mock.AddWordFunc(ctx, input)
}

func (mock *vocabularyServiceMock) AddWordCalls() []struct {
	Ctx   context.Context
	Input vocabulary.AddWordInput
} {
	mock.lockAddWord.RLock()
	defer mock.lockAddWord.RUnlock()
	return mock.calls.AddWord
}

func (mock *vocabularyServiceMock) ListRecent(ctx context.Context) ([]domain.VocabularyEntry, error) {
	if mock.ListRecentFunc == nil {
		panic("vocabularyServiceMock.ListRecentFunc: method is nil but vocabularyService.ListRecent was just called")
	}
	mock.lockListRecent.Lock()
	mock.calls.ListRecent = append(mock.calls.ListRecent, struct{ Ctx context.Context }{ctx})
	mock.lockListRecent.Unlock()
	return mock.ListRecentFunc(ctx)
}

func (mock *vocabularyServiceMock) DeleteWord(ctx context.Context, input vocabulary.DeleteWordInput) (*domain.VocabularyEntry, error) {
	if mock.DeleteWordFunc == nil {
		panic("vocabularyServiceMock.DeleteWordFunc: method is nil but vocabularyService.DeleteWord was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input vocabulary.DeleteWordInput
	}{Ctx: ctx, Input: input}
	mock.lockDeleteWord.Lock()
	mock.calls.DeleteWord = append(mock.calls.DeleteWord, callInfo)
	mock.lockDeleteWord.Unlock()
	return mock.DeleteWordFunc(ctx, input)
}

func (mock *vocabularyServiceMock) DeleteWordCalls() []struct {
	Ctx   context.Context
	Input vocabulary.DeleteWordInput
} {
	mock.lockDeleteWord.RLock()
	defer mock.lockDeleteWord.RUnlock()
	return mock.calls.DeleteWord
}

// ---------------------------------------------------------------------------
// quizServiceMock
// ---------------------------------------------------------------------------

type quizServiceMock struct {
	StartFunc    func(ctx context.Context) (*domain.VocabularyEntry, error)
	QuestionFunc func(e *domain.VocabularyEntry) string
	HintFunc     func(ctx context.Context) (*quiz.HintResult, error)
	AnswerFunc   func(ctx context.Context, answer string) (*quiz.AnswerResult, error)

	calls struct {
		Answer []struct {
			Ctx    context.Context
			Answer string
		}
	}
	lockAnswer sync.RWMutex
}

func (mock *quizServiceMock) Start(ctx context.Context) (*domain.VocabularyEntry, error) {
	if mock.StartFunc == nil {
		panic("quizServiceMock.StartFunc: method is nil but quizService.Start was just called")
	}
	return mock.StartFunc(ctx)
}

func (mock *quizServiceMock) Question(e *domain.VocabularyEntry) string {
	if mock.QuestionFunc == nil {
		panic("quizServiceMock.QuestionFunc: method is nil but quizService.Question was just called")
	}
	return mock.QuestionFunc(e)
}

func (mock *quizServiceMock) Hint(ctx context.Context) (*quiz.HintResult, error) {
	if mock.HintFunc == nil {
		panic("quizServiceMock.HintFunc: method is nil but quizService.Hint was just called")
	}
	return mock.HintFunc(ctx)
}

func (mock *quizServiceMock) Answer(ctx context.Context, answer string) (*quiz.AnswerResult, error) {
	if mock.AnswerFunc == nil {
		panic("quizServiceMock.AnswerFunc: method is nil but quizService.Answer was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Answer string
	}{Ctx: ctx, Answer: answer}
	mock.lockAnswer.Lock()
	mock.calls.Answer = append(mock.calls.Answer, callInfo)
	mock.lockAnswer.Unlock()
	return mock.AnswerFunc(ctx, answer)
}

func (mock *quizServiceMock) AnswerCalls() []struct {
	Ctx    context.Context
	Answer string
} {
	mock.lockAnswer.RLock()
	defer mock.lockAnswer.RUnlock()
	return mock.calls.Answer
}
