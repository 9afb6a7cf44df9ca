package quiz

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/vocab-line-bot/internal/domain"
)

var _ entryRepo = &entryRepoMock{}

type entryRepoMock struct {
	PickForQuizFunc  func(ctx context.Context, userID string, policy domain.QuizPolicy) (*domain.VocabularyEntry, error)
	MarkQuizzedFunc  func(ctx context.Context, id uuid.UUID, at time.Time) error
	MarkMasteredFunc func(ctx context.Context, id uuid.UUID, at time.Time) error

	calls struct {
		PickForQuiz []struct {
			Ctx    context.Context
			UserID string
			Policy domain.QuizPolicy
		}
		MarkQuizzed []struct {
			Ctx context.Context
			ID  uuid.UUID
			At  time.Time
		}
		MarkMastered []struct {
			Ctx context.Context
			ID  uuid.UUID
			At  time.Time
		}
	}
	lockPickForQuiz  sync.RWMutex
	lockMarkQuizzed  sync.RWMutex
	lockMarkMastered sync.RWMutex
}

func (mock *entryRepoMock) PickForQuiz(ctx context.Context, userID string, policy domain.QuizPolicy) (*domain.VocabularyEntry, error) {
	if mock.PickForQuizFunc == nil {
		panic("entryRepoMock.PickForQuizFunc: method is nil but entryRepo.PickForQuiz was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID string
		Policy domain.QuizPolicy
	}{Ctx: ctx, UserID: userID, Policy: policy}
	mock.lockPickForQuiz.Lock()
	mock.calls.PickForQuiz = append(mock.calls.PickForQuiz, callInfo)
	mock.lockPickForQuiz.Unlock()
	return mock.PickForQuizFunc(ctx, userID, policy)
}

func (mock *entryRepoMock) PickForQuizCalls() []struct {
	Ctx    context.Context
	UserID string
	Policy domain.QuizPolicy
} {
	mock.lockPickForQuiz.RLock()
	calls := mock.calls.PickForQuiz
	mock.lockPickForQuiz.RUnlock()
	return calls
}

func (mock *entryRepoMock) MarkQuizzed(ctx context.Context, id uuid.UUID, at time.Time) error {
	if mock.MarkQuizzedFunc == nil {
		panic("entryRepoMock.MarkQuizzedFunc: method is nil but entryRepo.MarkQuizzed was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
		At  time.Time
	}{Ctx: ctx, ID: id, At: at}
	mock.lockMarkQuizzed.Lock()
	mock.calls.MarkQuizzed = append(mock.calls.MarkQuizzed, callInfo)
	mock.lockMarkQuizzed.Unlock()
	return mock.MarkQuizzedFunc(ctx, id, at)
}

func (mock *entryRepoMock) MarkQuizzedCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
	At  time.Time
} {
	mock.lockMarkQuizzed.RLock()
	calls := mock.calls.MarkQuizzed
	mock.lockMarkQuizzed.RUnlock()
	return calls
}

func (mock *entryRepoMock) MarkMastered(ctx context.Context, id uuid.UUID, at time.Time) error {
	if mock.MarkMasteredFunc == nil {
		panic("entryRepoMock.MarkMasteredFunc: method is nil but entryRepo.MarkMastered was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
		At  time.Time
	}{Ctx: ctx, ID: id, At: at}
	mock.lockMarkMastered.Lock()
	mock.calls.MarkMastered = append(mock.calls.MarkMastered, callInfo)
	mock.lockMarkMastered.Unlock()
	return mock.MarkMasteredFunc(ctx, id, at)
}

func (mock *entryRepoMock) MarkMasteredCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
	At  time.Time
} {
	mock.lockMarkMastered.RLock()
	calls := mock.calls.MarkMastered
	mock.lockMarkMastered.RUnlock()
	return calls
}

var _ sessionRepo = &sessionRepoMock{}

type sessionRepoMock struct {
	OpenFunc         func(ctx context.Context, s domain.QuizSession) error
	GetPendingFunc   func(ctx context.Context, userID string) (*domain.PendingQuiz, error)
	MarkHintUsedFunc func(ctx context.Context, userID string) (bool, error)
	CloseFunc        func(ctx context.Context, userID string, entryID uuid.UUID, askedAt time.Time) error

	calls struct {
		Open []struct {
			Ctx context.Context
			S   domain.QuizSession
		}
		GetPending []struct {
			Ctx    context.Context
			UserID string
		}
		MarkHintUsed []struct {
			Ctx    context.Context
			UserID string
		}
		Close []struct {
			Ctx     context.Context
			UserID  string
			EntryID uuid.UUID
			AskedAt time.Time
		}
	}
	lockOpen         sync.RWMutex
	lockGetPending   sync.RWMutex
	lockMarkHintUsed sync.RWMutex
	lockClose        sync.RWMutex
}

func (mock *sessionRepoMock) Open(ctx context.Context, s domain.QuizSession) error {
	if mock.OpenFunc == nil {
		panic("sessionRepoMock.OpenFunc: method is nil but sessionRepo.Open was just called")
	}
	callInfo := struct {
		Ctx context.Context
		S   domain.QuizSession
	}{Ctx: ctx, S: s}
	mock.lockOpen.Lock()
	mock.calls.Open = append(mock.calls.Open, callInfo)
	mock.lockOpen.Unlock()
	return mock.OpenFunc(ctx, s)
}

func (mock *sessionRepoMock) OpenCalls() []struct {
	Ctx context.Context
	S   domain.QuizSession
} {
	mock.lockOpen.RLock()
	calls := mock.calls.Open
	mock.lockOpen.RUnlock()
	return calls
}

func (mock *sessionRepoMock) GetPending(ctx context.Context, userID string) (*domain.PendingQuiz, error) {
	if mock.GetPendingFunc == nil {
		panic("sessionRepoMock.GetPendingFunc: method is nil but sessionRepo.GetPending was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID string
	}{Ctx: ctx, UserID: userID}
	mock.lockGetPending.Lock()
	mock.calls.GetPending = append(mock.calls.GetPending, callInfo)
	mock.lockGetPending.Unlock()
	return mock.GetPendingFunc(ctx, userID)
}

func (mock *sessionRepoMock) GetPendingCalls() []struct {
	Ctx    context.Context
	UserID string
} {
	mock.lockGetPending.RLock()
	calls := mock.calls.GetPending
	mock.lockGetPending.RUnlock()
	return calls
}

func (mock *sessionRepoMock) MarkHintUsed(ctx context.Context, userID string) (bool, error) {
	if mock.MarkHintUsedFunc == nil {
		panic("sessionRepoMock.MarkHintUsedFunc: method is nil but sessionRepo.MarkHintUsed was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID string
	}{Ctx: ctx, UserID: userID}
	mock.lockMarkHintUsed.Lock()
	mock.calls.MarkHintUsed = append(mock.calls.MarkHintUsed, callInfo)
	mock.lockMarkHintUsed.Unlock()
	return mock.MarkHintUsedFunc(ctx, userID)
}

func (mock *sessionRepoMock) MarkHintUsedCalls() []struct {
	Ctx    context.Context
	UserID string
} {
	mock.lockMarkHintUsed.RLock()
	calls := mock.calls.MarkHintUsed
	mock.lockMarkHintUsed.RUnlock()
	return calls
}

func (mock *sessionRepoMock) Close(ctx context.Context, userID string, entryID uuid.UUID, askedAt time.Time) error {
	if mock.CloseFunc == nil {
		panic("sessionRepoMock.CloseFunc: method is nil but sessionRepo.Close was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		UserID  string
		EntryID uuid.UUID
		AskedAt time.Time
	}{Ctx: ctx, UserID: userID, EntryID: entryID, AskedAt: askedAt}
	mock.lockClose.Lock()
	mock.calls.Close = append(mock.calls.Close, callInfo)
	mock.lockClose.Unlock()
	return mock.CloseFunc(ctx, userID, entryID, askedAt)
}

func (mock *sessionRepoMock) CloseCalls() []struct {
	Ctx     context.Context
	UserID  string
	EntryID uuid.UUID
	AskedAt time.Time
} {
	mock.lockClose.RLock()
	calls := mock.calls.Close
	mock.lockClose.RUnlock()
	return calls
}

var _ logRepo = &logRepoMock{}

type logRepoMock struct {
	CreateFunc func(ctx context.Context, l *domain.InteractionLog) (*domain.InteractionLog, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			L   *domain.InteractionLog
		}
	}
	lockCreate sync.RWMutex
}

func (mock *logRepoMock) Create(ctx context.Context, l *domain.InteractionLog) (*domain.InteractionLog, error) {
	if mock.CreateFunc == nil {
		panic("logRepoMock.CreateFunc: method is nil but logRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		L   *domain.InteractionLog
	}{Ctx: ctx, L: l}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, l)
}

func (mock *logRepoMock) CreateCalls() []struct {
	Ctx context.Context
	L   *domain.InteractionLog
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

var _ learnerRepo = &learnerRepoMock{}

type learnerRepoMock struct {
	AddScoreFunc func(ctx context.Context, userID string, delta int) (int, error)
	ListIDsFunc  func(ctx context.Context) ([]string, error)

	calls struct {
		AddScore []struct {
			Ctx    context.Context
			UserID string
			Delta  int
		}
		ListIDs []struct {
			Ctx context.Context
		}
	}
	lockAddScore sync.RWMutex
	lockListIDs  sync.RWMutex
}

func (mock *learnerRepoMock) AddScore(ctx context.Context, userID string, delta int) (int, error) {
	if mock.AddScoreFunc == nil {
		panic("learnerRepoMock.AddScoreFunc: method is nil but learnerRepo.AddScore was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID string
		Delta  int
	}{Ctx: ctx, UserID: userID, Delta: delta}
	mock.lockAddScore.Lock()
	mock.calls.AddScore = append(mock.calls.AddScore, callInfo)
	mock.lockAddScore.Unlock()
	return mock.AddScoreFunc(ctx, userID, delta)
}

func (mock *learnerRepoMock) AddScoreCalls() []struct {
	Ctx    context.Context
	UserID string
	Delta  int
} {
	mock.lockAddScore.RLock()
	calls := mock.calls.AddScore
	mock.lockAddScore.RUnlock()
	return calls
}

func (mock *learnerRepoMock) ListIDs(ctx context.Context) ([]string, error) {
	if mock.ListIDsFunc == nil {
		panic("learnerRepoMock.ListIDsFunc: method is nil but learnerRepo.ListIDs was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockListIDs.Lock()
	mock.calls.ListIDs = append(mock.calls.ListIDs, callInfo)
	mock.lockListIDs.Unlock()
	return mock.ListIDsFunc(ctx)
}

func (mock *learnerRepoMock) ListIDsCalls() []struct {
	Ctx context.Context
} {
	mock.lockListIDs.RLock()
	calls := mock.calls.ListIDs
	mock.lockListIDs.RUnlock()
	return calls
}

var _ grader = &graderMock{}

type graderMock struct {
	GradeFunc func(ctx context.Context, req domain.GradeRequest) (domain.GradeResult, error)

	calls struct {
		Grade []struct {
			Ctx context.Context
			Req domain.GradeRequest
		}
	}
	lockGrade sync.RWMutex
}

func (mock *graderMock) Grade(ctx context.Context, req domain.GradeRequest) (domain.GradeResult, error) {
	if mock.GradeFunc == nil {
		panic("graderMock.GradeFunc: method is nil but grader.Grade was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Req domain.GradeRequest
	}{Ctx: ctx, Req: req}
	mock.lockGrade.Lock()
	mock.calls.Grade = append(mock.calls.Grade, callInfo)
	mock.lockGrade.Unlock()
	return mock.GradeFunc(ctx, req)
}

func (mock *graderMock) GradeCalls() []struct {
	Ctx context.Context
	Req domain.GradeRequest
} {
	mock.lockGrade.RLock()
	calls := mock.calls.Grade
	mock.lockGrade.RUnlock()
	return calls
}

var _ pusher = &pusherMock{}

type pusherMock struct {
	PushFunc func(ctx context.Context, userID string, text string) error

	calls struct {
		Push []struct {
			Ctx    context.Context
			UserID string
			Text   string
		}
	}
	lockPush sync.RWMutex
}

func (mock *pusherMock) Push(ctx context.Context, userID string, text string) error {
	if mock.PushFunc == nil {
		panic("pusherMock.PushFunc: method is nil but pusher.Push was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID string
		Text   string
	}{Ctx: ctx, UserID: userID, Text: text}
	mock.lockPush.Lock()
	mock.calls.Push = append(mock.calls.Push, callInfo)
	mock.lockPush.Unlock()
	return mock.PushFunc(ctx, userID, text)
}

func (mock *pusherMock) PushCalls() []struct {
	Ctx    context.Context
	UserID string
	Text   string
} {
	mock.lockPush.RLock()
	calls := mock.calls.Push
	mock.lockPush.RUnlock()
	return calls
}

var _ txManager = &txManagerMock{}

// txManagerMock runs fn inline and counts calls; it has no rollback.
type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct {
			Ctx context.Context
		}
	}
	lockRunInTx sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockRunInTx.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, callInfo)
	mock.lockRunInTx.Unlock()
	if mock.RunInTxFunc != nil {
		return mock.RunInTxFunc(ctx, fn)
	}
	return fn(ctx)
}

func (mock *txManagerMock) RunInTxCalls() []struct {
	Ctx context.Context
} {
	mock.lockRunInTx.RLock()
	calls := mock.calls.RunInTx
	mock.lockRunInTx.RUnlock()
	return calls
}
