package learner

import (
	"context"
	"sync"

	"github.com/heartmarshall/vocab-line-bot/internal/domain"
)

var _ learnerRepo = &learnerRepoMock{}

type learnerRepoMock struct {
	UpsertFunc  func(ctx context.Context, userID string) (*domain.Learner, error)
	GetByIDFunc func(ctx context.Context, userID string) (*domain.Learner, error)

	calls struct {
		Upsert []struct {
			Ctx    context.Context
			UserID string
		}
		GetByID []struct {
			Ctx    context.Context
			UserID string
		}
	}
	lockUpsert  sync.RWMutex
	lockGetByID sync.RWMutex
}

func (mock *learnerRepoMock) Upsert(ctx context.Context, userID string) (*domain.Learner, error) {
	if mock.UpsertFunc == nil {
		panic("learnerRepoMock.UpsertFunc: method is nil but learnerRepo.Upsert was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID string
	}{Ctx: ctx, UserID: userID}
	mock.lockUpsert.Lock()
	mock.calls.Upsert = append(mock.calls.Upsert, callInfo)
	mock.lockUpsert.Unlock()
	return mock.UpsertFunc(ctx, userID)
}

func (mock *learnerRepoMock) UpsertCalls() []struct {
	Ctx    context.Context
	UserID string
} {
	mock.lockUpsert.RLock()
	calls := mock.calls.Upsert
	mock.lockUpsert.RUnlock()
	return calls
}

func (mock *learnerRepoMock) GetByID(ctx context.Context, userID string) (*domain.Learner, error) {
	if mock.GetByIDFunc == nil {
		panic("learnerRepoMock.GetByIDFunc: method is nil but learnerRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID string
	}{Ctx: ctx, UserID: userID}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, userID)
}

func (mock *learnerRepoMock) GetByIDCalls() []struct {
	Ctx    context.Context
	UserID string
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

var _ vocabularyStats = &vocabularyStatsMock{}

type vocabularyStatsMock struct {
	StatsFunc func(ctx context.Context, userID string) (domain.VocabularyStats, error)

	calls struct {
		Stats []struct {
			Ctx    context.Context
			UserID string
		}
	}
	lockStats sync.RWMutex
}

func (mock *vocabularyStatsMock) Stats(ctx context.Context, userID string) (domain.VocabularyStats, error) {
	if mock.StatsFunc == nil {
		panic("vocabularyStatsMock.StatsFunc: method is nil but vocabularyStats.Stats was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID string
	}{Ctx: ctx, UserID: userID}
	mock.lockStats.Lock()
	mock.calls.Stats = append(mock.calls.Stats, callInfo)
	mock.lockStats.Unlock()
	return mock.StatsFunc(ctx, userID)
}

func (mock *vocabularyStatsMock) StatsCalls() []struct {
	Ctx    context.Context
	UserID string
} {
	mock.lockStats.RLock()
	calls := mock.calls.Stats
	mock.lockStats.RUnlock()
	return calls
}

var _ answerStats = &answerStatsMock{}

type answerStatsMock struct {
	CountByUserFunc func(ctx context.Context, userID string) (int, int, error)

	calls struct {
		CountByUser []struct {
			Ctx    context.Context
			UserID string
		}
	}
	lockCountByUser sync.RWMutex
}

func (mock *answerStatsMock) CountByUser(ctx context.Context, userID string) (int, int, error) {
	if mock.CountByUserFunc == nil {
		panic("answerStatsMock.CountByUserFunc: method is nil but answerStats.CountByUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID string
	}{Ctx: ctx, UserID: userID}
	mock.lockCountByUser.Lock()
	mock.calls.CountByUser = append(mock.calls.CountByUser, callInfo)
	mock.lockCountByUser.Unlock()
	return mock.CountByUserFunc(ctx, userID)
}

func (mock *answerStatsMock) CountByUserCalls() []struct {
	Ctx    context.Context
	UserID string
} {
	mock.lockCountByUser.RLock()
	calls := mock.calls.CountByUser
	mock.lockCountByUser.RUnlock()
	return calls
}
