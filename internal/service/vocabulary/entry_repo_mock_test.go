package vocabulary

import (
	"context"
	"sync"

	"github.com/heartmarshall/vocab-line-bot/internal/domain"
)

var _ entryRepo = &entryRepoMock{}

type entryRepoMock struct {
	CreateFunc     func(ctx context.Context, e *domain.VocabularyEntry) (*domain.VocabularyEntry, error)
	SoftDeleteFunc func(ctx context.Context, userID, wordNormalized string) (*domain.VocabularyEntry, error)
	ListRecentFunc func(ctx context.Context, userID string, limit int) ([]domain.VocabularyEntry, error)

	calls struct {
		Create []struct {
			Ctx   context.Context
			Entry *domain.VocabularyEntry
		}
		SoftDelete []struct {
			Ctx            context.Context
			UserID         string
			WordNormalized string
		}
		ListRecent []struct {
			Ctx    context.Context
			UserID string
			Limit  int
		}
	}
	lockCreate     sync.RWMutex
	lockSoftDelete sync.RWMutex
	lockListRecent sync.RWMutex
}

func (mock *entryRepoMock) Create(ctx context.Context, e *domain.VocabularyEntry) (*domain.VocabularyEntry, error) {
	if mock.CreateFunc == nil {
		panic("entryRepoMock.CreateFunc: method is nil but entryRepo.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Entry *domain.VocabularyEntry
	}{Ctx: ctx, Entry: e}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, e)
}

func (mock *entryRepoMock) CreateCalls() []struct {
	Ctx   context.Context
	Entry *domain.VocabularyEntry
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *entryRepoMock) SoftDelete(ctx context.Context, userID, wordNormalized string) (*domain.VocabularyEntry, error) {
	if mock.SoftDeleteFunc == nil {
		panic("entryRepoMock.SoftDeleteFunc: method is nil but entryRepo.SoftDelete was just called")
	}
	callInfo := struct {
		Ctx            context.Context
		UserID         string
		WordNormalized string
	}{Ctx: ctx, UserID: userID, WordNormalized: wordNormalized}
	mock.lockSoftDelete.Lock()
	mock.calls.SoftDelete = append(mock.calls.SoftDelete, callInfo)
	mock.lockSoftDelete.Unlock()
	return mock.SoftDeleteFunc(ctx, userID, wordNormalized)
}

func (mock *entryRepoMock) SoftDeleteCalls() []struct {
	Ctx            context.Context
	UserID         string
	WordNormalized string
} {
	mock.lockSoftDelete.RLock()
	calls := mock.calls.SoftDelete
	mock.lockSoftDelete.RUnlock()
	return calls
}

func (mock *entryRepoMock) ListRecent(ctx context.Context, userID string, limit int) ([]domain.VocabularyEntry, error) {
	if mock.ListRecentFunc == nil {
		panic("entryRepoMock.ListRecentFunc: method is nil but entryRepo.ListRecent was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID string
		Limit  int
	}{Ctx: ctx, UserID: userID, Limit: limit}
	mock.lockListRecent.Lock()
	mock.calls.ListRecent = append(mock.calls.ListRecent, callInfo)
	mock.lockListRecent.Unlock()
	return mock.ListRecentFunc(ctx, userID, limit)
}

func (mock *entryRepoMock) ListRecentCalls() []struct {
	Ctx    context.Context
	UserID string
	Limit  int
} {
	mock.lockListRecent.RLock()
	calls := mock.calls.ListRecent
	mock.lockListRecent.RUnlock()
	return calls
}

var _ wordLookup = &wordLookupMock{}

type wordLookupMock struct {
	LookupWordFunc func(ctx context.Context, word string) (domain.WordLookup, error)

	calls struct {
		LookupWord []struct {
			Ctx  context.Context
			Word string
		}
	}
	lockLookupWord sync.RWMutex
}

func (mock *wordLookupMock) LookupWord(ctx context.Context, word string) (domain.WordLookup, error) {
	if mock.LookupWordFunc == nil {
		panic("wordLookupMock.LookupWordFunc: method is nil but wordLookup.LookupWord was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Word string
	}{Ctx: ctx, Word: word}
	mock.lockLookupWord.Lock()
	mock.calls.LookupWord = append(mock.calls.LookupWord, callInfo)
	mock.lockLookupWord.Unlock()
	return mock.LookupWordFunc(ctx, word)
}

func (mock *wordLookupMock) LookupWordCalls() []struct {
	Ctx  context.Context
	Word string
} {
	mock.lockLookupWord.RLock()
	calls := mock.calls.LookupWord
	mock.lockLookupWord.RUnlock()
	return calls
}
