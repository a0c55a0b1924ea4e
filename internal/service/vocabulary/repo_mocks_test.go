package vocabulary

import (
	"context"

	"github.com/google/uuid"

	"github.com/heartmarshall/wordtrail-backend/internal/domain"
)

var (
	_ wordRepo     = &wordRepoMock{}
	_ userWordRepo = &userWordRepoMock{}
	_ languageRepo = &languageRepoMock{}
	_ txManager    = &txManagerMock{}
)

// txManagerMock runs the callback directly, without a transaction.
type txManagerMock struct{}

func (m *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type wordRepoMock struct {
	GetByIDFunc        func(ctx context.Context, wordID uuid.UUID) (*domain.Word, error)
	FindInLanguageFunc func(ctx context.Context, languageID, word string) (*domain.Word, error)
	CreateFunc         func(ctx context.Context, languageID, word string) (*domain.Word, error)
	DeleteFunc         func(ctx context.Context, wordID uuid.UUID) (*domain.Word, error)
	ListTrackedFunc    func(ctx context.Context, userID uuid.UUID, languageID string) ([]domain.Word, error)
}

func (m *wordRepoMock) GetByID(ctx context.Context, wordID uuid.UUID) (*domain.Word, error) {
	if m.GetByIDFunc == nil {
		panic("wordRepoMock.GetByIDFunc is nil")
	}
	return m.GetByIDFunc(ctx, wordID)
}

func (m *wordRepoMock) FindInLanguage(ctx context.Context, languageID, word string) (*domain.Word, error) {
	if m.FindInLanguageFunc == nil {
		panic("wordRepoMock.FindInLanguageFunc is nil")
	}
	return m.FindInLanguageFunc(ctx, languageID, word)
}

func (m *wordRepoMock) Create(ctx context.Context, languageID, word string) (*domain.Word, error) {
	if m.CreateFunc == nil {
		panic("wordRepoMock.CreateFunc is nil")
	}
	return m.CreateFunc(ctx, languageID, word)
}

func (m *wordRepoMock) Delete(ctx context.Context, wordID uuid.UUID) (*domain.Word, error) {
	if m.DeleteFunc == nil {
		panic("wordRepoMock.DeleteFunc is nil")
	}
	return m.DeleteFunc(ctx, wordID)
}

func (m *wordRepoMock) ListTracked(ctx context.Context, userID uuid.UUID, languageID string) ([]domain.Word, error) {
	if m.ListTrackedFunc == nil {
		panic("wordRepoMock.ListTrackedFunc is nil")
	}
	return m.ListTrackedFunc(ctx, userID, languageID)
}

type userWordRepoMock struct {
	GetFunc    func(ctx context.Context, userID, wordID uuid.UUID) (*domain.UserWord, error)
	CreateFunc func(ctx context.Context, userID, wordID uuid.UUID, status domain.WordStatus) (*domain.UserWord, error)
	UpdateFunc func(ctx context.Context, userID, wordID uuid.UUID, status domain.WordStatus) (*domain.UserWord, error)
}

func (m *userWordRepoMock) Get(ctx context.Context, userID, wordID uuid.UUID) (*domain.UserWord, error) {
	if m.GetFunc == nil {
		panic("userWordRepoMock.GetFunc is nil")
	}
	return m.GetFunc(ctx, userID, wordID)
}

func (m *userWordRepoMock) Create(ctx context.Context, userID, wordID uuid.UUID, status domain.WordStatus) (*domain.UserWord, error) {
	if m.CreateFunc == nil {
		panic("userWordRepoMock.CreateFunc is nil")
	}
	return m.CreateFunc(ctx, userID, wordID, status)
}

func (m *userWordRepoMock) Update(ctx context.Context, userID, wordID uuid.UUID, status domain.WordStatus) (*domain.UserWord, error) {
	if m.UpdateFunc == nil {
		panic("userWordRepoMock.UpdateFunc is nil")
	}
	return m.UpdateFunc(ctx, userID, wordID, status)
}

type languageRepoMock struct {
	GetByIDFunc func(ctx context.Context, languageID string) (*domain.Language, error)
	ListFunc    func(ctx context.Context) ([]domain.Language, error)
}

func (m *languageRepoMock) GetByID(ctx context.Context, languageID string) (*domain.Language, error) {
	if m.GetByIDFunc == nil {
		panic("languageRepoMock.GetByIDFunc is nil")
	}
	return m.GetByIDFunc(ctx, languageID)
}

func (m *languageRepoMock) List(ctx context.Context) ([]domain.Language, error) {
	if m.ListFunc == nil {
		panic("languageRepoMock.ListFunc is nil")
	}
	return m.ListFunc(ctx)
}

// german returns a languageRepoMock that knows only "de".
func german() *languageRepoMock {
	return &languageRepoMock{
		GetByIDFunc: func(ctx context.Context, id string) (*domain.Language, error) {
			if id != "de" {
				return nil, domain.ErrNotFound
			}
			return &domain.Language{ID: "de", Name: "German", TSConfig: "german"}, nil
		},
	}
}
