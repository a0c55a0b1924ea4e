package text

import (
	"context"

	"github.com/google/uuid"

	"github.com/heartmarshall/wordtrail-backend/internal/domain"
)

var (
	_ textRepo     = &textRepoMock{}
	_ languageRepo = &languageRepoMock{}
)

type textRepoMock struct {
	CreateFunc    func(ctx context.Context, userID uuid.UUID, languageID, title string, author *string, body string) (*domain.Text, error)
	GetByIDFunc   func(ctx context.Context, textID uuid.UUID) (*domain.Text, error)
	GetByUserFunc func(ctx context.Context, userID uuid.UUID) ([]domain.Text, error)
	GetAllFunc    func(ctx context.Context) ([]domain.Text, error)
	DeleteFunc    func(ctx context.Context, textID uuid.UUID) (*domain.Text, error)
}

func (m *textRepoMock) Create(ctx context.Context, userID uuid.UUID, languageID, title string, author *string, body string) (*domain.Text, error) {
	if m.CreateFunc == nil {
		panic("textRepoMock.CreateFunc is nil")
	}
	return m.CreateFunc(ctx, userID, languageID, title, author, body)
}

func (m *textRepoMock) GetByID(ctx context.Context, textID uuid.UUID) (*domain.Text, error) {
	if m.GetByIDFunc == nil {
		panic("textRepoMock.GetByIDFunc is nil")
	}
	return m.GetByIDFunc(ctx, textID)
}

func (m *textRepoMock) GetByUser(ctx context.Context, userID uuid.UUID) ([]domain.Text, error) {
	if m.GetByUserFunc == nil {
		panic("textRepoMock.GetByUserFunc is nil")
	}
	return m.GetByUserFunc(ctx, userID)
}

func (m *textRepoMock) GetAll(ctx context.Context) ([]domain.Text, error) {
	if m.GetAllFunc == nil {
		panic("textRepoMock.GetAllFunc is nil")
	}
	return m.GetAllFunc(ctx)
}

func (m *textRepoMock) Delete(ctx context.Context, textID uuid.UUID) (*domain.Text, error) {
	if m.DeleteFunc == nil {
		panic("textRepoMock.DeleteFunc is nil")
	}
	return m.DeleteFunc(ctx, textID)
}

type languageRepoMock struct {
	GetByIDFunc func(ctx context.Context, languageID string) (*domain.Language, error)
}

func (m *languageRepoMock) GetByID(ctx context.Context, languageID string) (*domain.Language, error) {
	if m.GetByIDFunc == nil {
		panic("languageRepoMock.GetByIDFunc is nil")
	}
	return m.GetByIDFunc(ctx, languageID)
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
