// Package text implements the text store: user-submitted reading material
// indexed for full-text occurrence matching at insert time.
package text

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/wordtrail-backend/internal/domain"
)

type textRepo interface {
	Create(ctx context.Context, userID uuid.UUID, languageID, title string, author *string, body string) (*domain.Text, error)
	GetByID(ctx context.Context, textID uuid.UUID) (*domain.Text, error)
	GetByUser(ctx context.Context, userID uuid.UUID) ([]domain.Text, error)
	GetAll(ctx context.Context) ([]domain.Text, error)
	Delete(ctx context.Context, textID uuid.UUID) (*domain.Text, error)
}

type languageRepo interface {
	GetByID(ctx context.Context, languageID string) (*domain.Language, error)
}

// Service provides text store operations.
type Service struct {
	texts     textRepo
	languages languageRepo
	log       *slog.Logger
}

// NewService creates a new Text service.
func NewService(log *slog.Logger, texts textRepo, languages languageRepo) *Service {
	return &Service{
		texts:     texts,
		languages: languages,
		log:       log.With("service", "text"),
	}
}
