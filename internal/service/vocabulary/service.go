// Package vocabulary implements word registration and the per-user status
// ledger. Words are global (language, surface form) pairs; tracking state
// lives in the ledger keyed by (user, word).
package vocabulary

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/wordtrail-backend/internal/domain"
)

type wordRepo interface {
	GetByID(ctx context.Context, wordID uuid.UUID) (*domain.Word, error)
	FindInLanguage(ctx context.Context, languageID, word string) (*domain.Word, error)
	Create(ctx context.Context, languageID, word string) (*domain.Word, error)
	Delete(ctx context.Context, wordID uuid.UUID) (*domain.Word, error)
	ListTracked(ctx context.Context, userID uuid.UUID, languageID string) ([]domain.Word, error)
}

type userWordRepo interface {
	Get(ctx context.Context, userID, wordID uuid.UUID) (*domain.UserWord, error)
	Create(ctx context.Context, userID, wordID uuid.UUID, status domain.WordStatus) (*domain.UserWord, error)
	Update(ctx context.Context, userID, wordID uuid.UUID, status domain.WordStatus) (*domain.UserWord, error)
}

type languageRepo interface {
	GetByID(ctx context.Context, languageID string) (*domain.Language, error)
	List(ctx context.Context) ([]domain.Language, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides vocabulary tracking operations.
type Service struct {
	words     wordRepo
	userWords userWordRepo
	languages languageRepo
	tx        txManager
	log       *slog.Logger
}

// NewService creates a new Vocabulary service.
func NewService(
	log *slog.Logger,
	words wordRepo,
	userWords userWordRepo,
	languages languageRepo,
	tx txManager,
) *Service {
	return &Service{
		words:     words,
		userWords: userWords,
		languages: languages,
		tx:        tx,
		log:       log.With("service", "vocabulary"),
	}
}

// ListLanguages returns the language reference rows. Public: no identity needed.
func (s *Service) ListLanguages(ctx context.Context) ([]domain.Language, error) {
	return s.languages.List(ctx)
}
