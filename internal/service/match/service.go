// Package match implements occurrence matching: finding which of a user's
// tracked words occur in a stored text. The containment test runs entirely
// inside PostgreSQL against precomputed search keys and lexical indexes.
package match

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/wordtrail-backend/internal/domain"
	"github.com/heartmarshall/wordtrail-backend/pkg/ctxutil"
)

type textRepo interface {
	GetByID(ctx context.Context, textID uuid.UUID) (*domain.Text, error)
}

type wordRepo interface {
	FindInText(ctx context.Context, userID, textID uuid.UUID, useLanguage bool) ([]domain.Word, error)
}

// Service provides occurrence matching.
type Service struct {
	texts textRepo
	words wordRepo
	log   *slog.Logger
}

// NewService creates a new Match service.
func NewService(log *slog.Logger, texts textRepo, words wordRepo) *Service {
	return &Service{
		texts: texts,
		words: words,
		log:   log.With("service", "match"),
	}
}

// FindUserWordsInText returns the authenticated user's tracked words that
// occur in the text, ordered by word id. useLanguageTokenization selects the
// language-specific variant (stemming, stop words) over the generic one;
// both sides of the containment test always use the same variant. No
// matches is a valid empty result, not an error.
func (s *Service) FindUserWordsInText(ctx context.Context, textID uuid.UUID, useLanguageTokenization bool) ([]domain.Word, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if textID == uuid.Nil {
		return nil, domain.NewValidationError("text_id", "required")
	}

	// Resolve the text first so an unknown id fails with ErrNotFound
	// instead of an empty match set.
	if _, err := s.texts.GetByID(ctx, textID); err != nil {
		return nil, fmt.Errorf("get text: %w", err)
	}

	words, err := s.words.FindInText(ctx, userID, textID, useLanguageTokenization)
	if err != nil {
		return nil, fmt.Errorf("find words in text: %w", err)
	}

	s.log.DebugContext(ctx, "matched words in text",
		slog.String("user_id", userID.String()),
		slog.String("text_id", textID.String()),
		slog.Bool("language_tokenization", useLanguageTokenization),
		slog.Int("matches", len(words)),
	)

	return words, nil
}
