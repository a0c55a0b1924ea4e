package vocabulary

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/wordtrail-backend/internal/domain"
	"github.com/heartmarshall/wordtrail-backend/pkg/ctxutil"
)

// RemoveWord deletes a word from the registry and returns the removed row.
// Every user's ledger entry for the word is removed by the cascade.
func (s *Service) RemoveWord(ctx context.Context, wordID uuid.UUID) (*domain.Word, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	if wordID == uuid.Nil {
		return nil, domain.NewValidationError("word_id", "required")
	}

	word, err := s.words.Delete(ctx, wordID)
	if err != nil {
		return nil, fmt.Errorf("delete word: %w", err)
	}

	s.log.InfoContext(ctx, "word removed",
		slog.String("word_id", word.ID.String()),
		slog.String("language_id", word.LanguageID),
	)

	return word, nil
}
