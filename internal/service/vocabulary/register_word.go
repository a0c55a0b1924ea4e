package vocabulary

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/wordtrail-backend/internal/domain"
	"github.com/heartmarshall/wordtrail-backend/pkg/ctxutil"
)

// RegisterWord registers a (language, surface form) pair. Registration is
// idempotent by content: if the pair already exists, the existing word is
// returned and created is false. Concurrent registrations of the same pair
// are arbitrated by the unique constraint; the loser re-reads the winner's
// row.
func (s *Service) RegisterWord(ctx context.Context, input RegisterWordInput) (word *domain.Word, created bool, err error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, false, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, false, err
	}

	surface := domain.NormalizeWord(input.Word)

	if _, err := s.languages.GetByID(ctx, input.LanguageID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, false, fmt.Errorf("language %s: %w", input.LanguageID, domain.ErrInvalidReference)
		}
		return nil, false, fmt.Errorf("get language: %w", err)
	}

	existing, err := s.words.FindInLanguage(ctx, input.LanguageID, surface)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, false, fmt.Errorf("find word: %w", err)
	}

	word, err = s.words.Create(ctx, input.LanguageID, surface)
	if err != nil {
		// Lost a registration race: another request inserted the pair
		// between the lookup and the insert. Return the winner's row.
		if errors.Is(err, domain.ErrAlreadyExists) {
			existing, findErr := s.words.FindInLanguage(ctx, input.LanguageID, surface)
			if findErr != nil {
				return nil, false, fmt.Errorf("refetch word after conflict: %w", findErr)
			}
			return existing, false, nil
		}
		return nil, false, fmt.Errorf("create word: %w", err)
	}

	s.log.InfoContext(ctx, "word registered",
		slog.String("word_id", word.ID.String()),
		slog.String("language_id", word.LanguageID),
	)

	return word, true, nil
}
