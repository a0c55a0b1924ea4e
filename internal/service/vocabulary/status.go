package vocabulary

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/wordtrail-backend/internal/domain"
	"github.com/heartmarshall/wordtrail-backend/pkg/ctxutil"
)

// GetStatus returns the authenticated user's ledger entry for a word.
func (s *Service) GetStatus(ctx context.Context, wordID uuid.UUID) (*domain.UserWord, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if wordID == uuid.Nil {
		return nil, domain.NewValidationError("word_id", "required")
	}

	entry, err := s.userWords.Get(ctx, userID, wordID)
	if err != nil {
		return nil, fmt.Errorf("get ledger entry: %w", err)
	}

	return entry, nil
}

// SetStatus creates the authenticated user's ledger entry for a word.
// Insert-only: an existing (user, word) pair fails with ErrAlreadyExists
// rather than silently overwriting.
func (s *Service) SetStatus(ctx context.Context, input StatusInput) (*domain.UserWord, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var entry *domain.UserWord
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if _, err := s.words.GetByID(ctx, input.WordID); err != nil {
			return fmt.Errorf("get word: %w", err)
		}

		created, err := s.userWords.Create(ctx, userID, input.WordID, input.Status)
		if err != nil {
			// The word existence check above races with word deletion; the FK
			// is the backstop.
			if errors.Is(err, domain.ErrInvalidReference) {
				return fmt.Errorf("word %s: %w", input.WordID, domain.ErrNotFound)
			}
			return fmt.Errorf("create ledger entry: %w", err)
		}

		entry = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "status set",
		slog.String("user_id", userID.String()),
		slog.String("word_id", input.WordID.String()),
		slog.String("status", input.Status),
	)

	return entry, nil
}

// UpdateStatus changes the status in an existing ledger entry. Update-only:
// a missing (user, word) pair fails with ErrNotFound and is never created.
func (s *Service) UpdateStatus(ctx context.Context, input StatusInput) (*domain.UserWord, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	entry, err := s.userWords.Update(ctx, userID, input.WordID, input.Status)
	if err != nil {
		return nil, fmt.Errorf("update ledger entry: %w", err)
	}

	s.log.InfoContext(ctx, "status updated",
		slog.String("user_id", userID.String()),
		slog.String("word_id", input.WordID.String()),
		slog.String("status", input.Status),
	)

	return entry, nil
}

// ListTrackedWords returns every word in the language that has a ledger
// entry for the authenticated user, regardless of status, ordered by word id.
func (s *Service) ListTrackedWords(ctx context.Context, languageID string) ([]domain.Word, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if languageID == "" {
		return nil, domain.NewValidationError("language_id", "required")
	}

	words, err := s.words.ListTracked(ctx, userID, languageID)
	if err != nil {
		return nil, fmt.Errorf("list tracked words: %w", err)
	}

	return words, nil
}
