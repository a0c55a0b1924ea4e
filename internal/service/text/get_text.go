package text

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/wordtrail-backend/internal/domain"
	"github.com/heartmarshall/wordtrail-backend/pkg/ctxutil"
)

// GetText returns a single text by id. Texts are readable by any
// authenticated user; ownership gates nothing beyond listing.
func (s *Service) GetText(ctx context.Context, textID uuid.UUID) (*domain.Text, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	if textID == uuid.Nil {
		return nil, domain.NewValidationError("text_id", "required")
	}

	text, err := s.texts.GetByID(ctx, textID)
	if err != nil {
		return nil, fmt.Errorf("get text: %w", err)
	}

	return text, nil
}

// ListMyTexts returns the authenticated user's texts, ordered by id.
func (s *Service) ListMyTexts(ctx context.Context) ([]domain.Text, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	texts, err := s.texts.GetByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list texts: %w", err)
	}

	return texts, nil
}

// ListAllTexts returns every stored text, ordered by id.
func (s *Service) ListAllTexts(ctx context.Context) ([]domain.Text, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	texts, err := s.texts.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list all texts: %w", err)
	}

	return texts, nil
}

// RemoveText deletes a text and returns the removed row.
func (s *Service) RemoveText(ctx context.Context, textID uuid.UUID) (*domain.Text, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if textID == uuid.Nil {
		return nil, domain.NewValidationError("text_id", "required")
	}

	text, err := s.texts.Delete(ctx, textID)
	if err != nil {
		return nil, fmt.Errorf("delete text: %w", err)
	}

	s.log.InfoContext(ctx, "text removed",
		slog.String("text_id", text.ID.String()),
		slog.String("user_id", userID.String()),
	)

	return text, nil
}
