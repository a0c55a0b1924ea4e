package text

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/wordtrail-backend/internal/domain"
	"github.com/heartmarshall/wordtrail-backend/pkg/ctxutil"
)

// CreateText stores a text for the authenticated user. Both lexical indexes
// are computed from the body at insert time, so matching never re-parses
// stored texts.
func (s *Service) CreateText(ctx context.Context, input CreateTextInput) (*domain.Text, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.languages.GetByID(ctx, input.LanguageID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("language %s: %w", input.LanguageID, domain.ErrInvalidReference)
		}
		return nil, fmt.Errorf("get language: %w", err)
	}

	text, err := s.texts.Create(ctx, userID,
		input.LanguageID,
		strings.TrimSpace(input.Title),
		trimOrNil(input.Author),
		input.Body,
	)
	if err != nil {
		return nil, fmt.Errorf("create text: %w", err)
	}

	s.log.InfoContext(ctx, "text created",
		slog.String("text_id", text.ID.String()),
		slog.String("user_id", userID.String()),
		slog.String("language_id", text.LanguageID),
		slog.Int("body_bytes", len(text.Body)),
	)

	return text, nil
}
