package text

import (
	"strings"

	"github.com/heartmarshall/wordtrail-backend/internal/domain"
)

// CreateTextInput holds the parameters for storing a text.
type CreateTextInput struct {
	LanguageID string
	Title      string
	Author     *string
	Body       string
}

// Validate checks all fields and collects all errors.
func (i CreateTextInput) Validate() error {
	var errs []domain.FieldError

	if i.LanguageID == "" {
		errs = append(errs, domain.FieldError{Field: "language_id", Message: "required"})
	}

	title := strings.TrimSpace(i.Title)
	if title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if len(title) > 500 {
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 500 characters"})
	}

	if strings.TrimSpace(i.Body) == "" {
		errs = append(errs, domain.FieldError{Field: "body", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
