package vocabulary

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/wordtrail-backend/internal/domain"
)

// RegisterWordInput holds the parameters for registering a word.
type RegisterWordInput struct {
	LanguageID string
	Word       string
}

// Validate checks all fields and collects all errors. The surface form is
// validated after normalization.
func (i RegisterWordInput) Validate() error {
	var errs []domain.FieldError

	if i.LanguageID == "" {
		errs = append(errs, domain.FieldError{Field: "language_id", Message: "required"})
	}

	word := domain.NormalizeWord(i.Word)
	if word == "" {
		errs = append(errs, domain.FieldError{Field: "word", Message: "required"})
	}
	if len(word) > 255 {
		errs = append(errs, domain.FieldError{Field: "word", Message: "max 255 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// StatusInput holds the parameters for setting or updating a ledger entry.
type StatusInput struct {
	WordID uuid.UUID
	Status domain.WordStatus
}

// Validate checks all fields. The status label itself is opaque and only
// required to be non-empty.
func (i StatusInput) Validate() error {
	var errs []domain.FieldError

	if i.WordID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "word_id", Message: "required"})
	}
	if i.Status == "" {
		errs = append(errs, domain.FieldError{Field: "status", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
