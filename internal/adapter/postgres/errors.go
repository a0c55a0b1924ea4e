package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/wordtrail-backend/internal/domain"
)

// MapError converts pgx/pgconn errors to domain errors. The key identifies
// the affected row in the wrapped message (uuid for words/texts, code for
// languages). context.DeadlineExceeded and context.Canceled are NOT mapped;
// they pass through.
//
// Code 23503 (foreign key) maps to ErrInvalidReference rather than
// ErrNotFound: every foreign key in this schema points at reference data
// (languages) or at a word referenced by a ledger entry, so a violation means
// the caller named an entity that does not exist.
func MapError(err error, entity string, key any) error {
	if err == nil {
		return nil
	}

	// context errors pass through as-is
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %v: %w", entity, key, err)
	}

	// pgx.ErrNoRows → domain.ErrNotFound
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %v: %w", entity, key, domain.ErrNotFound)
	}

	// PgError codes
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return fmt.Errorf("%s %v: %w", entity, key, domain.ErrAlreadyExists)
		case "23503": // foreign_key_violation
			return fmt.Errorf("%s %v: %w", entity, key, domain.ErrInvalidReference)
		case "23502": // not_null_violation (regconfig subselect found no language)
			return fmt.Errorf("%s %v: %w", entity, key, domain.ErrInvalidReference)
		case "23514": // check_violation
			return fmt.Errorf("%s %v: %w", entity, key, domain.ErrValidation)
		}
	}

	// Everything else: wrap with context
	return fmt.Errorf("%s %v: %w", entity, key, err)
}
