// Package userword implements the per-user word status ledger repository.
package userword

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/wordtrail-backend/internal/adapter/postgres"
	"github.com/heartmarshall/wordtrail-backend/internal/domain"
)

// Repo provides status ledger persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new user word repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

var qb = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

const ledgerColumns = "user_id, word_id, word_status, created_at, updated_at"

// Get returns the ledger entry for a (user, word) pair.
func (r *Repo) Get(ctx context.Context, userID, wordID uuid.UUID) (*domain.UserWord, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	query, args, err := qb.
		Select("user_id", "word_id", "word_status", "created_at", "updated_at").
		From("users_words").
		Where(squirrel.Eq{"user_id": userID, "word_id": wordID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get ledger entry query: %w", err)
	}

	var uw domain.UserWord
	if err := pgxscan.Get(ctx, querier, &uw, query, args...); err != nil {
		return nil, postgres.MapError(err, "ledger entry", wordID)
	}

	return &uw, nil
}

// Create inserts a new ledger entry. An existing pair returns ErrAlreadyExists;
// an unknown word returns ErrInvalidReference.
func (r *Repo) Create(ctx context.Context, userID, wordID uuid.UUID, status domain.WordStatus) (*domain.UserWord, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	query, args, err := qb.
		Insert("users_words").
		Columns("user_id", "word_id", "word_status").
		Values(userID, wordID, status).
		Suffix("RETURNING " + ledgerColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create ledger entry query: %w", err)
	}

	var uw domain.UserWord
	if err := pgxscan.Get(ctx, querier, &uw, query, args...); err != nil {
		return nil, postgres.MapError(err, "ledger entry", wordID)
	}

	return &uw, nil
}

// Update changes the status of an existing ledger entry. Never creates;
// a missing pair returns ErrNotFound.
func (r *Repo) Update(ctx context.Context, userID, wordID uuid.UUID, status domain.WordStatus) (*domain.UserWord, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	query, args, err := qb.
		Update("users_words").
		Set("word_status", status).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"user_id": userID, "word_id": wordID}).
		Suffix("RETURNING " + ledgerColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update ledger entry query: %w", err)
	}

	var uw domain.UserWord
	if err := pgxscan.Get(ctx, querier, &uw, query, args...); err != nil {
		return nil, postgres.MapError(err, "ledger entry", wordID)
	}

	return &uw, nil
}
