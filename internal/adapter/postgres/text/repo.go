// Package text implements the Text store repository using PostgreSQL.
// Texts carry generated tsvector columns (simple and language-specific)
// computed from the body at insert time.
package text

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/wordtrail-backend/internal/adapter/postgres"
	"github.com/heartmarshall/wordtrail-backend/internal/domain"
)

// Repo provides text persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new text repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

var qb = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// createSQL copies the language's ts_config into the row; the generated
// tsvector columns derive from it. A missing language makes the subselect
// NULL, which trips the NOT NULL constraint on ts_config.
const createSQL = `
INSERT INTO texts (id, user_id, language_id, title, author, body, ts_config)
VALUES ($1, $2, $3, $4, $5, $6, (SELECT ts_config FROM languages WHERE id = $3)::regconfig)
RETURNING id, user_id, language_id, title, author, body, created_at`

// Create inserts a new text. Returns ErrInvalidReference when the language
// is unknown.
func (r *Repo) Create(ctx context.Context, userID uuid.UUID, languageID, title string, author *string, body string) (*domain.Text, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	var t domain.Text
	if err := pgxscan.Get(ctx, querier, &t, createSQL, uuid.New(), userID, languageID, title, author, body); err != nil {
		return nil, postgres.MapError(err, "text", title)
	}

	return &t, nil
}

// GetByID returns a text by id.
func (r *Repo) GetByID(ctx context.Context, textID uuid.UUID) (*domain.Text, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	query, args, err := qb.
		Select("id", "user_id", "language_id", "title", "author", "body", "created_at").
		From("texts").
		Where(squirrel.Eq{"id": textID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get text query: %w", err)
	}

	var t domain.Text
	if err := pgxscan.Get(ctx, querier, &t, query, args...); err != nil {
		return nil, postgres.MapError(err, "text", textID)
	}

	return &t, nil
}

// GetByUser returns all texts owned by a user, ordered by id.
func (r *Repo) GetByUser(ctx context.Context, userID uuid.UUID) ([]domain.Text, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	query, args, err := qb.
		Select("id", "user_id", "language_id", "title", "author", "body", "created_at").
		From("texts").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list texts query: %w", err)
	}

	var texts []domain.Text
	if err := pgxscan.Select(ctx, querier, &texts, query, args...); err != nil {
		return nil, fmt.Errorf("list texts by user: %w", err)
	}

	if texts == nil {
		texts = []domain.Text{}
	}

	return texts, nil
}

// GetAll returns every stored text, ordered by id.
func (r *Repo) GetAll(ctx context.Context) ([]domain.Text, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	query, args, err := qb.
		Select("id", "user_id", "language_id", "title", "author", "body", "created_at").
		From("texts").
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list all texts query: %w", err)
	}

	var texts []domain.Text
	if err := pgxscan.Select(ctx, querier, &texts, query, args...); err != nil {
		return nil, fmt.Errorf("list all texts: %w", err)
	}

	if texts == nil {
		texts = []domain.Text{}
	}

	return texts, nil
}

// Delete removes a text and returns the removed row.
func (r *Repo) Delete(ctx context.Context, textID uuid.UUID) (*domain.Text, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	query, args, err := qb.
		Delete("texts").
		Where(squirrel.Eq{"id": textID}).
		Suffix("RETURNING id, user_id, language_id, title, author, body, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build delete text query: %w", err)
	}

	var t domain.Text
	if err := pgxscan.Get(ctx, querier, &t, query, args...); err != nil {
		return nil, postgres.MapError(err, "text", textID)
	}

	return &t, nil
}
