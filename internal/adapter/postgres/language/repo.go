// Package language implements the Language repository using PostgreSQL.
// Languages are a small reference table seeded at deploy time; each row
// carries the regconfig used for full-text indexing of that language.
package language

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	postgres "github.com/heartmarshall/wordtrail-backend/internal/adapter/postgres"
	"github.com/heartmarshall/wordtrail-backend/internal/domain"
)

// Repo provides language persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new language repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

var qb = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// GetByID returns a language by its short code (e.g. "de").
func (r *Repo) GetByID(ctx context.Context, id string) (*domain.Language, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	query, args, err := qb.
		Select("id", "name", "ts_config").
		From("languages").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get language query: %w", err)
	}

	var lang domain.Language
	if err := pgxscan.Get(ctx, querier, &lang, query, args...); err != nil {
		return nil, postgres.MapError(err, "language", id)
	}

	return &lang, nil
}

// List returns all known languages ordered by code.
func (r *Repo) List(ctx context.Context) ([]domain.Language, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	query, args, err := qb.
		Select("id", "name", "ts_config").
		From("languages").
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list languages query: %w", err)
	}

	var languages []domain.Language
	if err := pgxscan.Select(ctx, querier, &languages, query, args...); err != nil {
		return nil, fmt.Errorf("list languages: %w", err)
	}

	if languages == nil {
		languages = []domain.Language{}
	}

	return languages, nil
}

// Upsert inserts a language or updates its name and ts_config if the code
// already exists. Used by the seeding tool.
func (r *Repo) Upsert(ctx context.Context, lang domain.Language) error {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	query, args, err := qb.
		Insert("languages").
		Columns("id", "name", "ts_config").
		Values(lang.ID, lang.Name, lang.TSConfig).
		Suffix("ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, ts_config = EXCLUDED.ts_config").
		ToSql()
	if err != nil {
		return fmt.Errorf("build upsert language query: %w", err)
	}

	if _, err := querier.Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "language", lang.ID)
	}

	return nil
}
