// Package word implements the Word registry repository using PostgreSQL.
// Words carry generated tsquery columns (simple and language-specific), so
// occurrence matching is a pure SQL containment test against text tsvectors.
package word

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/wordtrail-backend/internal/adapter/postgres"
	"github.com/heartmarshall/wordtrail-backend/internal/domain"
)

// Repo provides word persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new word repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

var qb = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// ---------------------------------------------------------------------------
// Raw SQL
// ---------------------------------------------------------------------------

// createSQL copies the language's ts_config into the row at insert time; the
// generated tsquery columns derive from it. A missing language makes the
// subselect NULL, which trips the NOT NULL constraint on ts_config.
const createSQL = `
INSERT INTO words (id, language_id, word, ts_config)
VALUES ($1, $2, $3, (SELECT ts_config FROM languages WHERE id = $2)::regconfig)
RETURNING id, language_id, word, created_at`

const listTrackedSQL = `
SELECT w.id, w.language_id, w.word, w.created_at
FROM words w
JOIN users_words uw ON uw.word_id = w.id
WHERE uw.user_id = $1 AND w.language_id = $2
ORDER BY w.id`

// Occurrence matching. Both sides of @@ use the same tokenization variant:
// either the generic 'simple' config or the language config copied into the
// rows at insert time.
const findInTextSimpleSQL = `
SELECT w.id, w.language_id, w.word, w.created_at
FROM words w
JOIN users_words uw ON uw.word_id = w.id
JOIN texts t ON t.language_id = w.language_id
WHERE uw.user_id = $1
  AND t.id = $2
  AND w.tsquery_simple @@ t.tsvector_simple
ORDER BY w.id`

const findInTextLanguageSQL = `
SELECT w.id, w.language_id, w.word, w.created_at
FROM words w
JOIN users_words uw ON uw.word_id = w.id
JOIN texts t ON t.language_id = w.language_id
WHERE uw.user_id = $1
  AND t.id = $2
  AND w.tsquery_language @@ t.tsvector_language
ORDER BY w.id`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a word by id.
func (r *Repo) GetByID(ctx context.Context, wordID uuid.UUID) (*domain.Word, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	query, args, err := qb.
		Select("id", "language_id", "word", "created_at").
		From("words").
		Where(squirrel.Eq{"id": wordID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get word query: %w", err)
	}

	var w domain.Word
	if err := pgxscan.Get(ctx, querier, &w, query, args...); err != nil {
		return nil, postgres.MapError(err, "word", wordID)
	}

	return &w, nil
}

// FindInLanguage returns the word with the given surface form in a language,
// or ErrNotFound. The surface form must already be normalized.
func (r *Repo) FindInLanguage(ctx context.Context, languageID, word string) (*domain.Word, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	query, args, err := qb.
		Select("id", "language_id", "word", "created_at").
		From("words").
		Where(squirrel.Eq{"language_id": languageID, "word": word}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build find word query: %w", err)
	}

	var w domain.Word
	if err := pgxscan.Get(ctx, querier, &w, query, args...); err != nil {
		return nil, postgres.MapError(err, "word", word)
	}

	return &w, nil
}

// ListTracked returns every word in the language that has a status ledger
// entry for the user, ordered by word id.
func (r *Repo) ListTracked(ctx context.Context, userID uuid.UUID, languageID string) ([]domain.Word, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	var words []domain.Word
	if err := pgxscan.Select(ctx, querier, &words, listTrackedSQL, userID, languageID); err != nil {
		return nil, fmt.Errorf("list tracked words: %w", err)
	}

	if words == nil {
		words = []domain.Word{}
	}

	return words, nil
}

// FindInText returns the user's tracked words whose search key matches the
// text's lexical index, ordered by word id. useLanguage selects the
// language-specific tokenization variant instead of the generic one.
// An empty result is a valid empty slice.
func (r *Repo) FindInText(ctx context.Context, userID, textID uuid.UUID, useLanguage bool) ([]domain.Word, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	sql := findInTextSimpleSQL
	if useLanguage {
		sql = findInTextLanguageSQL
	}

	var words []domain.Word
	if err := pgxscan.Select(ctx, querier, &words, sql, userID, textID); err != nil {
		return nil, fmt.Errorf("find words in text: %w", err)
	}

	if words == nil {
		words = []domain.Word{}
	}

	return words, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new word. Returns ErrAlreadyExists when the (language, word)
// pair is taken and ErrInvalidReference when the language is unknown.
func (r *Repo) Create(ctx context.Context, languageID, word string) (*domain.Word, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	var w domain.Word
	if err := pgxscan.Get(ctx, querier, &w, createSQL, uuid.New(), languageID, word); err != nil {
		return nil, postgres.MapError(err, "word", word)
	}

	return &w, nil
}

// Delete removes a word and returns the removed row. Ledger entries cascade.
func (r *Repo) Delete(ctx context.Context, wordID uuid.UUID) (*domain.Word, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	query, args, err := qb.
		Delete("words").
		Where(squirrel.Eq{"id": wordID}).
		Suffix("RETURNING id, language_id, word, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build delete word query: %w", err)
	}

	var w domain.Word
	if err := pgxscan.Get(ctx, querier, &w, query, args...); err != nil {
		return nil, postgres.MapError(err, "word", wordID)
	}

	return &w, nil
}
