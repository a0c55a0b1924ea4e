package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/wordtrail-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedLanguage ensures a language row exists. Languages are shared across
// parallel tests, so the insert is idempotent.
func SeedLanguage(t *testing.T, pool *pgxpool.Pool, id, name, tsConfig string) domain.Language {
	t.Helper()
	ctx := context.Background()

	_, err := pool.Exec(ctx,
		`INSERT INTO languages (id, name, ts_config) VALUES ($1, $2, $3)
		 ON CONFLICT (id) DO NOTHING`,
		id, name, tsConfig,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedLanguage insert: %v", err)
	}

	return domain.Language{ID: id, Name: name, TSConfig: tsConfig}
}

// SeedGerman ensures the "de" language exists and returns it.
func SeedGerman(t *testing.T, pool *pgxpool.Pool) domain.Language {
	t.Helper()
	return SeedLanguage(t, pool, "de", "German", "german")
}

// SeedWord creates a word in the given language. The surface form gets a
// unique suffix unless the caller passes a non-empty word.
func SeedWord(t *testing.T, pool *pgxpool.Pool, languageID, word string) domain.Word {
	t.Helper()
	ctx := context.Background()

	if word == "" {
		word = "wort" + uniqueSuffix()
	}

	w := domain.Word{
		ID:         uuid.New(),
		LanguageID: languageID,
		Word:       word,
		CreatedAt:  time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO words (id, language_id, word, ts_config, created_at)
		 VALUES ($1, $2, $3, (SELECT ts_config FROM languages WHERE id = $2)::regconfig, $4)`,
		w.ID, w.LanguageID, w.Word, w.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedWord insert: %v", err)
	}

	return w
}

// SeedUserWord tracks an existing word for a user with the given status.
func SeedUserWord(t *testing.T, pool *pgxpool.Pool, userID, wordID uuid.UUID, status domain.WordStatus) domain.UserWord {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	uw := domain.UserWord{
		UserID:    userID,
		WordID:    wordID,
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users_words (user_id, word_id, word_status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		uw.UserID, uw.WordID, uw.Status, uw.CreatedAt, uw.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUserWord insert: %v", err)
	}

	return uw
}

// SeedText creates a text owned by userID in the given language.
func SeedText(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, languageID, body string) domain.Text {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	author := "Author " + suffix
	text := domain.Text{
		ID:         uuid.New(),
		UserID:     userID,
		LanguageID: languageID,
		Title:      "Title " + suffix,
		Author:     &author,
		Body:       body,
		CreatedAt:  time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO texts (id, user_id, language_id, title, author, body, ts_config, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, (SELECT ts_config FROM languages WHERE id = $3)::regconfig, $7)`,
		text.ID, text.UserID, text.LanguageID, text.Title, text.Author, text.Body, text.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedText insert: %v", err)
	}

	return text
}
