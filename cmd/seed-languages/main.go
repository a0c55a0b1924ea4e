// Command seed-languages upserts the language reference rows. Each language
// maps to the PostgreSQL text-search configuration used to index words and
// texts in that language. Safe to re-run: existing rows are updated in place.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/wordtrail-backend/internal/adapter/postgres"
	languagerepo "github.com/heartmarshall/wordtrail-backend/internal/adapter/postgres/language"
	"github.com/heartmarshall/wordtrail-backend/internal/app"
	"github.com/heartmarshall/wordtrail-backend/internal/config"
	"github.com/heartmarshall/wordtrail-backend/internal/domain"
)

// languages must only name text-search configurations that ship with
// PostgreSQL; the generated columns depend on them.
var languages = []domain.Language{
	{ID: "de", Name: "German", TSConfig: "german"},
	{ID: "en", Name: "English", TSConfig: "english"},
	{ID: "es", Name: "Spanish", TSConfig: "spanish"},
	{ID: "fr", Name: "French", TSConfig: "french"},
	{ID: "it", Name: "Italian", TSConfig: "italian"},
	{ID: "nl", Name: "Dutch", TSConfig: "dutch"},
	{ID: "pt", Name: "Portuguese", TSConfig: "portuguese"},
	{ID: "ru", Name: "Russian", TSConfig: "russian"},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	repo := languagerepo.New(pool)

	for _, lang := range languages {
		if err := repo.Upsert(ctx, lang); err != nil {
			logger.Error("seed language",
				slog.String("language_id", lang.ID),
				slog.String("error", err.Error()),
			)
			os.Exit(1)
		}
	}

	logger.Info("languages seeded", slog.Int("count", len(languages)))
}
