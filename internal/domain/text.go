package domain

import (
	"time"

	"github.com/google/uuid"
)

// Text is a user-submitted document in a target language. Its two lexical
// indexes (tsvector_simple, tsvector_language) are derived from Body once at
// creation and never recomputed; they stay in the storage layer and are only
// consulted through occurrence-match queries.
type Text struct {
	ID         uuid.UUID `db:"id"`
	UserID     uuid.UUID `db:"user_id"`
	LanguageID string    `db:"language_id"`
	Title      string    `db:"title"`
	Author     *string   `db:"author"`
	Body       string    `db:"body"`
	CreatedAt  time.Time `db:"created_at"`
}
