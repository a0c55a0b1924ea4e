package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Word is a canonical (language, surface form) pair. At most one Word exists
// per (LanguageID, Word); registration is idempotent by content. The search
// keys used for occurrence matching are derived from the surface form at
// insert time, under both the generic and the language-specific text-search
// configuration.
type Word struct {
	ID         uuid.UUID `db:"id"`
	LanguageID string    `db:"language_id"`
	Word       string    `db:"word"`
	CreatedAt  time.Time `db:"created_at"`
}

// WordStatus is a user's learning-progress label for a word. It is stored
// as an opaque string: the ledger does not enumerate or validate values.
type WordStatus = string

// Labels commonly used by clients. Not a closed set.
const (
	StatusLearning WordStatus = "learning"
	StatusFamiliar WordStatus = "familiar"
	StatusKnown    WordStatus = "known"
	StatusIgnored  WordStatus = "ignored"
)

// UserWord is one user's status ledger entry for one word, uniquely keyed
// by the (UserID, WordID) pair.
type UserWord struct {
	UserID    uuid.UUID  `db:"user_id"`
	WordID    uuid.UUID  `db:"word_id"`
	Status    WordStatus `db:"word_status"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt time.Time  `db:"updated_at"`
}

// NormalizeWord prepares a surface form for registration: trims surrounding
// whitespace and compresses internal runs of spaces. Case and diacritics are
// preserved; folding is the text-search configuration's job, and applying it
// here would diverge from how text indexes are built.
func NormalizeWord(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s))
	prevSpace := false
	for _, r := range s {
		if r == ' ' {
			if prevSpace {
				continue
			}
			prevSpace = true
		} else {
			prevSpace = false
		}
		b.WriteRune(r)
	}
	return b.String()
}
