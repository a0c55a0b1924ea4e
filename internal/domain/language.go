package domain

// Language is an immutable reference row naming a PostgreSQL text-search
// configuration. The configuration governs how word search keys and text
// indexes are derived; both sides of an occurrence match must use the same one.
type Language struct {
	ID       string `db:"id"`        // short code, e.g. "de"
	Name     string `db:"name"`      // display name, e.g. "German"
	TSConfig string `db:"ts_config"` // regconfig name, e.g. "german"
}
