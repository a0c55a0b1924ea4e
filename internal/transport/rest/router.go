// Package rest wires the HTTP API: word registry, status ledger, text store,
// occurrence matching, language reference data, and health probes.
package rest

import (
	"log/slog"
	"net/http"
)

// RouterDeps holds everything the router needs.
type RouterDeps struct {
	Logger     *slog.Logger
	Vocabulary vocabularyService
	Texts      textService
	Matcher    matchService
	DB         dbPinger
	Version    string
}

// NewRouter builds the HTTP route table.
func NewRouter(deps RouterDeps) http.Handler {
	words := NewWordsHandler(deps.Vocabulary, deps.Logger)
	texts := NewTextsHandler(deps.Texts, deps.Matcher, deps.Logger)
	health := NewHealthHandler(deps.DB, deps.Version)

	mux := http.NewServeMux()

	// Health probes.
	mux.HandleFunc("GET /live", health.Live)
	mux.HandleFunc("GET /ready", health.Ready)
	mux.HandleFunc("GET /health", health.Health)

	// Language reference data.
	mux.HandleFunc("GET /api/v1/languages", words.ListLanguages)
	mux.HandleFunc("GET /api/v1/languages/{id}/words", words.ListTracked)

	// Word registry and status ledger.
	mux.HandleFunc("POST /api/v1/words", words.Register)
	mux.HandleFunc("DELETE /api/v1/words/{id}", words.Remove)
	mux.HandleFunc("GET /api/v1/words/{id}/status", words.GetStatus)
	mux.HandleFunc("POST /api/v1/words/{id}/status", words.SetStatus)
	mux.HandleFunc("PUT /api/v1/words/{id}/status", words.UpdateStatus)

	// Text store and occurrence matching.
	mux.HandleFunc("POST /api/v1/texts", texts.Create)
	mux.HandleFunc("GET /api/v1/texts", texts.ListMine)
	mux.HandleFunc("GET /api/v1/texts/all", texts.ListAll)
	mux.HandleFunc("GET /api/v1/texts/{id}", texts.Get)
	mux.HandleFunc("DELETE /api/v1/texts/{id}", texts.Remove)
	mux.HandleFunc("GET /api/v1/texts/{id}/matches", texts.Matches)

	return mux
}
