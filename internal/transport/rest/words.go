package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/wordtrail-backend/internal/domain"
	"github.com/heartmarshall/wordtrail-backend/internal/service/vocabulary"
)

// vocabularyService defines the minimal interface needed by WordsHandler.
type vocabularyService interface {
	RegisterWord(ctx context.Context, input vocabulary.RegisterWordInput) (*domain.Word, bool, error)
	RemoveWord(ctx context.Context, wordID uuid.UUID) (*domain.Word, error)
	GetStatus(ctx context.Context, wordID uuid.UUID) (*domain.UserWord, error)
	SetStatus(ctx context.Context, input vocabulary.StatusInput) (*domain.UserWord, error)
	UpdateStatus(ctx context.Context, input vocabulary.StatusInput) (*domain.UserWord, error)
	ListTrackedWords(ctx context.Context, languageID string) ([]domain.Word, error)
	ListLanguages(ctx context.Context) ([]domain.Language, error)
}

// WordsHandler serves the word registry and status ledger endpoints.
type WordsHandler struct {
	svc vocabularyService
	log *slog.Logger
}

// NewWordsHandler creates a WordsHandler.
func NewWordsHandler(svc vocabularyService, logger *slog.Logger) *WordsHandler {
	return &WordsHandler{svc: svc, log: logger.With("handler", "words")}
}

type registerWordRequest struct {
	LanguageID string `json:"languageId"`
	Word       string `json:"word"`
}

type statusRequest struct {
	Status string `json:"status"`
}

// Register handles POST /api/v1/words. Returns 201 when the word was
// created and 200 when the pair was already registered.
func (h *WordsHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerWordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	word, created, err := h.svc.RegisterWord(r.Context(), vocabulary.RegisterWordInput{
		LanguageID: req.LanguageID,
		Word:       req.Word,
	})
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	writeJSON(w, status, toWordResponse(*word))
}

// Remove handles DELETE /api/v1/words/{id}. Responds with the removed word.
func (h *WordsHandler) Remove(w http.ResponseWriter, r *http.Request) {
	wordID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	word, err := h.svc.RemoveWord(r.Context(), wordID)
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toWordResponse(*word))
}

// GetStatus handles GET /api/v1/words/{id}/status.
func (h *WordsHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	wordID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	entry, err := h.svc.GetStatus(r.Context(), wordID)
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toStatusResponse(*entry))
}

// SetStatus handles POST /api/v1/words/{id}/status. Insert-only: an already
// tracked word yields 406.
func (h *WordsHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	wordID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	var req statusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	entry, err := h.svc.SetStatus(r.Context(), vocabulary.StatusInput{
		WordID: wordID,
		Status: req.Status,
	})
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toStatusResponse(*entry))
}

// UpdateStatus handles PUT /api/v1/words/{id}/status. Update-only: an
// untracked word yields 404.
func (h *WordsHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	wordID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	var req statusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	entry, err := h.svc.UpdateStatus(r.Context(), vocabulary.StatusInput{
		WordID: wordID,
		Status: req.Status,
	})
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toStatusResponse(*entry))
}

// ListTracked handles GET /api/v1/languages/{id}/words: the authenticated
// user's tracked words in the language.
func (h *WordsHandler) ListTracked(w http.ResponseWriter, r *http.Request) {
	words, err := h.svc.ListTrackedWords(r.Context(), r.PathValue("id"))
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toWordResponses(words))
}

// ListLanguages handles GET /api/v1/languages.
func (h *WordsHandler) ListLanguages(w http.ResponseWriter, r *http.Request) {
	languages, err := h.svc.ListLanguages(r.Context())
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toLanguageResponses(languages))
}
