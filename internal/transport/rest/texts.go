package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/wordtrail-backend/internal/domain"
	textsvc "github.com/heartmarshall/wordtrail-backend/internal/service/text"
)

// textService defines the minimal interface needed by TextsHandler.
type textService interface {
	CreateText(ctx context.Context, input textsvc.CreateTextInput) (*domain.Text, error)
	GetText(ctx context.Context, textID uuid.UUID) (*domain.Text, error)
	ListMyTexts(ctx context.Context) ([]domain.Text, error)
	ListAllTexts(ctx context.Context) ([]domain.Text, error)
	RemoveText(ctx context.Context, textID uuid.UUID) (*domain.Text, error)
}

// matchService defines the minimal interface for occurrence matching.
type matchService interface {
	FindUserWordsInText(ctx context.Context, textID uuid.UUID, useLanguageTokenization bool) ([]domain.Word, error)
}

// TextsHandler serves the text store and matching endpoints.
type TextsHandler struct {
	texts   textService
	matcher matchService
	log     *slog.Logger
}

// NewTextsHandler creates a TextsHandler.
func NewTextsHandler(texts textService, matcher matchService, logger *slog.Logger) *TextsHandler {
	return &TextsHandler{texts: texts, matcher: matcher, log: logger.With("handler", "texts")}
}

type createTextRequest struct {
	LanguageID string  `json:"languageId"`
	Title      string  `json:"title"`
	Author     *string `json:"author,omitempty"`
	Body       string  `json:"body"`
}

// Create handles POST /api/v1/texts.
func (h *TextsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createTextRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	text, err := h.texts.CreateText(r.Context(), textsvc.CreateTextInput{
		LanguageID: req.LanguageID,
		Title:      req.Title,
		Author:     req.Author,
		Body:       req.Body,
	})
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toTextResponse(*text))
}

// Get handles GET /api/v1/texts/{id}.
func (h *TextsHandler) Get(w http.ResponseWriter, r *http.Request) {
	textID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	text, err := h.texts.GetText(r.Context(), textID)
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toTextResponse(*text))
}

// ListMine handles GET /api/v1/texts: the authenticated user's texts.
func (h *TextsHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	texts, err := h.texts.ListMyTexts(r.Context())
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toTextResponses(texts))
}

// ListAll handles GET /api/v1/texts/all.
func (h *TextsHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	texts, err := h.texts.ListAllTexts(r.Context())
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toTextResponses(texts))
}

// Remove handles DELETE /api/v1/texts/{id}. Responds with the removed text.
func (h *TextsHandler) Remove(w http.ResponseWriter, r *http.Request) {
	textID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	text, err := h.texts.RemoveText(r.Context(), textID)
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toTextResponse(*text))
}

// Matches handles GET /api/v1/texts/{id}/matches. The tokenization query
// parameter selects the variant: "language" for the language-specific
// config, anything else (or absent) for the generic one.
func (h *TextsHandler) Matches(w http.ResponseWriter, r *http.Request) {
	textID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	useLanguage := r.URL.Query().Get("tokenization") == "language"

	words, err := h.matcher.FindUserWordsInText(r.Context(), textID, useLanguage)
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toWordResponses(words))
}
