package rest

import (
	"time"

	"github.com/heartmarshall/wordtrail-backend/internal/domain"
)

type wordResponse struct {
	ID         string    `json:"id"`
	LanguageID string    `json:"languageId"`
	Word       string    `json:"word"`
	CreatedAt  time.Time `json:"createdAt"`
}

func toWordResponse(w domain.Word) wordResponse {
	return wordResponse{
		ID:         w.ID.String(),
		LanguageID: w.LanguageID,
		Word:       w.Word,
		CreatedAt:  w.CreatedAt,
	}
}

func toWordResponses(words []domain.Word) []wordResponse {
	out := make([]wordResponse, len(words))
	for i, w := range words {
		out[i] = toWordResponse(w)
	}
	return out
}

type statusResponse struct {
	UserID    string    `json:"userId"`
	WordID    string    `json:"wordId"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toStatusResponse(uw domain.UserWord) statusResponse {
	return statusResponse{
		UserID:    uw.UserID.String(),
		WordID:    uw.WordID.String(),
		Status:    uw.Status,
		CreatedAt: uw.CreatedAt,
		UpdatedAt: uw.UpdatedAt,
	}
}

type textResponse struct {
	ID         string    `json:"id"`
	UserID     string    `json:"userId"`
	LanguageID string    `json:"languageId"`
	Title      string    `json:"title"`
	Author     *string   `json:"author,omitempty"`
	Body       string    `json:"body"`
	CreatedAt  time.Time `json:"createdAt"`
}

func toTextResponse(t domain.Text) textResponse {
	return textResponse{
		ID:         t.ID.String(),
		UserID:     t.UserID.String(),
		LanguageID: t.LanguageID,
		Title:      t.Title,
		Author:     t.Author,
		Body:       t.Body,
		CreatedAt:  t.CreatedAt,
	}
}

func toTextResponses(texts []domain.Text) []textResponse {
	out := make([]textResponse, len(texts))
	for i, t := range texts {
		out[i] = toTextResponse(t)
	}
	return out
}

type languageResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func toLanguageResponses(languages []domain.Language) []languageResponse {
	out := make([]languageResponse, len(languages))
	for i, l := range languages {
		out[i] = languageResponse{ID: l.ID, Name: l.Name}
	}
	return out
}
