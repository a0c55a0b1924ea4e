package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/wordtrail-backend/internal/domain"
	textsvc "github.com/heartmarshall/wordtrail-backend/internal/service/text"
	"github.com/heartmarshall/wordtrail-backend/internal/service/vocabulary"
)

var (
	_ vocabularyService = &vocabularyServiceMock{}
	_ textService       = &textServiceMock{}
	_ matchService      = &matchServiceMock{}
)

type vocabularyServiceMock struct {
	RegisterWordFunc     func(ctx context.Context, input vocabulary.RegisterWordInput) (*domain.Word, bool, error)
	RemoveWordFunc       func(ctx context.Context, wordID uuid.UUID) (*domain.Word, error)
	GetStatusFunc        func(ctx context.Context, wordID uuid.UUID) (*domain.UserWord, error)
	SetStatusFunc        func(ctx context.Context, input vocabulary.StatusInput) (*domain.UserWord, error)
	UpdateStatusFunc     func(ctx context.Context, input vocabulary.StatusInput) (*domain.UserWord, error)
	ListTrackedWordsFunc func(ctx context.Context, languageID string) ([]domain.Word, error)
	ListLanguagesFunc    func(ctx context.Context) ([]domain.Language, error)
}

func (m *vocabularyServiceMock) RegisterWord(ctx context.Context, input vocabulary.RegisterWordInput) (*domain.Word, bool, error) {
	return m.RegisterWordFunc(ctx, input)
}

func (m *vocabularyServiceMock) RemoveWord(ctx context.Context, wordID uuid.UUID) (*domain.Word, error) {
	return m.RemoveWordFunc(ctx, wordID)
}

func (m *vocabularyServiceMock) GetStatus(ctx context.Context, wordID uuid.UUID) (*domain.UserWord, error) {
	return m.GetStatusFunc(ctx, wordID)
}

func (m *vocabularyServiceMock) SetStatus(ctx context.Context, input vocabulary.StatusInput) (*domain.UserWord, error) {
	return m.SetStatusFunc(ctx, input)
}

func (m *vocabularyServiceMock) UpdateStatus(ctx context.Context, input vocabulary.StatusInput) (*domain.UserWord, error) {
	return m.UpdateStatusFunc(ctx, input)
}

func (m *vocabularyServiceMock) ListTrackedWords(ctx context.Context, languageID string) ([]domain.Word, error) {
	return m.ListTrackedWordsFunc(ctx, languageID)
}

func (m *vocabularyServiceMock) ListLanguages(ctx context.Context) ([]domain.Language, error) {
	return m.ListLanguagesFunc(ctx)
}

type textServiceMock struct {
	CreateTextFunc   func(ctx context.Context, input textsvc.CreateTextInput) (*domain.Text, error)
	GetTextFunc      func(ctx context.Context, textID uuid.UUID) (*domain.Text, error)
	ListMyTextsFunc  func(ctx context.Context) ([]domain.Text, error)
	ListAllTextsFunc func(ctx context.Context) ([]domain.Text, error)
	RemoveTextFunc   func(ctx context.Context, textID uuid.UUID) (*domain.Text, error)
}

func (m *textServiceMock) CreateText(ctx context.Context, input textsvc.CreateTextInput) (*domain.Text, error) {
	return m.CreateTextFunc(ctx, input)
}

func (m *textServiceMock) GetText(ctx context.Context, textID uuid.UUID) (*domain.Text, error) {
	return m.GetTextFunc(ctx, textID)
}

func (m *textServiceMock) ListMyTexts(ctx context.Context) ([]domain.Text, error) {
	return m.ListMyTextsFunc(ctx)
}

func (m *textServiceMock) ListAllTexts(ctx context.Context) ([]domain.Text, error) {
	return m.ListAllTextsFunc(ctx)
}

func (m *textServiceMock) RemoveText(ctx context.Context, textID uuid.UUID) (*domain.Text, error) {
	return m.RemoveTextFunc(ctx, textID)
}

type matchServiceMock struct {
	FindUserWordsInTextFunc func(ctx context.Context, textID uuid.UUID, useLanguageTokenization bool) ([]domain.Word, error)
}

func (m *matchServiceMock) FindUserWordsInText(ctx context.Context, textID uuid.UUID, useLanguageTokenization bool) ([]domain.Word, error) {
	return m.FindUserWordsInTextFunc(ctx, textID, useLanguageTokenization)
}

// newTestRouter builds the route table over the given mocks; nil mocks are
// replaced with empty ones.
func newTestRouter(vocab *vocabularyServiceMock, texts *textServiceMock, matcher *matchServiceMock) http.Handler {
	if vocab == nil {
		vocab = &vocabularyServiceMock{}
	}
	if texts == nil {
		texts = &textServiceMock{}
	}
	if matcher == nil {
		matcher = &matchServiceMock{}
	}
	return NewRouter(RouterDeps{
		Logger:     slog.Default(),
		Vocabulary: vocab,
		Texts:      texts,
		Matcher:    matcher,
		DB:         &dbPingerMock{},
		Version:    "test",
	})
}
