package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/heartmarshall/wordtrail-backend/internal/domain"
	"github.com/heartmarshall/wordtrail-backend/internal/service/vocabulary"
)

func TestRegister_NewWordReturns201(t *testing.T) {
	t.Parallel()

	vocab := &vocabularyServiceMock{
		RegisterWordFunc: func(ctx context.Context, input vocabulary.RegisterWordInput) (*domain.Word, bool, error) {
			if input.LanguageID != "de" || input.Word != "Kuchengabel" {
				t.Errorf("RegisterWord called with %+v", input)
			}
			return &domain.Word{ID: uuid.New(), LanguageID: "de", Word: "Kuchengabel"}, true, nil
		},
	}
	router := newTestRouter(vocab, nil, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/words",
		strings.NewReader(`{"languageId":"de","word":"Kuchengabel"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", rec.Code, rec.Body)
	}

	var resp wordResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Word != "Kuchengabel" {
		t.Errorf("word = %q, want Kuchengabel", resp.Word)
	}
}

func TestRegister_ExistingWordReturns200(t *testing.T) {
	t.Parallel()

	vocab := &vocabularyServiceMock{
		RegisterWordFunc: func(ctx context.Context, input vocabulary.RegisterWordInput) (*domain.Word, bool, error) {
			return &domain.Word{ID: uuid.New(), LanguageID: "de", Word: input.Word}, false, nil
		},
	}
	router := newTestRouter(vocab, nil, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/words",
		strings.NewReader(`{"languageId":"de","word":"Kuchengabel"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200 for an existing pair, got %d", rec.Code)
	}
}

func TestRegister_ValidationReturns406(t *testing.T) {
	t.Parallel()

	vocab := &vocabularyServiceMock{
		RegisterWordFunc: func(ctx context.Context, input vocabulary.RegisterWordInput) (*domain.Word, bool, error) {
			return nil, false, domain.NewValidationError("word", "required")
		},
	}
	router := newTestRouter(vocab, nil, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/words",
		strings.NewReader(`{"languageId":"de","word":""}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotAcceptable {
		t.Fatalf("expected status 406, got %d", rec.Code)
	}
}

func TestRegister_MalformedBodyReturns400(t *testing.T) {
	t.Parallel()

	router := newTestRouter(nil, nil, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/words", strings.NewReader(`{not json`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestRegister_UnauthenticatedReturns401(t *testing.T) {
	t.Parallel()

	vocab := &vocabularyServiceMock{
		RegisterWordFunc: func(ctx context.Context, input vocabulary.RegisterWordInput) (*domain.Word, bool, error) {
			return nil, false, domain.ErrUnauthorized
		},
	}
	router := newTestRouter(vocab, nil, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/words",
		strings.NewReader(`{"languageId":"de","word":"Kuchengabel"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", rec.Code)
	}
}

func TestRemove_ReturnsRemovedWord(t *testing.T) {
	t.Parallel()

	wordID := uuid.New()
	vocab := &vocabularyServiceMock{
		RemoveWordFunc: func(ctx context.Context, id uuid.UUID) (*domain.Word, error) {
			if id != wordID {
				t.Errorf("RemoveWord called with %s, want %s", id, wordID)
			}
			return &domain.Word{ID: id, LanguageID: "de", Word: "Kuchengabel"}, nil
		},
	}
	router := newTestRouter(vocab, nil, nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/words/"+wordID.String(), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var resp wordResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.ID != wordID.String() {
		t.Errorf("removed id = %s, want %s", resp.ID, wordID)
	}
}

func TestRemove_UnknownWordReturns404(t *testing.T) {
	t.Parallel()

	vocab := &vocabularyServiceMock{
		RemoveWordFunc: func(ctx context.Context, id uuid.UUID) (*domain.Word, error) {
			return nil, domain.ErrNotFound
		},
	}
	router := newTestRouter(vocab, nil, nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/words/"+uuid.New().String(), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}
}

func TestRemove_MalformedIDReturns404(t *testing.T) {
	t.Parallel()

	router := newTestRouter(nil, nil, nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/words/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}
}

func TestSetStatus_Returns201(t *testing.T) {
	t.Parallel()

	wordID := uuid.New()
	vocab := &vocabularyServiceMock{
		SetStatusFunc: func(ctx context.Context, input vocabulary.StatusInput) (*domain.UserWord, error) {
			if input.WordID != wordID || input.Status != "learning" {
				t.Errorf("SetStatus called with %+v", input)
			}
			return &domain.UserWord{UserID: uuid.New(), WordID: input.WordID, Status: input.Status}, nil
		},
	}
	router := newTestRouter(vocab, nil, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/words/"+wordID.String()+"/status",
		strings.NewReader(`{"status":"learning"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", rec.Code)
	}
}

func TestSetStatus_AlreadyTrackedReturns406(t *testing.T) {
	t.Parallel()

	vocab := &vocabularyServiceMock{
		SetStatusFunc: func(ctx context.Context, input vocabulary.StatusInput) (*domain.UserWord, error) {
			return nil, domain.ErrAlreadyExists
		},
	}
	router := newTestRouter(vocab, nil, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/words/"+uuid.New().String()+"/status",
		strings.NewReader(`{"status":"learning"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotAcceptable {
		t.Fatalf("expected status 406, got %d", rec.Code)
	}
}

func TestUpdateStatus_UntrackedReturns404(t *testing.T) {
	t.Parallel()

	vocab := &vocabularyServiceMock{
		UpdateStatusFunc: func(ctx context.Context, input vocabulary.StatusInput) (*domain.UserWord, error) {
			return nil, domain.ErrNotFound
		},
	}
	router := newTestRouter(vocab, nil, nil)

	req := httptest.NewRequest(http.MethodPut, "/api/v1/words/"+uuid.New().String()+"/status",
		strings.NewReader(`{"status":"known"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}
}

func TestListTracked_ReturnsWords(t *testing.T) {
	t.Parallel()

	vocab := &vocabularyServiceMock{
		ListTrackedWordsFunc: func(ctx context.Context, languageID string) ([]domain.Word, error) {
			if languageID != "de" {
				t.Errorf("ListTrackedWords called with %q, want de", languageID)
			}
			return []domain.Word{
				{ID: uuid.New(), LanguageID: "de", Word: "Gabel"},
				{ID: uuid.New(), LanguageID: "de", Word: "Messer"},
			}, nil
		},
	}
	router := newTestRouter(vocab, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/languages/de/words", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var resp []wordResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp) != 2 {
		t.Fatalf("got %d words, want 2", len(resp))
	}
}

func TestListLanguages(t *testing.T) {
	t.Parallel()

	vocab := &vocabularyServiceMock{
		ListLanguagesFunc: func(ctx context.Context) ([]domain.Language, error) {
			return []domain.Language{{ID: "de", Name: "German", TSConfig: "german"}}, nil
		},
	}
	router := newTestRouter(vocab, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/languages", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var resp []languageResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp) != 1 || resp[0].ID != "de" {
		t.Errorf("got %+v, want the de language", resp)
	}
}
