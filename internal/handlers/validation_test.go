package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"wordtrail-backend/internal/models"
)

// Validation failures are rejected before any handler touches the store, so
// these tests run against handlers with nil repositories.

func newRequestWithPathParam(method, target, param, value string, body string) *http.Request {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(param, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) models.ErrorResponse {
	t.Helper()
	var resp models.ErrorResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode error response: %v", err)
	}
	return resp
}

// ─── Check-in ───

func TestCheckinToday_Validation(t *testing.T) {
	h := NewCheckinHandler(nil)

	tests := []struct {
		name string
		body string
	}{
		{"malformed body", `{not json`},
		{"missing user_id", `{"word_count": 10}`},
		{"zero user_id", `{"user_id": 0}`},
		{"accuracy above 100", `{"user_id": 1, "accuracy_rate": 101}`},
		{"negative accuracy", `{"user_id": 1, "accuracy_rate": -1}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/checkin/today", bytes.NewReader([]byte(tc.body)))
			rr := httptest.NewRecorder()

			h.Today(rr, req)

			if rr.Code != http.StatusBadRequest {
				t.Errorf("Expected status 400, got %d", rr.Code)
			}
			if resp := decodeError(t, rr); resp.Error.Code != "VALIDATION_ERROR" {
				t.Errorf("Expected code VALIDATION_ERROR, got %q", resp.Error.Code)
			}
		})
	}
}

func TestCheckinLogs_RequiresUserID(t *testing.T) {
	h := NewCheckinHandler(nil)

	req := httptest.NewRequest(http.MethodGet, "/api/checkin/logs", nil)
	rr := httptest.NewRecorder()

	h.Logs(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rr.Code)
	}
}

// ─── Review schedules ───

func TestReviewUpdate_NoFields(t *testing.T) {
	h := NewReviewHandler(nil, nil)

	req := newRequestWithPathParam(http.MethodPut, "/api/review/5", "schedule_id", "5", `{}`)
	rr := httptest.NewRecorder()

	h.Update(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rr.Code)
	}
	resp := decodeError(t, rr)
	if resp.Error.Message != "No fields to update" {
		t.Errorf("Expected 'No fields to update', got %q", resp.Error.Message)
	}
}

func TestReviewUpdate_BadScheduleID(t *testing.T) {
	h := NewReviewHandler(nil, nil)

	req := newRequestWithPathParam(http.MethodPut, "/api/review/abc", "schedule_id", "abc", `{"repeat_count": 1}`)
	rr := httptest.NewRecorder()

	h.Update(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rr.Code)
	}
}

func TestReviewUpdate_BadReviewDate(t *testing.T) {
	h := NewReviewHandler(nil, nil)

	req := newRequestWithPathParam(http.MethodPut, "/api/review/5", "schedule_id", "5", `{"review_date": "not-a-date"}`)
	rr := httptest.NewRecorder()

	h.Update(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rr.Code)
	}
}

func TestReviewCreate_Validation(t *testing.T) {
	h := NewReviewHandler(nil, nil)

	tests := []struct {
		name string
		body string
	}{
		{"missing user_id", `{"word_id": 2, "review_date": "2026-09-01T10:00:00"}`},
		{"missing word_id", `{"user_id": 1, "review_date": "2026-09-01T10:00:00"}`},
		{"bad review_date", `{"user_id": 1, "word_id": 2, "review_date": "tomorrow"}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/review/create", strings.NewReader(tc.body))
			rr := httptest.NewRecorder()

			h.Create(rr, req)

			if rr.Code != http.StatusBadRequest {
				t.Errorf("Expected status 400, got %d", rr.Code)
			}
		})
	}
}

func TestReviewDue_BadAsOf(t *testing.T) {
	h := NewReviewHandler(nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/review/due?user_id=1&as_of=yesterday", nil)
	rr := httptest.NewRecorder()

	h.Due(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rr.Code)
	}
}

// ─── Test submission ───

func TestSubmit_Validation(t *testing.T) {
	h := NewTestHandler(nil)

	tests := []struct {
		name string
		body string
	}{
		{"missing user_id", `{"questions": [{"word_id": 1}], "answers": ["a"]}`},
		{"no questions", `{"user_id": 1, "questions": [], "answers": []}`},
		{"length mismatch", `{"user_id": 1, "questions": [{"word_id": 1}], "answers": ["a", "b"]}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/tests/results", strings.NewReader(tc.body))
			rr := httptest.NewRecorder()

			h.Submit(rr, req)

			if rr.Code != http.StatusBadRequest {
				t.Errorf("Expected status 400, got %d", rr.Code)
			}
		})
	}
}

// ─── Study logs ───

func TestStudyLogCreate_InvalidStatus(t *testing.T) {
	h := NewStudyLogHandler(nil)

	req := httptest.NewRequest(http.MethodPost, "/api/study/log",
		strings.NewReader(`{"user_id": 1, "word_id": 2, "status": "maybe"}`))
	rr := httptest.NewRecorder()

	h.Create(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rr.Code)
	}
}

// ─── Wrong words ───

func TestWrongWordAdd_Validation(t *testing.T) {
	h := NewWrongWordHandler(nil, nil)

	tests := []struct {
		name string
		body string
	}{
		{"malformed body", `{`},
		{"missing user_id", `{"word_id": 2}`},
		{"missing word_id", `{"user_id": 1}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/wrongwords/add", strings.NewReader(tc.body))
			rr := httptest.NewRecorder()

			h.Add(rr, req)

			if rr.Code != http.StatusBadRequest {
				t.Errorf("Expected status 400, got %d", rr.Code)
			}
		})
	}
}

// ─── Favorites ───

func TestFavoriteAdd_Validation(t *testing.T) {
	h := NewFavoriteHandler(nil, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/favorite/add", strings.NewReader(`{"user_id": 0, "word_id": 0}`))
	rr := httptest.NewRecorder()

	h.Add(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rr.Code)
	}
}

func TestFavoriteDelete_BadID(t *testing.T) {
	h := NewFavoriteHandler(nil, nil)

	req := newRequestWithPathParam(http.MethodDelete, "/api/favorite/xyz", "fav_id", "xyz", "")
	rr := httptest.NewRecorder()

	h.Delete(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rr.Code)
	}
}

// ─── Dashboard ───

func TestDashboardSummary_BadUserID(t *testing.T) {
	h := NewDashboardHandler(nil)

	req := newRequestWithPathParam(http.MethodGet, "/api/dashboard/zero", "user_id", "zero", "")
	rr := httptest.NewRecorder()

	h.Summary(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rr.Code)
	}
}
