package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"wordtrail-backend/internal/models"
	"wordtrail-backend/internal/services"
)

func TestWriteJSON(t *testing.T) {
	rr := httptest.NewRecorder()
	writeJSON(rr, http.StatusCreated, map[string]string{"message": "ok"})

	if rr.Code != http.StatusCreated {
		t.Errorf("Expected status 201, got %d", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Expected Content-Type 'application/json', got %q", ct)
	}

	var body map[string]string
	if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if body["message"] != "ok" {
		t.Errorf("Expected message 'ok', got %q", body["message"])
	}
}

func TestErrorRespEchoesRequestID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/checkin/stats", nil)
	req.Header.Set("X-Request-ID", "req-123")

	resp := errorResp("VALIDATION_ERROR", "Invalid user_id", req)

	if resp.Error.Code != "VALIDATION_ERROR" {
		t.Errorf("Expected code VALIDATION_ERROR, got %q", resp.Error.Code)
	}
	if resp.Error.RequestID != "req-123" {
		t.Errorf("Expected request id 'req-123', got %q", resp.Error.RequestID)
	}
}

func TestHandleServiceError(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		expectedCode int
	}{
		{
			"validation error maps to 400",
			&services.ValidationError{Fields: map[string]string{"user_id": "required"}},
			http.StatusBadRequest,
		},
		{
			"not found error maps to 404",
			&services.NotFoundError{Message: "Review schedule not found"},
			http.StatusNotFound,
		},
		{
			"unknown error maps to 500",
			errors.New("connection reset"),
			http.StatusInternalServerError,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/api/review", nil)

			handleServiceError(rr, req, tc.err)

			if rr.Code != tc.expectedCode {
				t.Errorf("Expected status %d, got %d", tc.expectedCode, rr.Code)
			}

			var resp models.ErrorResponse
			if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
				t.Fatalf("Failed to decode error response: %v", err)
			}
			if resp.Error.Code == "" {
				t.Error("Expected a machine-readable error code")
			}
		})
	}
}

func TestQueryIntDefault(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		def      int
		max      int
		expected int
	}{
		{"uses value in range", "limit=30", 7, 100, 30},
		{"missing falls back", "", 7, 100, 7},
		{"zero falls back", "limit=0", 7, 100, 7},
		{"negative falls back", "limit=-5", 7, 100, 7},
		{"over max falls back", "limit=500", 7, 100, 7},
		{"non-numeric falls back", "limit=abc", 7, 100, 7},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/checkin/logs?"+tc.query, nil)
			if got := queryIntDefault(req, "limit", tc.def, tc.max); got != tc.expected {
				t.Errorf("Expected %d, got %d", tc.expected, got)
			}
		})
	}
}

func TestUserIDQuery(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/favorite?user_id=42", nil)
	id, err := userIDQuery(req)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if id != 42 {
		t.Errorf("Expected 42, got %d", id)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/favorite", nil)
	if _, err := userIDQuery(req); err == nil {
		t.Error("Expected error for missing user_id")
	}
}
