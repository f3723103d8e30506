package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"wordtrail-backend/internal/models"
	"wordtrail-backend/internal/repository"
)

type TestHandler struct {
	repo *repository.StudyLogRepo
}

func NewTestHandler(repo *repository.StudyLogRepo) *TestHandler {
	return &TestHandler{repo: repo}
}

// Submit grades a finished test: every question becomes a study log entry
// and every miss updates the wrong word book, atomically.
func (h *TestHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitTestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}
	if req.UserID <= 0 {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "user_id is required", r))
		return
	}
	if len(req.Questions) == 0 || len(req.Answers) != len(req.Questions) {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "questions and answers must be non-empty and the same length", r))
		return
	}

	if err := h.repo.SubmitTest(r.Context(), req); err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, models.TestResult{
		UserID:         req.UserID,
		Score:          req.Score,
		TotalQuestions: req.TotalQuestions,
		CorrectAnswers: req.CorrectAnswers,
		TestDate:       models.DateTime{Time: time.Now()},
		TestType:       req.TestType,
	})
}

func (h *TestHandler) History(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDQuery(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid user_id", r))
		return
	}

	// limit is optional here; 0 returns the full history.
	limit := 0
	if r.URL.Query().Get("limit") != "" {
		limit = queryIntDefault(r, "limit", 0, 365)
	}

	results, err := h.repo.DailyHistory(r.Context(), userID, limit)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, results)
}
