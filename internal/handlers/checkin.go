package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"wordtrail-backend/internal/analytics"
	"wordtrail-backend/internal/models"
	"wordtrail-backend/internal/repository"
)

type CheckinHandler struct {
	repo *repository.CheckinRepo
}

func NewCheckinHandler(repo *repository.CheckinRepo) *CheckinHandler {
	return &CheckinHandler{repo: repo}
}

func (h *CheckinHandler) Logs(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDQuery(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid user_id", r))
		return
	}
	limit := queryIntDefault(r, "limit", 7, 100)

	logs, err := h.repo.List(r.Context(), userID, limit)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, logs)
}

// Today is idempotent per calendar day: the first request creates the row,
// any later one returns it unchanged with already_checked_in set.
func (h *CheckinHandler) Today(w http.ResponseWriter, r *http.Request) {
	var req models.CheckInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}
	if req.UserID <= 0 {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "user_id is required", r))
		return
	}
	if req.AccuracyRate < 0 || req.AccuracyRate > 100 {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "accuracy_rate must be between 0 and 100", r))
		return
	}

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	log, created, err := h.repo.UpsertToday(r.Context(), req, today)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, models.CheckInTodayResponse{
		CheckInLog:       log,
		AlreadyCheckedIn: !created,
	})
}

func (h *CheckinHandler) Stats(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDQuery(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid user_id", r))
		return
	}

	dates, err := h.repo.Dates(r.Context(), userID)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	current, longest := analytics.Streaks(dates)

	total, thisMonth, err := h.repo.Totals(r.Context(), userID, time.Now())
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, models.CheckInStats{
		CurrentStreak:     current,
		LongestStreak:     longest,
		TotalCheckIns:     total,
		ThisMonthCheckIns: thisMonth,
	})
}
