package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"wordtrail-backend/internal/models"
	"wordtrail-backend/internal/repository"
	"wordtrail-backend/internal/services"
)

type ReviewHandler struct {
	repo *repository.ReviewRepo
	svc  *services.ReviewService
}

func NewReviewHandler(repo *repository.ReviewRepo, svc *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{repo: repo, svc: svc}
}

func (h *ReviewHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDQuery(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid user_id", r))
		return
	}

	entries, err := h.repo.ListAll(r.Context(), userID)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

// Due lists entries whose review time has arrived, earliest first. as_of
// overrides the reference time and defaults to now.
func (h *ReviewHandler) Due(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDQuery(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid user_id", r))
		return
	}

	asOf := time.Now()
	if s := r.URL.Query().Get("as_of"); s != "" {
		asOf, err = models.ParseDateTime(s)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid as_of timestamp", r))
			return
		}
	}

	entries, err := h.repo.ListDue(r.Context(), userID, asOf)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

func (h *ReviewHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}
	if req.UserID <= 0 || req.WordID <= 0 {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "user_id and word_id are required", r))
		return
	}

	due, err := models.ParseDateTime(req.ReviewDate)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid review_date", r))
		return
	}

	repeatCount := 0
	if req.RepeatCount != nil {
		repeatCount = *req.RepeatCount
	}
	memoryStrength := 0.5
	if req.MemoryStrength != nil {
		memoryStrength = *req.MemoryStrength
	}

	entry, err := h.repo.Create(r.Context(), req.UserID, req.WordID, due, repeatCount, memoryStrength)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, entry)
}

func (h *ReviewHandler) Update(w http.ResponseWriter, r *http.Request) {
	scheduleID, err := pathInt64(r, "schedule_id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid schedule_id", r))
		return
	}

	var req models.UpdateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	// Reject empty patches before touching the store.
	if req.ReviewDate == nil && req.RepeatCount == nil && req.MemoryStrength == nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "No fields to update", r))
		return
	}

	var due *time.Time
	if req.ReviewDate != nil {
		t, err := models.ParseDateTime(*req.ReviewDate)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid review_date", r))
			return
		}
		due = &t
	}

	if err := h.repo.Update(r.Context(), scheduleID, due, req.RepeatCount, req.MemoryStrength); err != nil {
		handleServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// Complete finishes a review and reschedules the entry via the spacing
// policy.
func (h *ReviewHandler) Complete(w http.ResponseWriter, r *http.Request) {
	scheduleID, err := pathInt64(r, "schedule_id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid schedule_id", r))
		return
	}

	var req models.CompleteReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	entry, err := h.svc.Complete(r.Context(), scheduleID, req.Correct)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, entry)
}
