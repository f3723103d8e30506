package handlers

import (
	"encoding/json"
	"net/http"

	"wordtrail-backend/internal/models"
	"wordtrail-backend/internal/repository"
)

type StudyLogHandler struct {
	repo *repository.StudyLogRepo
}

func NewStudyLogHandler(repo *repository.StudyLogRepo) *StudyLogHandler {
	return &StudyLogHandler{repo: repo}
}

func (h *StudyLogHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDQuery(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid user_id", r))
		return
	}
	limit := queryIntDefault(r, "limit", 10, 200)

	logs, err := h.repo.List(r.Context(), userID, limit)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, logs)
}

func (h *StudyLogHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.StudyLogCreate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}
	if req.UserID <= 0 || req.WordID <= 0 {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "user_id and word_id are required", r))
		return
	}
	if !models.ValidStatus(req.Status) {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "status must be correct, incorrect, known or unknown", r))
		return
	}

	id, err := h.repo.Create(r.Context(), req)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Study log created successfully",
		"log_id":  id,
	})
}
