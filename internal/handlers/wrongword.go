package handlers

import (
	"encoding/json"
	"net/http"

	"wordtrail-backend/internal/models"
	"wordtrail-backend/internal/repository"
)

const defaultErrorType = "含义理解"

type WrongWordHandler struct {
	repo     *repository.WrongWordRepo
	wordRepo *repository.WordRepo
}

func NewWrongWordHandler(repo *repository.WrongWordRepo, wordRepo *repository.WordRepo) *WrongWordHandler {
	return &WrongWordHandler{repo: repo, wordRepo: wordRepo}
}

func (h *WrongWordHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDQuery(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid user_id", r))
		return
	}

	records, err := h.repo.ListByUser(r.Context(), userID)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, records)
}

func (h *WrongWordHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req models.AddWrongWordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}
	if req.UserID <= 0 || req.WordID <= 0 {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "user_id and word_id are required", r))
		return
	}
	if req.ErrorType == "" {
		req.ErrorType = defaultErrorType
	}

	exists, err := h.wordRepo.Exists(r.Context(), req.WordID)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	if !exists {
		writeJSON(w, http.StatusNotFound, errorResp("NOT_FOUND", "Word not found", r))
		return
	}

	if err := h.repo.Upsert(r.Context(), req); err != nil {
		handleServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *WrongWordHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt64(r, "wrongword_id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid wrongword_id", r))
		return
	}

	if err := h.repo.Delete(r.Context(), id); err != nil {
		handleServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// MarkMastered drops the word from the user's wrong word book.
func (h *WrongWordHandler) MarkMastered(w http.ResponseWriter, r *http.Request) {
	var req models.MarkMasteredRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}
	if req.UserID <= 0 || req.WordID <= 0 {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "user_id and word_id are required", r))
		return
	}

	if err := h.repo.DeleteByUserWord(r.Context(), req.UserID, req.WordID); err != nil {
		handleServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
