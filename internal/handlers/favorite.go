package handlers

import (
	"encoding/json"
	"net/http"

	"wordtrail-backend/internal/models"
	"wordtrail-backend/internal/repository"
)

type FavoriteHandler struct {
	repo     *repository.FavoriteRepo
	wordRepo *repository.WordRepo
}

func NewFavoriteHandler(repo *repository.FavoriteRepo, wordRepo *repository.WordRepo) *FavoriteHandler {
	return &FavoriteHandler{repo: repo, wordRepo: wordRepo}
}

func (h *FavoriteHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDQuery(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid user_id", r))
		return
	}

	favorites, err := h.repo.ListByUser(r.Context(), userID)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, favorites)
}

// Add favorites a word. Favoriting twice is not an error: the response stays
// success-shaped with Success=false and the original "已收藏" message.
func (h *FavoriteHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req models.AddFavoriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}
	if req.UserID <= 0 || req.WordID <= 0 {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "user_id and word_id are required", r))
		return
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

	created, err := h.repo.Add(r.Context(), req.UserID, req.WordID)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	if !created {
		writeJSON(w, http.StatusOK, models.FavoriteResult{Success: false, Message: "已收藏"})
		return
	}
	writeJSON(w, http.StatusOK, models.FavoriteResult{Success: true})
}

func (h *FavoriteHandler) Remove(w http.ResponseWriter, r *http.Request) {
	var req models.RemoveFavoriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	if err := h.repo.Remove(r.Context(), req.UserID, req.WordID); err != nil {
		handleServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, models.FavoriteResult{Success: true})
}

func (h *FavoriteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	favID, err := pathInt64(r, "fav_id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid fav_id", r))
		return
	}

	if err := h.repo.Delete(r.Context(), favID); err != nil {
		handleServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, models.FavoriteResult{Success: true})
}
