package models

type FavoriteWord struct {
	FavID   int64    `json:"fav_id"`
	UserID  int64    `json:"user_id"`
	WordID  int64    `json:"word_id"`
	FavTime DateTime `json:"fav_time"`
}

type AddFavoriteRequest struct {
	UserID int64 `json:"user_id"`
	WordID int64 `json:"word_id"`
}

type RemoveFavoriteRequest struct {
	UserID int64 `json:"user_id"`
	WordID int64 `json:"word_id"`
}

// FavoriteResult is success-shaped even when nothing was created; Success is
// false with a message when the word was already favorited.
type FavoriteResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}
