package models

// WordSummary is the read-only slice of the word catalog this service joins
// against. Catalog management lives elsewhere.
type WordSummary struct {
	WordID     int64  `json:"word_id"`
	Word       string `json:"word"`
	ListID     int64  `json:"list_id"`
	Difficulty string `json:"difficulty"`
}

// WrongWord keeps one record per (user_id, word_id); repeated mistakes bump
// wrong_count and overwrite the latest answer snapshot.
type WrongWord struct {
	ID            int64        `json:"id"`
	UserID        int64        `json:"user_id"`
	WordID        int64        `json:"word_id"`
	WrongCount    int          `json:"wrong_count"`
	LastWrongTime DateTime     `json:"last_wrong_time"`
	ErrorType     string       `json:"error_type"`
	UserAnswer    *string      `json:"user_answer"`
	CorrectAnswer *string      `json:"correct_answer"`
	Word          *WordSummary `json:"word,omitempty"`
}

type AddWrongWordRequest struct {
	UserID     int64   `json:"user_id"`
	WordID     int64   `json:"word_id"`
	UserAnswer *string `json:"user_answer"`
	ErrorType  string  `json:"error_type"`
}

type MarkMasteredRequest struct {
	UserID int64 `json:"user_id"`
	WordID int64 `json:"word_id"`
}
