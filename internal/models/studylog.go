package models

// StudyLog is one graded attempt at a word. Rows are immutable once written.
type StudyLog struct {
	LogID     int64    `json:"log_id"`
	UserID    int64    `json:"user_id"`
	WordID    int64    `json:"word_id"`
	StudyTime DateTime `json:"study_time"`
	Status    string   `json:"status"`
}

type StudyLogCreate struct {
	UserID int64  `json:"user_id"`
	WordID int64  `json:"word_id"`
	Status string `json:"status"`
}

// Valid study outcomes. Accuracy rollups count only StatusCorrect; test
// submissions record StatusKnown/StatusUnknown.
const (
	StatusCorrect   = "correct"
	StatusIncorrect = "incorrect"
	StatusKnown     = "known"
	StatusUnknown   = "unknown"
)

func ValidStatus(s string) bool {
	switch s {
	case StatusCorrect, StatusIncorrect, StatusKnown, StatusUnknown:
		return true
	}
	return false
}
