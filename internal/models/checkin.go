package models

// CheckInLog is one user's daily study-session summary. At most one row
// exists per (user_id, checkin_date); the table enforces this.
type CheckInLog struct {
	CheckinID     int64   `json:"checkin_id"`
	UserID        int64   `json:"user_id"`
	CheckinDate   Date    `json:"checkin_date"`
	WordCount     int     `json:"word_count"`
	StudyDuration int     `json:"study_duration"`
	AccuracyRate  float64 `json:"accuracy_rate"`
}

type CheckInRequest struct {
	UserID        int64   `json:"user_id"`
	WordCount     int     `json:"word_count"`
	StudyDuration int     `json:"study_duration"`
	AccuracyRate  float64 `json:"accuracy_rate"`
}

// CheckInTodayResponse carries the day's row. AlreadyCheckedIn is true when
// the request found an existing row instead of creating one.
type CheckInTodayResponse struct {
	CheckInLog
	AlreadyCheckedIn bool `json:"already_checked_in"`
}

type CheckInStats struct {
	CurrentStreak     int `json:"currentStreak"`
	LongestStreak     int `json:"longestStreak"`
	TotalCheckIns     int `json:"totalCheckIns"`
	ThisMonthCheckIns int `json:"thisMonthCheckIns"`
}
