package models

type ReviewSchedule struct {
	ScheduleID     int64    `json:"schedule_id"`
	UserID         int64    `json:"user_id"`
	WordID         int64    `json:"word_id"`
	ReviewDate     DateTime `json:"review_date"`
	RepeatCount    int      `json:"repeat_count"`
	MemoryStrength *float64 `json:"memory_strength"`
}

type CreateReviewRequest struct {
	UserID         int64    `json:"user_id"`
	WordID         int64    `json:"word_id"`
	ReviewDate     string   `json:"review_date"`
	RepeatCount    *int     `json:"repeat_count"`
	MemoryStrength *float64 `json:"memory_strength"`
}

// UpdateReviewRequest is a partial patch; nil fields are left untouched.
type UpdateReviewRequest struct {
	ReviewDate     *string  `json:"review_date"`
	RepeatCount    *int     `json:"repeat_count"`
	MemoryStrength *float64 `json:"memory_strength"`
}

type CompleteReviewRequest struct {
	Correct bool `json:"correct"`
}

// UpcomingReview is a (word, repeat_count) group of pending reviews.
type UpcomingReview struct {
	Word        string
	RepeatCount int
	Count       int
}
