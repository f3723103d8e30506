package models

type DailyStats struct {
	Date         Date    `json:"date"`
	WordsStudied int     `json:"words_studied"`
	AccuracyRate float64 `json:"accuracy_rate"`
	// TimeSpent is an estimate (5 minutes per logged attempt), not a
	// measured duration.
	TimeSpent int `json:"time_spent"`
}

type WordMasteryStats struct {
	Word           string  `json:"word"`
	MasteryLevel   string  `json:"mastery_level"`
	LastReviewDate *Date   `json:"last_review_date"`
	ReviewCount    int     `json:"review_count"`
	AccuracyRate   float64 `json:"accuracy_rate"`
}

type WeeklyProgress struct {
	WeekStart       Date    `json:"week_start"`
	WordsStudied    int     `json:"words_studied"`
	AverageAccuracy float64 `json:"average_accuracy"`
	StudyTime       int     `json:"study_time"`
	// StreakDays is the number of distinct study days inside the week, not
	// a consecutive-day streak. The field name is kept for callers that
	// depend on it.
	StreakDays int `json:"streak_days"`
}

type CategoryStats struct {
	Category        string `json:"category"`
	WordCount       int    `json:"word_count"`
	MasteredCount   int    `json:"mastered_count"`
	LearningCount   int    `json:"learning_count"`
	NotStartedCount int    `json:"not_started_count"`
}

// WordAccuracy is one word's aggregate study history for a user, joined with
// its list's difficulty label. Words never studied have ReviewCount 0.
type WordAccuracy struct {
	WordID       int64
	Word         string
	Category     *string
	ReviewCount  int
	CorrectCount int
	LastReview   *DateTime
}
