package models

type RecentWord struct {
	WordID int64  `json:"word_id"`
	Word   string `json:"word"`
}

type DashboardReviewItem struct {
	Word  string `json:"word"`
	Type  string `json:"type"`
	Count int    `json:"count"`
}

type DashboardData struct {
	TodayStudied    int                   `json:"todayStudied"`
	TotalWords      int                   `json:"totalWords"`
	Streak          int                   `json:"streak"`
	Accuracy        int                   `json:"accuracy"`
	TodayReview     int                   `json:"todayReview"`
	WeeklyGoal      int                   `json:"weeklyGoal"`
	WeeklyProgress  int                   `json:"weeklyProgress"`
	RecentWords     []RecentWord          `json:"recentWords"`
	UpcomingReviews []DashboardReviewItem `json:"upcomingReviews"`
}
