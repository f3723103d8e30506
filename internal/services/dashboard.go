package services

import (
	"context"
	"fmt"
	"math"
	"time"

	"wordtrail-backend/internal/analytics"
	"wordtrail-backend/internal/models"
	"wordtrail-backend/internal/repository"
)

const (
	// Fixed weekly study-event goal shown on the dashboard.
	weeklyGoal = 200

	recentWordSlots     = 5
	upcomingReviewSlots = 3
)

type DashboardService struct {
	checkinRepo *repository.CheckinRepo
	studyRepo   *repository.StudyLogRepo
	reviewRepo  *repository.ReviewRepo
	now         func() time.Time
}

func NewDashboardService(checkinRepo *repository.CheckinRepo, studyRepo *repository.StudyLogRepo, reviewRepo *repository.ReviewRepo) *DashboardService {
	return &DashboardService{
		checkinRepo: checkinRepo,
		studyRepo:   studyRepo,
		reviewRepo:  reviewRepo,
		now:         time.Now,
	}
}

func (s *DashboardService) Summary(ctx context.Context, userID int64) (*models.DashboardData, error) {
	now := s.now()
	today := startOfDay(now)

	todayStudied, err := s.studyRepo.CountDistinctWordsBetween(ctx, userID, today, today.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}

	totalWords, err := s.studyRepo.CountDistinctWords(ctx, userID)
	if err != nil {
		return nil, err
	}

	dates, err := s.checkinRepo.Dates(ctx, userID)
	if err != nil {
		return nil, err
	}
	streak, _ := analytics.Streaks(dates)

	avgAccuracy, err := s.checkinRepo.AverageAccuracy(ctx, userID)
	if err != nil {
		return nil, err
	}

	todayReview, err := s.reviewRepo.CountDue(ctx, userID, today)
	if err != nil {
		return nil, err
	}

	weeklyProgress, err := s.studyRepo.CountSince(ctx, userID, today.AddDate(0, 0, -7))
	if err != nil {
		return nil, err
	}

	recentWords, err := s.studyRepo.RecentWords(ctx, userID, recentWordSlots)
	if err != nil {
		return nil, err
	}

	upcoming, err := s.reviewRepo.Upcoming(ctx, userID, now, upcomingReviewSlots)
	if err != nil {
		return nil, err
	}

	return &models.DashboardData{
		TodayStudied:    todayStudied,
		TotalWords:      totalWords,
		Streak:          streak,
		Accuracy:        int(math.Round(avgAccuracy)),
		TodayReview:     todayReview,
		WeeklyGoal:      weeklyGoal,
		WeeklyProgress:  weeklyProgress,
		RecentWords:     recentWords,
		UpcomingReviews: buildUpcomingReviews(upcoming),
	}, nil
}

// buildUpcomingReviews labels pending review groups and pads the list to
// exactly upcomingReviewSlots entries so the dashboard layout stays stable.
func buildUpcomingReviews(groups []models.UpcomingReview) []models.DashboardReviewItem {
	items := make([]models.DashboardReviewItem, 0, upcomingReviewSlots)
	for _, g := range groups {
		if len(items) == upcomingReviewSlots {
			break
		}
		items = append(items, models.DashboardReviewItem{
			Word:  g.Word,
			Type:  reviewLabel(g.RepeatCount),
			Count: g.Count,
		})
	}
	for len(items) < upcomingReviewSlots {
		items = append(items, models.DashboardReviewItem{Word: "-", Type: reviewLabel(0), Count: 0})
	}
	return items
}

func reviewLabel(repeatCount int) string {
	return fmt.Sprintf("第%d天复习", repeatCount+1)
}
