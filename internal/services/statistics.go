package services

import (
	"context"
	"sort"
	"time"

	"wordtrail-backend/internal/analytics"
	"wordtrail-backend/internal/models"
	"wordtrail-backend/internal/repository"
)

// Label for words whose list carries no difficulty label.
const uncategorized = "未分类"

type StatisticsService struct {
	studyRepo *repository.StudyLogRepo
	wordRepo  *repository.WordRepo
	now       func() time.Time
}

func NewStatisticsService(studyRepo *repository.StudyLogRepo, wordRepo *repository.WordRepo) *StatisticsService {
	return &StatisticsService{studyRepo: studyRepo, wordRepo: wordRepo, now: time.Now}
}

func (s *StatisticsService) Daily(ctx context.Context, userID int64, days int) ([]models.DailyStats, error) {
	now := s.now()
	events, err := s.studyRepo.ListSince(ctx, userID, startOfDay(now).AddDate(0, 0, -days))
	if err != nil {
		return nil, err
	}
	return analytics.DailyRollups(events, days, now), nil
}

func (s *StatisticsService) Weekly(ctx context.Context, userID int64, weeks int) ([]models.WeeklyProgress, error) {
	now := s.now()
	events, err := s.studyRepo.ListSince(ctx, userID, startOfDay(now).AddDate(0, 0, -weeks*7))
	if err != nil {
		return nil, err
	}
	return analytics.WeeklyRollups(events, weeks, now), nil
}

func (s *StatisticsService) Mastery(ctx context.Context, userID int64, limit int) ([]models.WordMasteryStats, error) {
	rows, err := s.wordRepo.MasteryRows(ctx, userID, limit)
	if err != nil {
		return nil, err
	}

	stats := make([]models.WordMasteryStats, 0, len(rows))
	for _, row := range rows {
		accuracy := wordAccuracy(row)
		var lastReview *models.Date
		if row.LastReview != nil {
			d := models.NewDate(row.LastReview.Time)
			lastReview = &d
		}
		stats = append(stats, models.WordMasteryStats{
			Word:           row.Word,
			MasteryLevel:   string(analytics.ClassifyMastery(accuracy)),
			LastReviewDate: lastReview,
			ReviewCount:    row.ReviewCount,
			AccuracyRate:   accuracy,
		})
	}
	return stats, nil
}

// Categories buckets every word by its list's difficulty label and counts
// mastery levels inside each bucket. Categories with no studied words still
// appear with their full word_count.
func (s *StatisticsService) Categories(ctx context.Context, userID int64) ([]models.CategoryStats, error) {
	rows, err := s.wordRepo.CategoryRows(ctx, userID)
	if err != nil {
		return nil, err
	}

	buckets := make(map[string]*models.CategoryStats)
	for _, row := range rows {
		category := uncategorized
		if row.Category != nil && *row.Category != "" {
			category = *row.Category
		}
		b, ok := buckets[category]
		if !ok {
			b = &models.CategoryStats{Category: category}
			buckets[category] = b
		}
		b.WordCount++
		switch analytics.ClassifyMastery(wordAccuracy(row)) {
		case analytics.Mastered:
			b.MasteredCount++
		case analytics.Learning:
			b.LearningCount++
		default:
			b.NotStartedCount++
		}
	}

	stats := make([]models.CategoryStats, 0, len(buckets))
	for _, b := range buckets {
		stats = append(stats, *b)
	}
	sort.Slice(stats, func(i, j int) bool { return stats[i].Category < stats[j].Category })
	return stats, nil
}

// wordAccuracy supplies the defined default (0) for never-studied words so
// the classifier never sees an undefined value.
func wordAccuracy(row models.WordAccuracy) float64 {
	if row.ReviewCount == 0 {
		return 0
	}
	return float64(row.CorrectCount) / float64(row.ReviewCount) * 100
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
