package analytics

import (
	"testing"
	"time"

	"wordtrail-backend/internal/models"
)

func event(wordID int64, ts string, status string) models.StudyLog {
	t, err := time.Parse("2006-01-02T15:04:05", ts)
	if err != nil {
		panic(err)
	}
	return models.StudyLog{WordID: wordID, StudyTime: models.DateTime{Time: t}, Status: status}
}

func TestDailyRollups(t *testing.T) {
	now := day("2024-05-10")
	events := []models.StudyLog{
		event(1, "2024-05-10T09:00:00", models.StatusCorrect),
		event(1, "2024-05-10T09:05:00", models.StatusIncorrect),
		event(2, "2024-05-10T10:00:00", models.StatusCorrect),
		event(3, "2024-05-09T08:00:00", models.StatusUnknown),
		// outside the 7-day window
		event(4, "2024-04-01T08:00:00", models.StatusCorrect),
	}

	stats := DailyRollups(events, 7, now)
	if len(stats) != 2 {
		t.Fatalf("got %d days, want 2", len(stats))
	}

	today := stats[0]
	if today.Date.Format("2006-01-02") != "2024-05-10" {
		t.Errorf("newest day first, got %s", today.Date.Format("2006-01-02"))
	}
	if today.WordsStudied != 2 {
		t.Errorf("words_studied = %d, want 2 (distinct)", today.WordsStudied)
	}
	if today.TimeSpent != 15 {
		t.Errorf("time_spent = %d, want 5 x 3 events = 15", today.TimeSpent)
	}
	wantAcc := 2.0 / 3.0 * 100
	if today.AccuracyRate < wantAcc-0.001 || today.AccuracyRate > wantAcc+0.001 {
		t.Errorf("accuracy_rate = %v, want %v", today.AccuracyRate, wantAcc)
	}

	yesterday := stats[1]
	if yesterday.AccuracyRate != 0 {
		t.Errorf("day with no correct outcomes should have accuracy 0, got %v", yesterday.AccuracyRate)
	}
}

func TestDailyRollupsEmptyHistory(t *testing.T) {
	stats := DailyRollups(nil, 7, day("2024-05-10"))
	if len(stats) != 0 {
		t.Errorf("got %d days, want 0", len(stats))
	}
}

func TestWeeklyRollupsStudyDays(t *testing.T) {
	// 2024-05-06 is a Monday.
	now := day("2024-05-10")
	events := []models.StudyLog{
		// five events on one day still count as one study day
		event(1, "2024-05-06T09:00:00", models.StatusCorrect),
		event(2, "2024-05-06T09:01:00", models.StatusCorrect),
		event(3, "2024-05-06T09:02:00", models.StatusIncorrect),
		event(4, "2024-05-06T09:03:00", models.StatusIncorrect),
		event(5, "2024-05-06T09:04:00", models.StatusIncorrect),
		event(1, "2024-05-08T09:00:00", models.StatusCorrect),
	}

	stats := WeeklyRollups(events, 4, now)
	if len(stats) != 1 {
		t.Fatalf("got %d weeks, want 1", len(stats))
	}

	week := stats[0]
	if week.WeekStart.Format("2006-01-02") != "2024-05-06" {
		t.Errorf("week_start = %s, want 2024-05-06", week.WeekStart.Format("2006-01-02"))
	}
	if week.StreakDays != 2 {
		t.Errorf("streak_days = %d, want 2 distinct days", week.StreakDays)
	}
	if week.WordsStudied != 5 {
		t.Errorf("words_studied = %d, want 5 distinct words", week.WordsStudied)
	}
	if week.AverageAccuracy != 50 {
		t.Errorf("average_accuracy = %v, want 50", week.AverageAccuracy)
	}
}

func TestWeeklyRollupsBucketsSundayIntoPriorWeek(t *testing.T) {
	now := day("2024-05-13")
	events := []models.StudyLog{
		event(1, "2024-05-12T10:00:00", models.StatusCorrect), // Sunday
		event(2, "2024-05-13T10:00:00", models.StatusCorrect), // Monday
	}

	stats := WeeklyRollups(events, 4, now)
	if len(stats) != 2 {
		t.Fatalf("got %d weeks, want 2", len(stats))
	}
	if stats[0].WeekStart.Format("2006-01-02") != "2024-05-13" {
		t.Errorf("newest week = %s, want 2024-05-13", stats[0].WeekStart.Format("2006-01-02"))
	}
	if stats[1].WeekStart.Format("2006-01-02") != "2024-05-06" {
		t.Errorf("Sunday event should land in week of 2024-05-06, got %s", stats[1].WeekStart.Format("2006-01-02"))
	}
}
