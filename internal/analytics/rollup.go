package analytics

import (
	"sort"
	"time"

	"wordtrail-backend/internal/models"
)

// Study time is not measured; daily rollups estimate it as a fixed five
// minutes per logged attempt.
const minutesPerAttempt = 5

// DailyRollups buckets study events by calendar day over the last `days`
// days, newest first. Days with no events are omitted.
func DailyRollups(events []models.StudyLog, days int, now time.Time) []models.DailyStats {
	cutoff := startOfDay(now).AddDate(0, 0, -days)

	type bucket struct {
		day     time.Time
		words   map[int64]struct{}
		total   int
		correct int
	}
	buckets := make(map[int]*bucket)

	for _, e := range events {
		t := e.StudyTime.Time
		if t.Before(cutoff) {
			continue
		}
		key := dayNumber(t)
		b, ok := buckets[key]
		if !ok {
			b = &bucket{day: startOfDay(t), words: make(map[int64]struct{})}
			buckets[key] = b
		}
		b.words[e.WordID] = struct{}{}
		b.total++
		if e.Status == models.StatusCorrect {
			b.correct++
		}
	}

	stats := make([]models.DailyStats, 0, len(buckets))
	for _, b := range buckets {
		stats = append(stats, models.DailyStats{
			Date:         models.NewDate(b.day),
			WordsStudied: len(b.words),
			AccuracyRate: percentage(b.correct, b.total),
			TimeSpent:    b.total * minutesPerAttempt,
		})
	}
	sort.Slice(stats, func(i, j int) bool {
		return stats[i].Date.Time.After(stats[j].Date.Time)
	})
	return stats
}

// WeeklyRollups buckets study events by ISO week start (Monday) over the
// last `weeks` weeks, newest first. StreakDays counts distinct study days
// within each week, independent of how many events each day had.
func WeeklyRollups(events []models.StudyLog, weeks int, now time.Time) []models.WeeklyProgress {
	cutoff := startOfDay(now).AddDate(0, 0, -weeks*7)

	type bucket struct {
		week    time.Time
		words   map[int64]struct{}
		days    map[int]struct{}
		total   int
		correct int
	}
	buckets := make(map[int]*bucket)

	for _, e := range events {
		t := e.StudyTime.Time
		if t.Before(cutoff) {
			continue
		}
		ws := weekStart(t)
		key := dayNumber(ws)
		b, ok := buckets[key]
		if !ok {
			b = &bucket{week: ws, words: make(map[int64]struct{}), days: make(map[int]struct{})}
			buckets[key] = b
		}
		b.words[e.WordID] = struct{}{}
		b.days[dayNumber(t)] = struct{}{}
		b.total++
		if e.Status == models.StatusCorrect {
			b.correct++
		}
	}

	stats := make([]models.WeeklyProgress, 0, len(buckets))
	for _, b := range buckets {
		stats = append(stats, models.WeeklyProgress{
			WeekStart:       models.NewDate(b.week),
			WordsStudied:    len(b.words),
			AverageAccuracy: percentage(b.correct, b.total),
			StudyTime:       0,
			StreakDays:      len(b.days),
		})
	}
	sort.Slice(stats, func(i, j int) bool {
		return stats[i].WeekStart.Time.After(stats[j].WeekStart.Time)
	})
	return stats
}

func percentage(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// weekStart returns the Monday beginning the ISO week containing t.
func weekStart(t time.Time) time.Time {
	d := startOfDay(t)
	offset := int(d.Weekday()) - 1
	if offset < 0 {
		offset = 6 // Sunday
	}
	return d.AddDate(0, 0, -offset)
}
