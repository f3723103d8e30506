package services

import (
	"testing"

	"wordtrail-backend/internal/models"
)

func TestBuildUpcomingReviewsPadsToThree(t *testing.T) {
	tests := []struct {
		name   string
		groups []models.UpcomingReview
	}{
		{"no entries", nil},
		{"one entry", []models.UpcomingReview{{Word: "apple", RepeatCount: 0, Count: 2}}},
		{"two entries", []models.UpcomingReview{
			{Word: "apple", RepeatCount: 0, Count: 2},
			{Word: "banana", RepeatCount: 2, Count: 1},
		}},
		{"exactly three", []models.UpcomingReview{
			{Word: "a", RepeatCount: 0, Count: 1},
			{Word: "b", RepeatCount: 1, Count: 1},
			{Word: "c", RepeatCount: 2, Count: 1},
		}},
		{"more than three", []models.UpcomingReview{
			{Word: "a", RepeatCount: 0, Count: 1},
			{Word: "b", RepeatCount: 1, Count: 1},
			{Word: "c", RepeatCount: 2, Count: 1},
			{Word: "d", RepeatCount: 3, Count: 1},
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			items := buildUpcomingReviews(tc.groups)
			if len(items) != 3 {
				t.Fatalf("got %d items, want exactly 3", len(items))
			}

			for i, g := range tc.groups {
				if i >= 3 {
					break
				}
				if items[i].Word != g.Word || items[i].Count != g.Count {
					t.Errorf("item %d = %+v, want group %+v first", i, items[i], g)
				}
			}

			for i := len(tc.groups); i < 3; i++ {
				want := models.DashboardReviewItem{Word: "-", Type: "第1天复习", Count: 0}
				if items[i] != want {
					t.Errorf("padding item %d = %+v, want %+v", i, items[i], want)
				}
			}
		})
	}
}

func TestReviewLabel(t *testing.T) {
	tests := []struct {
		repeatCount int
		want        string
	}{
		{0, "第1天复习"},
		{1, "第2天复习"},
		{4, "第5天复习"},
	}

	for _, tc := range tests {
		if got := reviewLabel(tc.repeatCount); got != tc.want {
			t.Errorf("reviewLabel(%d) = %q, want %q", tc.repeatCount, got, tc.want)
		}
	}
}
