package services

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/jackc/pgx/v5"

	"wordtrail-backend/internal/models"
	"wordtrail-backend/internal/repository"
)

// ReviewPolicy derives the next schedule state after a review. The scheduler
// itself never computes curves; swapping the policy changes the spacing
// behavior without touching storage.
type ReviewPolicy func(repeatCount int, memoryStrength float64, wasCorrect bool) (due time.Time, nextRepeat int, nextStrength float64)

// DefaultReviewPolicy follows an SM-2 shaped curve: 1 day after the first
// successful review, 6 days after the second, doubling from there. A miss
// resets the repetition count, halves memory strength and brings the word
// back tomorrow.
func DefaultReviewPolicy(repeatCount int, memoryStrength float64, wasCorrect bool) (time.Time, int, float64) {
	now := time.Now()

	if !wasCorrect {
		strength := memoryStrength * 0.5
		if strength < 0.1 {
			strength = 0.1
		}
		return now.AddDate(0, 0, 1), 0, strength
	}

	next := repeatCount + 1
	var days int
	switch next {
	case 1:
		days = 1
	case 2:
		days = 6
	default:
		days = int(math.Round(6 * math.Pow(2, float64(next-2))))
	}

	strength := memoryStrength + (1-memoryStrength)*0.3
	if strength > 1 {
		strength = 1
	}
	return now.AddDate(0, 0, days), next, strength
}

type ReviewService struct {
	repo   *repository.ReviewRepo
	policy ReviewPolicy
}

func NewReviewService(repo *repository.ReviewRepo, policy ReviewPolicy) *ReviewService {
	if policy == nil {
		policy = DefaultReviewPolicy
	}
	return &ReviewService{repo: repo, policy: policy}
}

// Complete applies the policy to a finished review and persists the new
// schedule state.
func (s *ReviewService) Complete(ctx context.Context, scheduleID int64, correct bool) (models.ReviewSchedule, error) {
	entry, err := s.repo.Get(ctx, scheduleID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.ReviewSchedule{}, &NotFoundError{Message: "Review schedule not found"}
		}
		return models.ReviewSchedule{}, err
	}

	strength := 0.5
	if entry.MemoryStrength != nil {
		strength = *entry.MemoryStrength
	}

	due, nextRepeat, nextStrength := s.policy(entry.RepeatCount, strength, correct)
	if err := s.repo.Update(ctx, scheduleID, &due, &nextRepeat, &nextStrength); err != nil {
		return models.ReviewSchedule{}, err
	}

	entry.ReviewDate = models.DateTime{Time: due}
	entry.RepeatCount = nextRepeat
	entry.MemoryStrength = &nextStrength
	return entry, nil
}
