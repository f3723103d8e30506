package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"wordtrail-backend/internal/models"
)

type ReviewRepo struct {
	pool *pgxpool.Pool
}

func NewReviewRepo(pool *pgxpool.Pool) *ReviewRepo {
	return &ReviewRepo{pool: pool}
}

const reviewColumns = "schedule_id, user_id, word_id, review_date, repeat_count, memory_strength"

func (r *ReviewRepo) scanRows(rows pgx.Rows) ([]models.ReviewSchedule, error) {
	defer rows.Close()

	entries := []models.ReviewSchedule{}
	for rows.Next() {
		var e models.ReviewSchedule
		if err := rows.Scan(&e.ScheduleID, &e.UserID, &e.WordID, &e.ReviewDate, &e.RepeatCount, &e.MemoryStrength); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *ReviewRepo) ListAll(ctx context.Context, userID int64) ([]models.ReviewSchedule, error) {
	rows, err := r.pool.Query(ctx,
		"SELECT "+reviewColumns+" FROM review_schedules WHERE user_id = $1 ORDER BY review_date ASC",
		userID)
	if err != nil {
		return nil, err
	}
	return r.scanRows(rows)
}

// ListDue returns entries due at or before asOf, earliest due first.
func (r *ReviewRepo) ListDue(ctx context.Context, userID int64, asOf time.Time) ([]models.ReviewSchedule, error) {
	rows, err := r.pool.Query(ctx,
		"SELECT "+reviewColumns+" FROM review_schedules WHERE user_id = $1 AND review_date <= $2 ORDER BY review_date ASC",
		userID, asOf)
	if err != nil {
		return nil, err
	}
	return r.scanRows(rows)
}

func (r *ReviewRepo) CountDue(ctx context.Context, userID int64, asOf time.Time) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx,
		"SELECT COUNT(*) FROM review_schedules WHERE user_id = $1 AND review_date <= $2",
		userID, asOf).Scan(&n)
	return n, err
}

func (r *ReviewRepo) Get(ctx context.Context, scheduleID int64) (models.ReviewSchedule, error) {
	var e models.ReviewSchedule
	err := r.pool.QueryRow(ctx,
		"SELECT "+reviewColumns+" FROM review_schedules WHERE schedule_id = $1",
		scheduleID).Scan(&e.ScheduleID, &e.UserID, &e.WordID, &e.ReviewDate, &e.RepeatCount, &e.MemoryStrength)
	return e, err
}

// Create inserts a new schedule entry. Uniqueness per (user, word) is not
// enforced here; callers wanting a single active entry must check first.
func (r *ReviewRepo) Create(ctx context.Context, userID, wordID int64, due time.Time, repeatCount int, memoryStrength float64) (models.ReviewSchedule, error) {
	e := models.ReviewSchedule{
		UserID:         userID,
		WordID:         wordID,
		ReviewDate:     models.DateTime{Time: due},
		RepeatCount:    repeatCount,
		MemoryStrength: &memoryStrength,
	}
	err := r.pool.QueryRow(ctx,
		`INSERT INTO review_schedules (user_id, word_id, review_date, repeat_count, memory_strength)
		 VALUES ($1, $2, $3, $4, $5) RETURNING schedule_id`,
		userID, wordID, due, repeatCount, memoryStrength).Scan(&e.ScheduleID)
	if err != nil {
		return models.ReviewSchedule{}, err
	}
	return e, nil
}

// Update patches the supplied fields. Callers must pass at least one
// non-nil field; a missing row surfaces as pgx.ErrNoRows.
func (r *ReviewRepo) Update(ctx context.Context, scheduleID int64, due *time.Time, repeatCount *int, memoryStrength *float64) error {
	sets := []string{}
	args := []interface{}{}
	idx := 1

	if due != nil {
		sets = append(sets, fmt.Sprintf("review_date = $%d", idx))
		args = append(args, *due)
		idx++
	}
	if repeatCount != nil {
		sets = append(sets, fmt.Sprintf("repeat_count = $%d", idx))
		args = append(args, *repeatCount)
		idx++
	}
	if memoryStrength != nil {
		sets = append(sets, fmt.Sprintf("memory_strength = $%d", idx))
		args = append(args, *memoryStrength)
		idx++
	}
	if len(sets) == 0 {
		return fmt.Errorf("no fields to update")
	}

	query := fmt.Sprintf("UPDATE review_schedules SET %s WHERE schedule_id = $%d", strings.Join(sets, ", "), idx)
	args = append(args, scheduleID)

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// Upcoming groups the user's pending reviews from `from` onward by word and
// repetition number, soonest group first.
func (r *ReviewRepo) Upcoming(ctx context.Context, userID int64, from time.Time, limit int) ([]models.UpcomingReview, error) {
	query := `SELECT w.word, r.repeat_count, COUNT(*)
		FROM review_schedules r
		JOIN words w ON r.word_id = w.word_id
		WHERE r.user_id = $1 AND r.review_date >= $2
		GROUP BY w.word, r.repeat_count
		ORDER BY MIN(r.review_date) ASC
		LIMIT $3`

	rows, err := r.pool.Query(ctx, query, userID, from, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	groups := []models.UpcomingReview{}
	for rows.Next() {
		var g models.UpcomingReview
		if err := rows.Scan(&g.Word, &g.RepeatCount, &g.Count); err != nil {
			return nil, err
		}
		groups = append(groups, g)
	}
	return groups, rows.Err()
}
