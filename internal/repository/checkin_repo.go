package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"wordtrail-backend/internal/models"
)

type CheckinRepo struct {
	pool *pgxpool.Pool
}

func NewCheckinRepo(pool *pgxpool.Pool) *CheckinRepo {
	return &CheckinRepo{pool: pool}
}

func (r *CheckinRepo) List(ctx context.Context, userID int64, limit int) ([]models.CheckInLog, error) {
	query := `SELECT checkin_id, user_id, checkin_date, word_count, study_duration, accuracy_rate
		FROM checkin_logs WHERE user_id = $1 ORDER BY checkin_date DESC LIMIT $2`

	rows, err := r.pool.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	logs := []models.CheckInLog{}
	for rows.Next() {
		var l models.CheckInLog
		if err := rows.Scan(&l.CheckinID, &l.UserID, &l.CheckinDate, &l.WordCount, &l.StudyDuration, &l.AccuracyRate); err != nil {
			return nil, err
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}

// UpsertToday inserts the day's check-in, or returns the existing row
// unchanged if the user already checked in on that day. The insert and the
// uniqueness check are a single statement, so concurrent duplicate requests
// cannot create two rows.
func (r *CheckinRepo) UpsertToday(ctx context.Context, req models.CheckInRequest, day time.Time) (models.CheckInLog, bool, error) {
	insert := `INSERT INTO checkin_logs (user_id, checkin_date, word_count, study_duration, accuracy_rate)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, checkin_date) DO NOTHING
		RETURNING checkin_id`

	l := models.CheckInLog{
		UserID:        req.UserID,
		CheckinDate:   models.NewDate(day),
		WordCount:     req.WordCount,
		StudyDuration: req.StudyDuration,
		AccuracyRate:  req.AccuracyRate,
	}

	err := r.pool.QueryRow(ctx, insert, req.UserID, day, req.WordCount, req.StudyDuration, req.AccuracyRate).Scan(&l.CheckinID)
	if err == nil {
		return l, true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return models.CheckInLog{}, false, err
	}

	// Conflict: read back the row created earlier today.
	query := `SELECT checkin_id, user_id, checkin_date, word_count, study_duration, accuracy_rate
		FROM checkin_logs WHERE user_id = $1 AND checkin_date = $2`
	var existing models.CheckInLog
	err = r.pool.QueryRow(ctx, query, req.UserID, day).Scan(
		&existing.CheckinID, &existing.UserID, &existing.CheckinDate,
		&existing.WordCount, &existing.StudyDuration, &existing.AccuracyRate,
	)
	if err != nil {
		return models.CheckInLog{}, false, err
	}
	return existing, false, nil
}

func (r *CheckinRepo) Dates(ctx context.Context, userID int64) ([]time.Time, error) {
	rows, err := r.pool.Query(ctx,
		"SELECT DISTINCT checkin_date FROM checkin_logs WHERE user_id = $1", userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var dates []time.Time
	for rows.Next() {
		var d time.Time
		if err := rows.Scan(&d); err != nil {
			return nil, err
		}
		dates = append(dates, d)
	}
	return dates, rows.Err()
}

func (r *CheckinRepo) Totals(ctx context.Context, userID int64, now time.Time) (total, thisMonth int, err error) {
	err = r.pool.QueryRow(ctx,
		"SELECT COUNT(*) FROM checkin_logs WHERE user_id = $1", userID).Scan(&total)
	if err != nil {
		return 0, 0, err
	}

	err = r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM checkin_logs
		 WHERE user_id = $1 AND date_trunc('month', checkin_date) = date_trunc('month', $2::date)`,
		userID, now).Scan(&thisMonth)
	if err != nil {
		return 0, 0, err
	}
	return total, thisMonth, nil
}

func (r *CheckinRepo) AverageAccuracy(ctx context.Context, userID int64) (float64, error) {
	var avg float64
	err := r.pool.QueryRow(ctx,
		"SELECT COALESCE(AVG(accuracy_rate), 0) FROM checkin_logs WHERE user_id = $1", userID).Scan(&avg)
	return avg, err
}
