package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"wordtrail-backend/internal/models"
)

// WordRepo is a read-only view over the word catalog owned by the catalog
// service. This service only checks existence and aggregates study history
// against it.
type WordRepo struct {
	pool *pgxpool.Pool
}

func NewWordRepo(pool *pgxpool.Pool) *WordRepo {
	return &WordRepo{pool: pool}
}

func (r *WordRepo) Exists(ctx context.Context, wordID int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		"SELECT EXISTS(SELECT 1 FROM words WHERE word_id = $1)", wordID).Scan(&exists)
	return exists, err
}

// MasteryRows aggregates the user's study history per word, most recently
// reviewed first with never-studied words last.
func (r *WordRepo) MasteryRows(ctx context.Context, userID int64, limit int) ([]models.WordAccuracy, error) {
	query := `SELECT w.word_id, w.word,
			COUNT(sl.log_id) AS review_count,
			COALESCE(SUM(CASE WHEN sl.status = 'correct' THEN 1 ELSE 0 END), 0) AS correct_count,
			MAX(sl.study_time) AS last_review
		FROM words w
		LEFT JOIN study_logs sl ON sl.word_id = w.word_id AND sl.user_id = $1
		GROUP BY w.word_id, w.word
		ORDER BY MAX(sl.study_time) DESC NULLS LAST
		LIMIT $2`

	rows, err := r.pool.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats := []models.WordAccuracy{}
	for rows.Next() {
		var wa models.WordAccuracy
		if err := rows.Scan(&wa.WordID, &wa.Word, &wa.ReviewCount, &wa.CorrectCount, &wa.LastReview); err != nil {
			return nil, err
		}
		stats = append(stats, wa)
	}
	return stats, rows.Err()
}

// CategoryRows returns every word with its list's difficulty label and the
// user's aggregate accuracy on it. Words on lists without a label come back
// with a nil category.
func (r *WordRepo) CategoryRows(ctx context.Context, userID int64) ([]models.WordAccuracy, error) {
	query := `SELECT w.word_id, w.word, wl.difficulty,
			COUNT(sl.log_id) AS review_count,
			COALESCE(SUM(CASE WHEN sl.status = 'correct' THEN 1 ELSE 0 END), 0) AS correct_count
		FROM words w
		LEFT JOIN word_lists wl ON w.list_id = wl.list_id
		LEFT JOIN study_logs sl ON sl.word_id = w.word_id AND sl.user_id = $1
		GROUP BY w.word_id, w.word, wl.difficulty`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats := []models.WordAccuracy{}
	for rows.Next() {
		var wa models.WordAccuracy
		if err := rows.Scan(&wa.WordID, &wa.Word, &wa.Category, &wa.ReviewCount, &wa.CorrectCount); err != nil {
			return nil, err
		}
		stats = append(stats, wa)
	}
	return stats, rows.Err()
}
