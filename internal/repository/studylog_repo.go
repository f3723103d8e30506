package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"wordtrail-backend/internal/models"
)

type StudyLogRepo struct {
	pool *pgxpool.Pool
}

func NewStudyLogRepo(pool *pgxpool.Pool) *StudyLogRepo {
	return &StudyLogRepo{pool: pool}
}

func (r *StudyLogRepo) List(ctx context.Context, userID int64, limit int) ([]models.StudyLog, error) {
	query := `SELECT log_id, user_id, word_id, study_time, status
		FROM study_logs WHERE user_id = $1 ORDER BY study_time DESC LIMIT $2`

	rows, err := r.pool.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	logs := []models.StudyLog{}
	for rows.Next() {
		var l models.StudyLog
		if err := rows.Scan(&l.LogID, &l.UserID, &l.WordID, &l.StudyTime, &l.Status); err != nil {
			return nil, err
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}

func (r *StudyLogRepo) Create(ctx context.Context, log models.StudyLogCreate) (int64, error) {
	var id int64
	err := r.pool.QueryRow(ctx,
		`INSERT INTO study_logs (user_id, word_id, study_time, status)
		 VALUES ($1, $2, NOW(), $3) RETURNING log_id`,
		log.UserID, log.WordID, log.Status).Scan(&id)
	return id, err
}

func (r *StudyLogRepo) ListSince(ctx context.Context, userID int64, since time.Time) ([]models.StudyLog, error) {
	query := `SELECT log_id, user_id, word_id, study_time, status
		FROM study_logs WHERE user_id = $1 AND study_time >= $2 ORDER BY study_time DESC`

	rows, err := r.pool.Query(ctx, query, userID, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []models.StudyLog
	for rows.Next() {
		var l models.StudyLog
		if err := rows.Scan(&l.LogID, &l.UserID, &l.WordID, &l.StudyTime, &l.Status); err != nil {
			return nil, err
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}

// CountDistinctWordsBetween counts how many different words the user studied
// in [from, to).
func (r *StudyLogRepo) CountDistinctWordsBetween(ctx context.Context, userID int64, from, to time.Time) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(DISTINCT word_id) FROM study_logs
		 WHERE user_id = $1 AND study_time >= $2 AND study_time < $3`,
		userID, from, to).Scan(&n)
	return n, err
}

func (r *StudyLogRepo) CountDistinctWords(ctx context.Context, userID int64) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx,
		"SELECT COUNT(DISTINCT word_id) FROM study_logs WHERE user_id = $1", userID).Scan(&n)
	return n, err
}

func (r *StudyLogRepo) CountSince(ctx context.Context, userID int64, since time.Time) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx,
		"SELECT COUNT(*) FROM study_logs WHERE user_id = $1 AND study_time >= $2",
		userID, since).Scan(&n)
	return n, err
}

// RecentWords returns the most recently studied distinct words, newest
// first, one slot per word.
func (r *StudyLogRepo) RecentWords(ctx context.Context, userID int64, limit int) ([]models.RecentWord, error) {
	query := `SELECT w.word_id, w.word
		FROM study_logs s
		JOIN words w ON s.word_id = w.word_id
		WHERE s.user_id = $1
		GROUP BY w.word_id, w.word
		ORDER BY MAX(s.study_time) DESC
		LIMIT $2`

	rows, err := r.pool.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	words := []models.RecentWord{}
	for rows.Next() {
		var w models.RecentWord
		if err := rows.Scan(&w.WordID, &w.Word); err != nil {
			return nil, err
		}
		words = append(words, w)
	}
	return words, rows.Err()
}

// DailyHistory groups the user's study log by calendar day into test-result
// rows; a "correct" answer on this surface is a known outcome.
func (r *StudyLogRepo) DailyHistory(ctx context.Context, userID int64, limit int) ([]models.TestResult, error) {
	query := `SELECT date_trunc('day', study_time) AS study_date,
			COUNT(DISTINCT word_id) AS total_questions,
			SUM(CASE WHEN status = 'known' THEN 1 ELSE 0 END) AS correct_answers
		FROM study_logs
		WHERE user_id = $1
		GROUP BY date_trunc('day', study_time)
		ORDER BY study_date DESC`

	args := []interface{}{userID}
	if limit > 0 {
		query += " LIMIT $2"
		args = append(args, limit)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := []models.TestResult{}
	for rows.Next() {
		var res models.TestResult
		res.UserID = userID
		res.TestType = "vocabulary"
		if err := rows.Scan(&res.TestDate, &res.TotalQuestions, &res.CorrectAnswers); err != nil {
			return nil, err
		}
		if res.TotalQuestions > 0 {
			res.Score = float64(res.CorrectAnswers) / float64(res.TotalQuestions) * 100
		}
		results = append(results, res)
	}
	return results, rows.Err()
}

// SubmitTest records one graded attempt per question and updates the wrong
// word book for missed answers, all inside a single transaction. A failure
// anywhere rolls back the whole submission so the study log and wrong-word
// records never diverge.
func (r *StudyLogRepo) SubmitTest(ctx context.Context, req models.SubmitTestRequest) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for i, q := range req.Questions {
		answer := req.Answers[i]
		correct := ""
		if q.CorrectAnswer != nil {
			correct = *q.CorrectAnswer
		}

		if answer != correct {
			_, err = tx.Exec(ctx,
				`INSERT INTO wrong_words (user_id, word_id, wrong_count, last_wrong_time, error_type, user_answer, correct_answer)
				 VALUES ($1, $2, 1, NOW(), $3, $4, $5)
				 ON CONFLICT (user_id, word_id) DO UPDATE SET
					wrong_count = wrong_words.wrong_count + 1,
					last_wrong_time = NOW(),
					error_type = EXCLUDED.error_type,
					user_answer = EXCLUDED.user_answer,
					correct_answer = EXCLUDED.correct_answer`,
				req.UserID, q.WordID, req.TestType, answer, correct)
			if err != nil {
				return err
			}
		}

		status := models.StatusUnknown
		if answer == correct {
			status = models.StatusKnown
		}
		_, err = tx.Exec(ctx,
			"INSERT INTO study_logs (user_id, word_id, study_time, status) VALUES ($1, $2, NOW(), $3)",
			req.UserID, q.WordID, status)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}
