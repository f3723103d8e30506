package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"wordtrail-backend/internal/models"
)

type WrongWordRepo struct {
	pool *pgxpool.Pool
}

func NewWrongWordRepo(pool *pgxpool.Pool) *WrongWordRepo {
	return &WrongWordRepo{pool: pool}
}

func (r *WrongWordRepo) ListByUser(ctx context.Context, userID int64) ([]models.WrongWord, error) {
	query := `SELECT ww.id, ww.user_id, ww.word_id, ww.wrong_count, ww.last_wrong_time,
			ww.error_type, ww.user_answer, ww.correct_answer,
			w.word, w.list_id, COALESCE(wl.difficulty, '')
		FROM wrong_words ww
		JOIN words w ON ww.word_id = w.word_id
		LEFT JOIN word_lists wl ON w.list_id = wl.list_id
		WHERE ww.user_id = $1
		ORDER BY ww.last_wrong_time DESC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []models.WrongWord{}
	for rows.Next() {
		var rec models.WrongWord
		word := models.WordSummary{}
		err := rows.Scan(&rec.ID, &rec.UserID, &rec.WordID, &rec.WrongCount, &rec.LastWrongTime,
			&rec.ErrorType, &rec.UserAnswer, &rec.CorrectAnswer,
			&word.Word, &word.ListID, &word.Difficulty)
		if err != nil {
			return nil, err
		}
		word.WordID = rec.WordID
		rec.Word = &word
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Upsert records a mistake: the first one creates the record, repeats bump
// wrong_count and overwrite the latest answer snapshot. One statement, so
// concurrent submissions for the same word cannot duplicate the record.
func (r *WrongWordRepo) Upsert(ctx context.Context, req models.AddWrongWordRequest) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO wrong_words (user_id, word_id, wrong_count, last_wrong_time, error_type, user_answer)
		 VALUES ($1, $2, 1, NOW(), $3, $4)
		 ON CONFLICT (user_id, word_id) DO UPDATE SET
			wrong_count = wrong_words.wrong_count + 1,
			last_wrong_time = NOW(),
			error_type = EXCLUDED.error_type,
			user_answer = EXCLUDED.user_answer`,
		req.UserID, req.WordID, req.ErrorType, req.UserAnswer)
	return err
}

func (r *WrongWordRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.pool.Exec(ctx, "DELETE FROM wrong_words WHERE id = $1", id)
	return err
}

// DeleteByUserWord removes the record when the user marks the word mastered.
func (r *WrongWordRepo) DeleteByUserWord(ctx context.Context, userID, wordID int64) error {
	_, err := r.pool.Exec(ctx,
		"DELETE FROM wrong_words WHERE user_id = $1 AND word_id = $2", userID, wordID)
	return err
}
