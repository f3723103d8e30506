package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"wordtrail-backend/internal/models"
)

type FavoriteRepo struct {
	pool *pgxpool.Pool
}

func NewFavoriteRepo(pool *pgxpool.Pool) *FavoriteRepo {
	return &FavoriteRepo{pool: pool}
}

func (r *FavoriteRepo) ListByUser(ctx context.Context, userID int64) ([]models.FavoriteWord, error) {
	query := `SELECT fav_id, user_id, word_id, fav_time
		FROM favorite_words WHERE user_id = $1 ORDER BY fav_time DESC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	favorites := []models.FavoriteWord{}
	for rows.Next() {
		var f models.FavoriteWord
		if err := rows.Scan(&f.FavID, &f.UserID, &f.WordID, &f.FavTime); err != nil {
			return nil, err
		}
		favorites = append(favorites, f)
	}
	return favorites, rows.Err()
}

// Add favorites a word. Returns false when the pair already existed; the
// conflict target makes the operation safe under concurrent duplicates.
func (r *FavoriteRepo) Add(ctx context.Context, userID, wordID int64) (bool, error) {
	tag, err := r.pool.Exec(ctx,
		`INSERT INTO favorite_words (user_id, word_id, fav_time) VALUES ($1, $2, NOW())
		 ON CONFLICT (user_id, word_id) DO NOTHING`,
		userID, wordID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *FavoriteRepo) Remove(ctx context.Context, userID, wordID int64) error {
	_, err := r.pool.Exec(ctx,
		"DELETE FROM favorite_words WHERE user_id = $1 AND word_id = $2", userID, wordID)
	return err
}

func (r *FavoriteRepo) Delete(ctx context.Context, favID int64) error {
	_, err := r.pool.Exec(ctx, "DELETE FROM favorite_words WHERE fav_id = $1", favID)
	return err
}
