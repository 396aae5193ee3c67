package database

import (
	"errors"

	"landmarks-backend/internal/models"
)

var ErrFavoriteNotFound = errors.New("favorite not found")

// FavoriteRepo handles favorite database operations
type FavoriteRepo struct {
	db *DB
}

// NewFavoriteRepo creates a new favorite repository
func NewFavoriteRepo(db *DB) *FavoriteRepo {
	return &FavoriteRepo{db: db}
}

// Upsert saves a favorite for a user. Saving the same page again
// refreshes the cached title and coordinates rather than creating a
// duplicate row.
func (r *FavoriteRepo) Upsert(fav *models.Favorite) error {
	result, err := r.db.conn.Exec(`
		INSERT INTO favorites (user_id, page_id, title, lat, lon)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(user_id, page_id) DO UPDATE SET
			title = excluded.title,
			lat = excluded.lat,
			lon = excluded.lon
	`, fav.UserID, fav.PageID, fav.Title, fav.Lat, fav.Lon)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	fav.ID = id

	return nil
}

// DeleteByPageID removes a user's favorite for the given page
func (r *FavoriteRepo) DeleteByPageID(userID, pageID int64) error {
	result, err := r.db.conn.Exec(
		"DELETE FROM favorites WHERE user_id = ? AND page_id = ?",
		userID, pageID,
	)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrFavoriteNotFound
	}

	return nil
}

// ListByUserID retrieves all favorites for a user, oldest first
func (r *FavoriteRepo) ListByUserID(userID int64) ([]*models.Favorite, error) {
	rows, err := r.db.conn.Query(`
		SELECT id, user_id, page_id, title, lat, lon, created_at
		FROM favorites WHERE user_id = ? ORDER BY created_at, id
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var favorites []*models.Favorite
	for rows.Next() {
		fav := &models.Favorite{}
		err := rows.Scan(
			&fav.ID, &fav.UserID, &fav.PageID,
			&fav.Title, &fav.Lat, &fav.Lon, &fav.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		favorites = append(favorites, fav)
	}

	return favorites, rows.Err()
}

// CountByUserID returns the number of favorites for a user
func (r *FavoriteRepo) CountByUserID(userID int64) (int, error) {
	var count int
	err := r.db.conn.QueryRow("SELECT COUNT(*) FROM favorites WHERE user_id = ?", userID).Scan(&count)
	return count, err
}
