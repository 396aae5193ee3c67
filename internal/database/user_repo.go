package database

import (
	"database/sql"
	"errors"
	"strings"
	"time"

	"landmarks-backend/internal/models"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
)

// UserRepo handles user database operations
type UserRepo struct {
	db *DB
}

// NewUserRepo creates a new user repository
func NewUserRepo(db *DB) *UserRepo {
	return &UserRepo{db: db}
}

// Create creates a new user
func (r *UserRepo) Create(user *models.User) error {
	result, err := r.db.conn.Exec(`
		INSERT INTO users (username, password_hash)
		VALUES (?, ?)
	`, user.Username, user.PasswordHash)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrUserAlreadyExists
		}
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	user.ID = id

	return nil
}

// GetByID retrieves a user by ID
func (r *UserRepo) GetByID(id int64) (*models.User, error) {
	return r.getOne("SELECT id, username, password_hash, created_at, last_login FROM users WHERE id = ?", id)
}

// GetByUsername retrieves a user by username
func (r *UserRepo) GetByUsername(username string) (*models.User, error) {
	return r.getOne("SELECT id, username, password_hash, created_at, last_login FROM users WHERE username = ?", username)
}

func (r *UserRepo) getOne(query string, arg interface{}) (*models.User, error) {
	user := &models.User{}
	var lastLogin sql.NullTime

	err := r.db.conn.QueryRow(query, arg).Scan(
		&user.ID, &user.Username, &user.PasswordHash,
		&user.CreatedAt, &lastLogin,
	)
	if err == sql.ErrNoRows {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	if lastLogin.Valid {
		user.LastLogin = lastLogin.Time
	}

	return user, nil
}

// UpdateLastLogin updates the user's last login timestamp
func (r *UserRepo) UpdateLastLogin(id int64) error {
	_, err := r.db.conn.Exec("UPDATE users SET last_login = ? WHERE id = ?", time.Now(), id)
	return err
}

// Count returns the total number of users
func (r *UserRepo) Count() (int, error) {
	var count int
	err := r.db.conn.QueryRow("SELECT COUNT(*) FROM users").Scan(&count)
	return count, err
}

// ExistsByUsername checks if a user with the given username exists
func (r *UserRepo) ExistsByUsername(username string) (bool, error) {
	var count int
	err := r.db.conn.QueryRow("SELECT COUNT(*) FROM users WHERE username = ?", username).Scan(&count)
	return count > 0, err
}

// isUniqueViolation reports whether err is a sqlite UNIQUE constraint error
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
