package auth

import (
	"errors"
	"time"

	"landmarks-backend/internal/database"
	"landmarks-backend/internal/models"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrWeakCredentials    = errors.New("username or password too short")
)

const (
	minUsernameLen = 3
	minPasswordLen = 4
)

// Service handles registration, login, and session validation
type Service struct {
	users      *database.UserRepo
	sessions   *database.SessionRepo
	sessionTTL time.Duration
}

// NewService creates a new auth service
func NewService(users *database.UserRepo, sessions *database.SessionRepo, sessionTTL time.Duration) *Service {
	if sessionTTL <= 0 {
		sessionTTL = 24 * time.Hour
	}
	return &Service{
		users:      users,
		sessions:   sessions,
		sessionTTL: sessionTTL,
	}
}

// LoginResponse represents a successful login
type LoginResponse struct {
	User      *models.User `json:"user"`
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
}

// Register creates a new account with a hashed password
func (s *Service) Register(username, password string) (*models.User, error) {
	if len(username) < minUsernameLen || len(password) < minPasswordLen {
		return nil, ErrWeakCredentials
	}

	passwordHash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:     username,
		PasswordHash: passwordHash,
	}
	if err := s.users.Create(user); err != nil {
		if errors.Is(err, database.ErrUserAlreadyExists) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}

	return user, nil
}

// Login authenticates a user and creates a session
func (s *Service) Login(req models.LoginRequest, ipAddress, userAgent string) (*LoginResponse, error) {
	user, err := s.users.GetByUsername(req.Username)
	if err != nil {
		if errors.Is(err, database.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !VerifyPassword(req.Password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	token, session, err := s.sessions.Create(user.ID, ipAddress, userAgent, s.sessionTTL)
	if err != nil {
		return nil, err
	}

	s.users.UpdateLastLogin(user.ID)

	return &LoginResponse{
		User:      user,
		Token:     token,
		ExpiresAt: session.ExpiresAt,
	}, nil
}

// Logout invalidates a session
func (s *Service) Logout(token string) error {
	return s.sessions.DeleteByToken(token)
}

// ValidateToken validates a session token and returns the user
func (s *Service) ValidateToken(token string) (*models.User, *models.Session, error) {
	session, err := s.sessions.GetByToken(token)
	if err != nil {
		return nil, nil, err
	}

	user, err := s.users.GetByID(session.UserID)
	if err != nil {
		return nil, nil, err
	}

	return user, session, nil
}

// SessionTTL returns the configured session lifetime
func (s *Service) SessionTTL() time.Duration {
	return s.sessionTTL
}
