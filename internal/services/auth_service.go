package services

import (
	"context"
	"errors"
	"time"

	"wholesale_manager/internal/metrics"
	"wholesale_manager/internal/models"
	"wholesale_manager/internal/redis"
	"wholesale_manager/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrForbidden          = errors.New("insufficient permissions")
	ErrSessionExpired     = errors.New("session expired")
)

// SessionStore is the slice of the redis client the auth service needs.
type SessionStore interface {
	SetSession(ctx context.Context, token string, session *redis.Session, ttl time.Duration) error
	GetSession(ctx context.Context, token string) (*redis.Session, error)
	DeleteSession(ctx context.Context, token string) error
}

type AuthService interface {
	Login(ctx context.Context, username, password string) (string, *redis.Session, error)
	Logout(ctx context.Context, token string) error
	Resolve(ctx context.Context, token string) (*redis.Session, error)
}

type authService struct {
	userRepo repository.UserRepository
	sessions SessionStore
	ttl      time.Duration
}

func NewAuthService(userRepo repository.UserRepository, sessions SessionStore, ttl time.Duration) AuthService {
	return &authService{userRepo: userRepo, sessions: sessions, ttl: ttl}
}

func (s *authService) Login(ctx context.Context, username, password string) (string, *redis.Session, error) {
	user, err := s.userRepo.GetByUsername(username)
	if err != nil || !user.IsActive {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return "", nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return "", nil, ErrInvalidCredentials
	}

	token := uuid.NewString()
	session := &redis.Session{
		UserID:    user.ID,
		Username:  user.Username,
		Name:      user.Name,
		Role:      user.Role,
		CreatedAt: time.Now(),
	}
	if err := s.sessions.SetSession(ctx, token, session, s.ttl); err != nil {
		return "", nil, err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return token, session, nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	return s.sessions.DeleteSession(ctx, token)
}

func (s *authService) Resolve(ctx context.Context, token string) (*redis.Session, error) {
	session, err := s.sessions.GetSession(ctx, token)
	if err != nil {
		if errors.Is(err, redis.ErrNotFound) {
			return nil, ErrSessionExpired
		}
		return nil, err
	}
	return session, nil
}

// RequireManager checks the Manager role on an already-resolved session.
func RequireManager(session *redis.Session) error {
	if session == nil || session.Role != string(models.RoleManager) {
		return ErrForbidden
	}
	return nil
}
