package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/hospital-platform/auth-service/internal/auth"
	"github.com/hospital-platform/auth-service/internal/config"
	"github.com/hospital-platform/auth-service/internal/domain"
	"github.com/hospital-platform/auth-service/internal/events"
	"github.com/hospital-platform/auth-service/internal/repository"
	apperrors "github.com/hospital-platform/auth-service/pkg/util"
)

// AuthService coordinates registration and login flows.
type AuthService struct {
	users      repository.UserRepository
	tokenMgr   *auth.TokenManager
	dispatcher events.Dispatcher
	bcryptCost int
	now        func() time.Time
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, users repository.UserRepository, dispatcher events.Dispatcher) *AuthService {
	return &AuthService{
		users:      users,
		tokenMgr:   auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenLifetimeSeconds),
		dispatcher: dispatcher,
		bcryptCost: cfg.Auth.BcryptCost,
		now:        time.Now,
	}
}

// Register creates a new account. Duplicate usernames are rejected with
// a conflict error.
func (s *AuthService) Register(ctx context.Context, username, name, password, role string) (*domain.User, error) {
	parsedRole, ok := domain.ParseRole(role)
	if !ok {
		return nil, apperrors.NewValidationError("unknown role", map[string]any{"role": role})
	}

	exists, err := s.users.ExistsByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.NewConflict("username already exists: "+username, nil)
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     username,
		Name:         name,
		PasswordHash: hash,
		Role:         parsedRole,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	s.publish(ctx, events.EventUserRegistered, user.Username, events.UserRegisteredPayload{
		UserID: user.ID,
		Role:   user.Role,
	})
	return user, nil
}

// Login authenticates a user and issues a token asserting the username.
// Unknown usernames and wrong passwords surface the same message so the
// endpoint cannot be used to enumerate accounts.
func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.User, string, time.Time, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", time.Time{}, apperrors.NewUnauthorized("invalid username or password")
		}
		return nil, "", time.Time{}, err
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, apperrors.NewUnauthorized("invalid username or password")
	}

	token, exp, err := s.tokenMgr.GenerateToken(user.Username)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	s.publish(ctx, events.EventUserLoggedIn, user.Username, events.UserLoggedInPayload{
		UserID:         user.ID,
		Role:           user.Role,
		TokenExpiresAt: exp,
	})
	return user, token, exp, nil
}

// TokenManager exposes the underlying token manager for the gRPC
// verification server.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

func (s *AuthService) publish(ctx context.Context, eventType events.EventType, username string, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Username:  username,
		Timestamp: s.now(),
		Payload:   payload,
	})
}
