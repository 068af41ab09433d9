package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/placez/placez-api/internal/domain"
	"github.com/placez/placez-api/internal/platform/logger"
	"github.com/placez/placez-api/internal/service/auth"
	"github.com/placez/placez-api/internal/store"
)

// UserService orchestrates registration and login, delegating to the
// user store and the token service.
type UserService struct {
	users      store.UserStore
	jwtService auth.JWTService
	hasher     auth.PasswordHasher
	verifier   auth.PasswordVerifier
	logger     *slog.Logger
}

// NewUserService creates a new UserService.
func NewUserService(
	users store.UserStore,
	jwtService auth.JWTService,
	hasher auth.PasswordHasher,
	verifier auth.PasswordVerifier,
	logger *slog.Logger,
) *UserService {
	if users == nil {
		panic("users store cannot be nil")
	}
	if jwtService == nil {
		panic("jwtService cannot be nil")
	}
	if hasher == nil {
		panic("hasher cannot be nil")
	}
	if verifier == nil {
		panic("verifier cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &UserService{
		users:      users,
		jwtService: jwtService,
		hasher:     hasher,
		verifier:   verifier,
		logger:     logger.With(slog.String("component", "user_service")),
	}
}

// Register creates a new user with a hashed password and issues a token
// for the fresh identity. Returns store.ErrEmailExists when the email is
// already taken; in that case nothing is written.
func (s *UserService) Register(
	ctx context.Context,
	name, email, password, imagePath string,
) (*domain.User, string, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	// The unique index is the real guarantee; this pre-check just gives
	// the common case a cheaper failure.
	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, "", store.ErrEmailExists
	} else if !errors.Is(err, store.ErrUserNotFound) {
		return nil, "", fmt.Errorf("failed to check existing user: %w", err)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		log.Error("failed to hash password", slog.String("error", err.Error()))
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := domain.NewUser(name, email, hash, imagePath)
	if err != nil {
		return nil, "", err
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := s.jwtService.GenerateToken(ctx, user.ID, user.Email)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}

	log.Info("user registered", slog.String("user_id", user.ID.Hex()))
	return user, token, nil
}

// Login verifies the credentials and issues a token. An unknown email
// and a wrong password both fail with auth.ErrInvalidCredentials so the
// caller cannot distinguish them.
func (s *UserService) Login(
	ctx context.Context,
	email, password string,
) (*domain.User, string, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return nil, "", auth.ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("failed to look up user: %w", err)
	}

	if err := s.verifier.Compare(user.HashedPassword, password); err != nil {
		return nil, "", auth.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(ctx, user.ID, user.Email)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}

	log.Info("user logged in", slog.String("user_id", user.ID.Hex()))
	return user, token, nil
}

// List returns all registered users. Stripping the password hash from
// the wire representation is the serialization layer's responsibility,
// enforced by the API response types.
func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}
