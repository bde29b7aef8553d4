package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/codezen-labs/codezen/internal/auth/domain"
	"github.com/codezen-labs/codezen/internal/auth/store"
	"github.com/codezen-labs/codezen/pkg/cryptox"
	"github.com/codezen-labs/codezen/pkg/slogx"
)

var (
	// ErrValidation reports missing or malformed input the client can fix.
	ErrValidation = errors.New("service: missing or malformed input")

	// ErrUserExists reports a registration against an already-taken email.
	ErrUserExists = errors.New("service: user already exists")

	// ErrInvalidCredentials covers both "no such user" and "wrong password"
	// on login so callers can't enumerate accounts.
	ErrInvalidCredentials = errors.New("service: invalid email or password")

	// ErrWrongPassword reports a failed current-password check on change.
	ErrWrongPassword = errors.New("service: current password is incorrect")

	// ErrUserNotFound reports an authenticated subject that no longer exists.
	ErrUserNotFound = errors.New("service: user not found")
)

// AuthService orchestrates the credential store, the password hasher and the
// token issuer. Each operation is a single request/response transaction; the
// store is the only shared mutable state.
type AuthService struct {
	Store  store.Store
	Tokens *TokenService

	validate *validator.Validate
}

func NewAuthService(st store.Store, tokens *TokenService) *AuthService {
	return &AuthService{
		Store:    st,
		Tokens:   tokens,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

type RegisterInput struct {
	FirstName string `validate:"required"`
	LastName  string `validate:"required"`
	Email     string `validate:"required,email"`
	Password  string `validate:"required"`
}

type LoginInput struct {
	Email    string `validate:"required"`
	Password string `validate:"required"`
}

type ChangePasswordInput struct {
	CurrentPassword string `validate:"required"`
	NewPassword     string `validate:"required"`
}

// Register creates a new user and hands back a fresh session token.
func (s *AuthService) Register(
	ctx context.Context,
	in RegisterInput,
) (domain.User, string, error) {
	log := slogx.FromContext(ctx)

	if err := s.validate.Struct(in); err != nil {
		return domain.User{}, "", fmt.Errorf("%w: %v", ErrValidation, err)
	}

	email := normalizeEmail(in.Email)

	// The existence check gives the common case a friendly failure; the
	// unique email index is what actually closes the race between two
	// concurrent registrations.
	_, err := s.Store.Users().GetUserByEmail(ctx, email)
	switch {
	case err == nil:
		return domain.User{}, "", ErrUserExists
	case !errors.Is(err, store.ErrNotFound):
		log.Error("failed to check for existing user", slog.Any("error", err))
		return domain.User{}, "", err
	}

	hash, err := cryptox.HashPassword(in.Password)
	if err != nil {
		log.Error("failed to hash password", slog.Any("error", err))
		return domain.User{}, "", fmt.Errorf("hash password: %w", err)
	}

	user, err := s.Store.Users().CreateUser(ctx, domain.User{
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        email,
		PasswordHash: hash,
	})
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			// Lost the race against a concurrent registration.
			return domain.User{}, "", ErrUserExists
		}
		log.Error("failed to create user", slog.Any("error", err))
		return domain.User{}, "", err
	}

	token, err := s.Tokens.Issue(user)
	if err != nil {
		log.Error("failed to issue token", slog.String("user_id", user.ID), slog.Any("error", err))
		return domain.User{}, "", err
	}

	log.Info("user registered", slog.String("user_id", user.ID))
	return user, token, nil
}

// Login verifies email/password credentials and issues a session token.
// Unknown email and wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, in LoginInput) (domain.User, string, error) {
	log := slogx.FromContext(ctx)

	if err := s.validate.Struct(in); err != nil {
		return domain.User{}, "", fmt.Errorf("%w: %v", ErrValidation, err)
	}

	// Lookups normalize the same way registration does, so mixed-case
	// logins resolve to the lowercase-stored record.
	user, err := s.Store.Users().GetUserByEmail(ctx, normalizeEmail(in.Email))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, "", ErrInvalidCredentials
		}
		log.Error("failed to look up user", slog.Any("error", err))
		return domain.User{}, "", err
	}

	if err := cryptox.VerifyPassword(in.Password, user.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrMismatch) {
			return domain.User{}, "", ErrInvalidCredentials
		}
		log.Error("failed to verify password", slog.String("user_id", user.ID), slog.Any("error", err))
		return domain.User{}, "", err
	}

	token, err := s.Tokens.Issue(user)
	if err != nil {
		log.Error("failed to issue token", slog.String("user_id", user.ID), slog.Any("error", err))
		return domain.User{}, "", err
	}

	log.Info("user logged in", slog.String("user_id", user.ID))
	return user, token, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
