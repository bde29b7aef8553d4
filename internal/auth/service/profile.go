package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/codezen-labs/codezen/internal/auth/domain"
	"github.com/codezen-labs/codezen/internal/auth/store"
	"github.com/codezen-labs/codezen/pkg/cryptox"
	"github.com/codezen-labs/codezen/pkg/slogx"
)

// GetProfile fetches the user behind an authenticated subject.
func (s *AuthService) GetProfile(ctx context.Context, userID string) (domain.User, error) {
	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrUserNotFound
		}
		return domain.User{}, err
	}
	return user, nil
}

// UpdateProfile merges the provided name/picture fields into the user record.
// Empty patch fields keep their prior value; there is no field clearing.
func (s *AuthService) UpdateProfile(
	ctx context.Context,
	userID string,
	patch domain.ProfilePatch,
) (domain.User, error) {
	log := slogx.FromContext(ctx)

	user, err := s.Store.Users().UpdateProfile(ctx, userID, patch)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrUserNotFound
		}
		log.Error("failed to update profile", slog.String("user_id", userID), slog.Any("error", err))
		return domain.User{}, err
	}

	log.Info("profile updated", slog.String("user_id", userID))
	return user, nil
}

// ChangePassword re-verifies the current password before storing a new hash.
// No new token is issued; existing sessions ride out their 24h horizon.
func (s *AuthService) ChangePassword(
	ctx context.Context,
	userID string,
	in ChangePasswordInput,
) error {
	log := slogx.FromContext(ctx)

	if err := s.validate.Struct(in); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}

	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	if err := cryptox.VerifyPassword(in.CurrentPassword, user.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrMismatch) {
			return ErrWrongPassword
		}
		log.Error("failed to verify current password", slog.String("user_id", userID), slog.Any("error", err))
		return err
	}

	hash, err := cryptox.HashPassword(in.NewPassword)
	if err != nil {
		log.Error("failed to hash new password", slog.Any("error", err))
		return fmt.Errorf("hash password: %w", err)
	}

	if err := s.Store.Users().UpdatePasswordHash(ctx, userID, hash); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrUserNotFound
		}
		log.Error("failed to store new password hash", slog.String("user_id", userID), slog.Any("error", err))
		return err
	}

	log.Info("password changed", slog.String("user_id", userID))
	return nil
}
