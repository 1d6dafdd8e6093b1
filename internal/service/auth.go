package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/sakif/travel-blog/internal/apperror"
	"github.com/sakif/travel-blog/internal/auth"
	"github.com/sakif/travel-blog/internal/model"
	"github.com/sakif/travel-blog/internal/repository"
)

// Client-facing messages for the auth routes.
const (
	MsgRequiredFields = "Required fields missing"
	MsgUserExists     = "User already exists"
	MsgUserNotFound   = "User not found"
	MsgBadPassword    = "Invalid password"
)

// AuthService registers users and checks their credentials.
//
// Login only answers "do these credentials match". It issues no token and
// sets no session, so no route in this API is protected by it.
type AuthService struct {
	users     repository.UserRepository
	passwords *auth.PasswordService
	logger    *slog.Logger
}

func NewAuthService(users repository.UserRepository, passwords *auth.PasswordService, logger *slog.Logger) *AuthService {
	return &AuthService{
		users:     users,
		passwords: passwords,
		logger:    logger,
	}
}

// Register creates a user.
//
// The lookup before the insert gives the common case a clear message. Two
// concurrent registrations for the same name can both pass it; the unique
// index in the store rejects the second insert, and that conflict is reported
// with the same message.
func (s *AuthService) Register(ctx context.Context, username, password string) (*model.User, error) {
	if username == "" || password == "" {
		return nil, apperror.ValidationFailed("", MsgRequiredFields)
	}

	_, err := s.users.GetByUsername(ctx, username)
	switch {
	case err == nil:
		return nil, apperror.ValidationFailed("username", MsgUserExists)
	case !errors.Is(err, apperror.ErrNotFound):
		return nil, fmt.Errorf("service/auth: looking up user %q: %w", username, err)
	}

	stored, err := s.passwords.Hash(password)
	if err != nil {
		if errors.Is(err, auth.ErrPasswordTooLong) {
			return nil, apperror.ValidationFailed("password", "Password must be 72 bytes or fewer")
		}
		return nil, fmt.Errorf("service/auth: hashing password: %w", err)
	}

	user := &model.User{Username: username, Password: stored}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, apperror.ErrConflict) {
			return nil, apperror.ValidationFailed("username", MsgUserExists)
		}
		return nil, fmt.Errorf("service/auth: creating user %q: %w", username, err)
	}

	s.logger.Info("user registered", slog.String("userID", user.ID), slog.String("username", username))
	return user, nil
}

// Login checks a username and password. An unknown username is
// apperror.ErrNotFound and a wrong password is apperror.ErrUnauthorized, so
// the caller can tell the two apart.
func (s *AuthService) Login(ctx context.Context, username, password string) (*model.User, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return nil, apperror.Missing(MsgUserNotFound)
		}
		return nil, fmt.Errorf("service/auth: looking up user %q: %w", username, err)
	}

	if err := s.passwords.Verify(user.Password, password); err != nil {
		if errors.Is(err, auth.ErrInvalidPassword) {
			return nil, apperror.Unauthorized(MsgBadPassword)
		}
		return nil, fmt.Errorf("service/auth: verifying password for %q: %w", username, err)
	}

	return user, nil
}
