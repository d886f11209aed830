// Package auth implements the credential and session subsystem: password
// hashing, login verification, stateless token issuance, and the bearer-token
// middleware protecting the ledger routes.
package auth

import (
	"context"
	"errors"
	"fmt"
)

// ErrInvalidCredentials is returned on login when the email is unknown or the
// password does not match. Callers must not distinguish the two cases, to
// avoid email enumeration.
var ErrInvalidCredentials = errors.New("invalid credentials")

// UserStore defines the persistence operations the service needs
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*User, error)
	Create(ctx context.Context, email, name, passwordHash string) (*User, error)
}

// Service defines the authentication service interface
type Service interface {
	Register(ctx context.Context, email, name, password string) error
	Login(ctx context.Context, email, password string) (string, error)
}

type service struct {
	users  UserStore
	tokens *TokenService
}

// NewService creates a new authentication service
func NewService(users UserStore, tokens *TokenService) Service {
	return &service{
		users:  users,
		tokens: tokens,
	}
}

// Register creates a new account with a hashed password. A duplicate email
// yields ErrEmailTaken whether it is caught by the pre-check or by the
// database constraint. No token is issued; the client logs in afterwards.
func (s *service) Register(ctx context.Context, email, name, password string) error {
	_, err := s.users.FindByEmail(ctx, email)
	if err == nil {
		return ErrEmailTaken
	}
	if !errors.Is(err, ErrUserNotFound) {
		return fmt.Errorf("failed to check email: %w", err)
	}

	hash, err := HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if _, err := s.users.Create(ctx, email, name, hash); err != nil {
		if errors.Is(err, ErrEmailTaken) {
			return ErrEmailTaken
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

// Login verifies the credentials and returns a signed session token.
func (s *service) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("failed to find user: %w", err)
	}

	if !CheckPassword(password, user.PasswordHash) {
		return "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}

	return token, nil
}
