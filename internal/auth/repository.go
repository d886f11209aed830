package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"ledger/internal/database"
)

var (
	// ErrUserNotFound is returned when no user matches the lookup
	ErrUserNotFound = errors.New("user not found")
	// ErrEmailTaken is returned when the email is already registered
	ErrEmailTaken = errors.New("email already registered")
)

// uniqueViolation is the PostgreSQL error code for unique constraint violations
const uniqueViolation = "23505"

// Repository handles all database operations for users
type Repository struct {
	db database.Service
}

// NewRepository creates a new user repository
func NewRepository(db database.Service) *Repository {
	return &Repository{db: db}
}

// FindByEmail retrieves a user by email. Emails are compared exactly as
// stored; lookups are case-sensitive.
func (r *Repository) FindByEmail(ctx context.Context, email string) (*User, error) {
	query := `SELECT id, email, name, password, created_at FROM users WHERE email = $1`

	user := &User{}
	err := r.db.QueryRow(ctx, query, email).Scan(
		&user.ID,
		&user.Email,
		&user.Name,
		&user.PasswordHash,
		&user.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return user, nil
}

// Create inserts a new user. The users_email_key constraint is the final
// arbiter against concurrent registrations with the same email; violations
// surface as ErrEmailTaken.
func (r *Repository) Create(ctx context.Context, email, name, passwordHash string) (*User, error) {
	query := `
		INSERT INTO users (id, email, name, password, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, email, name, password, created_at
	`

	user := &User{}
	err := r.db.QueryRow(ctx, query, uuid.New().String(), email, name, passwordHash, time.Now()).Scan(
		&user.ID,
		&user.Email,
		&user.Name,
		&user.PasswordHash,
		&user.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}
