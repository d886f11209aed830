package transactions

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"ledger/internal/database"
)

// ErrTransactionNotFound is returned when no ledger entry matches the id
var ErrTransactionNotFound = errors.New("transaction not found")

// Repository handles all database operations for ledger entries
type Repository struct {
	db database.Service
}

// NewRepository creates a new transactions repository
func NewRepository(db database.Service) *Repository {
	return &Repository{db: db}
}

// List retrieves every ledger entry, newest date first
func (r *Repository) List(ctx context.Context) ([]Transaction, error) {
	query := `
		SELECT id, date::text, description, category, amount
		FROM transactions
		ORDER BY date DESC, id DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	entries := []Transaction{}
	for rows.Next() {
		var t Transaction
		if err := rows.Scan(&t.ID, &t.Date, &t.Description, &t.Category, &t.Amount); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		entries = append(entries, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transactions: %w", err)
	}

	return entries, nil
}

// Create inserts a new ledger entry and returns it with its generated id
func (r *Repository) Create(ctx context.Context, req TransactionRequest) (*Transaction, error) {
	query := `
		INSERT INTO transactions (date, description, category, amount)
		VALUES ($1, $2, $3, $4)
		RETURNING id, date::text, description, category, amount
	`

	t := &Transaction{}
	err := r.db.QueryRow(ctx, query, req.Date, req.Description, req.Category, req.Amount).Scan(
		&t.ID,
		&t.Date,
		&t.Description,
		&t.Category,
		&t.Amount,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	return t, nil
}

// Update replaces the mutable fields of an entry and returns the stored row
func (r *Repository) Update(ctx context.Context, id int64, req TransactionRequest) (*Transaction, error) {
	query := `
		UPDATE transactions
		SET date = $1, description = $2, category = $3, amount = $4
		WHERE id = $5
		RETURNING id, date::text, description, category, amount
	`

	t := &Transaction{}
	err := r.db.QueryRow(ctx, query, req.Date, req.Description, req.Category, req.Amount, id).Scan(
		&t.ID,
		&t.Date,
		&t.Description,
		&t.Category,
		&t.Amount,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrTransactionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	return t, nil
}

// Delete removes an entry by id
func (r *Repository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM transactions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return ErrTransactionNotFound
	}

	return nil
}
