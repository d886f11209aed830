package database

import (
	"context"
	"fmt"
)

// schema holds the DDL applied on startup. Statements are idempotent so the
// service can be restarted against an existing database.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id         UUID PRIMARY KEY,
		email      TEXT NOT NULL,
		name       TEXT NOT NULL,
		password   TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		CONSTRAINT users_email_key UNIQUE (email)
	)`,
	`CREATE TABLE IF NOT EXISTS transactions (
		id          BIGSERIAL PRIMARY KEY,
		date        DATE NOT NULL,
		description TEXT NOT NULL,
		category    TEXT NOT NULL CHECK (category IN ('income', 'expense')),
		amount      NUMERIC(14, 2) NOT NULL CHECK (amount >= 0)
	)`,
}

// Migrate applies the schema to the connected database.
func Migrate(ctx context.Context, db Service) error {
	for _, stmt := range schema {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}
