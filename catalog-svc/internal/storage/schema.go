package storage

import (
	"context"
	"fmt"
	"strings"
)

// DefaultUsers are seeded when the users table is empty.
var DefaultUsers = []string{"Mahantesh", "Shweta", "Manjusha", "Anish", "Raj"}

func schemaStatements() []string {
	return []string{
		`CREATE TABLE IF NOT EXISTS users (
			id         BIGSERIAL PRIMARY KEY,
			name       TEXT NOT NULL UNIQUE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS restaurants (
			id                 BIGSERIAL PRIMARY KEY,
			title              TEXT NOT NULL,
			cuisines           TEXT,
			area               TEXT,
			google_map_link    TEXT,
			added_by           TEXT,
			restaurant_picture BYTEA,
			created_at         TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		"ALTER TABLE restaurants ADD COLUMN IF NOT EXISTS price_per_person NUMERIC(10, 2)",
		`CREATE TABLE IF NOT EXISTS reviews (
			id            BIGSERIAL PRIMARY KEY,
			restaurant_id BIGINT NOT NULL REFERENCES restaurants (id) ON DELETE CASCADE,
			reviewer_name TEXT NOT NULL,
			rating        INTEGER NOT NULL CONSTRAINT reviews_rating_check CHECK (rating >= 1 AND rating <= 5),
			comment       TEXT,
			review_date   TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		"CREATE INDEX IF NOT EXISTS reviews_restaurant_id_idx ON reviews (restaurant_id)",
	}
}

// EnsureSchema provisions the tables and seeds the default users. Running it
// against an already provisioned database changes nothing.
func (r *PostgresRepository) EnsureSchema(ctx context.Context) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	for _, stmt := range schemaStatements() {
		if _, err := r.DB.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema `%s`: %w", firstLine(stmt), classify("exec", err))
		}
	}

	var existing int
	if err := r.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM users").Scan(&existing); err != nil {
		return classify("count users", err)
	}
	if existing > 0 {
		return nil
	}

	for _, name := range DefaultUsers {
		if _, err := r.DB.ExecContext(ctx,
			"INSERT INTO users (name) VALUES ($1) ON CONFLICT (name) DO NOTHING", name); err != nil {
			return classify("seed user "+name, err)
		}
	}
	return nil
}

func firstLine(stmt string) string {
	line, _, _ := strings.Cut(stmt, "\n")
	return line
}
