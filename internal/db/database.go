package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wojtuswowo/charity-connect-rbac/internal/models"
	"github.com/wojtuswowo/charity-connect-rbac/internal/storage"
)

// Database implements the storage interfaces on PostgreSQL.
type Database struct {
	Pool *pgxpool.Pool
}

var _ storage.Store = (*Database)(nil)

func New(ctx context.Context, dbURL string) (*Database, error) {
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is not set")
	}

	pool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		return nil, fmt.Errorf("unable to create connection pool: %w", err)
	}

	db := &Database{Pool: pool}
	if err := db.initSchema(ctx); err != nil {
		return nil, err
	}

	return db, nil
}

func (db *Database) initSchema(ctx context.Context) error {
	schema := `
	CREATE TABLE IF NOT EXISTS accounts (
		id SERIAL PRIMARY KEY,
		email TEXT UNIQUE NOT NULL,
		password_hash TEXT NOT NULL,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		role TEXT NOT NULL,
		is_approved BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS projects (
		id SERIAL PRIMARY KEY,
		title TEXT NOT NULL,
		description TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'active',
		worker_id INT NOT NULL REFERENCES accounts(id),
		created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
		finished_at TIMESTAMPTZ
	);

	CREATE TABLE IF NOT EXISTS offers (
		id SERIAL PRIMARY KEY,
		title TEXT NOT NULL,
		description TEXT NOT NULL,
		offer_type TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'pending',
		donor_id INT NOT NULL REFERENCES accounts(id),
		project_id INT REFERENCES projects(id),
		created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS applications (
		id SERIAL PRIMARY KEY,
		message TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL DEFAULT 'pending',
		applicant_id INT NOT NULL REFERENCES accounts(id),
		offer_id INT NOT NULL REFERENCES offers(id),
		created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
		UNIQUE(offer_id, applicant_id)
	);

	CREATE TABLE IF NOT EXISTS attachments (
		id SERIAL PRIMARY KEY,
		filename TEXT NOT NULL,
		url TEXT NOT NULL,
		offer_id INT NOT NULL REFERENCES offers(id),
		uploaded_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS ratings (
		id SERIAL PRIMARY KEY,
		score INT NOT NULL CHECK (score BETWEEN 1 AND 5),
		comment TEXT NOT NULL DEFAULT '',
		rating_type TEXT NOT NULL,
		rater_id INT NOT NULL REFERENCES accounts(id),
		application_id INT NOT NULL REFERENCES applications(id),
		created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS inquiries (
		id SERIAL PRIMARY KEY,
		title TEXT NOT NULL,
		message TEXT NOT NULL,
		author_id INT REFERENCES accounts(id),
		created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_offers_status ON offers(status);
	CREATE INDEX IF NOT EXISTS idx_offers_donor ON offers(donor_id);
	CREATE INDEX IF NOT EXISTS idx_offers_project ON offers(project_id);
	CREATE INDEX IF NOT EXISTS idx_applications_offer ON applications(offer_id);
	CREATE INDEX IF NOT EXISTS idx_applications_applicant ON applications(applicant_id);
	CREATE INDEX IF NOT EXISTS idx_attachments_offer ON attachments(offer_id);
	CREATE INDEX IF NOT EXISTS idx_ratings_type ON ratings(rating_type);
	`

	_, err := db.Pool.Exec(ctx, schema)
	return err
}

func (db *Database) Close() {
	db.Pool.Close()
}

// isUniqueViolation reports whether err is a PostgreSQL unique constraint
// violation on the named constraint.
func isUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == "23505" && pgErr.ConstraintName == constraint
}

// mapNoRows translates pgx.ErrNoRows into the domain not-found error.
func mapNoRows(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return models.ErrNotFound
	}
	return err
}
