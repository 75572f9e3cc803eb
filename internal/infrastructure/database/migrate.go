package database

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
)

// Schema statements are idempotent so Migrate can run on every startup.
// Books and rental ledger entries reference their owners by business key
// (author name, book name, user nation_id), not by surrogate id.
var migrations = []string{
	`CREATE EXTENSION IF NOT EXISTS "pgcrypto"`,

	`DO $$ BEGIN
		CREATE TYPE book_status AS ENUM ('Available', 'NOTAvailable', 'Rented');
	EXCEPTION
		WHEN duplicate_object THEN NULL;
	END $$`,

	`CREATE TABLE IF NOT EXISTS author (
		id         UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		name       TEXT NOT NULL UNIQUE,
		country    TEXT NOT NULL,
		birth_date TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS book (
		id         UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		name       TEXT NOT NULL UNIQUE,
		year       INTEGER NOT NULL,
		category   TEXT NOT NULL,
		status     book_status NOT NULL DEFAULT 'Available',
		author     TEXT NOT NULL REFERENCES author(name),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS users (
		id         UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		nation_id  TEXT NOT NULL UNIQUE,
		name       TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS users_history (
		id         UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		nation_id  TEXT NOT NULL REFERENCES users(nation_id),
		book_name  TEXT NOT NULL REFERENCES book(name),
		due_date   TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE OR REPLACE FUNCTION set_updated_at() RETURNS TRIGGER AS $$
	BEGIN
		NEW.updated_at = NOW();
		RETURN NEW;
	END;
	$$ LANGUAGE plpgsql`,

	`DO $$ BEGIN
		CREATE TRIGGER author_set_updated_at BEFORE UPDATE ON author
			FOR EACH ROW EXECUTE FUNCTION set_updated_at();
	EXCEPTION
		WHEN duplicate_object THEN NULL;
	END $$`,

	`DO $$ BEGIN
		CREATE TRIGGER book_set_updated_at BEFORE UPDATE ON book
			FOR EACH ROW EXECUTE FUNCTION set_updated_at();
	EXCEPTION
		WHEN duplicate_object THEN NULL;
	END $$`,

	`DO $$ BEGIN
		CREATE TRIGGER users_set_updated_at BEFORE UPDATE ON users
			FOR EACH ROW EXECUTE FUNCTION set_updated_at();
	EXCEPTION
		WHEN duplicate_object THEN NULL;
	END $$`,

	`DO $$ BEGIN
		CREATE TRIGGER users_history_set_updated_at BEFORE UPDATE ON users_history
			FOR EACH ROW EXECUTE FUNCTION set_updated_at();
	EXCEPTION
		WHEN duplicate_object THEN NULL;
	END $$`,
}

// Migrate creates the library schema if it does not exist yet. Each
// statement runs in its own implicit transaction.
func (db *PostgresDB) Migrate(ctx context.Context) error {
	if db.Pool == nil {
		return fmt.Errorf("database pool is not initialized")
	}

	for i, stmt := range migrations {
		if _, err := db.Pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migration statement %d failed: %w", i+1, err)
		}
	}

	log.Info().Int("statements", len(migrations)).Msg("schema migration complete")
	return nil
}
