package db

import (
	"context"
	"fmt"
)

// Idempotent DDL executed at startup, one statement per table.
// Deleting an account removes its events and communities; deleting
// a community detaches its events.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS accounts (
		id UUID PRIMARY KEY,
		username TEXT NOT NULL UNIQUE,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		city TEXT NOT NULL,
		about TEXT NOT NULL,
		headline TEXT,
		goals TEXT,
		interests TEXT,
		language TEXT,
		age INT,
		education TEXT,
		hobby TEXT,
		music TEXT,
		sport TEXT,
		books TEXT,
		food TEXT,
		worldview TEXT,
		alcohol TEXT,
		email TEXT,
		phone TEXT,
		tg_username TEXT,
		tg_user_id BIGINT,
		instagram TEXT,
		password_hash TEXT NOT NULL,
		user_type INT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS communities (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT NOT NULL,
		category TEXT NOT NULL,
		location TEXT NOT NULL,
		private BOOLEAN NOT NULL,
		chat_link TEXT,
		creator_id UUID NOT NULL REFERENCES accounts (id) ON DELETE CASCADE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS events (
		id UUID PRIMARY KEY,
		title TEXT NOT NULL,
		description TEXT NOT NULL,
		brief_description TEXT,
		subject INT NOT NULL,
		location_title TEXT NOT NULL,
		datetime_from TIMESTAMPTZ NOT NULL,
		datetime_to TIMESTAMPTZ NOT NULL,
		is_online BOOLEAN NOT NULL,
		is_paid BOOLEAN NOT NULL,
		contact_info TEXT NOT NULL,
		event_limit INT,
		age_limit INT,
		creator_id UUID NOT NULL REFERENCES accounts (id) ON DELETE CASCADE,
		community_id UUID REFERENCES communities (id) ON DELETE SET NULL,
		picture UUID,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS events_datetime_from_idx ON events (datetime_from)`,
}

// Migrate creates the schema if it does not exist yet.
func (db *DB) Migrate(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := db.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to run schema statement: %w", err)
		}
	}
	return nil
}
