package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Migrate applies the schema on startup. Every statement is idempotent, so
// repeated or concurrent startups neither error nor drop data.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, schema)
	return err
}

const schema = `
CREATE TABLE IF NOT EXISTS clicks (
    click_id   VARCHAR(12) PRIMARY KEY,
    fbclid     TEXT NOT NULL DEFAULT '',
    useragent  TEXT NOT NULL DEFAULT '',
    ip         TEXT NOT NULL DEFAULT '',
    fbb        TEXT NOT NULL DEFAULT '',
    sub1       TEXT NOT NULL DEFAULT '',
    sub2       TEXT NOT NULL DEFAULT '',
    sub3       TEXT NOT NULL DEFAULT '',
    sub4       TEXT NOT NULL DEFAULT '',
    sub5       TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
    used       BOOLEAN NOT NULL DEFAULT FALSE
);

-- The enrichment columns and the used flag arrived after the first
-- deployments; databases created before them gain the columns here.
ALTER TABLE clicks ADD COLUMN IF NOT EXISTS screen_width  TEXT NOT NULL DEFAULT '';
ALTER TABLE clicks ADD COLUMN IF NOT EXISTS screen_height TEXT NOT NULL DEFAULT '';
ALTER TABLE clicks ADD COLUMN IF NOT EXISTS language      TEXT NOT NULL DEFAULT '';
ALTER TABLE clicks ADD COLUMN IF NOT EXISTS timezone      TEXT NOT NULL DEFAULT '';
ALTER TABLE clicks ADD COLUMN IF NOT EXISTS used          BOOLEAN NOT NULL DEFAULT FALSE;

-- Written by the Telegram bot once a visitor redeems a click_id via /start.
-- Declared here because this service owns the schema, never the rows.
CREATE TABLE IF NOT EXISTS users (
    user_id    BIGINT PRIMARY KEY,
    username   TEXT NOT NULL DEFAULT '',
    first_name TEXT NOT NULL DEFAULT '',
    last_name  TEXT NOT NULL DEFAULT '',
    fbclid     TEXT NOT NULL DEFAULT '',
    useragent  TEXT NOT NULL DEFAULT '',
    ip         TEXT NOT NULL DEFAULT '',
    fbb        TEXT NOT NULL DEFAULT '',
    sub1       TEXT NOT NULL DEFAULT '',
    sub2       TEXT NOT NULL DEFAULT '',
    sub3       TEXT NOT NULL DEFAULT '',
    sub4       TEXT NOT NULL DEFAULT '',
    sub5       TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
`
