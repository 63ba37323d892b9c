package sqldb

import "github.com/jmoiron/sqlx"

// schema contains the DDL to set up the database. It runs on startup
// and is safe to run repeatedly (IF NOT EXISTS throughout).
// Portable across SQLite and PostgreSQL.
const schema = `
CREATE TABLE IF NOT EXISTS users (
    id TEXT PRIMARY KEY,
    username TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL,
    created_at BIGINT NOT NULL
);

CREATE TABLE IF NOT EXISTS candidates (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL UNIQUE,
    party TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS posts (
    id TEXT PRIMARY KEY,
    user_id TEXT NOT NULL REFERENCES users(id),
    candidate_id TEXT NOT NULL REFERENCES candidates(id),
    flyer_count INTEGER NOT NULL,
    photo_url TEXT NOT NULL,
    created_at BIGINT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_posts_candidate_id ON posts(candidate_id);
CREATE INDEX IF NOT EXISTS idx_posts_created_at ON posts(created_at);
`

// runMigrations executes the schema setup.
func runMigrations(db *sqlx.DB) error {
	_, err := db.Exec(schema)
	return err
}
