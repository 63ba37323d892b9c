// Package sqldb provides a SQL-backed implementation of the
// storage.Store interface. It supports SQLite (pure Go driver, no CGO)
// and PostgreSQL behind the same queries: statements are built with
// squirrel using the placeholder format of the active driver.
package sqldb

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"  // PostgreSQL driver
	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/rvcoutinho/santinho/internal/storage"
)

// Driver names accepted by New.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Ensure DB implements storage.Store
var _ storage.Store = (*DB)(nil)

// DB implements storage.Store over SQLite or PostgreSQL.
type DB struct {
	db *sqlx.DB
	sb sq.StatementBuilderType
}

// New opens the database for the given driver and DSN and ensures the
// schema exists. For SQLite the DSN is a file path; parent directories
// are created automatically.
func New(driver, dsn string) (*DB, error) {
	switch driver {
	case DriverSQLite:
		dir := filepath.Dir(dsn)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	case DriverPostgres:
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if driver == DriverSQLite {
		if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
		}
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &DB{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(placeholderFormat(driver)),
	}, nil
}

func placeholderFormat(driver string) sq.PlaceholderFormat {
	if driver == DriverPostgres {
		return sq.Dollar
	}
	return sq.Question
}

// Close closes the database connection.
func (s *DB) Close() error {
	return s.db.Close()
}

// CountUsers returns the number of registered users.
func (s *DB) CountUsers(ctx context.Context) (int64, error) {
	return s.count(ctx, "users")
}

// CountPosts returns the number of submitted posts.
func (s *DB) CountPosts(ctx context.Context) (int64, error) {
	return s.count(ctx, "posts")
}

func (s *DB) count(ctx context.Context, table string) (int64, error) {
	query, args, err := s.sb.Select("COUNT(*)").From(table).ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count query: %w", err)
	}

	var n int64
	if err := s.db.GetContext(ctx, &n, query, args...); err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", table, err)
	}
	return n, nil
}
