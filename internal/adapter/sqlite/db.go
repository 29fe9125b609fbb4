// Package sqlite opens the single-file dictionary store and manages its schema
// and transactions.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/mattn/go-sqlite3"
	"github.com/pressly/goose/v3"

	"github.com/heartmarshall/svenska-backend/internal/config"
	"github.com/heartmarshall/svenska-backend/migrations"
)

// DriverName is the database/sql driver registered by this package. It is
// go-sqlite3 with a unicode_lower(text) SQL function, since the built-in
// lower() only folds ASCII.
const DriverName = "sqlite3_svenska"

func init() {
	sql.Register(DriverName, &sqlite3.SQLiteDriver{
		ConnectHook: func(conn *sqlite3.SQLiteConn) error {
			return conn.RegisterFunc("unicode_lower", strings.ToLower, true)
		},
	})
}

// Open opens the database file configured in cfg with foreign keys enabled.
func Open(ctx context.Context, cfg config.SQLiteConfig) (*sql.DB, error) {
	return OpenPath(ctx, cfg.Path)
}

// OpenPath opens the database at path (":memory:" for a private in-memory
// database) and pings it. The pool is limited to one connection: SQLite has
// a single writer and an in-memory database exists per connection.
func OpenPath(ctx context.Context, path string) (*sql.DB, error) {
	db, err := sql.Open(DriverName, path+"?_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite %s: %w", path, err)
	}
	return db, nil
}

// ResetSchema drops every dictionary table and recreates it from the
// embedded migrations.
func ResetSchema(ctx context.Context, db *sql.DB) error {
	return migrations.Reset(ctx, db, goose.DialectSQLite3, migrations.SQLite())
}

// Migrate applies pending migrations without touching existing data.
func Migrate(ctx context.Context, db *sql.DB) error {
	return migrations.Up(ctx, db, goose.DialectSQLite3, migrations.SQLite())
}

// RunInTx executes fn within a transaction. It commits when fn returns nil,
// rolls back when fn returns an error, and rolls back and re-panics when fn
// panics.
func RunInTx(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			return fmt.Errorf("rollback failed: %w (original error: %v)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
