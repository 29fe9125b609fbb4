// Package migrations embeds the goose SQL migrations for every supported store
// and applies them through a goose provider.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var files embed.FS

// Postgres returns the migration set for PostgreSQL.
func Postgres() fs.FS { return sub("postgres") }

// SQLite returns the migration set for SQLite.
func SQLite() fs.FS { return sub("sqlite") }

func sub(dir string) fs.FS {
	fsys, err := fs.Sub(files, dir)
	if err != nil {
		// The directories are embedded at compile time.
		panic(fmt.Sprintf("migrations: sub %s: %v", dir, err))
	}
	return fsys
}

// Up applies every pending migration.
func Up(ctx context.Context, db *sql.DB, dialect goose.Dialect, fsys fs.FS) error {
	provider, err := goose.NewProvider(dialect, db, fsys)
	if err != nil {
		return fmt.Errorf("goose new provider: %w", err)
	}
	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	return nil
}

// ownedTables lists the tables the dictionary schema creates, children first.
var ownedTables = []string{"idioms", "examples", "dictionary"}

// Reset rolls every applied migration back, drops any owned table goose did
// not record (a store created by another tool), and applies every migration
// again, leaving empty tables with the current schema.
func Reset(ctx context.Context, db *sql.DB, dialect goose.Dialect, fsys fs.FS) error {
	provider, err := goose.NewProvider(dialect, db, fsys)
	if err != nil {
		return fmt.Errorf("goose new provider: %w", err)
	}
	if _, err := provider.DownTo(ctx, 0); err != nil {
		return fmt.Errorf("goose down: %w", err)
	}
	for _, table := range ownedTables {
		if _, err := db.ExecContext(ctx, "DROP TABLE IF EXISTS "+table); err != nil {
			return fmt.Errorf("drop %s: %w", table, err)
		}
	}
	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	return nil
}
