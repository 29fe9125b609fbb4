package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/heartmarshall/svenska-backend/migrations"
)

// ResetSchema drops every dictionary table and recreates it from the embedded
// migrations. goose needs a *sql.DB, so the pool is wrapped for the duration
// of the call.
func ResetSchema(ctx context.Context, pool *pgxpool.Pool) error {
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	return migrations.Reset(ctx, db, goose.DialectPostgres, migrations.Postgres())
}

// Migrate applies pending migrations without touching existing data.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	return migrations.Up(ctx, db, goose.DialectPostgres, migrations.Postgres())
}
