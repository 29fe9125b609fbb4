package app

import (
	"context"
	"fmt"

	postgres "github.com/heartmarshall/svenska-backend/internal/adapter/postgres"
	pgdictionary "github.com/heartmarshall/svenska-backend/internal/adapter/postgres/dictionary"
	"github.com/heartmarshall/svenska-backend/internal/adapter/sqlite"
	sqlitedictionary "github.com/heartmarshall/svenska-backend/internal/adapter/sqlite/dictionary"
	"github.com/heartmarshall/svenska-backend/internal/app/importer"
	"github.com/heartmarshall/svenska-backend/internal/app/lookup"
	"github.com/heartmarshall/svenska-backend/internal/config"
)

// Store is a dictionary store usable by both the importer and the lookup.
type Store interface {
	importer.DictionaryWriter
	lookup.Reader
}

// Compile-time interface assertions.
var (
	_ Store = (*pgdictionary.Repo)(nil)
	_ Store = (*sqlitedictionary.Repo)(nil)
)

// OpenStore connects to the store selected by cfg.Store.Driver. batchSize
// bounds the rows per insert batch. The returned close function releases the
// connection and must be called once the store is no longer used.
func OpenStore(ctx context.Context, cfg *config.Config, batchSize int) (Store, func(), error) {
	switch cfg.Store.Driver {
	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			return nil, nil, fmt.Errorf("open postgres store: %w", err)
		}
		repo := pgdictionary.New(pool, postgres.NewTxManager(pool), batchSize)
		return repo, pool.Close, nil

	case config.DriverSQLite:
		db, err := sqlite.Open(ctx, cfg.SQLite)
		if err != nil {
			return nil, nil, fmt.Errorf("open sqlite store: %w", err)
		}
		repo := sqlitedictionary.New(db, batchSize)
		return repo, func() { _ = db.Close() }, nil

	default:
		return nil, nil, fmt.Errorf("open store: unknown driver %q", cfg.Store.Driver)
	}
}
