//go:build e2e

package e2e_test

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	postgres "github.com/heartmarshall/svenska-backend/internal/adapter/postgres"
	pgdictionary "github.com/heartmarshall/svenska-backend/internal/adapter/postgres/dictionary"
	"github.com/heartmarshall/svenska-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/svenska-backend/internal/app"
	"github.com/heartmarshall/svenska-backend/internal/app/importer"
	"github.com/heartmarshall/svenska-backend/internal/config"
	"github.com/heartmarshall/svenska-backend/internal/lemma"
)

// fixturePath resolves a file in the importer testdata directory.
func fixturePath(name string) string {
	_, currentFile, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(currentFile), "..", "..", "internal", "app", "importer", "testdata", name)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
}

func importConfig() importer.Config {
	return importer.Config{
		SvEnPath:   fixturePath("sv_en.xml"),
		EnSvPath:   fixturePath("en_sv.xml"),
		Lemmatizer: lemma.BackendSnowball,
		Workers:    2,
		BatchSize:  2,
		Timeout:    time.Minute,
	}
}

// postgresStore returns a store on the shared test container.
func postgresStore(t *testing.T) app.Store {
	t.Helper()
	pool := testhelper.SetupTestDB(t)
	return pgdictionary.New(pool, postgres.NewTxManager(pool), 2)
}

// sqliteStore returns a store on a fresh database file.
func sqliteStore(t *testing.T) app.Store {
	t.Helper()
	cfg := &config.Config{
		Store:  config.StoreConfig{Driver: config.DriverSQLite},
		SQLite: config.SQLiteConfig{Path: filepath.Join(t.TempDir(), "dictionary.db")},
	}
	store, closeStore, err := app.OpenStore(context.Background(), cfg, 2)
	require.NoError(t, err)
	t.Cleanup(closeStore)
	return store
}

func runImport(t *testing.T, store app.Store) *importer.Pipeline {
	t.Helper()
	cfg := importConfig()

	lem, err := lemma.Load(cfg.Lemmatizer)
	require.NoError(t, err)

	p := importer.NewPipeline(testLogger(), store, lem, cfg)
	require.NoError(t, p.Run(context.Background()))
	return p
}
