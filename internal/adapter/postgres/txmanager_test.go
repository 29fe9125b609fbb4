//go:build integration

package postgres_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/svenska-backend/internal/adapter/postgres"
	"github.com/heartmarshall/svenska-backend/internal/adapter/postgres/testhelper"
)

const insertEntrySQL = `INSERT INTO dictionary (id, swedish_word, english_def) VALUES ($1, $2, $3)`

func entryExists(t *testing.T, pool *pgxpool.Pool, id uuid.UUID) bool {
	t.Helper()
	var exists bool
	err := pool.QueryRow(
		context.Background(),
		`SELECT EXISTS(SELECT 1 FROM dictionary WHERE id = $1)`,
		id,
	).Scan(&exists)
	if err != nil {
		t.Fatalf("entryExists query: %v", err)
	}
	return exists
}

func TestRunInTx_Commit(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	tm := postgres.NewTxManager(pool)

	id := uuid.New()

	err := tm.RunInTx(context.Background(), func(ctx context.Context) error {
		q := postgres.QuerierFromCtx(ctx, pool)
		_, err := q.Exec(ctx, insertEntrySQL, id, "commit-"+id.String(), "commit")
		return err
	})
	if err != nil {
		t.Fatalf("RunInTx returned error: %v", err)
	}

	if !entryExists(t, pool, id) {
		t.Fatal("expected entry to exist after committed transaction")
	}
}

func TestRunInTx_RollbackOnError(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	tm := postgres.NewTxManager(pool)

	id := uuid.New()
	sentinel := errors.New("write failed")

	err := tm.RunInTx(context.Background(), func(ctx context.Context) error {
		q := postgres.QuerierFromCtx(ctx, pool)
		if _, execErr := q.Exec(ctx, insertEntrySQL, id, "rollback-"+id.String(), "rollback"); execErr != nil {
			t.Fatalf("insert inside tx failed: %v", execErr)
		}
		return sentinel
	})

	if !errors.Is(err, sentinel) {
		t.Fatalf("expected sentinel error, got: %v", err)
	}
	if entryExists(t, pool, id) {
		t.Fatal("expected entry NOT to exist after rolled-back transaction")
	}
}

func TestRunInTx_RollbackOnPanic(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	tm := postgres.NewTxManager(pool)

	id := uuid.New()

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic to be re-raised")
		}
		if r != "test panic" {
			t.Fatalf("expected panic value %q, got %v", "test panic", r)
		}
		if entryExists(t, pool, id) {
			t.Fatal("expected entry NOT to exist after panic-rolled-back transaction")
		}
	}()

	_ = tm.RunInTx(context.Background(), func(ctx context.Context) error {
		q := postgres.QuerierFromCtx(ctx, pool)
		if _, err := q.Exec(ctx, insertEntrySQL, id, "panic-"+id.String(), "panic"); err != nil {
			t.Fatalf("insert inside tx failed: %v", err)
		}
		panic("test panic")
	})
}

func TestRunInTx_RollbackOnCancel(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	tm := postgres.NewTxManager(pool)

	id := uuid.New()
	ctx, cancel := context.WithCancel(context.Background())

	err := tm.RunInTx(ctx, func(ctx context.Context) error {
		q := postgres.QuerierFromCtx(ctx, pool)
		if _, err := q.Exec(ctx, insertEntrySQL, id, "cancel-"+id.String(), "cancel"); err != nil {
			return err
		}
		cancel()
		return ctx.Err()
	})

	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got: %v", err)
	}
	if entryExists(t, pool, id) {
		t.Fatal("expected entry NOT to exist after cancelled transaction")
	}
}

func TestQuerierFromCtx_UsesTx(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	tm := postgres.NewTxManager(pool)

	id := uuid.New()

	err := tm.RunInTx(context.Background(), func(ctx context.Context) error {
		q := postgres.QuerierFromCtx(ctx, pool)
		if _, err := q.Exec(ctx, insertEntrySQL, id, "ctx-"+id.String(), "ctx"); err != nil {
			return err
		}

		var exists bool
		if err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM dictionary WHERE id = $1)`, id).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			t.Fatal("expected entry to be visible within the transaction")
		}
		if entryExists(t, pool, id) {
			t.Fatal("expected entry to be invisible outside the transaction before commit")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("RunInTx returned error: %v", err)
	}
	if !entryExists(t, pool, id) {
		t.Fatal("expected entry to exist after committed transaction")
	}
}

func TestQuerierFromCtx_NoTxReturnsPool(t *testing.T) {
	pool := testhelper.SetupTestDB(t)

	q := postgres.QuerierFromCtx(context.Background(), pool)
	if q != postgres.Querier(pool) {
		t.Fatal("expected pool outside of a transaction")
	}
}
