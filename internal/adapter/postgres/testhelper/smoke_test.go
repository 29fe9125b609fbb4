//go:build integration

package testhelper

import (
	"context"
	"testing"
)

func TestSetupTestDB_Smoke(t *testing.T) {
	pool := SetupTestDB(t)

	entry := SeedEntry(t, pool, "smoke")

	var word string
	err := pool.QueryRow(
		context.Background(),
		`SELECT swedish_word FROM dictionary WHERE id = $1`,
		entry.ID,
	).Scan(&word)
	if err != nil {
		t.Fatalf("expected entry in DB, got error: %v", err)
	}

	if word != entry.SwedishWord {
		t.Fatalf("expected swedish_word %q, got %q", entry.SwedishWord, word)
	}
}
