package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/svenska-backend/internal/domain"
)

// SeedEntry inserts a bare dictionary row for the given Swedish word and
// returns it. Examples and idioms are not written.
func SeedEntry(t *testing.T, pool *pgxpool.Pool, swedishWord string) domain.DictionaryEntry {
	t.Helper()

	key := domain.MergeKey(swedishWord) + "-" + uuid.New().String()[:8]
	entry := domain.NewDictionaryEntry(key, swedishWord, "seeded "+swedishWord, domain.WordClassNoun)

	_, err := pool.Exec(context.Background(),
		`INSERT INTO dictionary (id, swedish_word, english_def, word_class)
		 VALUES ($1, $2, $3, $4)`,
		entry.ID, entry.SwedishWord, entry.EnglishDef, entry.WordClass,
	)
	if err != nil {
		t.Fatalf("testhelper: seed entry %q: %v", swedishWord, err)
	}

	return entry
}
