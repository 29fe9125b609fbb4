package importer

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/svenska-backend/internal/domain"
	"github.com/heartmarshall/svenska-backend/internal/lemma"
)

func TestLemmatizeEntries(t *testing.T) {
	entries := []domain.DictionaryEntry{
		{SwedishWord: "bordet", EnglishDef: "the houses"},
		{SwedishWord: "hus", EnglishDef: "house", Variants: []string{"huset", "husen", "hus"}},
		{SwedishWord: "sjuk|hus", EnglishDef: ""},
	}

	require.NoError(t, LemmatizeEntries(context.Background(), testLemmatizer(), entries, 2))

	assert.Equal(t, "bord", entries[0].SwedishLemma)
	assert.Equal(t, "the house", entries[0].EnglishLemma)
	assert.Equal(t, "hus", entries[1].SwedishLemma)
	assert.Equal(t, "house", entries[1].EnglishLemma)
	assert.NotContains(t, entries[2].SwedishLemma, " ")
	assert.Empty(t, entries[2].EnglishLemma)
}

func TestLemmatizeEntries_ParallelMatchesSequential(t *testing.T) {
	build := func() []domain.DictionaryEntry {
		out := make([]domain.DictionaryEntry, 200)
		for i := range out {
			out[i] = domain.DictionaryEntry{
				SwedishWord: fmt.Sprintf("huset%d", i),
				EnglishDef:  fmt.Sprintf("houses %d", i),
				Variants:    []string{"husen"},
			}
		}
		return out
	}

	seq := build()
	par := build()
	require.NoError(t, LemmatizeEntries(context.Background(), testLemmatizer(), seq, 1))
	require.NoError(t, LemmatizeEntries(context.Background(), testLemmatizer(), par, 8))

	assert.Equal(t, seq, par)
}

func TestLemmatizeEntries_UnsupportedLanguage(t *testing.T) {
	onlySwedish := lemma.New(map[lemma.Language]lemma.Model{lemma.Swedish: tableModel{}})
	entries := []domain.DictionaryEntry{{SwedishWord: "hus", EnglishDef: "house"}}

	err := LemmatizeEntries(context.Background(), onlySwedish, entries, 1)
	assert.ErrorIs(t, err, lemma.ErrUnsupportedLanguage)
}

func TestLemmatizeEntries_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	entries := []domain.DictionaryEntry{{SwedishWord: "hus", EnglishDef: "house"}}
	err := LemmatizeEntries(ctx, testLemmatizer(), entries, 1)
	assert.ErrorIs(t, err, context.Canceled)
}
