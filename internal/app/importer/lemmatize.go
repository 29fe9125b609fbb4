package importer

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/svenska-backend/internal/domain"
	"github.com/heartmarshall/svenska-backend/internal/lemma"
)

// LemmatizeEntries fills SwedishLemma and EnglishLemma on every entry using
// up to workers goroutines. Each entry is written by exactly one goroutine,
// so the result does not depend on scheduling.
func LemmatizeEntries(ctx context.Context, lem *lemma.Lemmatizer, entries []domain.DictionaryEntry, workers int) error {
	if workers < 1 {
		workers = 1
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := range entries {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return lemmatizeEntry(lem, &entries[i])
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}

func lemmatizeEntry(lem *lemma.Lemmatizer, e *domain.DictionaryEntry) error {
	forms := append([]string{e.SwedishWord}, e.Variants...)

	sv, err := lem.LemmaSet(lemma.Swedish, forms...)
	if err != nil {
		return fmt.Errorf("lemmatize %q: %w", e.SwedishWord, err)
	}
	en, err := lem.Lemmatize(e.EnglishDef, lemma.English)
	if err != nil {
		return fmt.Errorf("lemmatize %q: %w", e.EnglishDef, err)
	}

	e.SwedishLemma = sv
	e.EnglishLemma = en
	return nil
}
