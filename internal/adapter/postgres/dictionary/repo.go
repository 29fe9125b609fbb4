// Package dictionary implements the dictionary store using PostgreSQL.
// The dictionary, examples and idioms tables are written as one aggregate:
// the import replaces everything, the lookup reads entries with their children.
package dictionary

import (
	"context"
	"fmt"
	"slices"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/svenska-backend/internal/adapter/postgres"
	"github.com/heartmarshall/svenska-backend/internal/domain"
)

// DefaultBatchSize is used when New receives a non-positive batch size.
const DefaultBatchSize = 1000

// Repo provides dictionary persistence backed by PostgreSQL.
type Repo struct {
	pool      *pgxpool.Pool
	txm       *postgres.TxManager
	batchSize int
}

// New creates a new dictionary repository. Inserts are queued into pgx
// batches of at most batchSize statements.
func New(pool *pgxpool.Pool, txm *postgres.TxManager, batchSize int) *Repo {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	return &Repo{pool: pool, txm: txm, batchSize: batchSize}
}

// ResetSchema drops the dictionary tables and recreates them.
func (r *Repo) ResetSchema(ctx context.Context) error {
	if err := postgres.ResetSchema(ctx, r.pool); err != nil {
		return fmt.Errorf("dictionary: %w", err)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// SaveEntries inserts entries, then examples, then idioms inside one
// transaction. On any error the transaction is rolled back and the returned
// result is zero.
func (r *Repo) SaveEntries(ctx context.Context, entries []domain.DictionaryEntry) (domain.SaveResult, error) {
	var res domain.SaveResult

	err := r.txm.RunInTx(ctx, func(txCtx context.Context) error {
		for chunk := range slices.Chunk(entries, r.batchSize) {
			n, err := r.insertEntries(txCtx, chunk)
			res.Entries += n
			if err != nil {
				return err
			}
		}

		for chunk := range slices.Chunk(collectExamples(entries), r.batchSize) {
			n, err := r.insertExamples(txCtx, chunk)
			res.Examples += n
			if err != nil {
				return err
			}
		}

		for chunk := range slices.Chunk(collectIdioms(entries), r.batchSize) {
			n, err := r.insertIdioms(txCtx, chunk)
			res.Idioms += n
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return domain.SaveResult{}, err
	}

	return res, nil
}

func (r *Repo) insertEntries(ctx context.Context, entries []domain.DictionaryEntry) (int, error) {
	batch := &pgx.Batch{}
	for _, e := range entries {
		batch.Queue(
			`INSERT INTO dictionary (id, swedish_word, english_def, word_class, swedish_lemma, english_lemma,
			 swedish_definition, english_definition, swedish_explanation, english_explanation, grammar_notes, antonyms)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
			e.ID, e.SwedishWord, e.EnglishDef, e.WordClass, e.SwedishLemma, e.EnglishLemma,
			e.SwedishDefinition, e.EnglishDefinition, e.SwedishExplanation, e.EnglishExplanation,
			e.GrammarNotes, e.Antonyms,
		)
	}

	n, err := r.sendBatchExec(ctx, batch)
	if err != nil {
		return n, mapError(err, "dictionary", entries[0].SwedishWord)
	}
	return n, nil
}

func (r *Repo) insertExamples(ctx context.Context, examples []domain.Example) (int, error) {
	batch := &pgx.Batch{}
	for _, ex := range examples {
		batch.Queue(
			`INSERT INTO examples (id, dictionary_id, swedish_sentence, english_sentence, position)
			 VALUES ($1, $2, $3, $4, $5)`,
			ex.ID, ex.EntryID, ex.SwedishSentence, ex.EnglishSentence, ex.Position,
		)
	}

	n, err := r.sendBatchExec(ctx, batch)
	if err != nil {
		return n, mapError(err, "examples", examples[0].EntryID.String())
	}
	return n, nil
}

func (r *Repo) insertIdioms(ctx context.Context, idioms []domain.Idiom) (int, error) {
	batch := &pgx.Batch{}
	for _, id := range idioms {
		batch.Queue(
			`INSERT INTO idioms (id, dictionary_id, swedish_idiom, english_idiom, position)
			 VALUES ($1, $2, $3, $4, $5)`,
			id.ID, id.EntryID, id.SwedishIdiom, id.EnglishIdiom, id.Position,
		)
	}

	n, err := r.sendBatchExec(ctx, batch)
	if err != nil {
		return n, mapError(err, "idioms", idioms[0].EntryID.String())
	}
	return n, nil
}

// sendBatchExec sends a batch and sums RowsAffected over its statements.
func (r *Repo) sendBatchExec(ctx context.Context, batch *pgx.Batch) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)
	results := q.SendBatch(ctx, batch)
	defer results.Close()

	var inserted int
	for range batch.Len() {
		tag, err := results.Exec()
		if err != nil {
			return inserted, fmt.Errorf("batch exec: %w", err)
		}
		inserted += int(tag.RowsAffected())
	}

	return inserted, nil
}

func collectExamples(entries []domain.DictionaryEntry) []domain.Example {
	var out []domain.Example
	for _, e := range entries {
		out = append(out, e.Examples...)
	}
	return out
}

func collectIdioms(entries []domain.DictionaryEntry) []domain.Idiom {
	var out []domain.Idiom
	for _, e := range entries {
		out = append(out, e.Idioms...)
	}
	return out
}
