// Package dictionary implements the dictionary store on a SQLite file.
package dictionary

import (
	"context"
	"database/sql"
	"fmt"
	"slices"

	sq "github.com/Masterminds/squirrel"

	"github.com/heartmarshall/svenska-backend/internal/adapter/sqlite"
	"github.com/heartmarshall/svenska-backend/internal/domain"
)

// DefaultBatchSize is used when New receives a non-positive batch size.
const DefaultBatchSize = 1000

// maxVariables is SQLite's default limit on bound parameters per statement.
const maxVariables = 32766

var (
	entryColumns = []string{
		"id", "swedish_word", "english_def", "word_class", "swedish_lemma", "english_lemma",
		"swedish_definition", "english_definition", "swedish_explanation", "english_explanation",
		"grammar_notes", "antonyms",
	}
	exampleColumns = []string{"id", "dictionary_id", "swedish_sentence", "english_sentence", "position"}
	idiomColumns   = []string{"id", "dictionary_id", "swedish_idiom", "english_idiom", "position"}
)

// Repo provides dictionary persistence backed by SQLite.
type Repo struct {
	db        *sql.DB
	batchSize int
}

// New creates a new dictionary repository. Rows are written with multi-row
// INSERT statements of at most batchSize rows.
func New(db *sql.DB, batchSize int) *Repo {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	return &Repo{db: db, batchSize: batchSize}
}

// ResetSchema drops the dictionary tables and recreates them.
func (r *Repo) ResetSchema(ctx context.Context) error {
	if err := sqlite.ResetSchema(ctx, r.db); err != nil {
		return fmt.Errorf("dictionary: %w", err)
	}
	return nil
}

// SaveEntries inserts entries, then examples, then idioms inside one
// transaction. On any error the transaction is rolled back and the returned
// result is zero.
func (r *Repo) SaveEntries(ctx context.Context, entries []domain.DictionaryEntry) (domain.SaveResult, error) {
	var res domain.SaveResult

	err := sqlite.RunInTx(ctx, r.db, func(tx *sql.Tx) error {
		for chunk := range slices.Chunk(entries, r.rowsPerStatement(len(entryColumns))) {
			insert := sq.Insert("dictionary").Columns(entryColumns...)
			for _, e := range chunk {
				insert = insert.Values(
					e.ID, e.SwedishWord, e.EnglishDef, e.WordClass, e.SwedishLemma, e.EnglishLemma,
					e.SwedishDefinition, e.EnglishDefinition, e.SwedishExplanation, e.EnglishExplanation,
					e.GrammarNotes, e.Antonyms,
				)
			}
			n, err := execInsert(ctx, tx, insert)
			res.Entries += n
			if err != nil {
				return mapError(err, "dictionary", chunk[0].SwedishWord)
			}
		}

		for chunk := range slices.Chunk(collectExamples(entries), r.rowsPerStatement(len(exampleColumns))) {
			insert := sq.Insert("examples").Columns(exampleColumns...)
			for _, ex := range chunk {
				insert = insert.Values(ex.ID, ex.EntryID, ex.SwedishSentence, ex.EnglishSentence, ex.Position)
			}
			n, err := execInsert(ctx, tx, insert)
			res.Examples += n
			if err != nil {
				return mapError(err, "examples", chunk[0].EntryID.String())
			}
		}

		for chunk := range slices.Chunk(collectIdioms(entries), r.rowsPerStatement(len(idiomColumns))) {
			insert := sq.Insert("idioms").Columns(idiomColumns...)
			for _, id := range chunk {
				insert = insert.Values(id.ID, id.EntryID, id.SwedishIdiom, id.EnglishIdiom, id.Position)
			}
			n, err := execInsert(ctx, tx, insert)
			res.Idioms += n
			if err != nil {
				return mapError(err, "idioms", chunk[0].EntryID.String())
			}
		}
		return nil
	})
	if err != nil {
		return domain.SaveResult{}, err
	}

	return res, nil
}

// rowsPerStatement caps the batch size so one statement stays under the
// bound-parameter limit.
func (r *Repo) rowsPerStatement(columns int) int {
	return min(r.batchSize, maxVariables/columns)
}

func execInsert(ctx context.Context, tx *sql.Tx, insert sq.InsertBuilder) (int, error) {
	query, args, err := insert.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build insert: %w", err)
	}

	result, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}
	return int(n), nil
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
