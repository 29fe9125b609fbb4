package dictionary

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/svenska-backend/internal/adapter/postgres"
	"github.com/heartmarshall/svenska-backend/internal/domain"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var entryColumns = []string{
	"id", "swedish_word", "english_def", "word_class", "swedish_lemma", "english_lemma",
	"swedish_definition", "english_definition", "swedish_explanation", "english_explanation",
	"grammar_notes", "antonyms",
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// FindByWord returns every entry whose Swedish word matches word
// case-insensitively, with examples and idioms in position order.
// Returns domain.ErrNotFound if nothing matches.
func (r *Repo) FindByWord(ctx context.Context, word string) ([]domain.DictionaryEntry, error) {
	query, args, err := psql.
		Select(entryColumns...).
		From("dictionary").
		Where(sq.Expr("lower(swedish_word) = lower(?)", word)).
		OrderBy("swedish_word", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build find query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, mapError(err, "dictionary", word)
	}
	entries, err := pgx.CollectRows(rows, scanEntry)
	if err != nil {
		return nil, mapError(err, "dictionary", word)
	}
	if len(entries) == 0 {
		return nil, mapError(pgx.ErrNoRows, "dictionary", word)
	}

	if err := r.loadChildren(ctx, q, entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func scanEntry(row pgx.CollectableRow) (domain.DictionaryEntry, error) {
	var e domain.DictionaryEntry
	err := row.Scan(
		&e.ID, &e.SwedishWord, &e.EnglishDef, &e.WordClass, &e.SwedishLemma, &e.EnglishLemma,
		&e.SwedishDefinition, &e.EnglishDefinition, &e.SwedishExplanation, &e.EnglishExplanation,
		&e.GrammarNotes, &e.Antonyms,
	)
	return e, err
}

// loadChildren attaches examples and idioms to entries in place.
func (r *Repo) loadChildren(ctx context.Context, q postgres.Querier, entries []domain.DictionaryEntry) error {
	ids := make([]uuid.UUID, len(entries))
	byID := make(map[uuid.UUID]*domain.DictionaryEntry, len(entries))
	for i := range entries {
		ids[i] = entries[i].ID
		byID[entries[i].ID] = &entries[i]
	}

	query, args, err := psql.
		Select("id", "dictionary_id", "swedish_sentence", "english_sentence", "position").
		From("examples").
		Where(sq.Eq{"dictionary_id": ids}).
		OrderBy("dictionary_id", "position").
		ToSql()
	if err != nil {
		return fmt.Errorf("build examples query: %w", err)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return mapError(err, "examples", entries[0].SwedishWord)
	}
	examples, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Example, error) {
		var ex domain.Example
		err := row.Scan(&ex.ID, &ex.EntryID, &ex.SwedishSentence, &ex.EnglishSentence, &ex.Position)
		return ex, err
	})
	if err != nil {
		return mapError(err, "examples", entries[0].SwedishWord)
	}
	for _, ex := range examples {
		if e, ok := byID[ex.EntryID]; ok {
			e.Examples = append(e.Examples, ex)
		}
	}

	query, args, err = psql.
		Select("id", "dictionary_id", "swedish_idiom", "english_idiom", "position").
		From("idioms").
		Where(sq.Eq{"dictionary_id": ids}).
		OrderBy("dictionary_id", "position").
		ToSql()
	if err != nil {
		return fmt.Errorf("build idioms query: %w", err)
	}

	rows, err = q.Query(ctx, query, args...)
	if err != nil {
		return mapError(err, "idioms", entries[0].SwedishWord)
	}
	idioms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Idiom, error) {
		var id domain.Idiom
		err := row.Scan(&id.ID, &id.EntryID, &id.SwedishIdiom, &id.EnglishIdiom, &id.Position)
		return id, err
	})
	if err != nil {
		return mapError(err, "idioms", entries[0].SwedishWord)
	}
	for _, id := range idioms {
		if e, ok := byID[id.EntryID]; ok {
			e.Idioms = append(e.Idioms, id)
		}
	}

	return nil
}
