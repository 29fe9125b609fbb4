package dictionary

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/heartmarshall/svenska-backend/internal/domain"
)

// FindByWord returns every entry whose Swedish word matches word
// case-insensitively (Unicode folding), with examples and idioms in position
// order. Returns domain.ErrNotFound if nothing matches.
func (r *Repo) FindByWord(ctx context.Context, word string) ([]domain.DictionaryEntry, error) {
	query, args, err := sq.
		Select(entryColumns...).
		From("dictionary").
		Where(sq.Expr("unicode_lower(swedish_word) = ?", strings.ToLower(word))).
		OrderBy("swedish_word", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build find query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mapError(err, "dictionary", word)
	}
	defer rows.Close()

	var entries []domain.DictionaryEntry
	for rows.Next() {
		var e domain.DictionaryEntry
		if err := rows.Scan(
			&e.ID, &e.SwedishWord, &e.EnglishDef, &e.WordClass, &e.SwedishLemma, &e.EnglishLemma,
			&e.SwedishDefinition, &e.EnglishDefinition, &e.SwedishExplanation, &e.EnglishExplanation,
			&e.GrammarNotes, &e.Antonyms,
		); err != nil {
			return nil, mapError(err, "dictionary", word)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err, "dictionary", word)
	}
	if len(entries) == 0 {
		return nil, mapError(sql.ErrNoRows, "dictionary", word)
	}

	if err := r.loadChildren(ctx, entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// loadChildren attaches examples and idioms to entries in place.
func (r *Repo) loadChildren(ctx context.Context, entries []domain.DictionaryEntry) error {
	ids := make([]string, len(entries))
	byID := make(map[uuid.UUID]*domain.DictionaryEntry, len(entries))
	for i := range entries {
		ids[i] = entries[i].ID.String()
		byID[entries[i].ID] = &entries[i]
	}

	err := r.selectEach(ctx, sq.Select(exampleColumns...).From("examples"), ids, func(rows *sql.Rows) error {
		var ex domain.Example
		if err := rows.Scan(&ex.ID, &ex.EntryID, &ex.SwedishSentence, &ex.EnglishSentence, &ex.Position); err != nil {
			return err
		}
		if e, ok := byID[ex.EntryID]; ok {
			e.Examples = append(e.Examples, ex)
		}
		return nil
	})
	if err != nil {
		return mapError(err, "examples", entries[0].SwedishWord)
	}

	err = r.selectEach(ctx, sq.Select(idiomColumns...).From("idioms"), ids, func(rows *sql.Rows) error {
		var id domain.Idiom
		if err := rows.Scan(&id.ID, &id.EntryID, &id.SwedishIdiom, &id.EnglishIdiom, &id.Position); err != nil {
			return err
		}
		if e, ok := byID[id.EntryID]; ok {
			e.Idioms = append(e.Idioms, id)
		}
		return nil
	})
	if err != nil {
		return mapError(err, "idioms", entries[0].SwedishWord)
	}

	return nil
}

// selectEach runs base restricted to the given dictionary ids, ordered by
// position, and calls scan for every row.
func (r *Repo) selectEach(ctx context.Context, base sq.SelectBuilder, ids []string, scan func(*sql.Rows) error) error {
	query, args, err := base.
		Where(sq.Eq{"dictionary_id": ids}).
		OrderBy("dictionary_id", "position").
		ToSql()
	if err != nil {
		return fmt.Errorf("build child query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		if err := scan(rows); err != nil {
			return err
		}
	}
	return rows.Err()
}
