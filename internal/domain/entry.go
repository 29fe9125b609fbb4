package domain

import (
	"github.com/google/uuid"
)

// entryNamespace seeds the name-based UUIDs of dictionary rows so that two
// imports of the same documents produce identical identifiers.
var entryNamespace = uuid.NewSHA1(uuid.NameSpaceOID, []byte("svenska.dictionary"))

// DictionaryEntry is a merged bilingual dictionary entry, one per merge key.
type DictionaryEntry struct {
	ID           uuid.UUID
	SwedishWord  string
	EnglishDef   string
	WordClass    string
	SwedishLemma string
	EnglishLemma string

	SwedishDefinition  *string
	EnglishDefinition  *string
	SwedishExplanation *string
	EnglishExplanation *string
	GrammarNotes       *string
	Antonyms           *string

	Examples []Example
	Idioms   []Idiom

	// Variants are alternate surface forms of the headword. They feed
	// lemmatization and are not persisted.
	Variants []string
}

// Example is a bilingual usage sentence owned by a dictionary entry.
type Example struct {
	ID              uuid.UUID
	EntryID         uuid.UUID
	SwedishSentence string
	EnglishSentence string
	Position        int
}

// Idiom is a bilingual idiomatic expression owned by a dictionary entry.
type Idiom struct {
	ID           uuid.UUID
	EntryID      uuid.UUID
	SwedishIdiom string
	EnglishIdiom string
	Position     int
}

// NewDictionaryEntry creates an entry whose ID is derived from the merge key.
func NewDictionaryEntry(key, swedishWord, englishDef, wordClass string) DictionaryEntry {
	return DictionaryEntry{
		ID:          EntryID(key),
		SwedishWord: swedishWord,
		EnglishDef:  englishDef,
		WordClass:   wordClass,
	}
}

// EntryID returns the deterministic entry identifier for a merge key.
func EntryID(key string) uuid.UUID {
	return uuid.NewSHA1(entryNamespace, []byte(key))
}

// AddExample appends an example unless one with the same Swedish sentence
// already exists. Comparison is literal. Reports whether it was added.
func (e *DictionaryEntry) AddExample(swedish, english string) bool {
	for _, ex := range e.Examples {
		if ex.SwedishSentence == swedish {
			return false
		}
	}
	e.Examples = append(e.Examples, Example{
		ID:              uuid.NewSHA1(e.ID, []byte("example:"+swedish)),
		EntryID:         e.ID,
		SwedishSentence: swedish,
		EnglishSentence: english,
		Position:        len(e.Examples),
	})
	return true
}

// AddIdiom appends an idiom unless one with the same Swedish text already
// exists. Comparison is literal. Reports whether it was added.
func (e *DictionaryEntry) AddIdiom(swedish, english string) bool {
	for _, id := range e.Idioms {
		if id.SwedishIdiom == swedish {
			return false
		}
	}
	e.Idioms = append(e.Idioms, Idiom{
		ID:           uuid.NewSHA1(e.ID, []byte("idiom:"+swedish)),
		EntryID:      e.ID,
		SwedishIdiom: swedish,
		EnglishIdiom: english,
		Position:     len(e.Idioms),
	})
	return true
}

// AddVariant records a surface form unless it is empty or already known.
func (e *DictionaryEntry) AddVariant(form string) {
	if form == "" {
		return
	}
	for _, v := range e.Variants {
		if v == form {
			return
		}
	}
	e.Variants = append(e.Variants, form)
}

// FillIfEmpty sets *dst to value when the field is unset or blank and value
// is non-empty. A populated field is never overwritten. Reports whether the
// field changed.
func FillIfEmpty(dst **string, value string) bool {
	if value == "" {
		return false
	}
	if *dst != nil && **dst != "" {
		return false
	}
	*dst = &value
	return true
}

// Deref returns the pointed-to string, or "" for nil.
func Deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// SaveResult counts the rows a store wrote for one import.
type SaveResult struct {
	Entries  int
	Examples int
	Idioms   int
}
