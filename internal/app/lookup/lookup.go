// Package lookup is the read side of the imported dictionary: it finds
// entries by Swedish word and shapes them for output.
package lookup

import (
	"context"
	"fmt"
	"strings"

	"github.com/heartmarshall/svenska-backend/internal/domain"
)

// Reader defines the store contract consumed by the lookup service.
type Reader interface {
	// FindByWord returns the entries whose Swedish word matches
	// case-insensitively. Returns domain.ErrNotFound if none do.
	FindByWord(ctx context.Context, word string) ([]domain.DictionaryEntry, error)
}

// Service answers word lookups.
type Service struct {
	reader Reader
}

// NewService creates a new Service.
func NewService(reader Reader) *Service {
	return &Service{reader: reader}
}

// Lookup returns every entry for word. The word is whitespace-normalized
// and must not be empty.
func (s *Service) Lookup(ctx context.Context, word string) ([]Entry, error) {
	word = domain.NormalizeText(word)
	if word == "" {
		return nil, domain.NewValidationError("word", "required")
	}

	entries, err := s.reader.FindByWord(ctx, word)
	if err != nil {
		return nil, fmt.Errorf("lookup %q: %w", word, err)
	}

	out := make([]Entry, len(entries))
	for i, e := range entries {
		out[i] = toEntry(e)
	}
	return out, nil
}

// Entry is the printable form of a dictionary entry.
type Entry struct {
	ID                 string    `json:"id"`
	SwedishWord        string    `json:"swedish_word"`
	EnglishDef         string    `json:"english_def"`
	WordClass          string    `json:"word_class,omitempty"`
	SwedishLemma       string    `json:"swedish_lemma,omitempty"`
	EnglishLemma       string    `json:"english_lemma,omitempty"`
	SwedishDefinition  string    `json:"swedish_definition,omitempty"`
	EnglishDefinition  string    `json:"english_definition,omitempty"`
	SwedishExplanation string    `json:"swedish_explanation,omitempty"`
	EnglishExplanation string    `json:"english_explanation,omitempty"`
	GrammarNotes       []string  `json:"grammar_notes,omitempty"`
	Antonyms           []string  `json:"antonyms,omitempty"`
	Examples           []Example `json:"examples,omitempty"`
	Idioms             []Idiom   `json:"idioms,omitempty"`
}

// Example is a printable usage sentence pair.
type Example struct {
	Swedish string `json:"swedish"`
	English string `json:"english"`
}

// Idiom is a printable idiom pair.
type Idiom struct {
	Swedish string `json:"swedish"`
	English string `json:"english"`
}

func toEntry(e domain.DictionaryEntry) Entry {
	out := Entry{
		ID:                 e.ID.String(),
		SwedishWord:        e.SwedishWord,
		EnglishDef:         e.EnglishDef,
		WordClass:          e.WordClass,
		SwedishLemma:       e.SwedishLemma,
		EnglishLemma:       e.EnglishLemma,
		SwedishDefinition:  domain.Deref(e.SwedishDefinition),
		EnglishDefinition:  domain.Deref(e.EnglishDefinition),
		SwedishExplanation: domain.Deref(e.SwedishExplanation),
		EnglishExplanation: domain.Deref(e.EnglishExplanation),
		GrammarNotes:       splitNonEmpty(domain.Deref(e.GrammarNotes), "\n"),
		Antonyms:           splitNonEmpty(domain.Deref(e.Antonyms), ", "),
	}
	for _, ex := range e.Examples {
		out.Examples = append(out.Examples, Example{Swedish: ex.SwedishSentence, English: ex.EnglishSentence})
	}
	for _, id := range e.Idioms {
		out.Idioms = append(out.Idioms, Idiom{Swedish: id.SwedishIdiom, English: id.EnglishIdiom})
	}
	return out
}

// splitNonEmpty undoes the joins used when the lists were stored.
func splitNonEmpty(s, sep string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, sep)
}
