package importer

import (
	"strings"

	"github.com/heartmarshall/svenska-backend/internal/app/importer/folkets"
	"github.com/heartmarshall/svenska-backend/internal/domain"
)

// MergeStats counts what the merge store did with incoming records.
type MergeStats struct {
	Created           int
	Merged            int
	FieldsFilled      int
	ExamplesAdded     int
	IdiomsAdded       int
	DuplicatesSkipped int
	BlankKeysSkipped  int
}

// MergeStore accumulates dictionary entries keyed by merge key. Entries keep
// the order in which their key was first seen.
type MergeStore struct {
	entries []domain.DictionaryEntry
	index   map[string]int
	stats   MergeStats
}

// NewMergeStore creates an empty MergeStore.
func NewMergeStore() *MergeStore {
	return &MergeStore{index: make(map[string]int)}
}

// Len returns the number of distinct entries.
func (s *MergeStore) Len() int {
	return len(s.entries)
}

// Stats returns counters accumulated so far.
func (s *MergeStore) Stats() MergeStats {
	return s.stats
}

// Entries returns the merged entries in first-seen order. The slice is owned
// by the store.
func (s *MergeStore) Entries() []domain.DictionaryEntry {
	return s.entries
}

// Get returns the entry for a merge key.
func (s *MergeStore) Get(key string) (*domain.DictionaryEntry, bool) {
	i, ok := s.index[key]
	if !ok {
		return nil, false
	}
	return &s.entries[i], true
}

// ApplyPrimary merges a Swedish-to-English record. The headword is Swedish;
// gloss values are Swedish and their translations English. A new key creates
// an entry. An existing key only gains the optional fields it lacks, plus
// examples, idioms and variants.
func (s *MergeStore) ApplyPrimary(rec folkets.Record) {
	key := domain.MergeKey(rec.Headword)
	if blankKey(key) {
		s.stats.BlankKeysSkipped++
		return
	}

	e, ok := s.Get(key)
	if !ok {
		e = s.create(key, domain.NewDictionaryEntry(
			key,
			domain.StripPipes(rec.Headword),
			rec.PrimaryTranslation(),
			domain.MapWordClass(rec.Class),
		))
	} else {
		s.stats.Merged++
	}

	if rec.Definition != nil {
		s.fill(&e.SwedishDefinition, rec.Definition.Value)
		s.fill(&e.EnglishDefinition, rec.Definition.Translation)
	}
	if rec.Explanation != nil {
		s.fill(&e.SwedishExplanation, rec.Explanation.Value)
		s.fill(&e.EnglishExplanation, rec.Explanation.Translation)
	}
	s.fill(&e.GrammarNotes, strings.Join(rec.Grammar, "\n"))
	s.fill(&e.Antonyms, strings.Join(rec.Antonyms, ", "))

	for _, ex := range rec.Examples {
		s.addExample(e, ex.Value, ex.Translation)
	}
	for _, id := range rec.Idioms {
		s.addIdiom(e, id.Value, id.Translation)
	}

	if domain.StripPipes(rec.Headword) != e.SwedishWord {
		e.AddVariant(domain.StripPipes(rec.Headword))
	}
	for _, v := range rec.Variants {
		e.AddVariant(domain.StripPipes(v))
	}
}

// supplement is the part of an English-to-Swedish record shared by every
// Swedish translation it lists.
type supplement struct {
	explanation *folkets.Gloss
	grammar     string
	examples    []folkets.Gloss
	idioms      []folkets.Gloss
}

// ApplySupplement merges an English-to-Swedish record. The headword is
// English; gloss values are English and their translations Swedish. Each
// translation is a merge key: an existing entry only gains what it lacks, a
// missing key gets a new entry seeded from this record.
func (s *MergeStore) ApplySupplement(rec folkets.Record) {
	sup := supplement{
		explanation: rec.Explanation,
		grammar:     strings.Join(rec.Grammar, "\n"),
		examples:    rec.Examples,
		idioms:      rec.Idioms,
	}

	for _, tr := range rec.Translations {
		key := domain.MergeKey(tr)
		if blankKey(key) {
			s.stats.BlankKeysSkipped++
			continue
		}

		e, ok := s.Get(key)
		if !ok {
			e = s.create(key, domain.NewDictionaryEntry(
				key,
				domain.StripPipes(tr),
				rec.Headword,
				domain.MapWordClass(rec.Class),
			))
		} else {
			s.stats.Merged++
		}

		if sup.explanation != nil {
			s.fill(&e.SwedishExplanation, sup.explanation.Translation)
			s.fill(&e.EnglishExplanation, sup.explanation.Value)
		}
		s.fill(&e.GrammarNotes, sup.grammar)

		for _, ex := range sup.examples {
			s.addExample(e, ex.Translation, ex.Value)
		}
		for _, id := range sup.idioms {
			s.addIdiom(e, id.Translation, id.Value)
		}
	}
}

func (s *MergeStore) create(key string, e domain.DictionaryEntry) *domain.DictionaryEntry {
	s.entries = append(s.entries, e)
	s.index[key] = len(s.entries) - 1
	s.stats.Created++
	return &s.entries[len(s.entries)-1]
}

func (s *MergeStore) fill(dst **string, value string) {
	if domain.FillIfEmpty(dst, value) {
		s.stats.FieldsFilled++
	}
}

// addExample keeps only pairs with both sides present.
func (s *MergeStore) addExample(e *domain.DictionaryEntry, swedish, english string) {
	if swedish == "" || english == "" {
		return
	}
	if e.AddExample(swedish, english) {
		s.stats.ExamplesAdded++
	} else {
		s.stats.DuplicatesSkipped++
	}
}

func (s *MergeStore) addIdiom(e *domain.DictionaryEntry, swedish, english string) {
	if swedish == "" || english == "" {
		return
	}
	if e.AddIdiom(swedish, english) {
		s.stats.IdiomsAdded++
	} else {
		s.stats.DuplicatesSkipped++
	}
}

// blankKey reports whether a merge key has nothing left once pipes are gone,
// as with a headword of "|".
func blankKey(key string) bool {
	return strings.TrimSpace(key) == ""
}
