// Package folkets streams word records out of Folkets lexikon XML dumps.
// Pure reader: XML in, records out. No database dependencies.
package folkets

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/heartmarshall/svenska-backend/internal/domain"
)

// Reader decodes word elements one at a time.
type Reader struct {
	dec   *xml.Decoder
	dir   Direction
	stats Stats
}

// NewReader creates a Reader over r for the given direction.
func NewReader(r io.Reader, dir Direction) *Reader {
	return &Reader{
		dec:   xml.NewDecoder(r),
		dir:   dir,
		stats: Stats{SkippedByField: make(map[string]int)},
	}
}

// Stats returns counters accumulated so far.
func (r *Reader) Stats() Stats {
	return r.stats
}

// Records yields every complete record whose language matches the reader's
// direction. Incomplete records are skipped and counted. A decoding failure
// yields a single error wrapping domain.ErrMalformedDocument and ends the
// sequence.
func (r *Reader) Records() iter.Seq2[Record, error] {
	return func(yield func(Record, error) bool) {
		for {
			tok, err := r.dec.Token()
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				yield(Record{}, fmt.Errorf("%w: %s: %w", domain.ErrMalformedDocument, r.dir, err))
				return
			}

			se, ok := tok.(xml.StartElement)
			if !ok || se.Name.Local != "word" {
				continue
			}

			var w xmlWord
			if err := r.dec.DecodeElement(&w, &se); err != nil {
				yield(Record{}, fmt.Errorf("%w: %s: %w", domain.ErrMalformedDocument, r.dir, err))
				return
			}
			r.stats.Words++

			if w.Lang != "" && w.Lang != r.dir.SourceLang() {
				r.stats.OtherLanguage++
				continue
			}

			rec := w.toRecord()
			var incomplete *domain.IncompleteRecordError
			if err := rec.Validate(); errors.As(err, &incomplete) {
				r.stats.SkippedByField[incomplete.Field]++
				continue
			}

			r.stats.Yielded++
			if !yield(rec, nil) {
				return
			}
		}
	}
}

// Validate reports whether the record carries the fields every import pass
// relies on: a headword and a primary translation. A headword made only of
// compound separators counts as missing.
func (rec Record) Validate() error {
	if strings.TrimSpace(domain.StripPipes(rec.Headword)) == "" {
		return &domain.IncompleteRecordError{Field: "value"}
	}
	if len(rec.Translations) == 0 {
		return &domain.IncompleteRecordError{Headword: rec.Headword, Field: "translation"}
	}
	return nil
}

// PrimaryTranslation returns the first translation, or "" if there is none.
func (rec Record) PrimaryTranslation() string {
	if len(rec.Translations) == 0 {
		return ""
	}
	return rec.Translations[0]
}

func (w xmlWord) toRecord() Record {
	rec := Record{
		Headword:     strings.TrimSpace(w.Value),
		Class:        strings.TrimSpace(w.Class),
		Lang:         w.Lang,
		Translations: values(w.Translations),
		Grammar:      values(w.Grammar),
		Variants:     values(w.Variants),
		Examples:     glosses(w.Examples),
		Idioms:       glosses(w.Idioms),
	}

	if g := glosses(w.Definitions); len(g) > 0 {
		rec.Definition = &g[0]
	}
	if g := glosses(w.Explanations); len(g) > 0 {
		rec.Explanation = &g[0]
	}

	for _, rel := range w.Related {
		if rel.Type != "antonym" {
			continue
		}
		if v := strings.TrimSpace(rel.Value); v != "" {
			rec.Antonyms = append(rec.Antonyms, v)
		}
	}

	return rec
}

// values collects non-empty trimmed value attributes in document order.
func values(in []xmlValue) []string {
	var out []string
	for _, v := range in {
		if s := strings.TrimSpace(v.Value); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// glosses collects elements with a non-empty value; the nested translation
// is optional.
func glosses(in []xmlGloss) []Gloss {
	var out []Gloss
	for _, g := range in {
		v := strings.TrimSpace(g.Value)
		if v == "" {
			continue
		}
		gl := Gloss{Value: v}
		if g.Translation != nil {
			gl.Translation = strings.TrimSpace(g.Translation.Value)
		}
		out = append(out, gl)
	}
	return out
}
