// Package lemma reduces Swedish and English text to lemma form using
// per-language models supplied at construction.
package lemma

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// Language identifies a lemmatization model.
type Language string

const (
	Swedish Language = "sv"
	English Language = "en"
)

// ErrUnsupportedLanguage is returned when no model is registered for a language.
var ErrUnsupportedLanguage = errors.New("unsupported language")

// Model maps a single lowercased token to its lemma.
type Model interface {
	Lemma(token string) string
}

// Lemmatizer applies language models to free text. It holds no mutable
// state and is safe for concurrent use when its models are.
type Lemmatizer struct {
	models map[Language]Model
}

// New creates a Lemmatizer from the given models.
func New(models map[Language]Model) *Lemmatizer {
	m := make(map[Language]Model, len(models))
	for lang, model := range models {
		m[lang] = model
	}
	return &Lemmatizer{models: m}
}

// Lemmatize returns the lemma form of text. Tokens of the lowercased input are
// lemmatized one by one. Input without whitespace is treated as a single
// compound and its lemma tokens are concatenated, so the result never contains
// whitespace. Otherwise lemma tokens are joined with single spaces.
func (l *Lemmatizer) Lemmatize(text string, lang Language) (string, error) {
	model, ok := l.models[lang]
	if !ok {
		return "", fmt.Errorf("lemmatize %q: %w: %s", text, ErrUnsupportedLanguage, lang)
	}
	if text == "" {
		return "", nil
	}

	compound := !strings.ContainsFunc(text, unicode.IsSpace)
	tokens := Tokenize(strings.ToLower(text))

	lemmas := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		lemma := tok
		if hasLetter(tok) {
			lemma = model.Lemma(tok)
		}
		if compound {
			lemma = strings.Join(strings.Fields(lemma), "")
		}
		if lemma != "" {
			lemmas = append(lemmas, lemma)
		}
	}

	if compound {
		return strings.Join(lemmas, ""), nil
	}
	return strings.Join(lemmas, " "), nil
}

// LemmaSet lemmatizes each form independently and returns the distinct
// results space-joined in first-seen order. Empty forms are ignored.
func (l *Lemmatizer) LemmaSet(lang Language, forms ...string) (string, error) {
	seen := make(map[string]struct{}, len(forms))
	out := make([]string, 0, len(forms))

	for _, form := range forms {
		lemma, err := l.Lemmatize(form, lang)
		if err != nil {
			return "", err
		}
		if lemma == "" {
			continue
		}
		if _, dup := seen[lemma]; dup {
			continue
		}
		seen[lemma] = struct{}{}
		out = append(out, lemma)
	}

	return strings.Join(out, " "), nil
}

// Tokenize splits text into runs of letters, digits and in-word hyphens or
// apostrophes. Every other non-space rune becomes a token of its own.
// Whitespace separates tokens and is dropped.
func Tokenize(text string) []string {
	var tokens []string
	var cur strings.Builder

	flush := func() {
		if cur.Len() > 0 {
			tokens = append(tokens, cur.String())
			cur.Reset()
		}
	}

	runes := []rune(text)
	for i, r := range runes {
		switch {
		case unicode.IsSpace(r):
			flush()
		case isWordRune(r):
			cur.WriteRune(r)
		case (r == '-' || r == '\'') && cur.Len() > 0 && i+1 < len(runes) && isWordRune(runes[i+1]):
			cur.WriteRune(r)
		default:
			flush()
			tokens = append(tokens, string(r))
		}
	}
	flush()

	return tokens
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r)
}

func hasLetter(s string) bool {
	return strings.IndexFunc(s, unicode.IsLetter) >= 0
}
