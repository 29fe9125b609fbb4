package domain

import "strings"

// Word classes stored on dictionary entries.
const (
	WordClassAdverb       = "Adverb"
	WordClassAbbreviation = "Abbreviation"
	WordClassArticle      = "Article"
	WordClassInterjection = "Interjection"
	WordClassAdjective    = "Adjective"
	WordClassConjunction  = "Conjunction"
	WordClassNoun         = "Noun"
	WordClassPronoun      = "Pronoun"
	WordClassPreposition  = "Preposition"
	WordClassPrefix       = "Prefix"
	WordClassSuffix       = "Suffix"
	WordClassVerb         = "Verb"
	WordClassNumeral      = "Numeral"
)

// wordClassMap maps dictionary class abbreviations to word classes.
var wordClassMap = map[string]string{
	"ab":      WordClassAdverb,
	"abbrev":  WordClassAbbreviation,
	"article": WordClassArticle,
	"interj":  WordClassInterjection,
	"jj":      WordClassAdjective,
	"kn":      WordClassConjunction,
	"nn":      WordClassNoun,
	"pn":      WordClassPronoun,
	"pp":      WordClassPreposition,
	"prefix":  WordClassPrefix,
	"suffix":  WordClassSuffix,
	"vb":      WordClassVerb,

	// Cardinal and ordinal numerals share one class.
	"rg": WordClassNumeral,
	"ro": WordClassNumeral,
}

// MapWordClass converts a class abbreviation to its word class. The lookup is
// case-insensitive. Unknown abbreviations are returned unchanged.
func MapWordClass(abbrev string) string {
	if wc, ok := wordClassMap[strings.ToLower(abbrev)]; ok {
		return wc
	}
	return abbrev
}
