package domain

import (
	"strings"
)

// NormalizeText prepares text for lookup comparison:
//   - trims leading/trailing whitespace
//   - converts to lowercase
//   - compresses multiple spaces into one
//
// Diacritics, hyphens, and apostrophes are preserved.
func NormalizeText(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	text = strings.ToLower(text)

	var b strings.Builder
	b.Grow(len(text))
	prevSpace := false
	for _, r := range text {
		if r == ' ' {
			if prevSpace {
				continue
			}
			prevSpace = true
		} else {
			prevSpace = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

// StripPipes removes the syllable-boundary pipes dictionary headwords carry,
// e.g. "bord|et" becomes "bordet". Casing is preserved.
func StripPipes(word string) string {
	return strings.ReplaceAll(word, "|", "")
}

// MergeKey returns the key that unifies entries across both import passes:
// the headword with pipes stripped, lowercased.
func MergeKey(headword string) string {
	return strings.ToLower(StripPipes(headword))
}
