package domain

import "testing"

func TestNormalizeText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "trim spaces", input: "  hus  ", want: "hus"},
		{name: "lowercase", input: "God Morgon", want: "god morgon"},
		{name: "compress multiple spaces", input: "god   morgon", want: "god morgon"},
		{name: "diacritics preserved", input: "Åsikt", want: "åsikt"},
		{name: "hyphens preserved", input: "TV-apparat", want: "tv-apparat"},
		{name: "empty string", input: "", want: ""},
		{name: "only spaces", input: "   ", want: ""},
		{name: "tabs and spaces", input: "\t hus \t", want: "hus"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := NormalizeText(tt.input); got != tt.want {
				t.Errorf("NormalizeText(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestStripPipes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{"bord|et", "bordet"},
		{"Stock|holm", "Stockholm"},
		{"a|b|c", "abc"},
		{"hus", "hus"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			if got := StripPipes(tt.input); got != tt.want {
				t.Errorf("StripPipes(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestMergeKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{"bord|et", "bordet"},
		{"Stock|holm", "stockholm"},
		{"ÄPPLE", "äpple"},
		{"god morgon", "god morgon"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			if got := MergeKey(tt.input); got != tt.want {
				t.Errorf("MergeKey(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
