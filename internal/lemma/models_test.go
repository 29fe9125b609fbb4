package lemma

import (
	"strings"
	"testing"
)

func TestLoad_UnknownBackend(t *testing.T) {
	t.Parallel()

	if _, err := Load("spacy"); err == nil {
		t.Fatal("expected error for unknown backend")
	}
}

func TestSnowball_Structure(t *testing.T) {
	t.Parallel()

	l, err := Load(BackendSnowball)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	compound, err := l.Lemmatize("Sjukhusen", Swedish)
	if err != nil {
		t.Fatalf("Lemmatize: %v", err)
	}
	if compound == "" || strings.ContainsAny(compound, " \t") {
		t.Errorf("compound lemma %q should be non-empty and contain no whitespace", compound)
	}
	if compound != strings.ToLower(compound) {
		t.Errorf("lemma %q should be lowercase", compound)
	}

	phrase, err := l.Lemmatize("running dogs", English)
	if err != nil {
		t.Fatalf("Lemmatize: %v", err)
	}
	if len(strings.Fields(phrase)) != 2 {
		t.Errorf("phrase lemma %q should keep two tokens", phrase)
	}
}

func TestGolem_Structure(t *testing.T) {
	if testing.Short() {
		t.Skip("golem packs are slow to load")
	}

	l, err := NewGolem()
	if err != nil {
		t.Fatalf("NewGolem: %v", err)
	}

	got, err := l.Lemmatize("god morgon", Swedish)
	if err != nil {
		t.Fatalf("Lemmatize: %v", err)
	}
	if len(strings.Fields(got)) != 2 {
		t.Errorf("lemma %q should keep two tokens", got)
	}

	en, err := l.Lemmatize("Houses", English)
	if err != nil {
		t.Fatalf("Lemmatize: %v", err)
	}
	if en != "house" {
		t.Errorf("Lemmatize(Houses) = %q, want house", en)
	}
}

func TestSnowball_Idempotent(t *testing.T) {
	t.Parallel()

	l := NewSnowball()
	assertIdempotent(t, l, Swedish, "bilar", "stolarna", "gatorna", "husen", "Sjukhusen", "stora bilar")
	assertIdempotent(t, l, English, "dogs", "cats", "running", "walked", "running dogs")
}

func TestGolem_Idempotent(t *testing.T) {
	if testing.Short() {
		t.Skip("golem packs are slow to load")
	}

	l, err := NewGolem()
	if err != nil {
		t.Fatalf("NewGolem: %v", err)
	}
	assertIdempotent(t, l, Swedish, "flickorna", "gick", "böckerna", "god morgon")
	assertIdempotent(t, l, English, "houses", "children", "went", "running dogs")
}
