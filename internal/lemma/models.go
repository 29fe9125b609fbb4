package lemma

import (
	"fmt"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"
	"github.com/aaaton/golem/v4/dicts/sv"
	"github.com/blevesearch/snowballstem"
	"github.com/blevesearch/snowballstem/english"
	"github.com/blevesearch/snowballstem/swedish"
)

// Backend names accepted by Load.
const (
	BackendGolem    = "golem"
	BackendSnowball = "snowball"
)

// Load builds a Lemmatizer for Swedish and English with the named backend.
func Load(backend string) (*Lemmatizer, error) {
	switch backend {
	case "", BackendGolem:
		return NewGolem()
	case BackendSnowball:
		return NewSnowball(), nil
	default:
		return nil, fmt.Errorf("lemma: unknown backend %q", backend)
	}
}

// NewGolem loads the golem dictionary lemmatizers. Loading unpacks the
// embedded language packs and takes a noticeable moment, so callers should
// construct it once per run.
func NewGolem() (*Lemmatizer, error) {
	svModel, err := golem.New(sv.New())
	if err != nil {
		return nil, fmt.Errorf("lemma: load swedish pack: %w", err)
	}
	enModel, err := golem.New(en.New())
	if err != nil {
		return nil, fmt.Errorf("lemma: load english pack: %w", err)
	}
	return New(map[Language]Model{
		Swedish: svModel,
		English: enModel,
	}), nil
}

// NewSnowball builds a Lemmatizer from Snowball stemmers. Stems are coarser
// than dictionary lemmas but need no language pack.
func NewSnowball() *Lemmatizer {
	return New(map[Language]Model{
		Swedish: stemmer(swedish.Stem),
		English: stemmer(english.Stem),
	})
}

// stemmer adapts a generated Snowball stem function to Model.
type stemmer func(env *snowballstem.Env) bool

func (s stemmer) Lemma(token string) string {
	env := snowballstem.NewEnv(token)
	s(env)
	return env.Current()
}
