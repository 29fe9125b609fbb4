package folkets

// Direction selects which side of the bilingual dictionary a document is
// written from.
type Direction int

const (
	// SvEn is a Swedish-to-English document: headwords are Swedish.
	SvEn Direction = iota
	// EnSv is an English-to-Swedish document: headwords are English.
	EnSv
)

// SourceLang returns the lang attribute carried by headwords in this direction.
func (d Direction) SourceLang() string {
	if d == EnSv {
		return "en"
	}
	return "sv"
}

func (d Direction) String() string {
	if d == EnSv {
		return "en-sv"
	}
	return "sv-en"
}

// Record is one parsed word element. Gloss values are in the headword's
// language and translations in the other language.
type Record struct {
	Headword     string
	Class        string
	Lang         string
	Translations []string
	Definition   *Gloss
	Explanation  *Gloss
	Grammar      []string
	Antonyms     []string
	Variants     []string
	Examples     []Gloss
	Idioms       []Gloss
}

// Gloss is a text paired with its optional translation.
type Gloss struct {
	Value       string
	Translation string
}

// Stats holds parser statistics for logging.
type Stats struct {
	Words          int
	Yielded        int
	OtherLanguage  int
	SkippedByField map[string]int
}

// Skipped returns the total number of incomplete records dropped.
func (s Stats) Skipped() int {
	n := 0
	for _, c := range s.SkippedByField {
		n += c
	}
	return n
}

// XML internal types for deserialization.

type xmlWord struct {
	Value        string       `xml:"value,attr"`
	Lang         string       `xml:"lang,attr"`
	Class        string       `xml:"class,attr"`
	Translations []xmlValue   `xml:"translation"`
	Definitions  []xmlGloss   `xml:"definition"`
	Explanations []xmlGloss   `xml:"explanation"`
	Grammar      []xmlValue   `xml:"grammar"`
	Related      []xmlRelated `xml:"related"`
	Variants     []xmlValue   `xml:"variant"`
	Examples     []xmlGloss   `xml:"example"`
	Idioms       []xmlGloss   `xml:"idiom"`
}

type xmlValue struct {
	Value string `xml:"value,attr"`
}

type xmlGloss struct {
	Value       string    `xml:"value,attr"`
	Translation *xmlValue `xml:"translation"`
}

type xmlRelated struct {
	Type  string `xml:"type,attr"`
	Value string `xml:"value,attr"`
}
