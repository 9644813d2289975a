package models

// Status is the tracker state of a word after its latest attempt.
type Status string

const (
	StatusDone    Status = "done"
	StatusMissing Status = "missing"
)

// Part-of-speech values written to the tracker and output tables.
const (
	PosVerb    = "verb"
	PosNoun    = "noun"
	PosOther   = "other"   // page reachable, nothing recognized
	PosUnknown = "unknown" // no page at all
)

// Attribute values. Verbs carry a conjugation group, nouns a gender.
const (
	GroupFirst   = "1st group"
	GroupSecond  = "2nd group"
	GroupThird   = "3rd group"
	GroupUnknown = "unknown group"
	Masculine    = "masculine"
	Feminine     = "feminine"
)

// Classification is the verdict for a single page.
type Classification struct {
	PartOfSpeech string `json:"pos" yaml:"pos"`
	Attribute    string `json:"gender_or_group,omitempty" yaml:"gender_or_group,omitempty"`
}

// Usable reports whether the classification can be recorded as done.
func (c Classification) Usable() bool {
	return c.Attribute != "" && c.PartOfSpeech != PosOther && c.PartOfSpeech != PosUnknown && c.PartOfSpeech != ""
}

// TrackerEntry is the durable progress state for one word.
// A done entry always has a non-empty Attribute.
type TrackerEntry struct {
	Word         string `json:"word" yaml:"word"`
	PartOfSpeech string `json:"pos" yaml:"pos"`
	Status       Status `json:"status" yaml:"status"`
	Attribute    string `json:"gender_or_group" yaml:"gender_or_group"`
	Timestamp    string `json:"timestamp" yaml:"timestamp"`
}

// ClassifiedRecord is a row of the words_good output set.
type ClassifiedRecord struct {
	Word         string `json:"word" yaml:"word"`
	PartOfSpeech string `json:"pos" yaml:"pos"`
	Attribute    string `json:"gender_or_group" yaml:"gender_or_group"`
}

// UnclassifiedRecord is a row of the words_missing output set.
type UnclassifiedRecord struct {
	Word         string `json:"word" yaml:"word"`
	PartOfSpeech string `json:"pos" yaml:"pos"`
}
