package model

// Tense classifies a detected subjunctive form into one of the tense buckets.
// The value strings are stable: export layers map them 1:1 onto columns.
type Tense string

const (
	TensePresent       Tense = "present"
	TenseImperfect     Tense = "imperfect"
	TenseFuture        Tense = "future"
	TensePluperfect    Tense = "pluperfect"
	TenseIndeterminate Tense = "indeterminate"
)

// Tenses lists all buckets in report order.
func Tenses() []Tense {
	return []Tense{TensePresent, TenseImperfect, TenseFuture, TensePluperfect, TenseIndeterminate}
}

// Person classifies the grammatical person/number of a verb form.
type Person string

const (
	PersonFirstSingular  Person = "1sg"
	PersonSecondSingular Person = "2sg"
	PersonThirdSingular  Person = "3sg"
	PersonFirstPlural    Person = "1pl"
	PersonSecondPlural   Person = "2pl"
	PersonThirdPlural    Person = "3pl"
	PersonIndeterminate  Person = "indeterminate"
)

// VerbOccurrence is one detected subjunctive verb form. Occurrences are
// created once per hit in left-to-right scan order and never mutated,
// merged, or deduplicated afterwards.
type VerbOccurrence struct {
	// Verb is the surface form exactly as it appeared, case preserved.
	Verb string `json:"verb"`

	// Lemma is the best-effort infinitive. Never empty: degrades to the
	// surface form when no rule applies.
	Lemma string `json:"lemma"`

	Tense  Tense  `json:"tense"`
	Person Person `json:"person"`

	// Clause is the surrounding clause text, trimmed.
	Clause string `json:"clause"`

	// Position is the 0-based token index of the verb in the token
	// stream of the analyzed text. The token index is the position unit
	// for every occurrence of a run.
	Position int `json:"position"`

	// Offset is the byte offset of the verb in the source text.
	Offset int `json:"offset"`

	// Rule names the detection rule that accepted the form, e.g.
	// "irregular" or "suffix:iera".
	Rule string `json:"rule,omitempty"`
}
