// Package tag provides a coarse heuristic part-of-speech tagger for
// Spanish. It only distinguishes "verb" from "other": that is all the
// classifier's POS gate needs. Two passes: a closed-class lexicon plus
// suffix heuristics, then contextual correction.
package tag

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rmarchan/subjuntivo/internal/tokenize"
)

// Coarse tags carried on TaggedToken.
const (
	TagVerb  = "verb"
	TagOther = "other"
)

// closedClass lists Spanish function words that are never verbs:
// articles, prepositions, pronouns, conjunctions, frequent adverbs.
var closedClass = map[string]bool{
	// articles and determiners
	"el": true, "la": true, "los": true, "las": true, "un": true,
	"una": true, "unos": true, "unas": true, "al": true, "del": true,
	"este": true, "esta": true, "estos": true, "estas": true,
	"ese": true, "esa": true, "esos": true, "esas": true,
	"aquel": true, "aquella": true, "mi": true, "mis": true,
	"tu": true, "tus": true, "su": true, "sus": true,
	"nuestro": true, "nuestra": true, "nuestros": true, "nuestras": true,
	// prepositions
	"a": true, "ante": true, "bajo": true, "con": true, "contra": true,
	"de": true, "desde": true, "durante": true, "en": true, "entre": true,
	"hacia": true, "hasta": true, "mediante": true, "para": true,
	"por": true, "según": true, "sin": true, "sobre": true, "tras": true,
	// pronouns
	"yo": true, "tú": true, "él": true, "ella": true, "usted": true,
	"nosotros": true, "nosotras": true, "vosotros": true, "vosotras": true,
	"ellos": true, "ellas": true, "ustedes": true, "me": true, "te": true,
	"se": true, "nos": true, "os": true, "le": true, "les": true,
	"lo": true, "quien": true, "quienes": true, "cual": true, "cuales": true,
	// conjunctions and frequent adverbs
	"y": true, "o": true, "u": true, "ni": true, "pero": true,
	"sino": true, "que": true, "si": true, "cuando": true, "aunque": true,
	"porque": true, "pues": true, "como": true, "donde": true,
	"no": true, "sí": true, "ya": true, "muy": true, "más": true,
	"menos": true, "también": true, "tampoco": true, "siempre": true,
	"nunca": true, "aquí": true, "allí": true, "hoy": true, "ayer": true,
	"mañana": true, "ojalá": true, "quizás": true, "quizá": true,
}

// determiners introduce a noun phrase; a verb-looking token right after
// one is almost always a noun ("la casa", "el examen").
var determiners = map[string]bool{
	"el": true, "la": true, "los": true, "las": true, "un": true,
	"una": true, "unos": true, "unas": true, "al": true, "del": true,
	"este": true, "esta": true, "estos": true, "estas": true,
	"ese": true, "esa": true, "esos": true, "esas": true,
	"mi": true, "tu": true, "su": true, "mis": true, "tus": true, "sus": true,
	"nuestro": true, "nuestra": true, "nuestros": true, "nuestras": true,
}

// verbSuffixes are inflection endings that make a token verb-like.
var verbSuffixes = []string{
	"ando", "iendo", "yendo",
	"aba", "abas", "ábamos", "aban",
	"ía", "ías", "íamos", "ían",
	"ará", "erá", "irá", "arán", "erán", "irán",
	"aría", "ería", "iría",
	"ara", "iera", "are", "iere", "ase", "iese",
	"ar", "er", "ir",
	"amos", "emos", "imos",
	"as", "es", "an", "en", "a", "e", "o",
}

// Tagger assigns coarse POS tags to a token sequence.
type Tagger struct{}

// New returns a Tagger.
func New() *Tagger {
	return &Tagger{}
}

// Tag annotates the tokens of one text with coarse POS tags.
func (t *Tagger) Tag(tokens []tokenize.Token) []tokenize.TaggedToken {
	tagged := make([]tokenize.TaggedToken, len(tokens))

	// Pass 1: lexicon + suffix baseline.
	for i, tok := range tokens {
		tagged[i] = tokenize.TaggedToken{Token: tok, Tag: baseline(tok.Text)}
	}

	// Pass 2: contextual correction.
	for i := range tagged {
		if i == 0 || tagged[i].Tag != TagVerb {
			continue
		}
		prev := strings.ToLower(tagged[i-1].Text)
		if determiners[prev] {
			tagged[i].Tag = TagOther
		}
	}

	return tagged
}

func baseline(word string) string {
	r, _ := utf8.DecodeRuneInString(word)
	if r != utf8.RuneError && !unicode.IsLetter(r) {
		return TagOther
	}

	lower := strings.ToLower(word)
	if closedClass[lower] {
		return TagOther
	}

	for _, suf := range verbSuffixes {
		if len(lower) > len(suf) && strings.HasSuffix(lower, suf) {
			return TagVerb
		}
	}
	return TagOther
}
