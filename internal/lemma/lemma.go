// Package lemma maps conjugated Spanish verb forms back to a best-effort
// infinitive. Resolution order: irregular table, stem reduction with
// conjugation-class reattachment, identity. It never fails and never
// returns an empty string.
package lemma

import (
	"strings"

	"github.com/rmarchan/subjuntivo/internal/lexicon"
	"github.com/rmarchan/subjuntivo/internal/tokenize"
)

// Lemmatizer resolves lemmas against the shared lexicon. Immutable and
// safe for concurrent use.
type Lemmatizer struct {
	lex *lexicon.Lexicon
}

// New builds a Lemmatizer.
func New(lex *lexicon.Lexicon) *Lemmatizer {
	return &Lemmatizer{lex: lex}
}

// Lemmatize returns the infinitive for a surface form. matchedEnding is
// the suffix the classifier matched, "" when unknown (the ending is then
// re-derived from the tables). Degrades to the cleaned surface form, and
// finally to the raw input, so the result is never empty.
func (l *Lemmatizer) Lemmatize(surface, matchedEnding string) string {
	clean := tokenize.Clean(surface)
	if clean == "" {
		return surface
	}

	if inf := l.lex.IrregularLemma(clean); inf != "" {
		return inf
	}

	ending := matchedEnding
	if ending == "" {
		ending = l.findEnding(clean)
	}
	if ending != "" && len(clean) > len(ending) && strings.HasSuffix(clean, ending) {
		if inf := reattach(clean, ending); inf != "" {
			return inf
		}
	}

	return clean
}

// findEnding re-derives the subjunctive ending the classifier would have
// matched, in the same bucket order.
func (l *Lemmatizer) findEnding(clean string) string {
	for _, bucket := range [][]string{
		l.lex.ImperfectEndings(),
		l.lex.FutureEndings(),
		l.lex.PresentEndings(),
		l.lex.ConditionalEndings(),
	} {
		for _, end := range bucket {
			if len(clean) > len(end) && strings.HasSuffix(clean, end) {
				return end
			}
		}
	}
	return ""
}

// reattach strips the matched ending and reattaches the conjugation-class
// suffix the ending implies. The mapping follows the source tables: the
// a-family reattaches -ar, the e-family -er, the i-initial endings -ir
// (ties between classes sharing an ending resolve -ar > -er > -ir). The
// result is best-effort, not guaranteed linguistically correct.
func reattach(clean, ending string) string {
	stem := clean[:len(clean)-len(ending)]

	// Conditional endings keep their leading r: stripping everything
	// after it leaves the infinitive itself (hablaría -> hablar).
	if strings.HasPrefix(ending, "r") && strings.Contains(ending, "í") {
		return clean[:len(clean)-len(ending)+len("r")]
	}

	if stem == "" {
		return ""
	}
	switch firstVowelClass(ending) {
	case 'i':
		return stem + "ir"
	case 'a':
		return stem + "ar"
	case 'e':
		return stem + "er"
	}
	return ""
}

// firstVowelClass buckets an ending by its first vowel: i-initial endings
// (iera, iere) mark -ir, otherwise a/á marks -ar and e/é marks -er.
func firstVowelClass(ending string) rune {
	runes := []rune(ending)
	if len(runes) == 0 {
		return 0
	}
	if runes[0] == 'i' || runes[0] == 'í' {
		return 'i'
	}
	for _, r := range runes {
		switch r {
		case 'a', 'á':
			return 'a'
		case 'e', 'é':
			return 'e'
		}
	}
	return 0
}
