// Package classify decides whether a token is a subjunctive verb form and
// infers its tense and person/number from the surface form. The decision
// chain is ordered; earlier rules are authoritative and cheaper:
//
//  1. exact match against the irregular-form table
//  2. suffix match against the per-tense ending lists
//  3. the POS gate (when tags exist, only verb-tagged tokens reach rule 2)
//  4. the trigger-context heuristic, which broadens rule 2 to
//     conditional-looking endings inside trigger sentences
//
// The present-ending overlap with indicative and noun inflections is an
// accepted source of over-detection, not something this package corrects.
package classify

import (
	"strings"

	"github.com/rmarchan/subjuntivo/internal/lexicon"
	"github.com/rmarchan/subjuntivo/internal/model"
	"github.com/rmarchan/subjuntivo/internal/tag"
	"github.com/rmarchan/subjuntivo/internal/tokenize"
)

// Context carries the sentence-level facts a single-token decision needs.
type Context struct {
	// HasTrigger reports whether the containing sentence holds a
	// trigger phrase.
	HasTrigger bool
	// Next is the surface text of the following token in the stream,
	// "" at the end. Used for compound (pluperfect) detection.
	Next string
}

// Result describes an accepted subjunctive form.
type Result struct {
	Tense  model.Tense
	Person model.Person
	// Rule names the accepting rule: "irregular", "suffix:<ending>" or
	// "trigger:<ending>".
	Rule string
	// Ending is the matched suffix, "" for irregular-table hits. The
	// lemmatizer strips exactly this ending.
	Ending string
}

// Classifier is immutable after construction and safe for concurrent use.
type Classifier struct {
	lex                *lexicon.Lexicon
	posGate            bool
	triggerHeuristic   bool
	triggerGatePresent bool
}

// New builds a Classifier over the shared lexicon.
func New(lex *lexicon.Lexicon, cfg model.ClassifierConfig) *Classifier {
	return &Classifier{
		lex:                lex,
		posGate:            cfg.POSGate,
		triggerHeuristic:   cfg.TriggerHeuristic,
		triggerGatePresent: cfg.TriggerGatePresent,
	}
}

// Classify runs the decision chain on one token. ok is false when the
// token is not accepted as a subjunctive form.
func (c *Classifier) Classify(tok tokenize.TaggedToken, ctx Context) (Result, bool) {
	clean := tokenize.Clean(tok.Text)
	if clean == "" {
		return Result{}, false
	}

	// Rule 1: the irregular table is authoritative; it bypasses the POS
	// gate because its entries are known verbs regardless of tagging.
	if c.lex.IsIrregular(clean) {
		res := Result{
			Tense:  c.TenseFor(clean),
			Person: c.lex.PersonFor(clean),
			Rule:   "irregular",
		}
		c.applyPluperfect(&res, clean, ctx)
		return res, true
	}

	// Rule 3 gates the remaining surface-form rules. An empty tag means
	// the fallback tokenizer ran and classification is surface-only.
	if c.posGate && tok.Tag != "" && tok.Tag != tag.TagVerb {
		return Result{}, false
	}

	// Rule 2: ordered suffix match, imperfect before future before
	// present, longest ending first within each bucket.
	if ending := matchEnding(clean, c.lex.ImperfectEndings()); ending != "" {
		res := Result{
			Tense:  model.TenseImperfect,
			Person: c.lex.PersonFor(clean),
			Rule:   "suffix:" + ending,
			Ending: ending,
		}
		c.applyPluperfect(&res, clean, ctx)
		return res, true
	}
	if ending := matchEnding(clean, c.lex.FutureEndings()); ending != "" {
		return Result{
			Tense:  model.TenseFuture,
			Person: c.lex.PersonFor(clean),
			Rule:   "suffix:" + ending,
			Ending: ending,
		}, true
	}
	if !c.triggerGatePresent || ctx.HasTrigger {
		if ending := matchEnding(clean, c.lex.PresentEndings()); ending != "" {
			return Result{
				Tense:  model.TensePresent,
				Person: c.lex.PersonFor(clean),
				Rule:   "suffix:" + ending,
				Ending: ending,
			}, true
		}
	}

	// Rule 4: inside a trigger sentence, conditional-looking endings are
	// accepted too, except the querría-class true conditionals.
	if c.triggerHeuristic && ctx.HasTrigger && !c.lex.IsConditionalException(clean) {
		if ending := matchEnding(clean, c.lex.ConditionalEndings()); ending != "" {
			return Result{
				Tense:  model.TenseIndeterminate,
				Person: c.lex.PersonFor(clean),
				Rule:   "trigger:" + ending,
				Ending: ending,
			}, true
		}
	}

	return Result{}, false
}

// TenseFor infers the tense bucket of an already-accepted lowercase form
// from the same ending tables the detection rules use. Indeterminate when
// no bucket matches.
func (c *Classifier) TenseFor(clean string) model.Tense {
	if matchEnding(clean, c.lex.ImperfectEndings()) != "" {
		return model.TenseImperfect
	}
	if matchEnding(clean, c.lex.FutureEndings()) != "" {
		return model.TenseFuture
	}
	if matchEnding(clean, c.lex.PresentEndings()) != "" {
		return model.TensePresent
	}
	return model.TenseIndeterminate
}

// applyPluperfect upgrades a haber auxiliary followed by a participle
// ("hubiera hablado", "haya comido") to the compound pluperfect bucket.
func (c *Classifier) applyPluperfect(res *Result, clean string, ctx Context) {
	if !c.lex.IsHaberAuxiliary(clean) {
		return
	}
	next := tokenize.Clean(ctx.Next)
	if next != "" && c.lex.IsParticiple(next) {
		res.Tense = model.TensePluperfect
	}
}

// matchEnding returns the first ending the form ends with, or "". The
// form must be longer than the ending: a bare ending is not a verb.
func matchEnding(form string, endings []string) string {
	for _, end := range endings {
		if len(form) > len(end) && strings.HasSuffix(form, end) {
			return end
		}
	}
	return ""
}
