// Package analyze drives the full scan: sentence split, tokenization,
// per-token classification, lemma and clause resolution, and the summary.
// One Analyzer is built at startup from the configuration and shared; an
// analysis call keeps no state outside its own stack, so concurrent calls
// are safe.
package analyze

import (
	"sort"
	"strings"
	"time"

	"github.com/rmarchan/subjuntivo/internal/classify"
	"github.com/rmarchan/subjuntivo/internal/clause"
	"github.com/rmarchan/subjuntivo/internal/lemma"
	"github.com/rmarchan/subjuntivo/internal/lexicon"
	"github.com/rmarchan/subjuntivo/internal/model"
	"github.com/rmarchan/subjuntivo/internal/tag"
	"github.com/rmarchan/subjuntivo/internal/tokenize"
)

// Analyzer owns the detection components. Build once with New.
type Analyzer struct {
	cfg    *model.Config
	lex    *lexicon.Lexicon
	tokens *tokenize.Tokenizer
	tagger *tag.Tagger
	class  *classify.Classifier
	lemmas *lemma.Lemmatizer
	clause *clause.Extractor
	topN   int
}

// New builds an Analyzer from the configuration.
func New(cfg *model.Config) *Analyzer {
	lex := lexicon.New()
	topN := cfg.Output.TopN
	if topN <= 0 {
		topN = 10
	}
	return &Analyzer{
		cfg:    cfg,
		lex:    lex,
		tokens: tokenize.New(cfg.Tokenizer.ForceFallback),
		tagger: tag.New(),
		class:  classify.New(lex, cfg.Classifier),
		lemmas: lemma.New(lex),
		clause: clause.New(lex, cfg.Clause),
		topN:   topN,
	}
}

// Lexicon exposes the shared lexicon.
func (a *Analyzer) Lexicon() *lexicon.Lexicon {
	return a.lex
}

// Analyze scans text and returns the ordered occurrence list plus the
// summary. Deterministic: the same text yields the same report (modulo
// the timestamp). Empty or whitespace-only input yields a zero report.
func (a *Analyzer) Analyze(text string) *model.Report {
	report := &model.Report{
		AnalyzedAt:  time.Now().UTC(),
		Occurrences: []model.VerbOccurrence{},
	}
	if strings.TrimSpace(text) == "" {
		report.Summary = a.summarize(report.Occurrences, 0, 0)
		return report
	}

	sentences := tokenize.Sentences(text)
	triggered := make([]bool, len(sentences))
	for i, s := range sentences {
		triggered[i] = a.lex.ContainsTrigger(s.Text)
	}

	raw := a.tokens.Tokenize(text)
	var tagged []tokenize.TaggedToken
	if a.tokens.Tagged() {
		tagged = a.tagger.Tag(raw)
	} else {
		tagged = make([]tokenize.TaggedToken, len(raw))
		for i, tok := range raw {
			tagged[i] = tokenize.TaggedToken{Token: tok}
		}
	}
	if msg, ok := a.tokens.Advisory(); ok {
		report.Warnings = append(report.Warnings, msg)
	}

	sentenceIdx := 0
	for i, tok := range tagged {
		for sentenceIdx < len(sentences)-1 && tok.Offset >= sentences[sentenceIdx].End {
			sentenceIdx++
		}
		ctx := classify.Context{}
		if sentenceIdx < len(sentences) {
			ctx.HasTrigger = triggered[sentenceIdx]
		}
		if i+1 < len(tagged) {
			ctx.Next = tagged[i+1].Text
		}

		res, ok := a.class.Classify(tok, ctx)
		if !ok {
			continue
		}

		occ := model.VerbOccurrence{
			Verb:     tok.Text,
			Tense:    res.Tense,
			Person:   res.Person,
			Position: tok.Index,
			Offset:   tok.Offset,
			Rule:     res.Rule,
		}
		occ.Lemma = a.safeLemma(tok.Text, res.Ending)
		occ.Clause = a.safeClause(text, raw, tok.Index, tok.Text)
		report.Occurrences = append(report.Occurrences, occ)
	}

	report.Summary = a.summarize(report.Occurrences, len(raw), len(sentences))
	return report
}

// safeLemma never lets a lemmatization failure abort the scan; it
// degrades to the surface form for that single occurrence.
func (a *Analyzer) safeLemma(surface, ending string) (out string) {
	defer func() {
		if r := recover(); r != nil || out == "" {
			out = surface
		}
	}()
	return a.lemmas.Lemmatize(surface, ending)
}

// safeClause degrades to the verb's own surface form on failure.
func (a *Analyzer) safeClause(text string, tokens []tokenize.Token, pos int, surface string) (out string) {
	defer func() {
		if r := recover(); r != nil || out == "" {
			out = surface
		}
	}()
	return a.clause.Extract(text, tokens, pos)
}

// summarize computes the aggregate statistics once, after the full scan.
func (a *Analyzer) summarize(occ []model.VerbOccurrence, tokens, sentences int) model.Summary {
	byTense := make(map[model.Tense]int, len(model.Tenses()))
	for _, t := range model.Tenses() {
		byTense[t] = 0
	}

	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	var order []string
	for i, o := range occ {
		byTense[o.Tense]++
		if _, ok := counts[o.Lemma]; !ok {
			firstSeen[o.Lemma] = i
			order = append(order, o.Lemma)
		}
		counts[o.Lemma]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		if counts[order[i]] != counts[order[j]] {
			return counts[order[i]] > counts[order[j]]
		}
		return firstSeen[order[i]] < firstSeen[order[j]]
	})
	if len(order) > a.topN {
		order = order[:a.topN]
	}
	top := make([]model.LemmaCount, 0, len(order))
	for _, l := range order {
		top = append(top, model.LemmaCount{Lemma: l, Count: counts[l]})
	}

	return model.Summary{
		TotalOccurrences: len(occ),
		TokenCount:       tokens,
		SentenceCount:    sentences,
		ByTense:          byTense,
		TopLemmas:        top,
	}
}
