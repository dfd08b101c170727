// Package clause recovers the clause surrounding a detected verb: from
// the nearest preceding trigger phrase (or a bounded window start) to the
// nearest following sentence terminator (or a bounded window end). Both
// scans are independently bounded so a text without punctuation or
// triggers never costs more than the window.
package clause

import (
	"strings"

	"github.com/rmarchan/subjuntivo/internal/lexicon"
	"github.com/rmarchan/subjuntivo/internal/model"
	"github.com/rmarchan/subjuntivo/internal/tokenize"
)

// terminal punctuation closing a clause.
var terminals = map[string]bool{".": true, "!": true, "?": true, ";": true}

// Extractor is immutable and safe for concurrent use.
type Extractor struct {
	lex      *lexicon.Lexicon
	backward int
	forward  int
}

// New builds an Extractor with the configured scan windows.
func New(lex *lexicon.Lexicon, cfg model.ClauseConfig) *Extractor {
	back := cfg.BackwardWindow
	if back <= 0 {
		back = 15
	}
	fwd := cfg.ForwardWindow
	if fwd <= 0 {
		fwd = 20
	}
	return &Extractor{lex: lex, backward: back, forward: fwd}
}

// Extract returns the clause around tokens[pos], sliced out of text by
// token offsets and trimmed. The span always contains the verb itself.
func (e *Extractor) Extract(text string, tokens []tokenize.Token, pos int) string {
	if pos < 0 || pos >= len(tokens) {
		return ""
	}

	start := e.scanBackward(tokens, pos)
	end := e.scanForward(tokens, pos)

	first := tokens[start]
	last := tokens[end-1]
	return strings.TrimSpace(text[first.Offset : last.Offset+len(last.Text)])
}

// scanBackward finds the clause start: the nearest trigger word within
// the window, extended left over lead-in words ("Ojalá que", "dudo que"),
// else a default boundary a few tokens short of the full window.
func (e *Extractor) scanBackward(tokens []tokenize.Token, pos int) int {
	start := max(0, pos-e.backward+5)
	limit := max(0, pos-e.backward)
	for i := pos; i >= limit; i-- {
		if e.lex.IsTriggerWord(strings.ToLower(tokens[i].Text)) {
			start = i
			break
		}
	}
	for start > 0 && e.lex.IsLeadInWord(strings.ToLower(tokens[start-1].Text)) {
		start--
	}
	return start
}

// scanForward finds the clause end, exclusive: just after the nearest
// terminal punctuation within the window, else a default boundary a few
// tokens short of the full window.
func (e *Extractor) scanForward(tokens []tokenize.Token, pos int) int {
	end := min(len(tokens), pos+e.forward-5)
	for i := pos; i < min(len(tokens), pos+e.forward); i++ {
		if terminals[tokens[i].Text] {
			end = i + 1
			break
		}
	}
	if end <= pos {
		end = pos + 1
	}
	return end
}
