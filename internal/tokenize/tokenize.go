// Package tokenize splits raw text into word/punctuation tokens and
// sentence spans. Two strategies exist: the primary rune-scanning
// segmenter (which feeds the POS tagger) and a fixed-regex fallback. When
// the primary segmenter fails the tokenizer switches to the fallback for
// the rest of the session and records a one-time advisory; the switch is
// state on the Tokenizer value, not a global.
package tokenize

import (
	"fmt"
	"regexp"
	"strings"
	"sync"
	"unicode"
)

// Token is a contiguous run of word characters or a single punctuation
// mark. Immutable once produced; ordered by Index.
type Token struct {
	// Text is the surface text, case preserved.
	Text string
	// Index is the 0-based position in the token sequence.
	Index int
	// Offset is the byte offset of the token in the source text.
	Offset int
}

// TaggedToken is a Token plus an optional coarse part-of-speech tag.
// Tag is "" when the fallback tokenizer produced the token.
type TaggedToken struct {
	Token
	Tag string
}

// Span is a sentence span within the source text.
type Span struct {
	Start int
	End   int
	Text  string
}

// Contains reports whether the byte offset falls inside the span.
func (s Span) Contains(offset int) bool {
	return offset >= s.Start && offset < s.End
}

type segmenter interface {
	segment(text string) []Token
}

// Tokenizer produces tokens using the primary segmenter until it fails,
// then the regex fallback permanently. Safe for concurrent use; the
// fallback switch is the only mutable state and it only ever flips once.
type Tokenizer struct {
	primary  segmenter
	fallback segmenter

	mu          sync.Mutex
	useFallback bool
	advisory    string
	advised     bool
}

// New builds a Tokenizer. With forceFallback the regex segmenter is used
// from the start and tokens stay untagged.
func New(forceFallback bool) *Tokenizer {
	return &Tokenizer{
		primary:     runeSegmenter{},
		fallback:    regexSegmenter{},
		useFallback: forceFallback,
	}
}

// Tokenize splits text into tokens. It never fails: a primary-segmenter
// panic demotes the session to the fallback and the text is re-segmented.
func (t *Tokenizer) Tokenize(text string) []Token {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.useFallback {
		tokens, err := t.tryPrimary(text)
		if err == nil {
			return tokens
		}
		t.useFallback = true
		t.advisory = fmt.Sprintf("primary tokenizer failed (%v); using regex fallback for the rest of the session", err)
	}
	return t.fallback.segment(text)
}

// Tagged reports whether tokens from this tokenizer carry POS tags.
func (t *Tokenizer) Tagged() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return !t.useFallback
}

// Advisory returns the one-time fallback warning, if any. The second
// return is false once the advisory has been surfaced.
func (t *Tokenizer) Advisory() (string, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.advisory == "" || t.advised {
		return "", false
	}
	t.advised = true
	return t.advisory, true
}

func (t *Tokenizer) tryPrimary(text string) (tokens []Token, err error) {
	defer func() {
		if r := recover(); r != nil {
			tokens = nil
			err = fmt.Errorf("%v", r)
		}
	}()
	return t.primary.segment(text), nil
}

// Sentences splits text into sentence spans on runs of '.', '!' and '?'.
// The terminator run belongs to the sentence it closes.
func Sentences(text string) []Span {
	var spans []Span
	start := 0
	inTerminator := false
	for i, r := range text {
		if r == '.' || r == '!' || r == '?' {
			inTerminator = true
			continue
		}
		if inTerminator {
			seg := text[start:i]
			if strings.TrimSpace(seg) != "" {
				spans = append(spans, Span{Start: start, End: i, Text: seg})
			}
			start = i
			inTerminator = false
		}
	}
	if strings.TrimSpace(text[start:]) != "" {
		spans = append(spans, Span{Start: start, End: len(text), Text: text[start:]})
	}
	return spans
}

// runeSegmenter is the primary strategy: a single pass over the runes,
// accumulating word characters (Unicode letters, digits, underscore, so
// accented vowels and ñ group naturally) and emitting every other
// non-space rune as its own token.
type runeSegmenter struct{}

func (runeSegmenter) segment(text string) []Token {
	var tokens []Token
	wordStart := -1
	flush := func(end int) {
		if wordStart >= 0 {
			tokens = append(tokens, Token{
				Text:   text[wordStart:end],
				Index:  len(tokens),
				Offset: wordStart,
			})
			wordStart = -1
		}
	}
	for i, r := range text {
		switch {
		case isWordRune(r):
			if wordStart < 0 {
				wordStart = i
			}
		case unicode.IsSpace(r):
			flush(i)
		default:
			flush(i)
			tokens = append(tokens, Token{
				Text:   string(r),
				Index:  len(tokens),
				Offset: i,
			})
		}
	}
	flush(len(text))
	return tokens
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r)
}

// reToken matches a maximal run of word characters or a single non-word,
// non-space character, so punctuation survives as its own token.
var reToken = regexp.MustCompile(`[\p{L}\p{M}\p{N}_]+|[^\p{L}\p{M}\p{N}_\s]`)

// regexSegmenter is the fallback strategy.
type regexSegmenter struct{}

func (regexSegmenter) segment(text string) []Token {
	matches := reToken.FindAllStringIndex(text, -1)
	tokens := make([]Token, 0, len(matches))
	for _, m := range matches {
		tokens = append(tokens, Token{
			Text:   text[m[0]:m[1]],
			Index:  len(tokens),
			Offset: m[0],
		})
	}
	return tokens
}

// Clean lowercases a token and strips any non-word runes, the shared
// normalization before table lookups.
func Clean(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if isWordRune(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
