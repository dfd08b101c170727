package tokenize

import (
	"strings"
	"testing"
)

func tokenTexts(tokens []Token) []string {
	texts := make([]string, len(tokens))
	for i, tok := range tokens {
		texts[i] = tok.Text
	}
	return texts
}

func TestTokenize_WordsAndPunctuation(t *testing.T) {
	tok := New(false)

	text := "¡Ojalá que llueva café!"
	tokens := tok.Tokenize(text)

	want := []string{"¡", "Ojalá", "que", "llueva", "café", "!"}
	got := tokenTexts(tokens)
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Fatalf("tokens = %v, want %v", got, want)
	}

	for i, tk := range tokens {
		if tk.Index != i {
			t.Errorf("token %d has Index %d", i, tk.Index)
		}
		if text[tk.Offset:tk.Offset+len(tk.Text)] != tk.Text {
			t.Errorf("offset of %q does not point at its text", tk.Text)
		}
	}
}

func TestTokenize_AccentedWordsStayWhole(t *testing.T) {
	tok := New(false)

	tokens := tok.Tokenize("El niño estudió según parámetros")
	want := []string{"El", "niño", "estudió", "según", "parámetros"}
	got := tokenTexts(tokens)
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("tokens = %v, want %v", got, want)
	}
}

func TestTokenize_FallbackMatchesPrimary(t *testing.T) {
	text := "Quiero que vengas, ¿vale?"

	primary := New(false).Tokenize(text)
	fallback := New(true).Tokenize(text)

	if len(primary) != len(fallback) {
		t.Fatalf("primary produced %d tokens, fallback %d", len(primary), len(fallback))
	}
	for i := range primary {
		if primary[i] != fallback[i] {
			t.Errorf("token %d: primary %+v, fallback %+v", i, primary[i], fallback[i])
		}
	}
}

func TestTokenizer_Tagged(t *testing.T) {
	if !New(false).Tagged() {
		t.Error("primary tokenizer should report tagged tokens")
	}
	if New(true).Tagged() {
		t.Error("forced fallback should report untagged tokens")
	}
}

func TestTokenizer_AdvisoryOnlyAfterFailure(t *testing.T) {
	tok := New(true)
	tok.Tokenize("hola")

	// Forced fallback is a configuration choice, not a failure.
	if msg, ok := tok.Advisory(); ok {
		t.Errorf("unexpected advisory: %q", msg)
	}
}

func TestSentences(t *testing.T) {
	spans := Sentences("Hola. ¿Qué tal? Bien...")

	if len(spans) != 3 {
		t.Fatalf("expected 3 sentences, got %d: %+v", len(spans), spans)
	}
	if strings.TrimSpace(spans[0].Text) != "Hola." {
		t.Errorf("first sentence = %q", spans[0].Text)
	}
	if strings.TrimSpace(spans[1].Text) != "¿Qué tal?" {
		t.Errorf("second sentence = %q", spans[1].Text)
	}
	if strings.TrimSpace(spans[2].Text) != "Bien..." {
		t.Errorf("third sentence = %q", spans[2].Text)
	}
}

func TestSentences_EmptyAndUnterminated(t *testing.T) {
	if spans := Sentences(""); len(spans) != 0 {
		t.Errorf("empty text should yield no sentences, got %d", len(spans))
	}
	if spans := Sentences("   \n  "); len(spans) != 0 {
		t.Errorf("whitespace should yield no sentences, got %d", len(spans))
	}

	spans := Sentences("sin puntuación final")
	if len(spans) != 1 {
		t.Fatalf("expected 1 sentence, got %d", len(spans))
	}
	if spans[0].Text != "sin puntuación final" {
		t.Errorf("sentence = %q", spans[0].Text)
	}
}

func TestSpan_Contains(t *testing.T) {
	span := Span{Start: 5, End: 10}
	if !span.Contains(5) || !span.Contains(9) {
		t.Error("span should contain its start and interior")
	}
	if span.Contains(10) || span.Contains(4) {
		t.Error("span end is exclusive")
	}
}

func TestClean(t *testing.T) {
	tests := []struct {
		in  string
		out string
	}{
		{"¡Ojalá!", "ojalá"},
		{"Café.", "café"},
		{"VENGAS", "vengas"},
		{"niño", "niño"},
		{"...", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Clean(tt.in); got != tt.out {
			t.Errorf("Clean(%q) = %q, want %q", tt.in, got, tt.out)
		}
	}
}
