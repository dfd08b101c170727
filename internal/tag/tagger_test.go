package tag

import (
	"testing"

	"github.com/rmarchan/subjuntivo/internal/tokenize"
)

func tagOf(t *testing.T, text, word string) string {
	t.Helper()
	tokens := tokenize.New(false).Tokenize(text)
	tagged := New().Tag(tokens)
	for _, tk := range tagged {
		if tk.Text == word {
			return tk.Tag
		}
	}
	t.Fatalf("word %q not found in %q", word, text)
	return ""
}

func TestTag_VerbForms(t *testing.T) {
	tests := []struct {
		text string
		word string
		want string
	}{
		{"El gato duerme en la casa", "duerme", TagVerb},
		{"Espero que vengas pronto", "vengas", TagVerb},
		{"Ella estaba cantando", "cantando", TagVerb},
		{"Quiero estudiar más", "estudiar", TagVerb},
	}
	for _, tt := range tests {
		if got := tagOf(t, tt.text, tt.word); got != tt.want {
			t.Errorf("tag of %q in %q = %q, want %q", tt.word, tt.text, got, tt.want)
		}
	}
}

func TestTag_ClosedClassNeverVerb(t *testing.T) {
	text := "Ojalá que él no venga para la fiesta"
	for _, word := range []string{"Ojalá", "que", "él", "no", "para", "la"} {
		if got := tagOf(t, text, word); got != TagOther {
			t.Errorf("closed-class %q tagged %q", word, got)
		}
	}
}

func TestTag_DeterminerCorrection(t *testing.T) {
	// Nouns after a determiner look verb-like by suffix alone.
	tests := []struct {
		text string
		word string
	}{
		{"El gato duerme en la casa", "casa"},
		{"El gato duerme en la casa", "gato"},
		{"Aprobó el examen ayer", "examen"},
	}
	for _, tt := range tests {
		if got := tagOf(t, tt.text, tt.word); got != TagOther {
			t.Errorf("%q after determiner tagged %q, want %q", tt.word, got, TagOther)
		}
	}
}

func TestTag_Punctuation(t *testing.T) {
	if got := tagOf(t, "Hola, mundo.", ","); got != TagOther {
		t.Errorf("punctuation tagged %q", got)
	}
}
