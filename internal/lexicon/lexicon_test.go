package lexicon

import (
	"testing"

	"github.com/rmarchan/subjuntivo/internal/model"
)

func TestIrregularLemma(t *testing.T) {
	lex := New()

	tests := []struct {
		form  string
		lemma string
	}{
		{"sea", "ser"},
		{"fuera", "ser"},
		{"vaya", "ir"},
		{"hubiera", "haber"},
		{"hubiese", "haber"},
		{"esté", "estar"},
		{"dé", "dar"},
		{"tengas", "tener"},
		{"pueda", "poder"},
		{"durmamos", "dormir"},
	}
	for _, tt := range tests {
		if got := lex.IrregularLemma(tt.form); got != tt.lemma {
			t.Errorf("IrregularLemma(%q) = %q, want %q", tt.form, got, tt.lemma)
		}
	}

	if lex.IrregularLemma("duerme") != "" {
		t.Error("duerme is indicative, not in the irregular table")
	}
	if !lex.IsIrregular("duerma") {
		t.Error("duerma should be in the irregular table")
	}
	if lex.IsIrregular("hablara") {
		t.Error("hablara is regular, should not be in the irregular table")
	}
}

func TestContainsTrigger(t *testing.T) {
	lex := New()

	tests := []struct {
		sentence string
		want     bool
	}{
		{"Es importante que estudies", true},
		{"Ojalá llueva café", true},
		{"Dudo que ella pueda asistir", true},
		{"Como si nada hubiera pasado", true},
		{"El gato duerme en la casa", false},
		// "si" must not fire inside "asistir".
		{"Ella quiere asistir", false},
		{"¿Vendrás si te llamo?", true},
	}
	for _, tt := range tests {
		if got := lex.ContainsTrigger(tt.sentence); got != tt.want {
			t.Errorf("ContainsTrigger(%q) = %v, want %v", tt.sentence, got, tt.want)
		}
	}
}

func TestTriggerAndLeadInWords(t *testing.T) {
	lex := New()

	if !lex.IsTriggerWord("que") {
		t.Error("que should be a trigger word")
	}
	if !lex.IsTriggerWord("ojalá") {
		t.Error("ojalá should be a trigger word (standalone)")
	}
	if lex.IsTriggerWord("gato") {
		t.Error("gato should not be a trigger word")
	}

	// "ojalá" and "dudo" precede "que" in their phrases, so they extend
	// a clause start leftwards.
	if !lex.IsLeadInWord("ojalá") {
		t.Error("ojalá should be a lead-in word")
	}
	if !lex.IsLeadInWord("dudo") {
		t.Error("dudo should be a lead-in word")
	}
	if lex.IsLeadInWord("gato") {
		t.Error("gato should not be a lead-in word")
	}
}

func TestPersonFor(t *testing.T) {
	lex := New()

	tests := []struct {
		form   string
		person model.Person
	}{
		{"hablara", model.PersonThirdSingular},
		{"hablaras", model.PersonSecondSingular},
		{"habláramos", model.PersonFirstPlural},
		{"hablaran", model.PersonThirdPlural},
		{"coma", model.PersonThirdSingular},
		{"comamos", model.PersonFirstPlural},
		{"estén", model.PersonThirdPlural},
		{"estés", model.PersonSecondSingular},
		{"dé", model.PersonThirdSingular},
		{"xyz", model.PersonIndeterminate},
	}
	for _, tt := range tests {
		if got := lex.PersonFor(tt.form); got != tt.person {
			t.Errorf("PersonFor(%q) = %q, want %q", tt.form, got, tt.person)
		}
	}
}

func TestConditionalException(t *testing.T) {
	lex := New()

	if !lex.IsConditionalException("querría") {
		t.Error("querría is a true conditional")
	}
	if !lex.IsConditionalException("podríamos") {
		t.Error("podríamos extends a conditional stem")
	}
	if lex.IsConditionalException("cantaría") {
		t.Error("cantaría is not in the exception list")
	}
}

func TestHaberAuxiliaryAndParticiple(t *testing.T) {
	lex := New()

	for _, form := range []string{"hubiera", "hubiese", "haya", "hayan"} {
		if !lex.IsHaberAuxiliary(form) {
			t.Errorf("%q should be a haber auxiliary", form)
		}
	}
	if lex.IsHaberAuxiliary("tenga") {
		t.Error("tenga is not a haber form")
	}

	for _, word := range []string{"hablado", "comido", "escrito", "hecho"} {
		if !lex.IsParticiple(word) {
			t.Errorf("%q should look like a participle", word)
		}
	}
	if lex.IsParticiple("casa") {
		t.Error("casa is not a participle")
	}
	// A bare ending is not a participle.
	if lex.IsParticiple("ado") {
		t.Error("bare ending should not count as a participle")
	}
}

func TestEndingListsNonEmpty(t *testing.T) {
	lex := New()

	if len(lex.ImperfectEndings()) == 0 {
		t.Error("imperfect endings empty")
	}
	if len(lex.FutureEndings()) == 0 {
		t.Error("future endings empty")
	}
	if len(lex.PresentEndings()) == 0 {
		t.Error("present endings empty")
	}
	if len(lex.ConditionalEndings()) == 0 {
		t.Error("conditional endings empty")
	}
	if len(lex.IrregularForms()) < 100 {
		t.Errorf("expected 100+ irregular forms, got %d", len(lex.IrregularForms()))
	}
}
