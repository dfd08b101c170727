package analyze

import (
	"reflect"
	"strings"
	"testing"

	"github.com/rmarchan/subjuntivo/internal/model"
)

func findOccurrence(report *model.Report, verb string) *model.VerbOccurrence {
	for i := range report.Occurrences {
		if report.Occurrences[i].Verb == verb {
			return &report.Occurrences[i]
		}
	}
	return nil
}

func TestAnalyze_EmptyInput(t *testing.T) {
	a := New(model.DefaultConfig())

	for _, text := range []string{"", "   ", "\n\t"} {
		report := a.Analyze(text)
		if len(report.Occurrences) != 0 {
			t.Errorf("Analyze(%q) found %d occurrences", text, len(report.Occurrences))
		}
		if report.Summary.TotalOccurrences != 0 {
			t.Errorf("Analyze(%q) summary total = %d", text, report.Summary.TotalOccurrences)
		}
	}
}

func TestAnalyze_NoFalsePositivesWithoutTriggers(t *testing.T) {
	a := New(model.DefaultConfig())

	report := a.Analyze("El gato duerme en la casa.")
	if len(report.Occurrences) != 0 {
		t.Errorf("expected zero occurrences, got %+v", report.Occurrences)
	}
	if report.Summary.SentenceCount != 1 {
		t.Errorf("sentence count = %d, want 1", report.Summary.SentenceCount)
	}
}

func TestAnalyze_TriggerSentences(t *testing.T) {
	a := New(model.DefaultConfig())

	report := a.Analyze("Es importante que estudies para el examen. Ojalá que tengas buena suerte.")

	if len(report.Occurrences) < 2 {
		t.Fatalf("expected at least 2 occurrences, got %d", len(report.Occurrences))
	}

	estudies := findOccurrence(report, "estudies")
	if estudies == nil {
		t.Fatal("estudies not detected")
	}
	if estudies.Tense != model.TensePresent {
		t.Errorf("estudies tense = %q, want present", estudies.Tense)
	}
	if !strings.HasPrefix(estudies.Lemma, "estudi") {
		t.Errorf("estudies lemma = %q", estudies.Lemma)
	}

	tengas := findOccurrence(report, "tengas")
	if tengas == nil {
		t.Fatal("tengas not detected")
	}
	if tengas.Tense != model.TensePresent {
		t.Errorf("tengas tense = %q, want present", tengas.Tense)
	}
	if tengas.Lemma != "tener" {
		t.Errorf("tengas lemma = %q, want tener", tengas.Lemma)
	}
	if !strings.Contains(tengas.Clause, "Ojalá que") || !strings.Contains(tengas.Clause, ".") {
		t.Errorf("tengas clause = %q, want trigger through the period", tengas.Clause)
	}
}

func TestAnalyze_IrregularVerbs(t *testing.T) {
	a := New(model.DefaultConfig())

	report := a.Analyze("Quiero que vengas a la fiesta. Dudo que ella pueda asistir.")

	vengas := findOccurrence(report, "vengas")
	if vengas == nil {
		t.Fatal("vengas not detected")
	}
	if vengas.Lemma != "venir" {
		t.Errorf("vengas lemma = %q, want venir", vengas.Lemma)
	}

	pueda := findOccurrence(report, "pueda")
	if pueda == nil {
		t.Fatal("pueda not detected")
	}
	if pueda.Lemma != "poder" {
		t.Errorf("pueda lemma = %q, want poder", pueda.Lemma)
	}

	// Neither indicative "Quiero"/"Dudo" nor infinitive "asistir" count.
	for _, verb := range []string{"Quiero", "Dudo", "asistir"} {
		if occ := findOccurrence(report, verb); occ != nil {
			t.Errorf("%q should not be detected, got %+v", verb, occ)
		}
	}
}

func TestAnalyze_Deterministic(t *testing.T) {
	a := New(model.DefaultConfig())
	text := "Ojalá que tengas suerte y que vengas pronto. Si hubiera sabido, habría venido."

	first := a.Analyze(text)
	second := a.Analyze(text)

	if !reflect.DeepEqual(first.Occurrences, second.Occurrences) {
		t.Error("occurrences differ between runs")
	}
	if !reflect.DeepEqual(first.Summary, second.Summary) {
		t.Error("summaries differ between runs")
	}
}

func TestAnalyze_ClauseContainsVerb(t *testing.T) {
	a := New(model.DefaultConfig())
	text := "Espero que vengas. Dudo que pueda. Como si fuera verdad. Ojalá que llueva café."

	report := a.Analyze(text)
	if len(report.Occurrences) == 0 {
		t.Fatal("expected occurrences")
	}
	for _, occ := range report.Occurrences {
		if !strings.Contains(occ.Clause, occ.Verb) {
			t.Errorf("clause %q does not contain verb %q", occ.Clause, occ.Verb)
		}
		if occ.Lemma == "" {
			t.Errorf("empty lemma for %q", occ.Verb)
		}
		if occ.Position < 0 || occ.Position >= report.Summary.TokenCount {
			t.Errorf("position %d out of range for %q", occ.Position, occ.Verb)
		}
	}
}

func TestAnalyze_Pluperfect(t *testing.T) {
	a := New(model.DefaultConfig())

	report := a.Analyze("Si hubiera hablado antes, nada habría pasado.")

	hubiera := findOccurrence(report, "hubiera")
	if hubiera == nil {
		t.Fatal("hubiera not detected")
	}
	if hubiera.Tense != model.TensePluperfect {
		t.Errorf("hubiera tense = %q, want pluperfect", hubiera.Tense)
	}
	if hubiera.Lemma != "haber" {
		t.Errorf("hubiera lemma = %q, want haber", hubiera.Lemma)
	}
}

func TestAnalyze_TopLemmasRanking(t *testing.T) {
	a := New(model.DefaultConfig())

	// vengas twice, pueda once: venir ranks first by count.
	report := a.Analyze("Quiero que vengas. Espero que vengas. Dudo que pueda.")

	var top []string
	for _, lc := range report.Summary.TopLemmas {
		top = append(top, lc.Lemma)
	}
	if len(top) < 2 {
		t.Fatalf("expected at least 2 ranked lemmas, got %v", top)
	}
	if top[0] != "venir" {
		t.Errorf("top lemma = %q, want venir", top[0])
	}
	for i := 1; i < len(report.Summary.TopLemmas); i++ {
		if report.Summary.TopLemmas[i].Count > report.Summary.TopLemmas[i-1].Count {
			t.Error("top lemmas not sorted by descending count")
		}
	}
}

func TestAnalyze_TieBrokenByFirstSeen(t *testing.T) {
	a := New(model.DefaultConfig())

	report := a.Analyze("Espero que vengas. Dudo que pueda.")

	venir, poder := -1, -1
	for i, lc := range report.Summary.TopLemmas {
		switch lc.Lemma {
		case "venir":
			venir = i
		case "poder":
			poder = i
		}
	}
	if venir == -1 || poder == -1 {
		t.Fatalf("expected venir and poder in ranking, got %+v", report.Summary.TopLemmas)
	}
	if venir > poder {
		t.Error("tie should be broken by first-encountered order")
	}
}

func TestAnalyze_ByTenseHistogram(t *testing.T) {
	a := New(model.DefaultConfig())

	report := a.Analyze("Ojalá que vengas. Si hubiera hablado. Cuando hablares.")

	for _, tense := range model.Tenses() {
		if _, ok := report.Summary.ByTense[tense]; !ok {
			t.Errorf("tense %q missing from histogram", tense)
		}
	}
	if report.Summary.ByTense[model.TensePresent] < 1 {
		t.Error("expected a present occurrence")
	}
	if report.Summary.ByTense[model.TensePluperfect] < 1 {
		t.Error("expected a pluperfect occurrence")
	}
	if report.Summary.ByTense[model.TenseFuture] < 1 {
		t.Error("expected a future occurrence")
	}

	total := 0
	for _, count := range report.Summary.ByTense {
		total += count
	}
	if total != report.Summary.TotalOccurrences {
		t.Errorf("histogram total %d != occurrence count %d", total, report.Summary.TotalOccurrences)
	}
}

func TestAnalyze_ForcedFallbackStillDetects(t *testing.T) {
	cfg := model.DefaultConfig()
	cfg.Tokenizer.ForceFallback = true
	a := New(cfg)

	report := a.Analyze("Espero que vengas pronto.")
	if findOccurrence(report, "vengas") == nil {
		t.Error("vengas not detected with the fallback tokenizer")
	}
}
