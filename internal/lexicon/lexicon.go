// Package lexicon holds the static tables the classifier and lemmatizer
// work from: irregular subjunctive surface forms with their lemmas, the
// clause-introducing trigger phrases, and the ending lists per tense
// bucket. The tables are loaded once and never mutated at runtime.
package lexicon

import (
	"strings"

	"github.com/rmarchan/subjuntivo/internal/model"
)

// irregularLemmas maps irregular subjunctive surface forms to their
// infinitive. All keys are lowercase. Coverage is the high-frequency
// irregular verbs; regular forms are handled by the ending tables.
var irregularLemmas = map[string]string{
	// ser
	"sea": "ser", "seas": "ser", "seamos": "ser", "sean": "ser",
	// ser / ir imperfect (fuera is ambiguous between both; ser wins)
	"fuera": "ser", "fueras": "ser", "fuéramos": "ser", "fueran": "ser",
	"fuese": "ser", "fueses": "ser", "fuésemos": "ser", "fuesen": "ser",
	// ir
	"vaya": "ir", "vayas": "ir", "vayamos": "ir", "vayan": "ir",
	// haber
	"haya": "haber", "hayas": "haber", "hayamos": "haber", "hayan": "haber",
	"hubiera": "haber", "hubieras": "haber", "hubiéramos": "haber", "hubieran": "haber",
	"hubiese": "haber", "hubieses": "haber", "hubiésemos": "haber", "hubiesen": "haber",
	// estar
	"esté": "estar", "estés": "estar", "estemos": "estar", "estén": "estar",
	// dar
	"dé": "dar", "des": "dar", "demos": "dar", "den": "dar",
	// saber
	"sepa": "saber", "sepas": "saber", "sepamos": "saber", "sepan": "saber",
	// caber
	"quepa": "caber", "quepas": "caber", "quepamos": "caber", "quepan": "caber",
	// hacer
	"haga": "hacer", "hagas": "hacer", "hagamos": "hacer", "hagan": "hacer",
	// poder
	"pueda": "poder", "puedas": "poder", "podamos": "poder", "puedan": "poder",
	// querer
	"quiera": "querer", "quieras": "querer", "queramos": "querer", "quieran": "querer",
	// tener
	"tenga": "tener", "tengas": "tener", "tengamos": "tener", "tengan": "tener",
	// venir
	"venga": "venir", "vengas": "venir", "vengamos": "venir", "vengan": "venir",
	// decir
	"diga": "decir", "digas": "decir", "digamos": "decir", "digan": "decir",
	// oír
	"oiga": "oír", "oigas": "oír", "oigamos": "oír", "oigan": "oír",
	// caer
	"caiga": "caer", "caigas": "caer", "caigamos": "caer", "caigan": "caer",
	// traer
	"traiga": "traer", "traigas": "traer", "traigamos": "traer", "traigan": "traer",
	// valer
	"valga": "valer", "valgas": "valer", "valgamos": "valer", "valgan": "valer",
	// salir
	"salga": "salir", "salgas": "salir", "salgamos": "salir", "salgan": "salir",
	// dormir
	"duerma": "dormir", "duermas": "dormir", "durmamos": "dormir", "duerman": "dormir",
	// morir
	"muera": "morir", "mueras": "morir", "muramos": "morir", "mueran": "morir",
	// sentir
	"sienta": "sentir", "sientas": "sentir", "sintamos": "sentir", "sientan": "sentir",
	// pedir
	"pida": "pedir", "pidas": "pedir", "pidamos": "pedir", "pidan": "pedir",
	// contar
	"cuente": "contar", "cuentes": "contar", "contemos": "contar", "cuenten": "contar",
	// volver
	"vuelva": "volver", "vuelvas": "volver", "volvamos": "volver", "vuelvan": "volver",
	// encontrar
	"encuentre": "encontrar", "encuentres": "encontrar", "encontremos": "encontrar", "encuentren": "encontrar",
}

// triggerPhrases conventionally introduce a subjunctive clause. Ordered
// longest-first so phrase matching prefers the most specific trigger.
var triggerPhrases = []string{
	"a fin de que", "con tal de que", "en caso de que", "a no ser que",
	"antes de que", "a menos que", "es probable que", "es posible que",
	"no creo que", "espero que", "dudo que", "excepto que", "salvo que",
	"ojalá que", "para que", "sin que", "como si", "tal vez",
	"aunque", "cuando", "quizás", "ojalá", "que", "si",
}

// Ending lists per tense bucket, in the order the classifier checks them.
// Within a bucket longer endings come first so the matched ending is the
// most specific one (the lemmatizer strips exactly what matched).

var imperfectEndings = []string{
	"iéramos", "iésemos", "áramos", "ásemos", "éramos", "ésemos",
	"ieras", "ieses", "ieran", "iesen", "semos",
	"iera", "iese", "aras", "ases", "aran", "asen",
	"eras", "eses", "eran", "esen",
	"ara", "ase", "era", "ese", "ses", "sen", "se",
}

var futureEndings = []string{
	"iéremos", "áremos", "éremos",
	"ieres", "ieren",
	"iere", "ares", "aren", "eres", "eren",
	"are", "ere",
}

// presentEndings deliberately conflates the -ar, -er and -ir families the
// way the source tables do: the -a/-as/-amos/-an row is declared for both
// -ar and -ir verbs, so it behaves as one set. Real Spanish distinguishes
// them (-ar verbs take the -e family, -er/-ir the -a family); splitting
// the buckets would change the detection boundary, so the conflated set
// is kept on purpose. The accented é/és/én entries cover the stressed
// irregular stems (dé, esté, estén).
var presentEndings = []string{
	"amos", "emos",
	"as", "es", "an", "en",
	"és", "én",
	"a", "e", "é",
}

// conditionalEndings are the endings the trigger heuristic additionally
// accepts inside trigger sentences.
var conditionalEndings = []string{
	"ríamos", "ríais", "rías", "rían", "ría",
}

// conditionalStems are high-frequency simple-conditional forms that the
// trigger heuristic must not claim as subjunctive (the querría class).
var conditionalStems = []string{
	"querría", "podría", "habría", "sería", "estaría", "iría", "daría",
	"haría", "sabría", "tendría", "vendría", "diría", "saldría", "valdría",
	"pondría", "cabría",
}

// personEndings maps endings to person/number, checked in order. Plural
// endings precede the singular ones they contain, and the shared -a/-e
// endings resolve to 3rd singular rather than 1st (the dominant reading
// after "que").
var personEndings = []struct {
	Suffix string
	Person model.Person
}{
	{"iéramos", model.PersonFirstPlural},
	{"iésemos", model.PersonFirstPlural},
	{"iéremos", model.PersonFirstPlural},
	{"áramos", model.PersonFirstPlural},
	{"éramos", model.PersonFirstPlural},
	{"ásemos", model.PersonFirstPlural},
	{"ésemos", model.PersonFirstPlural},
	{"áremos", model.PersonFirstPlural},
	{"éremos", model.PersonFirstPlural},
	{"amos", model.PersonFirstPlural},
	{"emos", model.PersonFirstPlural},
	{"imos", model.PersonFirstPlural},
	{"semos", model.PersonFirstPlural},
	{"áis", model.PersonSecondPlural},
	{"éis", model.PersonSecondPlural},
	{"ís", model.PersonSecondPlural},
	{"an", model.PersonThirdPlural},
	{"en", model.PersonThirdPlural},
	{"én", model.PersonThirdPlural},
	{"as", model.PersonSecondSingular},
	{"es", model.PersonSecondSingular},
	{"ses", model.PersonSecondSingular},
	{"és", model.PersonSecondSingular},
	{"a", model.PersonThirdSingular},
	{"e", model.PersonThirdSingular},
	{"se", model.PersonThirdSingular},
	{"é", model.PersonThirdSingular},
	{"o", model.PersonFirstSingular},
}

// participleEndings mark a past participle following a haber auxiliary.
var participleEndings = []string{"ado", "ido", "to", "cho"}

// Lexicon exposes the read-only tables. A single value is built at startup
// and shared by every analysis; it is safe for concurrent use.
type Lexicon struct {
	irregular    map[string]string
	triggers     []string
	triggerWords map[string]bool
	leadInWords  map[string]bool
}

// New builds the process-wide lexicon.
func New() *Lexicon {
	lex := &Lexicon{
		irregular:    irregularLemmas,
		triggers:     triggerPhrases,
		triggerWords: make(map[string]bool),
		leadInWords:  make(map[string]bool),
	}
	for _, phrase := range triggerPhrases {
		words := strings.Fields(phrase)
		lex.triggerWords[words[len(words)-1]] = true
		for _, w := range words[:len(words)-1] {
			lex.leadInWords[w] = true
		}
		if len(words) == 1 {
			// Standalone triggers may also precede another trigger
			// word ("Ojalá que ..."), so they extend the clause too.
			lex.leadInWords[words[0]] = true
		}
	}
	return lex
}

// IrregularLemma returns the infinitive for an irregular subjunctive
// surface form, or "" when the form is not in the table.
func (l *Lexicon) IrregularLemma(form string) string {
	return l.irregular[form]
}

// IsIrregular reports whether the lowercase form is a known irregular
// subjunctive.
func (l *Lexicon) IsIrregular(form string) bool {
	_, ok := l.irregular[form]
	return ok
}

// IrregularForms returns every key of the irregular table.
func (l *Lexicon) IrregularForms() []string {
	forms := make([]string, 0, len(l.irregular))
	for f := range l.irregular {
		forms = append(forms, f)
	}
	return forms
}

// Triggers returns the trigger phrases, longest first.
func (l *Lexicon) Triggers() []string {
	return l.triggers
}

// ContainsTrigger reports whether the lowercased sentence contains any
// trigger phrase.
func (l *Lexicon) ContainsTrigger(sentence string) bool {
	lower := strings.ToLower(sentence)
	for _, phrase := range l.triggers {
		if containsWordPhrase(lower, phrase) {
			return true
		}
	}
	return false
}

// IsTriggerWord reports whether the lowercase word terminates a trigger
// phrase (every single-word trigger qualifies).
func (l *Lexicon) IsTriggerWord(word string) bool {
	return l.triggerWords[word]
}

// IsLeadInWord reports whether the lowercase word may extend a clause
// start leftwards, i.e. it occurs before the final word of some trigger
// phrase ("dudo" in "dudo que", "ojalá" in "ojalá que").
func (l *Lexicon) IsLeadInWord(word string) bool {
	return l.leadInWords[word]
}

// ImperfectEndings returns the imperfect-subjunctive ending list.
func (l *Lexicon) ImperfectEndings() []string { return imperfectEndings }

// FutureEndings returns the future-simple subjunctive ending list.
func (l *Lexicon) FutureEndings() []string { return futureEndings }

// PresentEndings returns the (conflated) present-subjunctive ending list.
func (l *Lexicon) PresentEndings() []string { return presentEndings }

// ConditionalEndings returns the endings the trigger heuristic broadens to.
func (l *Lexicon) ConditionalEndings() []string { return conditionalEndings }

// IsConditionalException reports whether the form is a querría-class
// conditional that must not be claimed as subjunctive.
func (l *Lexicon) IsConditionalException(form string) bool {
	for _, stem := range conditionalStems {
		if strings.HasPrefix(form, stem) {
			return true
		}
	}
	return false
}

// PersonFor maps a lowercase form to its person/number by ending, falling
// back to Indeterminate. The endings are genuinely ambiguous without full
// conjugation tables, so this is approximate by construction.
func (l *Lexicon) PersonFor(form string) model.Person {
	for _, pe := range personEndings {
		if strings.HasSuffix(form, pe.Suffix) {
			return pe.Person
		}
	}
	return model.PersonIndeterminate
}

// IsHaberAuxiliary reports whether the form is a subjunctive of haber that
// can head a compound (pluperfect) form.
func (l *Lexicon) IsHaberAuxiliary(form string) bool {
	return l.irregular[form] == "haber"
}

// IsParticiple reports whether the lowercase word looks like a past
// participle.
func (l *Lexicon) IsParticiple(word string) bool {
	for _, end := range participleEndings {
		if len(word) > len(end) && strings.HasSuffix(word, end) {
			return true
		}
	}
	return false
}

// containsWordPhrase reports whether phrase occurs in text on word
// boundaries, so "si" does not fire inside "asistir".
func containsWordPhrase(text, phrase string) bool {
	idx := 0
	for {
		i := strings.Index(text[idx:], phrase)
		if i < 0 {
			return false
		}
		start := idx + i
		end := start + len(phrase)
		startOK := start == 0 || isBoundary(text[start-1])
		endOK := end == len(text) || isBoundary(text[end])
		if startOK && endOK {
			return true
		}
		idx = start + 1
		if idx >= len(text) {
			return false
		}
	}
}

func isBoundary(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '.', ',', ';', ':', '!', '?', '(', ')', '"', '\'':
		return true
	}
	return false
}
