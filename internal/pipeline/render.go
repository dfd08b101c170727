package pipeline

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rmarchan/subjuntivo/internal/model"
)

// Renderer writes reports as JSON, CSV or Markdown and prints the
// stdout summary block.
type Renderer struct {
	topN int
}

// NewRenderer creates a renderer; topN bounds the lemma ranking shown
// in the Markdown and stdout summaries.
func NewRenderer(topN int) *Renderer {
	if topN <= 0 {
		topN = 10
	}
	return &Renderer{topN: topN}
}

// RenderJSON writes the full report as indented JSON.
func (r *Renderer) RenderJSON(report *model.Report, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// RenderCSV writes one row per occurrence with the column set
// Verb, Lemma, Tense, Person, Clause, Position.
func (r *Renderer) RenderCSV(report *model.Report, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	w := csv.NewWriter(file)
	if err := w.Write([]string{"Verb", "Lemma", "Tense", "Person", "Clause", "Position"}); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, occ := range report.Occurrences {
		row := []string{
			occ.Verb,
			occ.Lemma,
			string(occ.Tense),
			string(occ.Person),
			occ.Clause,
			strconv.Itoa(occ.Position),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

// RenderMarkdown writes a readable report with the occurrence table and
// the summary statistics.
func (r *Renderer) RenderMarkdown(report *model.Report, path string) error {
	var b strings.Builder

	fmt.Fprintf(&b, "# Subjunctive Report: %s\n\n", report.Subject)
	if report.Source != "" {
		fmt.Fprintf(&b, "Source: %s\n\n", report.Source)
	}
	fmt.Fprintf(&b, "Analyzed: %s\n\n", report.AnalyzedAt.Format("2006-01-02 15:04:05 MST"))

	fmt.Fprintf(&b, "## Summary\n\n")
	fmt.Fprintf(&b, "- Occurrences: %d\n", report.Summary.TotalOccurrences)
	fmt.Fprintf(&b, "- Tokens: %d\n", report.Summary.TokenCount)
	fmt.Fprintf(&b, "- Sentences: %d\n\n", report.Summary.SentenceCount)

	fmt.Fprintf(&b, "### By Tense\n\n")
	for _, tense := range model.Tenses() {
		fmt.Fprintf(&b, "- %s: %d\n", tense, report.Summary.ByTense[tense])
	}
	b.WriteString("\n")

	if len(report.Summary.TopLemmas) > 0 {
		fmt.Fprintf(&b, "### Top Lemmas\n\n")
		top := report.Summary.TopLemmas
		if len(top) > r.topN {
			top = top[:r.topN]
		}
		for _, lc := range top {
			fmt.Fprintf(&b, "- %s (%d)\n", lc.Lemma, lc.Count)
		}
		b.WriteString("\n")
	}

	if len(report.Occurrences) > 0 {
		fmt.Fprintf(&b, "## Occurrences\n\n")
		b.WriteString("| Verb | Lemma | Tense | Person | Position | Clause |\n")
		b.WriteString("|------|-------|-------|--------|----------|--------|\n")
		for _, occ := range report.Occurrences {
			fmt.Fprintf(&b, "| %s | %s | %s | %s | %d | %s |\n",
				escapeCell(occ.Verb), escapeCell(occ.Lemma), occ.Tense,
				occ.Person, occ.Position, escapeCell(occ.Clause))
		}
		b.WriteString("\n")
	}

	if len(report.Warnings) > 0 {
		fmt.Fprintf(&b, "## Warnings\n\n")
		for _, warning := range report.Warnings {
			fmt.Fprintf(&b, "- %s\n", warning)
		}
		b.WriteString("\n")
	}

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// RenderSummary prints the summary block to stdout.
func (r *Renderer) RenderSummary(report *model.Report) {
	fmt.Printf("\n%s\n", report.Subject)
	fmt.Printf("  occurrences: %d  tokens: %d  sentences: %d\n",
		report.Summary.TotalOccurrences,
		report.Summary.TokenCount,
		report.Summary.SentenceCount)

	tenses := make([]string, 0, len(report.Summary.ByTense))
	for _, tense := range model.Tenses() {
		if count := report.Summary.ByTense[tense]; count > 0 {
			tenses = append(tenses, fmt.Sprintf("%s=%d", tense, count))
		}
	}
	if len(tenses) > 0 {
		fmt.Printf("  by tense: %s\n", strings.Join(tenses, " "))
	}

	top := report.Summary.TopLemmas
	if len(top) > r.topN {
		top = top[:r.topN]
	}
	if len(top) > 0 {
		parts := make([]string, 0, len(top))
		for _, lc := range top {
			parts = append(parts, fmt.Sprintf("%s(%d)", lc.Lemma, lc.Count))
		}
		fmt.Printf("  top lemmas: %s\n", strings.Join(parts, " "))
	}

	for _, warning := range report.Warnings {
		fmt.Printf("  warning: %s\n", warning)
	}
}

func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "|", "\\|")
	return strings.ReplaceAll(s, "\n", " ")
}
