package model

import "time"

// Report is the complete result of analyzing one text.
type Report struct {
	// Subject names the analyzed input (file name, URL slug, or "stdin").
	Subject string `json:"subject"`

	// Source is the origin of the text, when known (path or URL).
	Source string `json:"source,omitempty"`

	AnalyzedAt time.Time `json:"analyzed_at"`

	// Occurrences are ordered by position of discovery.
	Occurrences []VerbOccurrence `json:"occurrences"`

	Summary Summary `json:"summary"`

	// Warnings carries non-fatal advisories, e.g. a tokenizer fallback.
	Warnings []string `json:"warnings,omitempty"`
}

// Summary holds the aggregate statistics derived from a full scan.
// It is computed once, after the scan, and not updated afterwards.
type Summary struct {
	TotalOccurrences int `json:"total_occurrences"`
	TokenCount       int `json:"token_count"`
	SentenceCount    int `json:"sentence_count"`

	// ByTense maps each tense bucket to its occurrence count.
	ByTense map[Tense]int `json:"by_tense"`

	// TopLemmas ranks the most frequent lemmas, descending by count,
	// ties broken by first-encountered order.
	TopLemmas []LemmaCount `json:"top_lemmas"`
}

// LemmaCount is one entry of the lemma frequency ranking.
type LemmaCount struct {
	Lemma string `json:"lemma"`
	Count int    `json:"count"`
}
