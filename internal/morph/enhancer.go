package morph

import (
	"context"
	"fmt"
	"strings"

	"github.com/rmarchan/subjuntivo/internal/model"
)

// Enhancer refines the lemmas in a finished report using a Provider.
// Irregular-table hits keep their dictionary lemma; only suffix-derived
// lemmas are candidates. Detection, tense and person are never touched.
type Enhancer struct {
	provider Provider
}

// NewEnhancer builds an Enhancer from configuration. Returns nil when no
// provider is configured.
func NewEnhancer(config Config) (*Enhancer, error) {
	provider, err := NewProvider(config)
	if err != nil {
		return nil, fmt.Errorf("create provider: %w", err)
	}
	if provider == nil {
		return nil, nil
	}
	return &Enhancer{provider: provider}, nil
}

// IsEnabled reports whether a provider is wired in.
func (e *Enhancer) IsEnabled() bool {
	return e != nil && e.provider != nil
}

// Refine replaces suffix-derived lemmas with provider lemmas in place.
// Forms the provider does not resolve keep their baseline lemma.
func (e *Enhancer) Refine(ctx context.Context, report *model.Report) error {
	if !e.IsEnabled() || report == nil {
		return nil
	}

	var words []string
	seen := make(map[string]bool)
	for _, occ := range report.Occurrences {
		if occ.Rule == "irregular" {
			continue
		}
		form := strings.ToLower(occ.Verb)
		if !seen[form] {
			seen[form] = true
			words = append(words, form)
		}
	}
	if len(words) == 0 {
		return nil
	}

	lemmas, err := e.provider.Lemmas(ctx, words)
	if err != nil {
		return fmt.Errorf("refine lemmas: %w", err)
	}

	for i := range report.Occurrences {
		occ := &report.Occurrences[i]
		if occ.Rule == "irregular" {
			continue
		}
		if lemma, ok := lemmas[strings.ToLower(occ.Verb)]; ok {
			occ.Lemma = lemma
		}
	}
	return nil
}
