// Package morph wires an optional external morphology provider behind an
// interface. The analyzer's own suffix lemmatizer is the baseline; a
// provider only refines lemmas for regular forms, never detection.
package morph

import (
	"context"
	"time"

	"github.com/rmarchan/subjuntivo/internal/model"
)

// Provider resolves Spanish surface forms to infinitive lemmas.
type Provider interface {
	// Name returns the provider name.
	Name() string

	// Lemmas maps each surface form to its infinitive. Forms the
	// provider cannot resolve are absent from the result.
	Lemmas(ctx context.Context, words []string) (map[string]string, error)

	// IsAvailable checks if the provider is configured and reachable.
	IsAvailable(ctx context.Context) bool
}

// Config holds provider configuration.
type Config struct {
	// Provider name: "openai" or "" (disabled).
	Provider string

	// Model name (provider-specific).
	Model string

	// APIKey for the hosted API.
	APIKey string

	// BaseURL for OpenAI-compatible endpoints (local servers).
	BaseURL string

	// Timeout for API requests.
	Timeout time.Duration
}

// ConfigFromModel converts model.MorphConfig to morph.Config.
func ConfigFromModel(mc model.MorphConfig) Config {
	return Config{
		Provider: mc.Provider,
		Model:    mc.Model,
		APIKey:   mc.APIKey,
		BaseURL:  mc.BaseURL,
		Timeout:  mc.Timeout,
	}
}
