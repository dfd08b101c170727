package morph

import (
	"fmt"
	"strings"
)

// NewProvider creates a morphology provider based on configuration. A nil
// provider with nil error means the enhancer is disabled.
func NewProvider(config Config) (Provider, error) {
	switch strings.ToLower(config.Provider) {
	case "openai":
		return NewOpenAIProvider(config)

	case "":
		return nil, nil

	default:
		return nil, fmt.Errorf("unknown morphology provider: %s (supported: openai)", config.Provider)
	}
}
