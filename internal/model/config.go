package model

import (
	"os"
	"path/filepath"
	"time"
)

// Config holds the full configuration for an analysis session. It is built
// once at startup (defaults, config file, env, flags) and threaded through
// the tokenizer, classifier and pipeline; nothing reads it from a global.
type Config struct {
	Tokenizer   TokenizerConfig   `yaml:"tokenizer" mapstructure:"tokenizer"`
	Classifier  ClassifierConfig  `yaml:"classifier" mapstructure:"classifier"`
	Clause      ClauseConfig      `yaml:"clause" mapstructure:"clause"`
	HTTP        HTTPConfig        `yaml:"http" mapstructure:"http"`
	Cache       CacheConfig       `yaml:"cache" mapstructure:"cache"`
	Concurrency ConcurrencyConfig `yaml:"concurrency" mapstructure:"concurrency"`
	RateLimit   RateLimitConfig   `yaml:"rate_limit" mapstructure:"rate_limit"`
	Morph       MorphConfig       `yaml:"morph" mapstructure:"morph"`
	Output      OutputConfig      `yaml:"output" mapstructure:"output"`
}

// TokenizerConfig selects the tokenization strategy.
type TokenizerConfig struct {
	// ForceFallback always uses the regex tokenizer (no POS tags).
	ForceFallback bool `yaml:"force_fallback" mapstructure:"force_fallback"`
}

// ClassifierConfig toggles the optional classifier enrichments.
type ClassifierConfig struct {
	// POSGate only considers tokens tagged as verbs, when tags exist.
	POSGate bool `yaml:"pos_gate" mapstructure:"pos_gate"`

	// TriggerHeuristic broadens acceptance inside trigger sentences.
	TriggerHeuristic bool `yaml:"trigger_heuristic" mapstructure:"trigger_heuristic"`

	// TriggerGatePresent accepts present-bucket endings only when the
	// sentence contains a trigger phrase. The present endings overlap
	// heavily with indicative and even noun inflections; gating them is
	// what keeps "El gato duerme en la casa." at zero hits.
	TriggerGatePresent bool `yaml:"trigger_gate_present" mapstructure:"trigger_gate_present"`
}

// ClauseConfig bounds the clause extraction windows.
type ClauseConfig struct {
	BackwardWindow int `yaml:"backward_window" mapstructure:"backward_window"`
	ForwardWindow  int `yaml:"forward_window" mapstructure:"forward_window"`
}

// HTTPConfig configures the page fetcher used by scan/batch.
type HTTPConfig struct {
	Timeout       time.Duration `yaml:"timeout" mapstructure:"timeout"`
	UserAgent     string        `yaml:"user_agent" mapstructure:"user_agent"`
	MaxBodyBytes  int64         `yaml:"max_body_bytes" mapstructure:"max_body_bytes"`
	RespectRobots bool          `yaml:"respect_robots" mapstructure:"respect_robots"`
}

// CacheConfig configures the fetched-page cache.
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled" mapstructure:"enabled"`
	Dir       string        `yaml:"dir" mapstructure:"dir"`
	MemoryTTL time.Duration `yaml:"memory_ttl" mapstructure:"memory_ttl"`
	DiskTTL   time.Duration `yaml:"disk_ttl" mapstructure:"disk_ttl"`
}

// ConcurrencyConfig sizes the batch worker pool.
type ConcurrencyConfig struct {
	Workers int `yaml:"workers" mapstructure:"workers"`
}

// RateLimitConfig bounds outbound fetches per host.
type RateLimitConfig struct {
	RequestsPerSecond float64 `yaml:"requests_per_second" mapstructure:"requests_per_second"`
	Burst             int     `yaml:"burst" mapstructure:"burst"`
}

// MorphConfig configures the optional morphology enhancer. The analyzer is
// fully functional with Provider empty; the enhancer only refines lemmas.
type MorphConfig struct {
	// Provider is "" (disabled) or "openai".
	Provider string `yaml:"provider" mapstructure:"provider"`
	Model    string `yaml:"model" mapstructure:"model"`
	APIKey   string `yaml:"-" mapstructure:"-"`
	// BaseURL points at any OpenAI-compatible endpoint (local servers).
	BaseURL string        `yaml:"base_url" mapstructure:"base_url"`
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`
}

// OutputConfig controls rendering.
type OutputConfig struct {
	Verbose bool `yaml:"verbose" mapstructure:"verbose"`
	TopN    int  `yaml:"top_n" mapstructure:"top_n"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Tokenizer: TokenizerConfig{
			ForceFallback: false,
		},
		Classifier: ClassifierConfig{
			POSGate:            true,
			TriggerHeuristic:   true,
			TriggerGatePresent: true,
		},
		Clause: ClauseConfig{
			BackwardWindow: 15,
			ForwardWindow:  20,
		},
		HTTP: HTTPConfig{
			Timeout:       30 * time.Second,
			UserAgent:     "Subjuntivo/0.3 (+https://github.com/rmarchan/subjuntivo)",
			MaxBodyBytes:  2_000_000,
			RespectRobots: true,
		},
		Cache: CacheConfig{
			Enabled:   true,
			Dir:       defaultCacheDir(),
			MemoryTTL: 15 * time.Minute,
			DiskTTL:   24 * time.Hour,
		},
		Concurrency: ConcurrencyConfig{
			Workers: 4,
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 1,
			Burst:             3,
		},
		Morph: MorphConfig{
			Provider: "",
			Model:    "",
			Timeout:  30 * time.Second,
		},
		Output: OutputConfig{
			Verbose: false,
			TopN:    10,
		},
	}
}

func defaultCacheDir() string {
	base, err := os.UserCacheDir()
	if err != nil {
		return ".subjuntivo-cache"
	}
	return filepath.Join(base, "subjuntivo")
}
