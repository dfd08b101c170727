package morph

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
)

// OpenAIProvider implements the Provider interface over the OpenAI Chat
// Completions API, or any compatible endpoint via BaseURL.
type OpenAIProvider struct {
	client *openai.Client
	config Config
}

// NewOpenAIProvider creates a new OpenAI provider.
func NewOpenAIProvider(config Config) (*OpenAIProvider, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}

	clientConfig := openai.DefaultConfig(config.APIKey)
	if config.BaseURL != "" {
		clientConfig.BaseURL = config.BaseURL
	}

	return &OpenAIProvider{
		client: openai.NewClientWithConfig(clientConfig),
		config: config,
	}, nil
}

// Name returns the provider name.
func (p *OpenAIProvider) Name() string {
	return "openai"
}

// IsAvailable checks if the provider is properly configured.
func (p *OpenAIProvider) IsAvailable(ctx context.Context) bool {
	_, err := p.client.ListModels(ctx)
	return err == nil
}

// Lemmas asks the model for the infinitive of each form and parses the
// JSON object it returns. Forms missing from the response, or mapped to
// something that is not a Spanish infinitive, are dropped.
func (p *OpenAIProvider) Lemmas(ctx context.Context, words []string) (map[string]string, error) {
	if len(words) == 0 {
		return map[string]string{}, nil
	}

	model := p.config.Model
	if model == "" {
		model = openai.GPT4oMini
	}

	timeout := p.config.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	ctxWithTimeout, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	chatReq := openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "You are a Spanish morphology engine. Given conjugated verb forms, respond with only a JSON object mapping each form to its infinitive lemma. No prose.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: buildPrompt(words),
			},
		},
		MaxTokens:   1000,
		Temperature: 0,
	}

	resp, err := p.client.CreateChatCompletion(ctxWithTimeout, chatReq)
	if err != nil {
		return nil, fmt.Errorf("OpenAI API error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no response from OpenAI")
	}

	return parseLemmas(resp.Choices[0].Message.Content, words)
}

func buildPrompt(words []string) string {
	var b strings.Builder
	b.WriteString("Forms:\n")
	for _, w := range words {
		b.WriteString("- ")
		b.WriteString(w)
		b.WriteString("\n")
	}
	b.WriteString("\nReturn a JSON object, e.g. {\"hablara\": \"hablar\"}.")
	return b.String()
}

// parseLemmas tolerates markdown fences around the JSON and filters the
// mapping to the requested forms with infinitive-shaped values.
func parseLemmas(content string, words []string) (map[string]string, error) {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)

	var raw map[string]string
	if err := json.Unmarshal([]byte(content), &raw); err != nil {
		return nil, fmt.Errorf("parse lemma response: %w", err)
	}

	asked := make(map[string]bool, len(words))
	for _, w := range words {
		asked[w] = true
	}

	lemmas := make(map[string]string, len(raw))
	for form, lemma := range raw {
		form = strings.ToLower(strings.TrimSpace(form))
		lemma = strings.ToLower(strings.TrimSpace(lemma))
		if !asked[form] || !looksLikeInfinitive(lemma) {
			continue
		}
		lemmas[form] = lemma
	}
	return lemmas, nil
}

func looksLikeInfinitive(lemma string) bool {
	return strings.HasSuffix(lemma, "ar") ||
		strings.HasSuffix(lemma, "er") ||
		strings.HasSuffix(lemma, "ir") ||
		strings.HasSuffix(lemma, "ír")
}
