// Package llm provides text-generation clients for the supported
// model providers. Provider availability is determined purely by
// the presence of the corresponding API key; no network calls are
// made to probe it.
package llm

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/cursorkit/cursorkit/internal/apperr"
)

// Provider identifies a supported model provider.
type Provider string

const (
	ProviderOpenAI    Provider = "openai"
	ProviderAnthropic Provider = "anthropic"
)

// Default models, matched to each provider's inexpensive tier.
const (
	DefaultOpenAIModel    = "gpt-4o-mini"
	DefaultAnthropicModel = "claude-3-5-sonnet-20241022"
)

// Environment variables holding provider credentials.
const (
	envOpenAIKey    = "OPENAI_API_KEY"
	envAnthropicKey = "ANTHROPIC_API_KEY"
)

const defaultTemperature = 0.7

// Client generates text from a prompt.
type Client interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Config carries provider settings. Zero values fall back to the
// package defaults; BaseURL overrides exist for tests.
type Config struct {
	OpenAIModel      string
	AnthropicModel   string
	OpenAIBaseURL    string
	AnthropicBaseURL string
	Timeout          time.Duration
}

func (c Config) httpClient() *http.Client {
	timeout := c.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &http.Client{Timeout: timeout}
}

// ProviderStatus reports whether a provider has a credential configured.
type ProviderStatus struct {
	Provider  Provider `json:"provider"`
	Available bool     `json:"available"`
	Model     string   `json:"model"`
}

// Status reports availability for every supported provider, in a
// stable order. It only inspects the environment.
func Status(cfg Config) []ProviderStatus {
	openaiModel := cfg.OpenAIModel
	if openaiModel == "" {
		openaiModel = DefaultOpenAIModel
	}
	anthropicModel := cfg.AnthropicModel
	if anthropicModel == "" {
		anthropicModel = DefaultAnthropicModel
	}
	return []ProviderStatus{
		{Provider: ProviderOpenAI, Available: os.Getenv(envOpenAIKey) != "", Model: openaiModel},
		{Provider: ProviderAnthropic, Available: os.Getenv(envAnthropicKey) != "", Model: anthropicModel},
	}
}

// Available returns the providers that have a credential configured.
func Available(cfg Config) []Provider {
	var out []Provider
	for _, s := range Status(cfg) {
		if s.Available {
			out = append(out, s.Provider)
		}
	}
	return out
}

// New returns a client for the given provider. It fails with
// apperr.ErrUnavailable when the provider's API key is not set, and
// with a plain error for an unknown provider name.
func New(provider Provider, cfg Config) (Client, error) {
	switch provider {
	case ProviderOpenAI:
		key := os.Getenv(envOpenAIKey)
		if key == "" {
			return nil, fmt.Errorf("openai: %s not set: %w", envOpenAIKey, apperr.ErrUnavailable)
		}
		return newOpenAIClient(key, cfg), nil
	case ProviderAnthropic:
		key := os.Getenv(envAnthropicKey)
		if key == "" {
			return nil, fmt.Errorf("anthropic: %s not set: %w", envAnthropicKey, apperr.ErrUnavailable)
		}
		return newAnthropicClient(key, cfg), nil
	default:
		return nil, fmt.Errorf("unknown provider %q", provider)
	}
}
