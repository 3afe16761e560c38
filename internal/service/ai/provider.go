package ai

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"rwfw/backend/internal/model"
)

const (
	ProviderAnthropic = "anthropic"
	ProviderOpenAI    = "openai"

	DefaultAnthropicModel = "claude-haiku-4-5-20251001"
	DefaultOpenAIModel    = "gpt-4o-mini"
	DefaultMaxTokens      = 512
)

var (
	ErrMissingAPIKey   = errors.New("missing API key")
	ErrInvalidProvider = errors.New("invalid provider")
)

// Provider sends one conversation to a hosted chat model and returns the first text segment
// of its reply. An empty string with a nil error means the model returned no text.
type Provider interface {
	Name() string
	Chat(ctx context.Context, systemPrompt string, turns []model.ChatTurn, maxTokens int) (string, error)
}

// Config selects and configures a Provider.
type Config struct {
	Provider string
	APIKey   string
	BaseURL  string
	Model    string

	// HTTPClient carries the outbound proxy and timeout; nil uses the SDK default.
	HTTPClient *http.Client
}

// StatusError reports a non-success HTTP status returned by the provider API.
type StatusError struct {
	Provider   string
	StatusCode int
	Err        error
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s API returned status %d", e.Provider, e.StatusCode)
}

func (e *StatusError) Unwrap() error {
	return e.Err
}

// NewProvider builds the provider named in cfg. The zero provider name means anthropic.
func NewProvider(cfg Config) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	switch cfg.Provider {
	case "", ProviderAnthropic:
		m := cfg.Model
		if m == "" {
			m = DefaultAnthropicModel
		}
		return NewAnthropicProvider(cfg.APIKey, cfg.BaseURL, m, cfg.HTTPClient)
	case ProviderOpenAI:
		m := cfg.Model
		if m == "" {
			m = DefaultOpenAIModel
		}
		return NewOpenAIProvider(cfg.APIKey, cfg.BaseURL, m, cfg.HTTPClient)
	default:
		return nil, fmt.Errorf("%w: %s", ErrInvalidProvider, cfg.Provider)
	}
}
