package llm

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/draftforge/draftforge/internal/config"
)

const (
	// DefaultTemperature applies when the caller leaves it unset.
	DefaultTemperature = 0.7

	// maxRequestTokens bounds the completion size regardless of the
	// model's true ceiling, to keep cost and latency sane.
	maxRequestTokens = 4000
)

// Options tunes one generation call. Temperature is a pointer so an
// explicit zero (deterministic sampling) is distinct from unset.
type Options struct {
	Temperature *float64
	MaxTokens   int
}

// Adapter owns the configured provider set. It is built once at startup
// from the resolved configuration; re-configuration means constructing
// a new Adapter.
type Adapter struct {
	providers map[string]Provider
}

// NewAdapter builds a provider client for every configured identity.
// Providers without a resolved credential are simply absent.
func NewAdapter(cfg *config.Config) *Adapter {
	providers := make(map[string]Provider, len(cfg.Providers))

	for _, info := range config.Providers {
		pc, ok := cfg.Providers[info.ID]
		if !ok || pc.APIKey == "" {
			continue
		}
		providers[info.ID] = newProvider(info, pc)
	}

	return &Adapter{providers: providers}
}

func newProvider(info config.ProviderInfo, pc config.ProviderConfig) Provider {
	switch info.Family {
	case config.FamilyAnthropic:
		return NewAnthropicProvider(pc.APIKey, pc.BaseURL, pc.Model)
	case config.FamilyGemini:
		return NewGeminiProvider(pc.APIKey, pc.BaseURL, pc.Model)
	default:
		if info.ID == "openrouter" {
			return NewOpenRouterProvider(pc.APIKey, pc.BaseURL, pc.Model)
		}
		return NewOpenAIProvider(info.ID, pc.APIKey, pc.BaseURL, pc.Model)
	}
}

// IsConfigured reports whether a provider has a usable credential.
func (a *Adapter) IsConfigured(provider string) bool {
	_, ok := a.providers[provider]
	return ok
}

// Configured returns the configured provider ids in catalog order.
func (a *Adapter) Configured() []string {
	var out []string
	for _, info := range config.Providers {
		if _, ok := a.providers[info.ID]; ok {
			out = append(out, info.ID)
		}
	}
	return out
}

// Send forwards one prompt to a provider and returns the normalized
// response. Unconfigured providers are refused, never attempted.
func (a *Adapter) Send(ctx context.Context, prompt, provider, model string, opts *Options) (*AIResponse, error) {
	p, ok := a.providers[provider]
	if !ok {
		info := config.GetProvider(provider)
		if info == nil {
			return nil, &ProviderError{Provider: provider, Message: "unknown provider"}
		}
		return nil, &ProviderError{
			Provider: provider,
			Message:  fmt.Sprintf("provider %q is not configured; set %s", provider, info.EnvVar),
		}
	}

	temperature := DefaultTemperature
	maxTokens := maxRequestTokens
	if opts != nil {
		if opts.Temperature != nil {
			temperature = *opts.Temperature
		}
		if opts.MaxTokens > 0 && opts.MaxTokens < maxTokens {
			maxTokens = opts.MaxTokens
		}
	}
	// Never request past the model's own ceiling.
	if m := config.GetModel(provider, model); m != nil && m.MaxTokens < maxTokens {
		maxTokens = m.MaxTokens
	}

	resp, err := p.Complete(ctx, NewRequest(model, prompt, maxTokens, temperature))
	if err != nil {
		return nil, err
	}

	return &AIResponse{
		ID:        uuid.NewString(),
		Text:      resp.Content,
		Model:     resp.Model,
		Provider:  provider,
		Usage:     resp.Usage,
		Timestamp: time.Now().UTC(),
	}, nil
}

// TestConnection pings one provider.
func (a *Adapter) TestConnection(ctx context.Context, provider string) error {
	p, ok := a.providers[provider]
	if !ok {
		return &ProviderError{Provider: provider, Message: fmt.Sprintf("provider %q is not configured", provider)}
	}
	return p.Ping(ctx)
}

// TestAll pings every configured provider sequentially and returns a
// provider → status map ("ok" or the error text).
func (a *Adapter) TestAll(ctx context.Context) map[string]string {
	status := make(map[string]string, len(a.providers))
	for _, id := range a.Configured() {
		if err := a.providers[id].Ping(ctx); err != nil {
			status[id] = err.Error()
		} else {
			status[id] = "ok"
		}
	}
	return status
}
