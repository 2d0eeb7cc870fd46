// Package llm normalizes several chat/completion HTTP APIs into one
// request/response contract.
package llm

import (
	"context"
	"time"
)

// Provider is the interface all model providers implement.
type Provider interface {
	// Name returns the provider identity ("openai", "anthropic", ...).
	Name() string

	// Complete sends a completion request and returns the full response.
	Complete(ctx context.Context, req *CompletionRequest) (*CompletionResponse, error)

	// Ping checks if the provider is reachable with the configured key.
	Ping(ctx context.Context) error
}

// CompletionRequest represents a request to the model.
type CompletionRequest struct {
	Model       string
	Messages    []Message
	MaxTokens   int
	Temperature float64
}

// Message represents a chat message.
type Message struct {
	Role    string
	Content string
}

// CompletionResponse represents the full response.
type CompletionResponse struct {
	Content      string
	Model        string
	FinishReason string
	Usage        Usage
}

// Usage tracks token usage. Fields stay zero when a provider's envelope
// does not report them.
type Usage struct {
	PromptTokens     int `json:"promptTokens"`
	CompletionTokens int `json:"completionTokens"`
	TotalTokens      int `json:"totalTokens"`
}

// AIResponse is the normalized result of one generation call,
// regardless of which provider wire format produced it.
type AIResponse struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Model     string    `json:"model"`
	Provider  string    `json:"provider"`
	Usage     Usage     `json:"usage"`
	Timestamp time.Time `json:"timestamp"`
}

// NewRequest creates a single-turn completion request.
func NewRequest(model, prompt string, maxTokens int, temperature float64) *CompletionRequest {
	return &CompletionRequest{
		Model: model,
		Messages: []Message{
			{Role: "user", Content: prompt},
		},
		MaxTokens:   maxTokens,
		Temperature: temperature,
	}
}
