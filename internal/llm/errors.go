package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ProviderError is the uniform failure shape for provider calls, so
// callers never need per-provider error handling.
type ProviderError struct {
	Provider string
	Status   int
	Message  string
}

func (e *ProviderError) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("%s: %s (status %d)", e.Provider, e.Message, e.Status)
	}
	return fmt.Sprintf("%s: %s", e.Provider, e.Message)
}

// errorMessage extracts a human-readable message from a provider's
// JSON error envelope. Falls back to a generic message when the body
// is not the expected shape.
func errorMessage(body []byte) string {
	var envelope struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil {
		if m := strings.TrimSpace(envelope.Error.Message); m != "" {
			return m
		}
		if m := strings.TrimSpace(envelope.Message); m != "" {
			return m
		}
	}
	return "API request failed"
}

// statusError builds the ProviderError for a non-2xx response body.
func statusError(provider string, status int, body []byte) *ProviderError {
	return &ProviderError{
		Provider: provider,
		Status:   status,
		Message:  errorMessage(body),
	}
}
