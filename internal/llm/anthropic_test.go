package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestAnthropicComplete(t *testing.T) {
	var gotReq anthropicRequest
	var gotKey, gotVersion string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/messages" {
			t.Errorf("path = %q, want /messages", r.URL.Path)
		}
		gotKey = r.Header.Get("x-api-key")
		gotVersion = r.Header.Get("anthropic-version")
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Fatalf("bad request body: %v", err)
		}
		w.Write([]byte(`{
			"content": [{"type": "text", "text": "claude says hi"}],
			"stop_reason": "end_turn",
			"usage": {"input_tokens": 10, "output_tokens": 4}
		}`))
	}))
	defer srv.Close()

	p := NewAnthropicProvider("sk-ant-test", srv.URL, "claude-3-5-sonnet-20241022")
	req := &CompletionRequest{
		Model: "claude-3-5-sonnet-20241022",
		Messages: []Message{
			{Role: "system", Content: "be brief"},
			{Role: "user", Content: "hi"},
		},
		MaxTokens:   200,
		Temperature: 0.3,
	}
	resp, err := p.Complete(context.Background(), req)
	if err != nil {
		t.Fatalf("Complete() error: %v", err)
	}

	if gotKey != "sk-ant-test" {
		t.Errorf("x-api-key = %q, want sk-ant-test", gotKey)
	}
	if gotVersion != anthropicVersion {
		t.Errorf("anthropic-version = %q, want %q", gotVersion, anthropicVersion)
	}

	// The system message rides in its own field, not the messages list.
	if gotReq.System != "be brief" {
		t.Errorf("system = %q, want the system message content", gotReq.System)
	}
	if len(gotReq.Messages) != 1 || gotReq.Messages[0].Role != "user" {
		t.Errorf("messages = %+v, want only the user message", gotReq.Messages)
	}
	if gotReq.MaxTokens != 200 {
		t.Errorf("max_tokens = %d, want 200", gotReq.MaxTokens)
	}

	if resp.Content != "claude says hi" {
		t.Errorf("Content = %q, want claude says hi", resp.Content)
	}
	if resp.FinishReason != "end_turn" {
		t.Errorf("FinishReason = %q, want end_turn", resp.FinishReason)
	}
	// Anthropic reports no total; it must be input + output.
	want := Usage{PromptTokens: 10, CompletionTokens: 4, TotalTokens: 14}
	if resp.Usage != want {
		t.Errorf("Usage = %+v, want %+v", resp.Usage, want)
	}
}

func TestAnthropicDefaultMaxTokens(t *testing.T) {
	var gotReq anthropicRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&gotReq)
		w.Write([]byte(`{"content": [{"text": "ok"}]}`))
	}))
	defer srv.Close()

	p := NewAnthropicProvider("sk-ant-test", srv.URL, "")
	_, err := p.Complete(context.Background(), &CompletionRequest{
		Messages: []Message{{Role: "user", Content: "hi"}},
	})
	if err != nil {
		t.Fatalf("Complete() error: %v", err)
	}
	if gotReq.MaxTokens != 2048 {
		t.Errorf("max_tokens = %d, want the 2048 default", gotReq.MaxTokens)
	}
}

func TestAnthropicPing(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr bool
	}{
		{"ok", 200, false},
		{"bad request still proves the key", 400, false},
		{"invalid key", 401, true},
		{"overloaded", 529, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(`{}`))
			}))
			defer srv.Close()

			p := NewAnthropicProvider("sk-ant-test", srv.URL, "")
			err := p.Ping(context.Background())
			if (err != nil) != tt.wantErr {
				t.Errorf("Ping() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
