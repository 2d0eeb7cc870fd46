package server

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/draftforge/draftforge/internal/candidate"
	"github.com/draftforge/draftforge/internal/config"
	"github.com/draftforge/draftforge/internal/document"
	"github.com/draftforge/draftforge/internal/llm"
)

func newTestServer(t *testing.T, providers map[string]config.ProviderConfig) *Server {
	t.Helper()
	cfg := config.DefaultConfig()
	for id, pc := range providers {
		cfg.Providers[id] = pc
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	extractor := document.NewExtractor(document.DefaultRegistry(), logger)
	return New(cfg, extractor, llm.NewAdapter(cfg), logger)
}

func multipartUpload(t *testing.T, tone string, files map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for name, content := range files {
		fw, err := mw.CreateFormFile("files", name)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := fw.Write([]byte(content)); err != nil {
			t.Fatal(err)
		}
	}
	if tone != "" {
		if err := mw.WriteField("tone", tone); err != nil {
			t.Fatal(err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatal(err)
	}
	return &buf, mw.FormDataContentType()
}

func TestHandleGenerate(t *testing.T) {
	srv := newTestServer(t, nil)
	router := srv.Router()

	body, ctype := multipartUpload(t, "Exploratory & Creative", map[string]string{
		"notes.md":  "# Title\n\nThis is a test. Another sentence here.\n\n## Sub\n",
		"extra.txt": "Plain text body for the second file.",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/generate", body)
	req.Header.Set("Content-Type", ctype)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Files      []document.ParsedFile       `json:"files"`
		Summaries  []candidate.SummaryEntry    `json:"summaries"`
		Themes     []string                    `json:"themes"`
		Candidates []candidate.PromptCandidate `json:"candidates"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}

	if len(resp.Files) != 2 {
		t.Fatalf("got %d files, want 2", len(resp.Files))
	}
	if resp.Files[0].Name != "notes.md" && resp.Files[1].Name != "notes.md" {
		t.Error("notes.md missing from the extracted files")
	}
	if len(resp.Summaries) != 2 {
		t.Errorf("got %d summaries, want 2", len(resp.Summaries))
	}
	if len(resp.Candidates) != 3 {
		t.Fatalf("got %d candidates, want 3", len(resp.Candidates))
	}
	if resp.Candidates[0].Tone != candidate.ToneCreative {
		t.Errorf("first candidate tone = %q, want the selected tone", resp.Candidates[0].Tone)
	}
}

func TestHandleGenerateNoFiles(t *testing.T) {
	srv := newTestServer(t, nil)
	router := srv.Router()

	body, ctype := multipartUpload(t, "", nil)
	req := httptest.NewRequest(http.MethodPost, "/api/generate", body)
	req.Header.Set("Content-Type", ctype)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestHandleSendValidation(t *testing.T) {
	srv := newTestServer(t, nil)
	router := srv.Router()

	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{"not json", "not json", http.StatusBadRequest},
		{"missing fields", `{"prompt": "hi"}`, http.StatusBadRequest},
		{"unknown field rejected", `{"prompt": "hi", "provider": "openai", "model": "m", "stream": true}`, http.StatusBadRequest},
		{"unconfigured provider", `{"prompt": "hi", "provider": "openai", "model": "gpt-4o-mini"}`, http.StatusPreconditionFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/send", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d; body = %s", rec.Code, tt.wantStatus, rec.Body.String())
			}
		})
	}
}

func TestHandleSendUnconfiguredHint(t *testing.T) {
	srv := newTestServer(t, nil)
	router := srv.Router()

	req := httptest.NewRequest(http.MethodPost, "/api/send",
		strings.NewReader(`{"prompt": "hi", "provider": "anthropic", "model": "claude-3-5-haiku-20241022"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusPreconditionFailed {
		t.Fatalf("status = %d, want 412", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "ANTHROPIC_API_KEY") {
		t.Errorf("body = %s, want the credential hint", rec.Body.String())
	}
}

func TestHandleSend(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"choices": [{"message": {"content": "done"}, "finish_reason": "stop"}],
			"usage": {"prompt_tokens": 8, "completion_tokens": 2, "total_tokens": 10}
		}`))
	}))
	defer upstream.Close()

	srv := newTestServer(t, map[string]config.ProviderConfig{
		"openai": {APIKey: "sk-test", BaseURL: upstream.URL},
	})
	router := srv.Router()

	req := httptest.NewRequest(http.MethodPost, "/api/send",
		strings.NewReader(`{"prompt": "hi", "provider": "openai", "model": "gpt-4o-mini"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp llm.AIResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if resp.Text != "done" || resp.Provider != "openai" {
		t.Errorf("response = %+v, want normalized text and provider", resp)
	}
	if resp.Usage.TotalTokens != 10 {
		t.Errorf("TotalTokens = %d, want 10", resp.Usage.TotalTokens)
	}
}

func TestHandleSendUpstreamFailure(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"error": {"message": "overloaded"}}`))
	}))
	defer upstream.Close()

	srv := newTestServer(t, map[string]config.ProviderConfig{
		"openai": {APIKey: "sk-test", BaseURL: upstream.URL},
	})
	router := srv.Router()

	req := httptest.NewRequest(http.MethodPost, "/api/send",
		strings.NewReader(`{"prompt": "hi", "provider": "openai", "model": "gpt-4o-mini"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadGateway {
		t.Errorf("status = %d, want 502", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "overloaded") {
		t.Errorf("body = %s, want the upstream message surfaced", rec.Body.String())
	}
}

func TestHandleProviders(t *testing.T) {
	srv := newTestServer(t, map[string]config.ProviderConfig{
		"groq": {APIKey: "k"},
	})
	router := srv.Router()

	req := httptest.NewRequest(http.MethodGet, "/api/providers", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var out []providerStatus
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if len(out) != len(config.Providers) {
		t.Fatalf("got %d providers, want the full catalog (%d)", len(out), len(config.Providers))
	}

	byID := map[string]providerStatus{}
	for _, p := range out {
		byID[p.ID] = p
	}
	if !byID["groq"].Configured {
		t.Error("groq not reported as configured")
	}
	if byID["openai"].Configured {
		t.Error("openai reported as configured without a key")
	}
}

func TestHandleModels(t *testing.T) {
	srv := newTestServer(t, nil)
	router := srv.Router()

	t.Run("full catalog", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/models", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		var models []config.Model
		if err := json.Unmarshal(rec.Body.Bytes(), &models); err != nil {
			t.Fatalf("bad response body: %v", err)
		}
		if len(models) != len(config.Models) {
			t.Errorf("got %d models, want %d", len(models), len(config.Models))
		}
	})

	t.Run("provider filter", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/models?provider=deepseek", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		var models []config.Model
		if err := json.Unmarshal(rec.Body.Bytes(), &models); err != nil {
			t.Fatalf("bad response body: %v", err)
		}
		for _, m := range models {
			if m.Provider != "deepseek" {
				t.Errorf("model %q has provider %q", m.ID, m.Provider)
			}
		}
	})

	t.Run("unknown provider yields empty list", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/models?provider=nonesuch", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if body := strings.TrimSpace(rec.Body.String()); body != "[]" {
			t.Errorf("body = %s, want []", body)
		}
	})
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t, nil)
	router := srv.Router()

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}
