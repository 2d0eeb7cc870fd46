package server

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/draftforge/draftforge/internal/candidate"
	"github.com/draftforge/draftforge/internal/config"
	"github.com/draftforge/draftforge/internal/document"
	"github.com/draftforge/draftforge/internal/llm"
	"github.com/draftforge/draftforge/internal/metrics"
)

// generateResponse is one full generation cycle: files, summaries,
// themes and candidates all come from the same snapshot.
type generateResponse struct {
	Files      []document.ParsedFile       `json:"files"`
	Summaries  []candidate.SummaryEntry    `json:"summaries"`
	Themes     []string                    `json:"themes"`
	Candidates []candidate.PromptCandidate `json:"candidates"`
	Notices    []string                    `json:"notices,omitempty"`
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(s.cfg.MaxUpload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form: "+err.Error())
		return
	}

	form := r.MultipartForm
	headers := form.File["files"]
	if len(headers) == 0 {
		writeError(w, http.StatusBadRequest, "no files uploaded")
		return
	}

	inputs := make([]document.Input, 0, len(headers))
	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			writeError(w, http.StatusBadRequest, "cannot read upload "+fh.Filename+": "+err.Error())
			return
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			writeError(w, http.StatusBadRequest, "cannot read upload "+fh.Filename+": "+err.Error())
			return
		}
		inputs = append(inputs, document.Input{
			Name:      fh.Filename,
			Size:      fh.Size,
			MediaType: fh.Header.Get("Content-Type"),
			Data:      data,
		})
	}

	tone := candidate.ParseTone(r.FormValue("tone"))

	files := s.extractor.ExtractAll(r.Context(), inputs)
	for _, f := range files {
		outcome := "ok"
		if f.Notice != "" {
			outcome = "degraded"
		}
		metrics.ExtractionsTotal.WithLabelValues(f.Ext, outcome).Inc()
	}

	result, err := candidate.Generate(files, tone)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "generation failed: "+err.Error())
		return
	}
	metrics.GenerationsTotal.Inc()

	var notices []string
	for _, f := range files {
		if f.Notice != "" {
			notices = append(notices, f.Notice)
		}
	}

	writeJSON(w, http.StatusOK, generateResponse{
		Files:      files,
		Summaries:  result.Summaries,
		Themes:     result.Themes,
		Candidates: result.Candidates,
		Notices:    notices,
	})
}

type sendRequest struct {
	Prompt   string `json:"prompt"`
	Provider string `json:"provider"`
	Model    string `json:"model"`
	// Temperature is a pointer so an explicit 0 survives decoding
	// instead of collapsing into "unset".
	Temperature *float64 `json:"temperature,omitempty"`
	MaxTokens   int      `json:"maxTokens,omitempty"`
}

func (s *Server) handleSend(w http.ResponseWriter, r *http.Request) {
	var req sendRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Prompt == "" || req.Provider == "" || req.Model == "" {
		writeError(w, http.StatusBadRequest, "prompt, provider and model are required")
		return
	}

	// Configuration failures are refused pre-flight, not attempted.
	if !s.adapter.IsConfigured(req.Provider) {
		msg := "provider " + req.Provider + " is not configured"
		if info := config.GetProvider(req.Provider); info != nil && info.EnvVar != "" {
			msg += "; set " + info.EnvVar + " and restart"
		}
		writeError(w, http.StatusPreconditionFailed, msg)
		return
	}

	start := time.Now()
	resp, err := s.adapter.Send(r.Context(), req.Prompt, req.Provider, req.Model, &llm.Options{
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	})
	metrics.ProviderLatency.WithLabelValues(req.Provider).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.ProviderRequestsTotal.WithLabelValues(req.Provider, "error").Inc()
		s.logger.Warn("provider call failed", "provider", req.Provider, "model", req.Model, "error", err)

		var perr *llm.ProviderError
		if errors.As(err, &perr) {
			writeError(w, http.StatusBadGateway, perr.Error())
			return
		}
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}

	metrics.ProviderRequestsTotal.WithLabelValues(req.Provider, "ok").Inc()
	metrics.TokenUsageTotal.WithLabelValues(req.Provider, "input").Add(float64(resp.Usage.PromptTokens))
	metrics.TokenUsageTotal.WithLabelValues(req.Provider, "output").Add(float64(resp.Usage.CompletionTokens))

	writeJSON(w, http.StatusOK, resp)
}

type providerStatus struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Configured  bool   `json:"configured"`
}

func (s *Server) handleProviders(w http.ResponseWriter, r *http.Request) {
	out := make([]providerStatus, 0, len(config.Providers))
	for _, info := range config.Providers {
		out = append(out, providerStatus{
			ID:          info.ID,
			Name:        info.Name,
			Description: info.Description,
			Configured:  s.adapter.IsConfigured(info.ID),
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleTestProviders(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.adapter.TestAll(r.Context()))
}

func (s *Server) handleModels(w http.ResponseWriter, r *http.Request) {
	if provider := r.URL.Query().Get("provider"); provider != "" {
		models := config.ModelsForProvider(provider)
		if models == nil {
			models = []config.Model{}
		}
		writeJSON(w, http.StatusOK, models)
		return
	}
	writeJSON(w, http.StatusOK, config.Models)
}
