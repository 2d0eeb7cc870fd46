package config

// Model describes a remote model the UI can pick. The catalog is static;
// it is not derived from provider APIs at runtime.
type Model struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	Provider          string  `json:"provider"`
	MaxTokens         int     `json:"maxTokens"`
	SupportsStreaming bool    `json:"supportsStreaming"`
	CostPer1kTokens   float64 `json:"costPer1kTokens"`
	Category          string  `json:"category"`
}

var Models = []Model{
	{ID: "openai/gpt-4o", Name: "GPT-4o", Provider: "openrouter", MaxTokens: 128000, SupportsStreaming: true, CostPer1kTokens: 0.005, Category: "general"},
	{ID: "anthropic/claude-3.5-sonnet", Name: "Claude 3.5 Sonnet", Provider: "openrouter", MaxTokens: 200000, SupportsStreaming: true, CostPer1kTokens: 0.003, Category: "general"},
	{ID: "meta-llama/llama-3.1-70b-instruct", Name: "Llama 3.1 70B", Provider: "openrouter", MaxTokens: 131072, SupportsStreaming: true, CostPer1kTokens: 0.0009, Category: "open"},
	{ID: "gpt-4o", Name: "GPT-4o", Provider: "openai", MaxTokens: 128000, SupportsStreaming: true, CostPer1kTokens: 0.005, Category: "general"},
	{ID: "gpt-4o-mini", Name: "GPT-4o mini", Provider: "openai", MaxTokens: 128000, SupportsStreaming: true, CostPer1kTokens: 0.00015, Category: "fast"},
	{ID: "claude-3-5-sonnet-20241022", Name: "Claude 3.5 Sonnet", Provider: "anthropic", MaxTokens: 200000, SupportsStreaming: true, CostPer1kTokens: 0.003, Category: "general"},
	{ID: "claude-3-5-haiku-20241022", Name: "Claude 3.5 Haiku", Provider: "anthropic", MaxTokens: 200000, SupportsStreaming: true, CostPer1kTokens: 0.0008, Category: "fast"},
	{ID: "gemini-1.5-pro", Name: "Gemini 1.5 Pro", Provider: "gemini", MaxTokens: 2097152, SupportsStreaming: true, CostPer1kTokens: 0.00125, Category: "general"},
	{ID: "gemini-1.5-flash", Name: "Gemini 1.5 Flash", Provider: "gemini", MaxTokens: 1048576, SupportsStreaming: true, CostPer1kTokens: 0.000075, Category: "fast"},
	{ID: "deepseek-chat", Name: "DeepSeek V3", Provider: "deepseek", MaxTokens: 65536, SupportsStreaming: true, CostPer1kTokens: 0.00027, Category: "general"},
	{ID: "deepseek-reasoner", Name: "DeepSeek R1", Provider: "deepseek", MaxTokens: 65536, SupportsStreaming: true, CostPer1kTokens: 0.00055, Category: "reasoning"},
	{ID: "llama-3.1-70b-versatile", Name: "Llama 3.1 70B", Provider: "groq", MaxTokens: 131072, SupportsStreaming: true, CostPer1kTokens: 0.00059, Category: "fast"},
	{ID: "llama-3.1-8b-instant", Name: "Llama 3.1 8B", Provider: "groq", MaxTokens: 131072, SupportsStreaming: true, CostPer1kTokens: 0.00005, Category: "fast"},
	{ID: "morph-v2", Name: "Morph v2", Provider: "morph", MaxTokens: 32768, SupportsStreaming: false, CostPer1kTokens: 0.0009, Category: "general"},
}

// ModelsForProvider returns the catalog entries for one provider id.
func ModelsForProvider(provider string) []Model {
	var out []Model
	for _, m := range Models {
		if m.Provider == provider {
			out = append(out, m)
		}
	}
	return out
}

// GetModel finds a model by provider and id. A model id outside the
// catalog still works for sending; the catalog only drives the picker
// and the token ceiling.
func GetModel(provider, id string) *Model {
	for i := range Models {
		if Models[i].Provider == provider && Models[i].ID == id {
			return &Models[i]
		}
	}
	return nil
}
