package llm

// NewOpenRouterProvider creates an OpenRouter client. OpenRouter speaks
// the OpenAI wire shape but expects attribution headers on every call.
func NewOpenRouterProvider(apiKey, baseURL, model string) *OpenAIProvider {
	if baseURL == "" {
		baseURL = "https://openrouter.ai/api/v1"
	}
	if model == "" {
		model = "meta-llama/llama-3.1-70b-instruct"
	}
	p := NewOpenAIProvider("openrouter", apiKey, baseURL, model)
	p.extraHeaders = map[string]string{
		"HTTP-Referer": "https://draftforge.dev",
		"X-Title":      "DraftForge",
	}
	return p
}
