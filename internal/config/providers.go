package config

// Family identifies the wire shape a provider speaks.
type Family string

const (
	FamilyOpenAI    Family = "openai"
	FamilyAnthropic Family = "anthropic"
	FamilyGemini    Family = "gemini"
)

// ProviderInfo describes a known provider identity.
type ProviderInfo struct {
	ID           string
	Name         string
	Family       Family
	Description  string
	EnvVar       string
	SignupURL    string
	BaseURL      string
	DefaultModel string
}

// Providers is the fixed set of provider identities the service knows how
// to talk to. Entries without a resolvable credential are excluded from
// the configured set at startup.
var Providers = []ProviderInfo{
	{
		ID:           "openrouter",
		Name:         "OpenRouter",
		Family:       FamilyOpenAI,
		Description:  "Access all models",
		EnvVar:       "OPENROUTER_API_KEY",
		SignupURL:    "https://openrouter.ai/keys",
		BaseURL:      "https://openrouter.ai/api/v1",
		DefaultModel: "meta-llama/llama-3.1-70b-instruct",
	},
	{
		ID:           "openai",
		Name:         "OpenAI",
		Family:       FamilyOpenAI,
		Description:  "GPT-4o, most capable",
		EnvVar:       "OPENAI_API_KEY",
		SignupURL:    "https://platform.openai.com/api-keys",
		BaseURL:      "https://api.openai.com/v1",
		DefaultModel: "gpt-4o-mini",
	},
	{
		ID:           "anthropic",
		Name:         "Anthropic",
		Family:       FamilyAnthropic,
		Description:  "Claude, great writing",
		EnvVar:       "ANTHROPIC_API_KEY",
		SignupURL:    "https://console.anthropic.com/",
		BaseURL:      "https://api.anthropic.com/v1",
		DefaultModel: "claude-3-5-sonnet-20241022",
	},
	{
		ID:           "gemini",
		Name:         "Google Gemini",
		Family:       FamilyGemini,
		Description:  "Fast multimodal models",
		EnvVar:       "GEMINI_API_KEY",
		SignupURL:    "https://aistudio.google.com/apikey",
		BaseURL:      "https://generativelanguage.googleapis.com/v1beta",
		DefaultModel: "gemini-1.5-flash",
	},
	{
		ID:           "deepseek",
		Name:         "DeepSeek",
		Family:       FamilyOpenAI,
		Description:  "Strong reasoning, cheap",
		EnvVar:       "DEEPSEEK_API_KEY",
		SignupURL:    "https://platform.deepseek.com/api_keys",
		BaseURL:      "https://api.deepseek.com/v1",
		DefaultModel: "deepseek-chat",
	},
	{
		ID:           "groq",
		Name:         "Groq",
		Family:       FamilyOpenAI,
		Description:  "Very fast, cheap",
		EnvVar:       "GROQ_API_KEY",
		SignupURL:    "https://console.groq.com/keys",
		BaseURL:      "https://api.groq.com/openai/v1",
		DefaultModel: "llama-3.1-70b-versatile",
	},
	{
		ID:           "morph",
		Name:         "Morph",
		Family:       FamilyOpenAI,
		Description:  "OpenAI-compatible endpoint",
		EnvVar:       "MORPH_API_KEY",
		BaseURL:      "https://api.morphllm.com/v1",
		DefaultModel: "morph-v2",
	},
}

// GetProvider returns the catalog entry for an id, or nil.
func GetProvider(id string) *ProviderInfo {
	for i := range Providers {
		if Providers[i].ID == id {
			return &Providers[i]
		}
	}
	return nil
}
