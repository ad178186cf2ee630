package config

import "os"

// AI holds the model-provider settings shared by the agent service and the
// smoketest binary.
type AI struct {
	Provider     string
	GeminiKey    string
	OpenAIKey    string
	SystemPrompt string
	Model        string
	EnableWeb    bool
}

// LoadAIFromEnv provides a simple env-only loader; services can layer their
// own defaults over this.
func LoadAIFromEnv() AI {
	provider := os.Getenv("AI_PROVIDER")
	if provider == "" {
		provider = "gemini"
	}
	model := os.Getenv("AI_MODEL")
	if model == "" {
		if provider == "openai" {
			model = "gpt-4o-mini"
		} else {
			model = "gemini-2.5-pro"
		}
	}
	return AI{
		Provider:     provider,
		GeminiKey:    os.Getenv("GOOGLE_API_KEY"),
		OpenAIKey:    os.Getenv("OPENAI_API_KEY"),
		SystemPrompt: os.Getenv("AI_SYSTEM_PROMPT"),
		Model:        model,
		EnableWeb:    os.Getenv("AI_ENABLE_WEB_SEARCH") != "0",
	}
}
