package config

import "os"

// Config carries the gateway port and one base URL per downstream agent
// service. Defaults match local development ports.
type Config struct {
	Port         string
	AllowOrigins string

	AuditorURL  string
	ResearchURL string
	SafetyURL   string
	AgentURL    string
}

func getenv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func Load() Config {
	return Config{
		Port:         getenv("PORT", "8000"),
		AllowOrigins: getenv("ALLOW_ORIGINS", "*"),
		AuditorURL:   getenv("LLM_AUDITOR_URL", "http://localhost:8001"),
		ResearchURL:  getenv("DEEP_SEARCH_URL", "http://localhost:8002"),
		SafetyURL:    getenv("SAFETY_PLUGINS_URL", "http://localhost:8003"),
		AgentURL:     getenv("ANTIGRAVITY_URL", "http://localhost:8002"),
	}
}
