// Package providers constructs concrete model clients. Construction is an
// explicit switch rather than an ambient registry so the set of wired
// providers is visible at the call site.
package providers

import (
	"fmt"
	"strings"

	"github.com/Sayyed23/ai-missinformation-truth-guard-ai2/src/ai/core"
	"github.com/Sayyed23/ai-missinformation-truth-guard-ai2/src/ai/gemini"
	"github.com/Sayyed23/ai-missinformation-truth-guard-ai2/src/ai/openai"
)

// New returns a provider-agnostic client for the configured provider.
// An empty provider name selects gemini, the backend the agents were built
// against.
func New(cfg core.FactoryConfig) (core.Client, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case "", "gemini":
		return gemini.NewClient(cfg, "")
	case "openai":
		return openai.NewClient(cfg, "")
	default:
		return nil, fmt.Errorf("ai: unknown provider %q", cfg.Provider)
	}
}
