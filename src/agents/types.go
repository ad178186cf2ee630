package agents

import (
	"fmt"
	"strings"
)

// Marker maps a substring of raw in-flight event text to a human-readable
// progress label. Classification is best effort; it never gates completion.
type Marker struct {
	Token string
	Label string
}

// Profile describes one logical agent: its system prompt, how user messages
// are templated for it, and the activity markers its events may carry.
type Profile struct {
	Name         string
	Description  string
	SystemPrompt string
	// PromptPrefix is prepended to the user message ("Audit this: ", ...).
	// Profiles without a prefix get the conversational language directive
	// instead.
	PromptPrefix string
	Markers      []Marker
	// WebSearch requests the provider's search grounding tool for this agent.
	WebSearch bool
}

// BuildPrompt renders the outbound prompt for one chat turn.
func (p Profile) BuildPrompt(message, language string) string {
	if p.PromptPrefix != "" {
		return fmt.Sprintf("%s%s\n(Language: %s)", p.PromptPrefix, message, language)
	}
	return fmt.Sprintf("%s\n(Respond in %s)", message, language)
}

// ClassifyEvent matches known marker tokens against raw event text, first
// match wins. Unmatched events get a generic label.
func (p Profile) ClassifyEvent(text string) string {
	for _, m := range p.Markers {
		if m.Token != "" && strings.Contains(text, m.Token) {
			return m.Label
		}
	}
	return "Processing..."
}
