package core

import "context"

// Event is one in-flight generation event from a model turn. Text carries the
// raw provider payload so callers can classify activity (tool calls, grounding)
// by substring without depending on any one provider's event schema.
type Event struct {
	Text string
}

// StreamFunc receives events in arrival order during a streaming turn.
type StreamFunc func(Event)

// Options controls model behavior; fields are optional per provider.
type Options struct {
	Model           string
	Temperature     float64
	MaxOutputTokens int
	SystemPrompt    string
	EnableWebSearch bool
}

// Client is a provider-agnostic interface for the model operations we need.
type Client interface {
	// Respond runs one full turn and returns the final text output.
	Respond(ctx context.Context, input string, opts Options) (string, error)
	// Stream runs one turn, calling fn for each generation event as it
	// arrives, and returns the accumulated final text once the turn ends.
	Stream(ctx context.Context, input string, fn StreamFunc, opts Options) (string, error)
}

// FactoryConfig captures the inputs required to construct a provider client.
type FactoryConfig struct {
	Provider string

	SystemPrompt    string
	Model           string
	Temperature     float64
	MaxOutputTokens int
	EnableWebSearch bool

	GeminiKey string
	OpenAIKey string
}
