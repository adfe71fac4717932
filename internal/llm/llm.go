// Package llm abstracts the language-understanding collaborator behind a
// single-turn completion interface with interchangeable backends. Callers
// must treat every call as having unbounded latency and a possible failure;
// nothing in this package panics on provider misbehavior.
package llm

import "context"

// Provider is the boundary to a language model backend.
type Provider interface {
	// Complete sends one prompt and returns the model output. When the
	// prompt carries a Schema, backends that support structured output are
	// steered toward JSON conforming to it; the text is still returned
	// verbatim and callers remain responsible for parsing.
	Complete(ctx context.Context, p Prompt) (*Completion, error)

	// ModelID returns the model identifier this provider is configured for.
	ModelID() string
}

// Prompt is a single-turn instruction for the model.
type Prompt struct {
	// System sets the model's role and constraints.
	System string

	// User is the user-turn content.
	User string

	// Schema, when set, describes the JSON the response must conform to.
	Schema *Schema

	// MaxTokens bounds the response length.
	MaxTokens int

	// Temperature controls randomness, 0.0-1.0. Zero means deterministic.
	Temperature float64
}

// Schema describes the JSON structure expected from the model.
type Schema struct {
	// Name identifies the schema (tool name for Anthropic, schema name for
	// OpenAI). Kebab-case.
	Name string

	// Description guides generation; sent to the model where supported.
	Description string

	// Definition is the JSON Schema definition as a map.
	Definition map[string]any
}

// Completion holds the model output.
type Completion struct {
	// Text is the raw model output. JSON-shaped when a Schema was supplied
	// and the backend honored it, but never assumed to be.
	Text string

	// Usage reports token consumption for the request.
	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// Truncated is set when generation stopped at the MaxTokens limit.
	Truncated bool
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
