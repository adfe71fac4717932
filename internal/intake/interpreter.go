package intake

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"text/template"

	"github.com/abhisek/leadvane/internal/llm"
)

// Interpreter turns a raw utterance into a typed Command.
type Interpreter interface {
	Interpret(ctx context.Context, utterance string) (Command, error)
}

// InterpreterConfig holds tuning for the LLM interpreter.
type InterpreterConfig struct {
	MaxTokens   int
	Temperature float64
}

// DefaultInterpreterConfig returns sensible defaults. Temperature stays at
// zero; intent extraction wants the most likely reading, not a creative one.
func DefaultInterpreterConfig() InterpreterConfig {
	return InterpreterConfig{MaxTokens: 256}
}

// LLMInterpreter extracts command intent through a model provider.
type LLMInterpreter struct {
	provider llm.Provider
	cfg      InterpreterConfig
}

// NewLLMInterpreter creates an interpreter backed by the given provider.
func NewLLMInterpreter(provider llm.Provider, cfg InterpreterConfig) *LLMInterpreter {
	return &LLMInterpreter{provider: provider, cfg: cfg}
}

const interpreterSystemPrompt = `You extract structured intent from CRM commands about sales contacts.

Return ONLY a JSON object with this exact structure:
{"action": "add" or "delete", "name": "customer full name", "email": "customer email"}

Rules:
- "email" is required for add commands; leave it empty for delete commands.
- Keep the name exactly as the user wrote it, including titles like CTO or VP.
- No commentary, no markdown, just the JSON object.`

var interpreterUserTemplate = template.Must(template.New("intent").Parse(`User said: "{{.Utterance}}"

Examples:
"Add John Doe john@acme.com" -> {"action": "add", "name": "John Doe", "email": "john@acme.com"}
"Delete John Doe" -> {"action": "delete", "name": "John Doe"}
"Remove Sarah" -> {"action": "delete", "name": "Sarah"}`))

// Interpret sends the utterance to the model and parses the reply.
func (i *LLMInterpreter) Interpret(ctx context.Context, utterance string) (Command, error) {
	ctx = llm.WithPurpose(ctx, "command-intent")

	var buf bytes.Buffer
	if err := interpreterUserTemplate.Execute(&buf, struct{ Utterance string }{utterance}); err != nil {
		return Command{}, fmt.Errorf("build intent prompt: %w", err)
	}

	resp, err := i.provider.Complete(ctx, llm.Prompt{
		System:      interpreterSystemPrompt,
		User:        buf.String(),
		Schema:      CommandSchema,
		MaxTokens:   i.cfg.MaxTokens,
		Temperature: i.cfg.Temperature,
	})
	if err != nil {
		return Command{}, fmt.Errorf("interpret command: %w", err)
	}

	return ParseCommand(resp.Text)
}

// ParseCommand turns possibly code-fenced interpreter output into a
// Command. Action defaults to "add" when absent. Every failure mode comes
// back as a *ParseError.
func ParseCommand(output string) (Command, error) {
	cleaned := StripFence(output)

	if err := llm.CheckAgainst(CommandSchema, []byte(cleaned)); err != nil {
		return Command{}, &ParseError{Output: output, Err: err}
	}

	var cmd Command
	if err := json.Unmarshal([]byte(cleaned), &cmd); err != nil {
		return Command{}, &ParseError{Output: output, Err: err}
	}

	if cmd.Action == "" {
		cmd.Action = ActionAdd
	}
	if cmd.Action != ActionAdd && cmd.Action != ActionDelete {
		return Command{}, &ParseError{Output: output, Err: fmt.Errorf("unknown action %q", cmd.Action)}
	}
	if strings.TrimSpace(cmd.Name) == "" {
		return Command{}, &ParseError{Output: output, Err: fmt.Errorf("missing name")}
	}
	if cmd.Action == ActionAdd && strings.TrimSpace(cmd.Email) == "" {
		return Command{}, &ParseError{Output: output, Err: fmt.Errorf("missing email for add")}
	}

	return cmd, nil
}
