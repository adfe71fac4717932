// Package intake is the boundary to the natural-language command
// interpreter. It owns the typed Command contract and everything needed to
// turn loosely structured interpreter output into one: code-fence
// stripping, schema validation, and field-level checks. Nothing past this
// boundary ever assumes the model behaved.
package intake

import "fmt"

// Action is the typed operation extracted from an utterance.
type Action string

const (
	ActionAdd    Action = "add"
	ActionDelete Action = "delete"
)

// Command is the structured intent the interpreter produces. Email is the
// customer's unique key and is required for adds only.
type Command struct {
	Action Action `json:"action"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}

// ParseError reports interpreter output that could not be turned into a
// Command: invalid JSON, a schema violation, or a missing required field.
// It is recovered at the engine boundary, never propagated as a fault.
type ParseError struct {
	Output string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("uninterpretable command output: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
