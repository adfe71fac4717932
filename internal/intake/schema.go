package intake

import "github.com/abhisek/leadvane/internal/llm"

// CommandSchema defines the JSON shape the interpreter must produce.
// Action is optional and defaults to "add"; email is checked conditionally
// in ParseCommand since its requirement depends on the action.
var CommandSchema = &llm.Schema{
	Name:        "command-intent",
	Description: "Structured add/delete intent extracted from a CRM command",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"action": map[string]any{
				"type":        "string",
				"enum":        []any{"add", "delete"},
				"description": "What to do with the customer",
			},
			"name": map[string]any{
				"type":        "string",
				"description": "Customer full name as written, including any title",
			},
			"email": map[string]any{
				"type":        "string",
				"description": "Customer email address; empty for delete commands",
			},
		},
		"required": []any{"name"},
	},
}
