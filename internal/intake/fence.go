package intake

import "strings"

// StripFence removes a wrapping Markdown code fence from interpreter
// output. Models routinely wrap JSON in ``` or ```json even when told not
// to. Unfenced text is returned trimmed.
func StripFence(s string) string {
	out := strings.TrimSpace(s)

	if rest, ok := strings.CutPrefix(out, "```json"); ok {
		out = rest
	} else if rest, ok := strings.CutPrefix(out, "```"); ok {
		out = rest
	}

	out = strings.TrimSpace(out)
	if trimmed, ok := strings.CutSuffix(out, "```"); ok {
		out = strings.TrimSpace(trimmed)
	}

	return out
}
