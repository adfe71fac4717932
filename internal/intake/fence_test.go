package intake

import "testing"

func TestStripFence(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"bare json", `{"name":"Jo"}`, `{"name":"Jo"}`},
		{"plain fence", "```\n{\"name\":\"Jo\"}\n```", `{"name":"Jo"}`},
		{"json-tagged fence", "```json\n{\"name\":\"Jo\"}\n```", `{"name":"Jo"}`},
		{"surrounding whitespace", "  \n```json\n{}\n```  \n", "{}"},
		{"opening fence only", "```json\n{}", "{}"},
		{"closing fence only", "{}\n```", "{}"},
		{"empty", "", ""},
		{"fence with nothing inside", "```json\n```", ""},
	}
	for _, tt := range tests {
		if got := StripFence(tt.input); got != tt.want {
			t.Errorf("%s: StripFence(%q) = %q, want %q", tt.name, tt.input, got, tt.want)
		}
	}
}
