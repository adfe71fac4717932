package registry

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"CTO Jo", "Jo"},
		{"VP Sarah", "Sarah"},
		{"John Doe", "John Doe"},
		{"dr emily stone", "Emily Stone"},
		{"  Chief Omar  ", "Omar"},
		{"director jane doe", "Jane Doe"},
		// Only one leading prefix is stripped.
		{"mr dr john", "Dr John"},
		// Prefix without a following space is part of the name.
		{"vp", "Vp"},
		{"Victoria", "Victoria"},
		{"", ""},
		{"   ", ""},
	}
	for _, tt := range tests {
		if got := Normalize(tt.input); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
