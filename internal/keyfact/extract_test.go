package keyfact

import "testing"

func TestExtract_NoSignals(t *testing.T) {
	tests := []string{
		"John just browsing",
		"add jane jane@example.org",
		"",
	}
	for _, input := range tests {
		if got := Extract(input); got != NoFacts {
			t.Errorf("Extract(%q) = %q, want %q", input, got, NoFacts)
		}
	}
}

func TestExtract_Pure(t *testing.T) {
	input := "CTO Sarah ready to buy $50K Q2"
	first := Extract(input)
	second := Extract(input)
	if first != second {
		t.Errorf("Extract not deterministic: %q vs %q", first, second)
	}
}

func TestExtract_Title(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"cto wants a demo", "CTO"},
		{"our VP signed off", "VP"},
		{"Director Jane evaluating", "DIRECTOR"},
		// First matching token in category order wins, one title max.
		{"VP and CFO aligned", "CFO"},
	}
	for _, tt := range tests {
		if got := Extract(tt.input); got != tt.want {
			t.Errorf("Extract(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestExtract_BudgetPriority(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"euro beats dollar", "50k€ or $30k whichever", "50k€"},
		{"dollar amount", "around $50K to spend", "$50K"},
		{"dollar with comma", "$1,500 signed", "$1,500"},
		{"bare budget phrase", "they have 100k budget", "100k budget"},
		{"euro rendering keeps trailing sign", "closing at 2,500€ this week", "2,500€"},
	}
	for _, tt := range tests {
		if got := Extract(tt.input); got != tt.want {
			t.Errorf("%s: Extract(%q) = %q, want %q", tt.name, tt.input, got, tt.want)
		}
	}
}

func TestExtract_Timelines(t *testing.T) {
	if got := Extract("rollout in 2026"); got != "2026 timeline" {
		t.Errorf("year: got %q", got)
	}
	if got := Extract("kicking off q3"); got != "Q3" {
		t.Errorf("quarter: got %q", got)
	}
	if got := Extract("2026 then Q1"); got != "2026 timeline | Q1" {
		t.Errorf("both: got %q", got)
	}
}

func TestExtract_Intent(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"ready to buy", "HIGH INTENT"},
		{"interested in the pro plan", "HIGH INTENT"},
		{"looking for a CRM", "HIGH INTENT"},
		// Negative phrasing suppresses the category, no partial credit.
		{"not ready to buy", NoFacts},
		{"was interested in it but not interested anymore", NoFacts},
		{"won't buy, urgent or not", NoFacts},
	}
	for _, tt := range tests {
		if got := Extract(tt.input); got != tt.want {
			t.Errorf("Extract(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestExtract_CategoryOrder(t *testing.T) {
	// Output follows the category table order regardless of where the
	// tokens sit in the utterance.
	input := "urgent Q2 $50K from the CTO"
	want := "CTO | $50K | Q2 | HIGH INTENT"
	if got := Extract(input); got != want {
		t.Errorf("Extract(%q) = %q, want %q", input, got, want)
	}
}

func TestExtract_EndToEnd(t *testing.T) {
	input := "CTO Sarah [sarah@acme.com] ready to buy $50K Q2"
	want := "CTO | $50K | Q2 | HIGH INTENT"
	if got := Extract(input); got != want {
		t.Errorf("Extract(%q) = %q, want %q", input, got, want)
	}
}
