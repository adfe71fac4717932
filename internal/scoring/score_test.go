package scoring

import "testing"

func TestScore_NoSignals(t *testing.T) {
	tests := []string{
		"just browsing",
		"John Doe",
		"",
		"   ",
	}
	for _, input := range tests {
		if got := Score(input); got != BaseScore {
			t.Errorf("Score(%q) = %d, want %d", input, got, BaseScore)
		}
	}
}

func TestScore_GmailShortCircuit(t *testing.T) {
	tests := []string{
		"sarah@gmail.com",
		"CTO Sarah [sarah@GMAIL.com] ready to buy $50K Q2 urgent approved",
		"director mike@Gmail.Com enterprise need now",
	}
	for _, input := range tests {
		if got := Score(input); got != BaseScore {
			t.Errorf("Score(%q) = %d, want %d (personal-domain cap)", input, got, BaseScore)
		}
	}
}

func TestScore_SignalWeights(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"single title", "CTO Sarah", 78},
		{"two titles", "CTO and CFO aligned", 86},
		{"repeated title counts once", "cto cto cto", 78},
		{"premium token", "sarah@acme.io", 82},
		{"premium is flat", "acme.io enterprise tech", 82},
		{"single intent", "ready to buy", 78},
		{"two intents", "ready to buy, urgent", 86},
		{"budget", "$50k on the table", 82},
		{"budget with m suffix", "$2M deal", 82},
		{"timeline", "targeting Q3", 80},
		{"timeline is flat", "Q1 or Q2 or next month", 80},
	}
	for _, tt := range tests {
		if got := Score(tt.input); got != tt.want {
			t.Errorf("%s: Score(%q) = %d, want %d", tt.name, tt.input, got, tt.want)
		}
	}
}

func TestScore_TokenBoundaries(t *testing.T) {
	// "director" must not also count as "cto", and ".com" must not count
	// as the premium token "co".
	if got := Score("director Jane"); got != 78 {
		t.Errorf("Score(director Jane) = %d, want 78", got)
	}
	if got := Score("jane@acme.com"); got != BaseScore {
		t.Errorf("Score(jane@acme.com) = %d, want %d", got, BaseScore)
	}
}

func TestScore_ClampAt95(t *testing.T) {
	input := "CTO CFO CIO VP director head chief enterprise ready to buy need now urgent approved $100k Q4"
	if got := Score(input); got != MaxScore {
		t.Errorf("Score = %d, want clamp at %d", got, MaxScore)
	}
}

func TestScore_Monotonic(t *testing.T) {
	steps := []string{
		"Jane Doe jane@acme.org",
		"CTO Jane Doe jane@acme.org",
		"CTO Jane Doe jane@acme.org ready to buy",
		"CTO Jane Doe jane@acme.org ready to buy $50k",
		"CTO Jane Doe jane@acme.org ready to buy $50k Q2",
	}
	prev := -1
	for _, input := range steps {
		got := Score(input)
		if got < prev {
			t.Fatalf("Score(%q) = %d decreased from %d", input, got, prev)
		}
		if got < BaseScore || got > MaxScore {
			t.Fatalf("Score(%q) = %d outside [%d,%d]", input, got, BaseScore, MaxScore)
		}
		prev = got
	}
}

func TestScore_EndToEnd(t *testing.T) {
	// 70 +8 (cto) +8 (ready to buy) +12 (budget) +10 (q2) = 108, clamped.
	input := "CTO Sarah [sarah@acme.com] ready to buy $50K Q2"
	if got := Score(input); got != 95 {
		t.Errorf("Score(%q) = %d, want 95", input, got)
	}
}

func TestRules_Order(t *testing.T) {
	want := []string{"exec-title", "premium-domain", "buy-intent", "budget", "timeline"}
	rules := Rules()
	if len(rules) != len(want) {
		t.Fatalf("got %d rules, want %d", len(rules), len(want))
	}
	for i, r := range rules {
		if r.Name != want[i] {
			t.Errorf("rule[%d] = %q, want %q", i, r.Name, want[i])
		}
	}
}
