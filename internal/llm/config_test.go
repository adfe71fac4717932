package llm

import "testing"

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"gemini with key", Config{Provider: "gemini", Gemini: GeminiConfig{APIKey: "k"}}, false},
		{"gemini without key", Config{Provider: "gemini"}, true},
		{"openai without key", Config{Provider: "openai"}, true},
		{"anthropic without key", Config{Provider: "anthropic"}, true},
		{"mock needs nothing", Config{Provider: "mock"}, false},
		{"unknown provider", Config{Provider: "llama-at-home"}, true},
	}
	for _, tt := range tests {
		err := tt.cfg.Validate()
		if (err != nil) != tt.wantErr {
			t.Errorf("%s: Validate() error = %v, wantErr %v", tt.name, err, tt.wantErr)
		}
	}
}

func TestConfig_DiscoverProvider(t *testing.T) {
	cfg := DefaultConfig()
	if _, ok := cfg.DiscoverProvider(); ok {
		t.Error("no keys set, discovery should fail")
	}

	cfg.Anthropic.APIKey = "k"
	p, ok := cfg.DiscoverProvider()
	if !ok || p != "anthropic" {
		t.Errorf("got %q/%v, want anthropic", p, ok)
	}

	// Gemini wins when several keys are present.
	cfg.Gemini.APIKey = "k"
	p, _ = cfg.DiscoverProvider()
	if p != "gemini" {
		t.Errorf("got %q, want gemini", p)
	}
}
