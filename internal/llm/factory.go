package llm

import (
	"context"
	"fmt"
	"log/slog"
)

// New creates a Provider from configuration, wrapped with retry and call
// logging. Call order seen by the backend: caller → retry → logging → base.
func New(ctx context.Context, cfg Config, log *slog.Logger) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "gemini":
		base, err = NewGemini(ctx, cfg.Gemini)
	case "openai":
		base, err = NewOpenAI(cfg.OpenAI)
	case "anthropic":
		base, err = NewAnthropic(cfg.Anthropic)
	case "mock":
		return NewMock(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	return WithRetry(WithLogging(base, log), cfg.Retry), nil
}

// resolveModel maps a friendly model name to a backend model ID, passing
// unknown names through so direct IDs keep working.
func resolveModel(name string, models map[string]string) string {
	if id, ok := models[name]; ok {
		return id
	}
	return name
}
