package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/abhisek/leadvane/internal/console"
	"github.com/abhisek/leadvane/internal/engine"
	"github.com/abhisek/leadvane/internal/intake"
	"github.com/abhisek/leadvane/internal/llm"
	"github.com/abhisek/leadvane/internal/metrics"
	"github.com/abhisek/leadvane/internal/registry"
)

// buildEngine assembles the full pipeline from environment configuration.
// The returned prometheus registry backs the /metrics endpoint in serve mode.
func buildEngine(cmd *cobra.Command, log *slog.Logger) (*engine.Engine, *prometheus.Registry, error) {
	cfg := llm.ConfigFromEnv()
	if p, ok := cfg.DiscoverProvider(); ok && os.Getenv("LEADVANE_LLM_PROVIDER") == "" {
		cfg.Provider = p
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("LLM configuration: %w", err)
	}

	provider, err := llm.New(cmd.Context(), cfg, log)
	if err != nil {
		return nil, nil, fmt.Errorf("build LLM provider: %w", err)
	}

	interp := intake.NewLLMInterpreter(provider, intake.DefaultInterpreterConfig())
	promReg := prometheus.NewRegistry()
	eng := engine.New(interp, registry.New(), metrics.New(promReg), log)
	return eng, promReg, nil
}

// runConsole launches the interactive terminal UI. Logs are silenced so they
// do not tear the alternate screen.
func runConsole(cmd *cobra.Command) error {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	eng, _, err := buildEngine(cmd, log)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Cannot start:", err)
		return err
	}
	return console.Run(eng)
}
