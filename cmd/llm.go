package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/leadvane/internal/llm"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Show the resolved LLM configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := llm.ConfigFromEnv()

		discovered := ""
		if p, ok := cfg.DiscoverProvider(); ok {
			discovered = p
		}

		fmt.Printf("Provider:    %s\n", cfg.Provider)
		if discovered != "" && discovered != cfg.Provider {
			fmt.Printf("Discovered:  %s (used when LEADVANE_LLM_PROVIDER is unset)\n", discovered)
		}
		fmt.Println(strings.Repeat("─", 48))
		fmt.Printf("%-12s %-24s %s\n", "Backend", "Model", "Key")
		fmt.Println(strings.Repeat("─", 48))
		fmt.Printf("%-12s %-24s %s\n", "gemini", cfg.Gemini.Model, keyStatus(cfg.Gemini.APIKey))
		fmt.Printf("%-12s %-24s %s\n", "openai", cfg.OpenAI.Model, keyStatus(cfg.OpenAI.APIKey))
		fmt.Printf("%-12s %-24s %s\n", "anthropic", cfg.Anthropic.Model, keyStatus(cfg.Anthropic.APIKey))
		fmt.Println(strings.Repeat("─", 48))
		fmt.Printf("Retry:       %d attempts, %s initial wait\n", cfg.Retry.MaxAttempts, cfg.Retry.InitialWait)
		fmt.Printf("Timeout:     %s\n", cfg.Timeout)

		if err := cfg.Validate(); err != nil {
			fmt.Println()
			fmt.Println("Not usable:", err)
		}
		return nil
	},
}

func keyStatus(key string) string {
	if key == "" {
		return "missing"
	}
	return "set"
}
