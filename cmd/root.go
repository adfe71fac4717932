package cmd

import (
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "leadvane",
	Short: "Lead intake and scoring engine",
	Long:  "Leadvane — turns natural-language sales notes into a scored, tiered customer registry.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConsole(cmd)
	},
}

func Execute() error {
	// Missing .env is fine; env vars and defaults still apply.
	_ = godotenv.Load()
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(ingestCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// newLogger builds the process logger. Level comes from LEADVANE_LOG_LEVEL
// (debug, info, warn, error), defaulting to info.
func newLogger() *slog.Logger {
	level := slog.LevelInfo
	switch strings.ToLower(os.Getenv("LEADVANE_LOG_LEVEL")) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
