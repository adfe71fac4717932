package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/leadvane/internal/export"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest [file]",
	Short: "Process commands in bulk, one per line",
	Long: "Reads natural-language commands from a file (or stdin when no file " +
		"is given), runs each through the engine, and prints the outcome. " +
		"Blank lines and lines starting with # are skipped.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLogger()
		eng, _, err := buildEngine(cmd, log)
		if err != nil {
			return err
		}

		var in io.Reader = os.Stdin
		if len(args) == 1 {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open input: %w", err)
			}
			defer f.Close()
			in = f
		}

		processed := 0
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			res := eng.Process(cmd.Context(), line)
			processed++
			fmt.Printf("%-16s %s\n", "["+res.Status+"]", res.Message)
		}
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("read input: %w", err)
		}

		reg := eng.Registry()
		fmt.Printf("\n%d commands processed, %d customers stored, %d hot leads.\n",
			processed, reg.Len(), reg.HotLeadCount())

		if path, _ := cmd.Flags().GetString("csv"); path != "" {
			if err := writeFile(path, func(w io.Writer) error {
				return export.WriteCSV(w, reg.Records())
			}); err != nil {
				return fmt.Errorf("write csv: %w", err)
			}
			fmt.Println("CSV written to", path)
		}

		if path, _ := cmd.Flags().GetString("chart"); path != "" {
			if err := writeFile(path, func(w io.Writer) error {
				return export.WriteTierChart(w, reg.Records())
			}); err != nil {
				return fmt.Errorf("write chart: %w", err)
			}
			fmt.Println("Tier chart written to", path)
		}

		return nil
	},
}

func writeFile(path string, render func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := render(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func init() {
	ingestCmd.Flags().String("csv", "", "Write the resulting registry as CSV to this path")
	ingestCmd.Flags().String("chart", "", "Write a PNG tier chart to this path")
}
