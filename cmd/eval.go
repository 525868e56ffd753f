package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/rane05/IELTS-TalkMate/internal/evaluator"
	"github.com/rane05/IELTS-TalkMate/internal/store"
	"github.com/spf13/cobra"
)

var evalCmd = &cobra.Command{
	Use:   "eval",
	Short: "Inspect evaluation calls",
}

var evalListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent evaluation calls",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		rows, err := s.ListEvaluations(context.Background(), limit)
		if err != nil {
			return fmt.Errorf("query evaluations: %w", err)
		}

		if len(rows) == 0 {
			fmt.Println("No evaluations recorded.")
			return nil
		}

		fmt.Printf("%-5s  %-19s  %-24s  %-10s  %-12s  %-7s  %-5s  %s\n",
			"ID", "Timestamp", "Model", "Phase", "Mode", "Ms", "Band", "OK")
		fmt.Println(strings.Repeat("─", 100))

		for _, r := range rows {
			ok := "✓"
			if !r.Success {
				ok = "✗"
			}
			model := r.Model
			if len(model) > 24 {
				model = model[:24]
			}
			fmt.Printf("%-5d  %-19s  %-24s  %-10s  %-12s  %-7d  %-5.1f  %s\n",
				r.ID,
				r.At.Local().Format("2006-01-02 15:04:05"),
				model,
				r.Phase,
				r.Mode,
				r.LatencyMs,
				r.Band,
				ok,
			)
			if r.Error != "" {
				fmt.Printf("       %s\n", r.Error)
			}
		}
		return nil
	},
}

var evalStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the configured evaluation provider",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, found := evaluator.DiscoverConfig()
		if !found {
			fmt.Println("Provider:  mock (no API key configured)")
			fmt.Println()
			fmt.Println("Set TALKMATE_GEMINI_API_KEY, TALKMATE_OPENAI_API_KEY or")
			fmt.Println("TALKMATE_ANTHROPIC_API_KEY to enable a real examiner.")
			return nil
		}

		model := ""
		switch cfg.Provider {
		case "gemini":
			model = cfg.Gemini.Model
		case "openai":
			model = cfg.OpenAI.Model
		case "anthropic":
			model = cfg.Anthropic.Model
		}

		fmt.Printf("Provider:  %s\n", cfg.Provider)
		fmt.Printf("Model:     %s\n", model)
		if cfg.Provider == "anthropic" || cfg.Provider == "openai" {
			fmt.Printf("Whisper:   %s\n", cfg.OpenAI.WhisperModel)
		}
		fmt.Printf("Timeout:   %s\n", cfg.Timeout)

		if err := cfg.Validate(); err != nil {
			fmt.Printf("Status:    ✗ %v\n", err)
			return nil
		}
		fmt.Println("Status:    ✓ ready")
		return nil
	},
}

func init() {
	evalListCmd.Flags().Int("limit", 50, "Maximum number of evaluations to show")
	evalCmd.AddCommand(evalListCmd)
	evalCmd.AddCommand(evalStatusCmd)
}
