package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/rane05/IELTS-TalkMate/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show rolling speaking statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		r, err := s.LoadRolling(context.Background())
		if err != nil {
			return fmt.Errorf("load statistics: %w", err)
		}

		fmt.Printf("Overall Band:     %.1f\n", r.AverageBand)
		fmt.Printf("Sessions:         %d\n", r.TotalSessions)
		fmt.Printf("Practice Time:    %d min\n", r.TotalPracticeMinutes)
		fmt.Println()
		fmt.Printf("Fluency:          %d%%\n", r.FluencyScore)
		fmt.Printf("Grammar:          %d%%\n", r.GrammarScore)
		fmt.Printf("Pronunciation:    %d%%\n", r.PronunciationScore)
		fmt.Printf("Vocabulary:       %d%%\n", r.VocabularyScore)

		if len(r.RecentBandTrend) > 0 {
			bands := make([]string, 0, len(r.RecentBandTrend))
			for _, p := range r.RecentBandTrend {
				bands = append(bands, fmt.Sprintf("%.1f", p.Band))
			}
			fmt.Println()
			fmt.Printf("Recent Trend:     %s\n", strings.Join(bands, " → "))
		}
		if len(r.WeakAreas) > 0 {
			fmt.Printf("Focus Areas:      %s\n", strings.Join(r.WeakAreas, ", "))
		}
		if len(r.VocabularyBank) > 0 {
			fmt.Printf("Saved Words:      %d\n", len(r.VocabularyBank))
		}
		return nil
	},
}
