package cmd

import (
	"fmt"

	"github.com/rane05/IELTS-TalkMate/internal/exam"
	"github.com/spf13/cobra"
)

var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "List available cue-card topics",
	Run: func(cmd *cobra.Command, args []string) {
		var category string
		for _, t := range exam.Topics() {
			if t.Category != category {
				if category != "" {
					fmt.Println()
				}
				category = t.Category
				fmt.Println(category)
			}
			fmt.Printf("  %-4s %-36s %s\n", t.ID, t.Name, t.Difficulty)
		}
	},
}
