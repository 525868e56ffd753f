package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/rane05/IELTS-TalkMate/internal/report"
	"github.com/rane05/IELTS-TalkMate/internal/store"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export <session-id>",
	Short: "Export a session report to a text file",
	Args:  cobra.ExactArgs(1),
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

		rec, err := s.GetSession(context.Background(), args[0])
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fmt.Errorf("session %q not found", args[0])
			}
			return fmt.Errorf("load session: %w", err)
		}

		name := report.Filename(rec)
		if err := os.WriteFile(name, []byte(report.Render(rec)), 0o644); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		fmt.Println("Wrote", name)
		return nil
	},
}
