package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/rane05/IELTS-TalkMate/internal/app"
	"github.com/rane05/IELTS-TalkMate/internal/evaluator"
	"github.com/rane05/IELTS-TalkMate/internal/speech"
	"github.com/rane05/IELTS-TalkMate/internal/stats"
	"github.com/rane05/IELTS-TalkMate/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	rolling, err := st.LoadRolling(ctx)
	if err != nil {
		return fmt.Errorf("load statistics: %w", err)
	}

	opts := app.Options{
		Tracker: stats.NewTracker(rolling),
		Store:   st,
		Speaker: speech.NewSpeaker(),
	}

	recorder, err := speech.NewCommandRecorder()
	if err != nil {
		if !errors.Is(err, speech.ErrNoRecorder) {
			return fmt.Errorf("initialize recorder: %w", err)
		}
		fmt.Fprintln(os.Stderr, "No audio recorder found (install sox or alsa-utils).")
		fmt.Fprintln(os.Stderr, "Voice answers will be unavailable.")
	} else {
		opts.Recorder = recorder
	}

	cfg, found := evaluator.DiscoverConfig()
	if !found {
		fmt.Fprintln(os.Stderr, "No evaluator API key configured; using the offline mock examiner.")
		fmt.Fprintln(os.Stderr, "Set TALKMATE_GEMINI_API_KEY (or OPENAI/ANTHROPIC) for real feedback.")
		cfg = evaluator.DefaultConfig()
		cfg.Provider = "mock"
	}
	eval, err := evaluator.New(ctx, cfg, st)
	if err != nil {
		return fmt.Errorf("initialize evaluator: %w", err)
	}
	opts.Evaluator = eval

	return app.Run(opts)
}
