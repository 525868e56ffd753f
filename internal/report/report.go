// Package report renders a completed session as a plain-text export.
package report

import (
	"fmt"
	"strings"

	"github.com/rane05/IELTS-TalkMate/internal/stats"
)

// Render produces the text report for one archived session.
func Render(r stats.SessionRecord) string {
	var b strings.Builder

	b.WriteString("IELTS Speaking Session Report\n")
	fmt.Fprintf(&b, "Date: %s\n", r.StartedAt.Format("2006-01-02 15:04"))
	fmt.Fprintf(&b, "Mode: %s\n", r.Mode.DisplayName())
	fmt.Fprintf(&b, "Duration: %dm %ds\n", r.DurationSeconds/60, r.DurationSeconds%60)
	if r.Topic != nil {
		fmt.Fprintf(&b, "Topic: %s\n", r.Topic.Name)
	}

	b.WriteString("\nSCORES:\n")
	fmt.Fprintf(&b, "Overall Band: %.1f\n", r.AverageBand)
	fmt.Fprintf(&b, "Grammar: %d%%\n", r.GrammarScore)
	fmt.Fprintf(&b, "Fluency: %d%%\n", r.FluencyScore)
	fmt.Fprintf(&b, "Pronunciation: %d%%\n", r.PronunciationScore)
	fmt.Fprintf(&b, "Vocabulary: %d%%\n", r.VocabularyScore)

	b.WriteString("\nCONVERSATION:\n")
	for _, turn := range r.Conversation {
		fmt.Fprintf(&b, "\n%s: %s\n", strings.ToUpper(string(turn.Role)), turn.DisplayText())
		if turn.Feedback != nil {
			fmt.Fprintf(&b, "Band: %.1f\n", turn.Feedback.EstimatedBand)
		}
	}

	if r.ScratchpadNotes != "" {
		b.WriteString("\nNOTES:\n")
		b.WriteString(r.ScratchpadNotes)
		b.WriteString("\n")
	}

	return b.String()
}

// Filename returns the export filename for a session.
func Filename(r stats.SessionRecord) string {
	return fmt.Sprintf("IELTS-Session-%s.txt", r.ID)
}
