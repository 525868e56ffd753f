package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/rane05/IELTS-TalkMate/internal/ui/theme"
)

// ScoreBar displays one skill score as a labeled horizontal bar.
type ScoreBar struct {
	Label   string
	Percent int
	Width   int
}

// NewScoreBar creates a score bar for a 0-100 skill score.
func NewScoreBar(label string, percent, width int) ScoreBar {
	return ScoreBar{Label: label, Percent: percent, Width: width}
}

// View renders the score bar.
func (s ScoreBar) View() string {
	label := lipgloss.NewStyle().
		Foreground(theme.Text).
		Width(16).
		Render(s.Label)

	barWidth := s.Width - 16 - 7
	if barWidth < 4 {
		barWidth = 4
	}

	filled := barWidth * s.Percent / 100
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}

	bar := lipgloss.NewStyle().
		Background(theme.Secondary).
		Render(strings.Repeat(" ", filled)) +
		lipgloss.NewStyle().
			Background(theme.Border).
			Render(strings.Repeat(" ", barWidth-filled))

	percent := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("  %3d%%", s.Percent))

	return label + bar + percent
}
