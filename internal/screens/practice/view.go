package practice

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/rane05/IELTS-TalkMate/internal/conversation"
	"github.com/rane05/IELTS-TalkMate/internal/ui/components"
	"github.com/rane05/IELTS-TalkMate/internal/ui/theme"
)

// visibleTurns bounds how much conversation history the transcript panel
// shows.
const visibleTurns = 8

func (p *PracticeScreen) View(width, height int) string {
	if p.confirmQuit {
		return renderQuitConfirm(width)
	}

	var b strings.Builder

	b.WriteString(p.renderStatusLine(width))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	b.WriteString(p.renderExaminerPanel(width))
	b.WriteString("\n\n")

	if p.scratchpad.Visible() {
		b.WriteString(p.scratchpad.View(width))
		b.WriteString("\n\n")
	}

	b.WriteString(p.renderTranscript(width))

	if p.notice != "" {
		b.WriteString("\n")
		b.WriteString(theme.Bad.Render("  " + p.notice))
	}

	return b.String()
}

// renderStatusLine shows the phase, the activity indicator and the timer.
func (p *PracticeScreen) renderStatusLine(width int) string {
	left := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render("  " + p.session.Phase.Description())

	var status string
	switch {
	case p.recording:
		status = theme.RecordingDot.Render("● REC")
	case p.evaluating:
		status = lipgloss.NewStyle().Foreground(theme.Accent).Render("… evaluating")
	default:
		status = lipgloss.NewStyle().Foreground(theme.TextDim).Render("space to answer")
	}

	right := status
	if p.session.Timer.Running() {
		right += "  " + components.RenderTimer(p.session.Timer.Remaining())
	}

	pad := width - lipgloss.Width(left) - lipgloss.Width(right) - 4
	if pad < 1 {
		pad = 1
	}
	return left + strings.Repeat(" ", pad) + right
}

// renderExaminerPanel shows the examiner's current prompt in a card.
func (p *PracticeScreen) renderExaminerPanel(width int) string {
	title := theme.Examiner.Render("Examiner")
	body := lipgloss.NewStyle().
		Foreground(theme.Text).
		Width(min(width-10, 90)).
		Render(p.examinerText)
	card := theme.Card.Width(min(width-4, 96)).Render(title + "\n" + body)
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, card)
}

// renderTranscript shows the recent conversation turns with per-turn bands.
func (p *PracticeScreen) renderTranscript(width int) string {
	turns := p.ledger.Turns()
	if len(turns) > visibleTurns {
		turns = turns[len(turns)-visibleTurns:]
	}

	var b strings.Builder
	for _, t := range turns {
		b.WriteString(renderTurn(t, width))
		b.WriteString("\n")
	}
	return b.String()
}

func renderTurn(t conversation.Turn, width int) string {
	var label string
	if t.Role == conversation.RoleExaminer {
		label = theme.Examiner.Render("  Examiner  ")
	} else {
		label = theme.Candidate.Render("  You       ")
	}

	text := lipgloss.NewStyle().
		Foreground(theme.Text).
		Width(max(width-28, 20)).
		Render(t.DisplayText())

	line := lipgloss.JoinHorizontal(lipgloss.Top, label, text)

	if t.Feedback != nil && t.Feedback.EstimatedBand > 0 {
		band := theme.BandStyle(t.Feedback.EstimatedBand).
			Render(fmt.Sprintf("  Band %.1f", t.Feedback.EstimatedBand))
		line += "\n" + band
	}
	return line
}

func renderQuitConfirm(width int) string {
	card := theme.Card.Render(
		theme.Title.Render("End this session?") + "\n\n" +
			theme.Body.Render("Your scores so far will be saved.") + "\n\n" +
			theme.Hint.Render("Y to end, N to keep going"))
	return "\n\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center, card)
}
