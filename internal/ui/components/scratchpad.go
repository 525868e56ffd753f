package components

import (
	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/rane05/IELTS-TalkMate/internal/ui/theme"
)

// Scratchpad wraps bubbles/textarea as the preparation notes pad shown
// during the long-turn prep minute.
type Scratchpad struct {
	Model   textarea.Model
	visible bool
}

// NewScratchpad creates the notes pad, hidden until prep begins.
func NewScratchpad() Scratchpad {
	ta := textarea.New()
	ta.Placeholder = "Jot down ideas for your talk..."
	ta.ShowLineNumbers = false
	ta.SetHeight(6)
	return Scratchpad{Model: ta}
}

// Show makes the pad visible and focused.
func (s *Scratchpad) Show() tea.Cmd {
	s.visible = true
	return s.Model.Focus()
}

// Hide blurs the pad. Contents survive so 's' can toggle it back during
// the speaking turn.
func (s *Scratchpad) Hide() {
	s.visible = false
	s.Model.Blur()
}

// Visible reports whether the pad is on screen.
func (s Scratchpad) Visible() bool {
	return s.visible
}

// Focused reports whether keystrokes go to the pad.
func (s Scratchpad) Focused() bool {
	return s.visible && s.Model.Focused()
}

// Update forwards messages to the textarea when visible.
func (s Scratchpad) Update(msg tea.Msg) (Scratchpad, tea.Cmd) {
	if !s.visible {
		return s, nil
	}
	var cmd tea.Cmd
	s.Model, cmd = s.Model.Update(msg)
	return s, cmd
}

// View renders the pad inside a card.
func (s Scratchpad) View(width int) string {
	if !s.visible {
		return ""
	}
	s.Model.SetWidth(width - 6)
	title := lipgloss.NewStyle().
		Foreground(theme.Accent).
		Bold(true).
		Render("Preparation Notes")
	return theme.Card.Width(width - 2).Render(title + "\n" + s.Model.View())
}

// Value returns the pad contents.
func (s Scratchpad) Value() string {
	return s.Model.Value()
}

// Reset clears the pad.
func (s *Scratchpad) Reset() {
	s.Model.Reset()
	s.visible = false
}
