// Package vocabulary shows the saved word bank and lets the learner add
// words by hand.
package vocabulary

import (
	"context"
	"fmt"
	"strings"
	"time"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/rane05/IELTS-TalkMate/internal/screen"
	"github.com/rane05/IELTS-TalkMate/internal/stats"
	"github.com/rane05/IELTS-TalkMate/internal/store"
	"github.com/rane05/IELTS-TalkMate/internal/ui/layout"
	"github.com/rane05/IELTS-TalkMate/internal/ui/theme"
)

// VocabularyScreen lists the word bank with an add-word input.
type VocabularyScreen struct {
	store   *store.Store
	tracker *stats.Tracker

	input  textinput.Model
	adding bool
	notice string
}

var _ screen.Screen = (*VocabularyScreen)(nil)
var _ screen.KeyHintProvider = (*VocabularyScreen)(nil)

// New creates the vocabulary screen.
func New(st *store.Store, tracker *stats.Tracker) *VocabularyScreen {
	ti := textinput.New()
	ti.Placeholder = "new word..."
	ti.CharLimit = 40
	return &VocabularyScreen{store: st, tracker: tracker, input: ti}
}

func (v *VocabularyScreen) Init() tea.Cmd {
	return nil
}

func (v *VocabularyScreen) Title() string {
	return "Vocabulary Bank"
}

func (v *VocabularyScreen) KeyHints() []layout.KeyHint {
	if v.adding {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Save word"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "A", Description: "Add word"},
		{Key: "Esc", Description: "Back"},
	}
}

// TrapsEsc keeps Esc local while the input is open so it cancels the add
// instead of leaving the screen.
func (v *VocabularyScreen) TrapsEsc() bool {
	return v.adding
}

func (v *VocabularyScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if v.adding {
			var cmd tea.Cmd
			v.input, cmd = v.input.Update(msg)
			return v, cmd
		}
		return v, nil
	}

	if v.adding {
		switch kmsg.String() {
		case "enter":
			return v.saveWord()
		case "esc":
			v.adding = false
			v.input.Reset()
			return v, nil
		}
		var cmd tea.Cmd
		v.input, cmd = v.input.Update(msg)
		return v, cmd
	}

	if kmsg.String() == "a" {
		v.adding = true
		v.notice = ""
		return v, v.input.Focus()
	}
	return v, nil
}

// saveWord commits the typed word to the bank.
func (v *VocabularyScreen) saveWord() (screen.Screen, tea.Cmd) {
	word := strings.TrimSpace(v.input.Value())
	if word == "" {
		return v, nil
	}
	v.adding = false
	v.input.Reset()

	rolling := v.tracker.AddWord(word, time.Now())
	if v.store != nil && len(rolling.VocabularyBank) > 0 {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := v.store.SaveWord(ctx, rolling.VocabularyBank[0]); err != nil {
			v.notice = fmt.Sprintf("Could not save word: %v", err)
			return v, nil
		}
	}
	v.notice = fmt.Sprintf("Saved %q.", word)
	return v, nil
}

func (v *VocabularyScreen) View(width, height int) string {
	bank := v.tracker.Snapshot().VocabularyBank

	var b strings.Builder
	b.WriteString("\n")

	if v.adding {
		b.WriteString("  " + v.input.View())
		b.WriteString("\n\n")
	}

	if len(bank) == 0 {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Hint.Render("Your vocabulary bank is empty. Add words here or from a session summary.")))
		return b.String()
	}

	for _, item := range bank {
		word := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(item.Word)
		when := lipgloss.NewStyle().Foreground(theme.TextDim).
			Render(item.LearnedAt.Format("2006-01-02"))
		b.WriteString(fmt.Sprintf("  %s  %s\n", word, when))
		if item.Definition != "" {
			b.WriteString(theme.Hint.Render("    " + item.Definition))
			b.WriteString("\n")
		}
	}

	if v.notice != "" {
		b.WriteString("\n")
		b.WriteString(theme.Good.Render("  " + v.notice))
	}
	return b.String()
}
