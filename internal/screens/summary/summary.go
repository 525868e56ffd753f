// Package summary displays a finished session: aggregate scores, the
// conversation recap, vocabulary suggestions and text export.
package summary

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/rane05/IELTS-TalkMate/internal/conversation"
	"github.com/rane05/IELTS-TalkMate/internal/report"
	"github.com/rane05/IELTS-TalkMate/internal/router"
	"github.com/rane05/IELTS-TalkMate/internal/screen"
	"github.com/rane05/IELTS-TalkMate/internal/stats"
	"github.com/rane05/IELTS-TalkMate/internal/store"
	"github.com/rane05/IELTS-TalkMate/internal/ui/components"
	"github.com/rane05/IELTS-TalkMate/internal/ui/layout"
	"github.com/rane05/IELTS-TalkMate/internal/ui/theme"
)

// Deps carries the services the summary screen persists through.
type Deps struct {
	Tracker *stats.Tracker
	Store   *store.Store
}

// SummaryScreen displays one archived session.
type SummaryScreen struct {
	deps   Deps
	record stats.SessionRecord

	// review marks a summary opened from history rather than at the end
	// of a live session.
	review bool

	saveErr     error
	suggestions []string
	wordCursor  int
	savedWords  map[string]bool
	notice      string
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates the summary shown right after a session completes.
func New(record stats.SessionRecord, deps Deps, saveErr error) *SummaryScreen {
	return &SummaryScreen{
		deps:        deps,
		record:      record,
		saveErr:     saveErr,
		suggestions: collectSuggestions(record.Conversation),
		savedWords:  make(map[string]bool),
	}
}

// NewReview creates a summary for an archived session opened from history.
func NewReview(record stats.SessionRecord, deps Deps) *SummaryScreen {
	s := New(record, deps, nil)
	s.review = true
	return s
}

// collectSuggestions gathers the distinct vocabulary suggestions from all
// feedback blocks, in first-seen order.
func collectSuggestions(turns []conversation.Turn) []string {
	seen := make(map[string]bool)
	var out []string
	for _, t := range turns {
		if t.Feedback == nil {
			continue
		}
		for _, w := range t.Feedback.VocabularySuggestions {
			key := strings.ToLower(strings.TrimSpace(w))
			if key == "" || seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, w)
		}
	}
	return out
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	if s.review {
		return "Session Review"
	}
	return "Session Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{}
	if len(s.suggestions) > 0 {
		hints = append(hints,
			layout.KeyHint{Key: "←→", Description: "Pick word"},
			layout.KeyHint{Key: "A", Description: "Add to bank"},
		)
	}
	hints = append(hints, layout.KeyHint{Key: "E", Description: "Export"})
	if s.review {
		hints = append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
	} else {
		hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Home"})
	}
	return hints
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "enter", "esc":
		if s.review {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return s, func() tea.Msg { return router.PopToRootMsg{} }
	case "left", "h":
		if s.wordCursor > 0 {
			s.wordCursor--
		}
	case "right", "l":
		if s.wordCursor < len(s.suggestions)-1 {
			s.wordCursor++
		}
	case "a":
		return s.addWord()
	case "e":
		return s.export()
	}
	return s, nil
}

// addWord saves the highlighted suggestion into the vocabulary bank.
func (s *SummaryScreen) addWord() (screen.Screen, tea.Cmd) {
	if len(s.suggestions) == 0 {
		return s, nil
	}
	word := s.suggestions[s.wordCursor]
	key := strings.ToLower(strings.TrimSpace(word))
	if s.savedWords[key] {
		return s, nil
	}
	s.savedWords[key] = true

	rolling := s.deps.Tracker.AddWord(word, time.Now())
	if s.deps.Store != nil && len(rolling.VocabularyBank) > 0 {
		item := rolling.VocabularyBank[0]
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := s.deps.Store.SaveWord(ctx, item); err != nil {
			s.notice = fmt.Sprintf("Could not save word: %v", err)
			return s, nil
		}
	}
	s.notice = fmt.Sprintf("Added %q to your vocabulary bank.", word)
	return s, nil
}

// export writes the plain-text session report to the working directory.
func (s *SummaryScreen) export() (screen.Screen, tea.Cmd) {
	path := filepath.Join(".", report.Filename(s.record))
	if err := os.WriteFile(path, []byte(report.Render(s.record)), 0o644); err != nil {
		s.notice = fmt.Sprintf("Export failed: %v", err)
		return s, nil
	}
	s.notice = fmt.Sprintf("Report written to %s", path)
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	r := s.record
	var b strings.Builder

	title := "Session complete!"
	if s.review {
		title = r.StartedAt.Format("January 2, 2006 15:04")
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render(title))
	b.WriteString("\n\n")

	meta := fmt.Sprintf("%s    Duration: %d:%02d",
		r.Mode.DisplayName(), r.DurationSeconds/60, r.DurationSeconds%60)
	if r.Topic != nil {
		meta += "    Topic: " + r.Topic.Name
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(meta))
	b.WriteString("\n\n")

	band := theme.BandStyle(r.AverageBand).Render(fmt.Sprintf("Overall Band %.1f", r.AverageBand))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, band))
	b.WriteString("\n\n")

	cw := min(width-12, 56)
	bars := strings.Join([]string{
		components.NewScoreBar("Fluency", r.FluencyScore, cw).View(),
		components.NewScoreBar("Grammar", r.GrammarScore, cw).View(),
		components.NewScoreBar("Pronunciation", r.PronunciationScore, cw).View(),
		components.NewScoreBar("Vocabulary", r.VocabularyScore, cw).View(),
	}, "\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, theme.Card.Render(bars)))
	b.WriteString("\n\n")

	if tip := lastTip(r.Conversation); tip != "" {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Hint.Render("Tip: "+tip)))
		b.WriteString("\n\n")
	}

	if len(s.suggestions) > 0 {
		b.WriteString(s.renderSuggestions(width))
		b.WriteString("\n")
	}

	if s.saveErr != nil {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Bad.Render(fmt.Sprintf("Session was not saved: %v", s.saveErr))))
		b.WriteString("\n")
	}
	if s.notice != "" {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Good.Render(s.notice)))
	}

	return "\n" + b.String()
}

// lastTip returns the improvement tip from the most recent feedback block.
func lastTip(turns []conversation.Turn) string {
	for i := len(turns) - 1; i >= 0; i-- {
		if turns[i].Feedback != nil && turns[i].Feedback.ImprovementTip != "" {
			return turns[i].Feedback.ImprovementTip
		}
	}
	return ""
}

func (s *SummaryScreen) renderSuggestions(width int) string {
	parts := make([]string, 0, len(s.suggestions))
	for i, w := range s.suggestions {
		key := strings.ToLower(strings.TrimSpace(w))
		switch {
		case s.savedWords[key]:
			parts = append(parts, theme.Good.Render(w+" ✓"))
		case i == s.wordCursor:
			parts = append(parts, theme.Selected.Render("["+w+"]"))
		default:
			parts = append(parts, theme.Unselected.Render(w))
		}
	}
	label := lipgloss.NewStyle().Foreground(theme.TextDim).Render("New vocabulary:  ")
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, label+strings.Join(parts, "  "))
}
