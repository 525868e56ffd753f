// Package history lists archived sessions and opens them for review.
package history

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/rane05/IELTS-TalkMate/internal/router"
	"github.com/rane05/IELTS-TalkMate/internal/screen"
	"github.com/rane05/IELTS-TalkMate/internal/screens/summary"
	"github.com/rane05/IELTS-TalkMate/internal/stats"
	"github.com/rane05/IELTS-TalkMate/internal/store"
	"github.com/rane05/IELTS-TalkMate/internal/ui/layout"
	"github.com/rane05/IELTS-TalkMate/internal/ui/theme"
)

// listLimit caps how many archived sessions the screen loads.
const listLimit = 50

// HistoryScreen shows archived sessions, newest first.
type HistoryScreen struct {
	store   *store.Store
	tracker *stats.Tracker

	records  []stats.SessionRecord
	selected int
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// recordsLoadedMsg delivers the archive query result.
type recordsLoadedMsg struct {
	records []stats.SessionRecord
	err     error
}

// New creates the history screen.
func New(st *store.Store, tracker *stats.Tracker) *HistoryScreen {
	return &HistoryScreen{store: st, tracker: tracker}
}

func (h *HistoryScreen) Init() tea.Cmd {
	st := h.store
	return func() tea.Msg {
		if st == nil {
			return recordsLoadedMsg{}
		}
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		records, err := st.ListSessions(ctx, listLimit)
		return recordsLoadedMsg{records: records, err: err}
	}
}

func (h *HistoryScreen) Title() string {
	return "History"
}

func (h *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Review"},
		{Key: "Esc", Description: "Back"},
	}
}

func (h *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case recordsLoadedMsg:
		h.loaded = true
		if msg.err != nil {
			h.errMsg = msg.err.Error()
			return h, nil
		}
		h.records = msg.records
		return h, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if h.selected > 0 {
				h.selected--
			}
		case "down", "j":
			if h.selected < len(h.records)-1 {
				h.selected++
			}
		case "enter":
			if h.selected < len(h.records) {
				rec := h.records[h.selected]
				return h, func() tea.Msg {
					return router.PushScreenMsg{Screen: summary.NewReview(rec, summary.Deps{
						Tracker: h.tracker,
						Store:   h.store,
					})}
				}
			}
		}
	}
	return h, nil
}

func (h *HistoryScreen) View(width, height int) string {
	if h.errMsg != "" {
		return "\n" + theme.Bad.Render("  Could not load history: "+h.errMsg)
	}
	if !h.loaded {
		return "\n" + theme.Hint.Render("  Loading...")
	}
	if len(h.records) == 0 {
		return "\n\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Hint.Render("No practice sessions yet. Finish one and it will appear here."))
	}

	var b strings.Builder
	b.WriteString("\n")
	for i, r := range h.records {
		line := fmt.Sprintf("%-17s %-14s Band %.1f   %d:%02d",
			r.StartedAt.Format("2006-01-02 15:04"),
			r.Mode.DisplayName(),
			r.AverageBand,
			r.DurationSeconds/60, r.DurationSeconds%60)
		if i == h.selected {
			b.WriteString(theme.Selected.Render("  ▸ " + line))
		} else {
			b.WriteString(theme.Unselected.Render("    " + line))
		}
		b.WriteString("\n")
	}
	return b.String()
}
