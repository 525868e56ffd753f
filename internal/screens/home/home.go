// Package home implements the dashboard screen: rolling scores, the band
// trend, and the main navigation menu.
package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/rane05/IELTS-TalkMate/internal/evaluator"
	"github.com/rane05/IELTS-TalkMate/internal/exam"
	"github.com/rane05/IELTS-TalkMate/internal/router"
	"github.com/rane05/IELTS-TalkMate/internal/screen"
	"github.com/rane05/IELTS-TalkMate/internal/screens/history"
	"github.com/rane05/IELTS-TalkMate/internal/screens/practice"
	"github.com/rane05/IELTS-TalkMate/internal/screens/selector"
	"github.com/rane05/IELTS-TalkMate/internal/screens/vocabulary"
	"github.com/rane05/IELTS-TalkMate/internal/speech"
	"github.com/rane05/IELTS-TalkMate/internal/stats"
	"github.com/rane05/IELTS-TalkMate/internal/store"
	"github.com/rane05/IELTS-TalkMate/internal/ui/components"
	"github.com/rane05/IELTS-TalkMate/internal/ui/theme"
)

// Deps carries the shared services screens reach through home.
type Deps struct {
	Tracker   *stats.Tracker
	Store     *store.Store
	Evaluator evaluator.Evaluator
	Recorder  speech.Recorder
	Speaker   speech.Speaker
}

// HomeScreen is the main dashboard of the application.
type HomeScreen struct {
	deps Deps
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(deps Deps) *HomeScreen {
	items := []components.MenuItem{
		{Label: "START PRACTICE", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: selector.New(selector.Deps{
					Tracker:   deps.Tracker,
					Store:     deps.Store,
					Evaluator: deps.Evaluator,
					Recorder:  deps.Recorder,
					Speaker:   deps.Speaker,
				})}
			}
		}},
		{Label: "GRAMMAR COACH", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: practice.New(practice.Deps{
					Tracker:   deps.Tracker,
					Store:     deps.Store,
					Evaluator: deps.Evaluator,
					Recorder:  deps.Recorder,
					Speaker:   deps.Speaker,
				}, exam.ModeGrammarCoach, nil, exam.DifficultyIntermediate, exam.PersonalityProfessional)}
			}
		}},
		{Label: "SESSION HISTORY", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(deps.Store, deps.Tracker)}
			}
		}},
		{Label: "VOCABULARY BANK", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: vocabulary.New(deps.Store, deps.Tracker)}
			}
		}},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		deps: deps,
		menu: components.NewMenu(items),
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) View(width, height int) string {
	rolling := h.deps.Tracker.Snapshot()

	var sections []string

	title := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("IELTS TalkMate")
	subtitle := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Speaking practice with an AI examiner")
	sections = append(sections, title+"\n"+subtitle)

	sections = append(sections, renderScoreCard(rolling, width))

	if len(rolling.RecentBandTrend) > 0 {
		sections = append(sections, renderTrend(rolling.RecentBandTrend, width))
	}

	sections = append(sections, lipgloss.PlaceHorizontal(width, lipgloss.Center, h.menu.View()))

	if len(rolling.WeakAreas) > 0 {
		focus := theme.Hint.Render("Focus areas: " + strings.Join(rolling.WeakAreas, ", "))
		sections = append(sections, lipgloss.PlaceHorizontal(width, lipgloss.Center, focus))
	}

	return "\n" + strings.Join(sections, "\n\n")
}

// renderScoreCard shows the rolling band and the four skill bars.
func renderScoreCard(r stats.Rolling, width int) string {
	cw := min(width-8, 64)

	band := theme.BandStyle(r.AverageBand).Render(fmt.Sprintf("Overall Band %.1f", r.AverageBand))
	meta := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%d sessions  ·  %d min practiced", r.TotalSessions, r.TotalPracticeMinutes))

	rows := []string{
		band + "    " + meta,
		"",
		components.NewScoreBar("Fluency", r.FluencyScore, cw).View(),
		components.NewScoreBar("Grammar", r.GrammarScore, cw).View(),
		components.NewScoreBar("Pronunciation", r.PronunciationScore, cw).View(),
		components.NewScoreBar("Vocabulary", r.VocabularyScore, cw).View(),
	}

	card := theme.Card.Width(cw + 4).Render(strings.Join(rows, "\n"))
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, card)
}

// renderTrend shows the recent band scores as a compact sparkline row.
func renderTrend(trend []stats.TrendPoint, width int) string {
	parts := make([]string, 0, len(trend))
	for _, p := range trend {
		parts = append(parts, theme.BandStyle(p.Band).Render(fmt.Sprintf("%.1f", p.Band)))
	}
	line := lipgloss.NewStyle().Foreground(theme.TextDim).Render("Recent bands:  ") +
		strings.Join(parts, lipgloss.NewStyle().Foreground(theme.Border).Render(" → "))
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, line)
}
