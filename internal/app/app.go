package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/rane05/IELTS-TalkMate/internal/evaluator"
	"github.com/rane05/IELTS-TalkMate/internal/router"
	"github.com/rane05/IELTS-TalkMate/internal/screens/home"
	"github.com/rane05/IELTS-TalkMate/internal/speech"
	"github.com/rane05/IELTS-TalkMate/internal/stats"
	"github.com/rane05/IELTS-TalkMate/internal/store"
	"github.com/rane05/IELTS-TalkMate/internal/ui/layout"
)

// Options carries the shared dependencies handed to screens.
type Options struct {
	Tracker   *stats.Tracker
	Store     *store.Store
	Evaluator evaluator.Evaluator
	Recorder  speech.Recorder
	Speaker   speech.Speaker
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router  *router.Router
	tracker *stats.Tracker
	width   int
	height  int
}

// newAppModel creates a new AppModel with the home screen.
func newAppModel(opts Options) AppModel {
	homeScreen := home.New(home.Deps{
		Tracker:   opts.Tracker,
		Store:     opts.Store,
		Evaluator: opts.Evaluator,
		Recorder:  opts.Recorder,
		Speaker:   opts.Speaker,
	})
	return AppModel{
		router:  router.New(homeScreen),
		tracker: opts.Tracker,
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			// Screens that own an active session trap Esc themselves.
			if trapsEsc(m.router.Active()) {
				break
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

// EscTrapper is implemented by screens that handle Esc themselves, such
// as the practice screen while a session is live.
type EscTrapper interface {
	TrapsEsc() bool
}

func trapsEsc(s any) bool {
	if t, ok := s.(EscTrapper); ok {
		return t.TrapsEsc()
	}
	return false
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	rolling := m.tracker.Snapshot()
	header := layout.RenderHeader(title, rolling.AverageBand, rolling.TotalSessions, m.width)

	var footerHints []layout.KeyHint
	if hinter, ok := active.(interface{ KeyHints() []layout.KeyHint }); ok {
		footerHints = hinter.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	} else {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
