// Package selector implements the pre-session setup flow: practice mode,
// topic, difficulty and examiner personality, chosen step by step.
package selector

import (
	"fmt"
	"math/rand/v2"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/rane05/IELTS-TalkMate/internal/evaluator"
	"github.com/rane05/IELTS-TalkMate/internal/exam"
	"github.com/rane05/IELTS-TalkMate/internal/router"
	"github.com/rane05/IELTS-TalkMate/internal/screen"
	"github.com/rane05/IELTS-TalkMate/internal/screens/practice"
	"github.com/rane05/IELTS-TalkMate/internal/speech"
	"github.com/rane05/IELTS-TalkMate/internal/stats"
	"github.com/rane05/IELTS-TalkMate/internal/store"
	"github.com/rane05/IELTS-TalkMate/internal/ui/layout"
	"github.com/rane05/IELTS-TalkMate/internal/ui/theme"
)

// Deps carries the services forwarded to the practice screen.
type Deps struct {
	Tracker   *stats.Tracker
	Store     *store.Store
	Evaluator evaluator.Evaluator
	Recorder  speech.Recorder
	Speaker   speech.Speaker
}

type step int

const (
	stepMode step = iota
	stepTopic
	stepDifficulty
	stepPersonality
)

// SelectorScreen walks through the session setup steps.
type SelectorScreen struct {
	deps Deps

	step     step
	selected int

	mode       exam.Mode
	topic      *exam.Topic
	difficulty exam.Difficulty
	topics     []exam.Topic
}

var _ screen.Screen = (*SelectorScreen)(nil)
var _ screen.KeyHintProvider = (*SelectorScreen)(nil)

var modes = []exam.Mode{
	exam.ModeFullTest,
	exam.ModePart1Only,
	exam.ModePart2Only,
	exam.ModePart3Only,
	exam.ModeGrammarCoach,
}

var difficulties = []exam.Difficulty{
	exam.DifficultyBeginner,
	exam.DifficultyIntermediate,
	exam.DifficultyAdvanced,
}

var personalities = []exam.Personality{
	exam.PersonalityProfessional,
	exam.PersonalityEncouraging,
	exam.PersonalityStrict,
}

// New creates the setup screen starting at mode selection.
func New(deps Deps) *SelectorScreen {
	return &SelectorScreen{deps: deps}
}

func (s *SelectorScreen) Init() tea.Cmd {
	return nil
}

func (s *SelectorScreen) Title() string {
	return "New Session"
}

func (s *SelectorScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
	}
	if s.step == stepTopic {
		hints = append(hints, layout.KeyHint{Key: "R", Description: "Random topic"})
	}
	hints = append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
	return hints
}

func (s *SelectorScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < s.optionCount()-1 {
			s.selected++
		}
	case "r":
		if s.step == stepTopic && len(s.topics) > 0 {
			s.selected = rand.IntN(len(s.topics))
			return s.choose()
		}
	case "enter":
		return s.choose()
	}
	return s, nil
}

func (s *SelectorScreen) optionCount() int {
	switch s.step {
	case stepMode:
		return len(modes)
	case stepTopic:
		return len(s.topics)
	case stepDifficulty:
		return len(difficulties)
	case stepPersonality:
		return len(personalities)
	}
	return 0
}

// choose locks in the highlighted option and advances to the next step.
func (s *SelectorScreen) choose() (screen.Screen, tea.Cmd) {
	switch s.step {
	case stepMode:
		s.mode = modes[s.selected]
		s.step = stepDifficulty
	case stepDifficulty:
		s.difficulty = difficulties[s.selected]
		if needsTopic(s.mode) {
			s.topics = exam.TopicsByDifficulty(s.difficulty)
			if len(s.topics) == 0 {
				s.topics = exam.Topics()
			}
			s.step = stepTopic
		} else {
			s.step = stepPersonality
		}
	case stepTopic:
		t := s.topics[s.selected]
		s.topic = &t
		s.step = stepPersonality
	case stepPersonality:
		personality := personalities[s.selected]
		return s, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: practice.New(practice.Deps{
				Tracker:   s.deps.Tracker,
				Store:     s.deps.Store,
				Evaluator: s.deps.Evaluator,
				Recorder:  s.deps.Recorder,
				Speaker:   s.deps.Speaker,
			}, s.mode, s.topic, s.difficulty, personality)}
		}
	}
	s.selected = 0
	return s, nil
}

// needsTopic reports whether the mode opens with a long-turn topic.
func needsTopic(m exam.Mode) bool {
	return m == exam.ModeFullTest || m == exam.ModePart2Only
}

func (s *SelectorScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render(s.stepTitle()))
	b.WriteString("\n\n")

	for i := 0; i < s.optionCount(); i++ {
		label := s.optionLabel(i)
		var line string
		if i == s.selected {
			line = theme.Selected.Render("  ▸ " + label)
		} else {
			line = theme.Unselected.Render("    " + label)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, line))
		b.WriteString("\n")
	}

	return b.String()
}

func (s *SelectorScreen) stepTitle() string {
	switch s.step {
	case stepMode:
		return "Choose a practice mode"
	case stepTopic:
		return "Choose a topic"
	case stepDifficulty:
		return "Choose a difficulty"
	case stepPersonality:
		return "Choose your examiner"
	}
	return ""
}

func (s *SelectorScreen) optionLabel(i int) string {
	switch s.step {
	case stepMode:
		return modes[i].DisplayName()
	case stepTopic:
		t := s.topics[i]
		return fmt.Sprintf("%-40s %s", t.Name, lipgloss.NewStyle().Foreground(theme.TextDim).Render(t.Category))
	case stepDifficulty:
		return difficulties[i].String()
	case stepPersonality:
		return personalities[i].String()
	}
	return ""
}
