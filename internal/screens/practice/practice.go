// Package practice implements the live exam screen: recording answers,
// exchanging turns with the evaluator, and driving the phase timers.
package practice

import (
	"context"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/rane05/IELTS-TalkMate/internal/conversation"
	"github.com/rane05/IELTS-TalkMate/internal/evaluator"
	"github.com/rane05/IELTS-TalkMate/internal/exam"
	"github.com/rane05/IELTS-TalkMate/internal/router"
	"github.com/rane05/IELTS-TalkMate/internal/screen"
	"github.com/rane05/IELTS-TalkMate/internal/screens/summary"
	"github.com/rane05/IELTS-TalkMate/internal/speech"
	"github.com/rane05/IELTS-TalkMate/internal/stats"
	"github.com/rane05/IELTS-TalkMate/internal/store"
	"github.com/rane05/IELTS-TalkMate/internal/ui/components"
	"github.com/rane05/IELTS-TalkMate/internal/ui/layout"
)

// evalTimeout bounds one evaluation round trip, including retries.
const evalTimeout = 90 * time.Second

// contextTurns is how many recent turns accompany each evaluation request.
const contextTurns = 6

// Deps carries the services the practice screen works with.
type Deps struct {
	Tracker   *stats.Tracker
	Store     *store.Store
	Evaluator evaluator.Evaluator
	Recorder  speech.Recorder
	Speaker   speech.Speaker
}

// PracticeScreen runs one practice session end to end.
type PracticeScreen struct {
	deps Deps

	session    *exam.Session
	ledger     *conversation.Ledger
	scratchpad components.Scratchpad

	// examinerText is the current examiner panel content.
	examinerText string

	// runID tags in-flight evaluation commands; it is bumped when the
	// session ends so late results are dropped.
	runID int

	recording   bool
	evaluating  bool
	confirmQuit bool
	notice      string
	audioSeq    int

	// entryEffect is the session's opening effect, applied on Init once
	// the program is running.
	entryEffect exam.Effect
}

var _ screen.Screen = (*PracticeScreen)(nil)
var _ screen.KeyHintProvider = (*PracticeScreen)(nil)

// New creates a practice screen for the chosen session parameters.
func New(deps Deps, mode exam.Mode, topic *exam.Topic, difficulty exam.Difficulty, personality exam.Personality) *PracticeScreen {
	session, entry := exam.Start(mode, topic, difficulty, personality)
	p := &PracticeScreen{
		deps:       deps,
		session:    session,
		ledger:     conversation.NewLedger(),
		scratchpad: components.NewScratchpad(),
	}
	p.entryEffect = entry
	return p
}

func (p *PracticeScreen) Init() tea.Cmd {
	return p.applyEffect(p.entryEffect)
}

func (p *PracticeScreen) Title() string {
	return p.session.Mode.DisplayName()
}

// TrapsEsc keeps Esc inside the screen while the session is live, so it
// opens the quit confirmation instead of popping the screen.
func (p *PracticeScreen) TrapsEsc() bool {
	return !p.session.Completed()
}

func (p *PracticeScreen) KeyHints() []layout.KeyHint {
	if p.confirmQuit {
		return []layout.KeyHint{
			{Key: "Y", Description: "End session"},
			{Key: "N", Description: "Keep going"},
		}
	}
	hints := []layout.KeyHint{}
	if p.recording {
		hints = append(hints, layout.KeyHint{Key: "Space", Description: "Stop recording"})
	} else {
		hints = append(hints, layout.KeyHint{Key: "Space", Description: "Record answer"})
	}
	if p.scratchpad.Visible() || p.session.Phase == exam.PhasePart2Speak {
		hints = append(hints, layout.KeyHint{Key: "Tab", Description: "Toggle notes"})
	}
	hints = append(hints, layout.KeyHint{Key: "Esc", Description: "End session"})
	return hints
}

func (p *PracticeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		return p.handleTick(msg)
	case recordingStoppedMsg:
		return p.handleRecordingStopped(msg)
	case evalResultMsg:
		return p.handleEvalResult(msg)
	case archiveDoneMsg:
		return p.handleArchiveDone(msg)
	case tea.KeyMsg:
		return p.handleKey(msg)
	}

	var cmd tea.Cmd
	p.scratchpad, cmd = p.scratchpad.Update(msg)
	return p, cmd
}

func (p *PracticeScreen) handleTick(msg tickMsg) (screen.Screen, tea.Cmd) {
	if p.session.Completed() {
		return p, nil
	}
	if p.session.Timer.Tick(msg.gen) {
		return p, p.applyEffect(p.session.HandleExpiry())
	}
	if p.session.Timer.Running() && p.session.Timer.Generation() == msg.gen {
		return p, tickCmd(msg.gen)
	}
	return p, nil
}

func (p *PracticeScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if p.confirmQuit {
		switch key {
		case "y", "Y":
			p.confirmQuit = false
			return p, p.applyEffect(p.session.End())
		case "n", "N", "esc":
			p.confirmQuit = false
		}
		return p, nil
	}

	// Keystrokes go to the notes pad while it has focus, except the
	// toggle and session keys.
	if p.scratchpad.Focused() && key != "tab" && key != "esc" {
		var cmd tea.Cmd
		p.scratchpad, cmd = p.scratchpad.Update(msg)
		return p, cmd
	}

	switch key {
	case "esc":
		if !p.session.Completed() {
			p.confirmQuit = true
		}
		return p, nil
	case "tab":
		if p.scratchpad.Visible() {
			p.scratchpad.Hide()
		} else if p.session.Phase == exam.PhasePart2Prep || p.session.Phase == exam.PhasePart2Speak {
			return p, p.scratchpad.Show()
		}
		return p, nil
	case "space":
		return p.toggleRecording()
	}

	return p, nil
}

// toggleRecording starts the microphone, or stops it and hands the audio
// to the evaluator.
func (p *PracticeScreen) toggleRecording() (screen.Screen, tea.Cmd) {
	if p.session.Completed() || p.evaluating {
		return p, nil
	}

	if p.deps.Recorder == nil {
		p.notice = "No microphone tool found. Install sox or alsa-utils to record answers."
		return p, nil
	}

	if !p.recording {
		if err := p.deps.Recorder.Start(); err != nil {
			p.notice = fmt.Sprintf("Could not start recording: %v", err)
			return p, nil
		}
		p.recording = true
		p.notice = ""
		return p, nil
	}

	p.recording = false
	recorder := p.deps.Recorder
	return p, func() tea.Msg {
		audio, err := recorder.Stop()
		return recordingStoppedMsg{audio: audio, err: err}
	}
}

func (p *PracticeScreen) handleRecordingStopped(msg recordingStoppedMsg) (screen.Screen, tea.Cmd) {
	if msg.err != nil {
		p.notice = fmt.Sprintf("Recording failed: %v", msg.err)
		return p, nil
	}

	p.audioSeq++
	turnID := p.ledger.AppendUserTurn(fmt.Sprintf("audio-%d", p.audioSeq))
	p.evaluating = true
	p.notice = ""

	return p, tea.Batch(
		p.evalCmd(turnID, msg.audio),
		p.autoAdvance(),
	)
}

// evalCmd sends one recorded answer for evaluation.
func (p *PracticeScreen) evalCmd(turnID string, audio []byte) tea.Cmd {
	runID := p.runID
	req := evaluator.Request{
		Audio:       audio,
		Phase:       p.session.Phase,
		Context:     p.ledger.ContextWindow(contextTurns),
		Mode:        p.session.Mode,
		Personality: p.session.Personality,
	}
	eval := p.deps.Evaluator
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), evalTimeout)
		defer cancel()
		result, err := eval.Evaluate(ctx, req)
		return evalResultMsg{runID: runID, turnID: turnID, result: result, err: err}
	}
}

func (p *PracticeScreen) handleEvalResult(msg evalResultMsg) (screen.Screen, tea.Cmd) {
	// A result for an abandoned run mutates nothing.
	if msg.runID != p.runID {
		return p, nil
	}
	p.evaluating = false

	if msg.err != nil {
		fallback := evaluator.Fallback()
		p.examinerText = fallback.ExaminerSpeech
		p.notice = fmt.Sprintf("Evaluation failed: %v", msg.err)
		return p, nil
	}

	result := msg.result
	if result.UserTranscript != "" {
		if err := p.ledger.AttachTranscript(msg.turnID, result.UserTranscript); err != nil {
			p.notice = "Transcript arrived for an unknown turn."
		}
	}
	p.ledger.AppendExaminerTurn(result.ExaminerSpeech, &result.Feedback)
	p.examinerText = result.ExaminerSpeech
	if p.deps.Speaker != nil {
		p.deps.Speaker.Speak(result.ExaminerSpeech)
	}

	cmds := []tea.Cmd{p.applyEffect(p.session.HandleEvaluation(result.IsExamFinished))}
	if !p.session.Completed() {
		cmds = append(cmds, p.autoAdvance())
	}
	return p, tea.Batch(cmds...)
}

// autoAdvance applies the full-test pacing rule after a ledger mutation.
func (p *PracticeScreen) autoAdvance() tea.Cmd {
	effect, ok := p.session.AutoAdvance(p.ledger.Len())
	if !ok {
		return nil
	}
	return p.applyEffect(effect)
}

// applyEffect performs the side effects of a phase transition.
func (p *PracticeScreen) applyEffect(e exam.Effect) tea.Cmd {
	var cmds []tea.Cmd

	if e.Prompt != "" {
		p.examinerText = e.Prompt
	}
	if e.Speak != "" && p.deps.Speaker != nil {
		p.deps.Speaker.Speak(e.Speak)
	}
	if e.StopTimer {
		p.session.Timer.Stop()
	}
	if e.StartTimer > 0 {
		gen := p.session.Timer.Start(e.StartTimer)
		cmds = append(cmds, tickCmd(gen))
	}
	if e.ShowScratchpad {
		cmds = append(cmds, p.scratchpad.Show())
	}
	if e.HideScratchpad {
		p.scratchpad.Hide()
	}
	if e.Archive {
		cmds = append(cmds, p.archive())
	}

	return tea.Batch(cmds...)
}

// archive freezes the session into a record and persists it. The runID
// bump abandons any evaluation still in flight.
func (p *PracticeScreen) archive() tea.Cmd {
	p.runID++
	if p.recording && p.deps.Recorder != nil {
		go p.deps.Recorder.Stop()
		p.recording = false
	}
	if p.deps.Speaker != nil {
		p.deps.Speaker.Stop()
	}

	record := stats.BuildRecord(p.session, p.ledger, p.scratchpad.Value(), time.Now())
	p.deps.Tracker.ApplyRecord(record)

	st := p.deps.Store
	return func() tea.Msg {
		var err error
		if st != nil {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			err = st.SaveSession(ctx, record)
		}
		return archiveDoneMsg{record: record, err: err}
	}
}

func (p *PracticeScreen) handleArchiveDone(msg archiveDoneMsg) (screen.Screen, tea.Cmd) {
	rec := msg.record
	saveErr := msg.err
	tracker := p.deps.Tracker
	st := p.deps.Store
	return p, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: summary.New(rec, summary.Deps{
			Tracker: tracker,
			Store:   st,
		}, saveErr)}
	}
}
