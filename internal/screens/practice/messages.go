package practice

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/rane05/IELTS-TalkMate/internal/evaluator"
	"github.com/rane05/IELTS-TalkMate/internal/stats"
)

// tickMsg is sent every second while a phase timer runs. It carries the
// timer generation so a restarted timer discards ticks from its
// predecessor.
type tickMsg struct {
	gen int
}

// recordingStoppedMsg is sent when the recorder finishes flushing audio.
type recordingStoppedMsg struct {
	audio []byte
	err   error
}

// evalResultMsg is sent when an evaluation round trip resolves. The runID
// identifies the session run the call was started for; results from an
// abandoned run are discarded.
type evalResultMsg struct {
	runID  int
	turnID string
	result *evaluator.Result
	err    error
}

// archiveDoneMsg is sent when the finished session has been persisted.
type archiveDoneMsg struct {
	record stats.SessionRecord
	err    error
}

// tickCmd schedules the next one-second tick for a timer generation.
func tickCmd(gen int) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return tickMsg{gen: gen}
	})
}
