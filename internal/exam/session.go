package exam

import (
	"time"

	"github.com/google/uuid"
)

// Part 2 timing windows, in seconds.
const (
	PrepSeconds  = 60
	SpeakSeconds = 120
)

// autoAdvanceThreshold is the ledger turn count past which a full test is
// pushed out of Part 1. A fixed count, not a time- or content-based pacing
// rule.
const autoAdvanceThreshold = 4

// Effect describes the side effects the host must perform after a phase
// transition: what to display, what to speak aloud, timer and scratchpad
// changes, and whether the session must be archived. The state machine
// itself never performs I/O.
type Effect struct {
	// Prompt replaces the examiner panel text. Empty means leave as-is.
	Prompt string

	// Speak is handed to the speech-synthesis collaborator, fire-and-forget.
	// It may differ from Prompt (timer expiries speak a longer line than
	// they display). Empty means nothing to say.
	Speak string

	// StartTimer arms the countdown for this many seconds when > 0.
	StartTimer int

	// StopTimer halts any running countdown.
	StopTimer bool

	// ShowScratchpad and HideScratchpad toggle the Part 2 notes panel.
	ShowScratchpad bool
	HideScratchpad bool

	// Archive is set exactly once per session, on entry to Completed.
	Archive bool
}

// Session is the exam-phase state machine for a single practice run.
// All mutation happens through Start, HandleExpiry, HandleEvaluation,
// AutoAdvance and End, each invoked from a single event loop.
type Session struct {
	ID          string
	Mode        Mode
	Topic       *Topic
	Difficulty  Difficulty
	Personality Personality
	Phase       Phase
	StartedAt   time.Time
	Timer       Countdown

	// EndedFrom is the phase the session was in at the moment of
	// completion, captured for the archive record.
	EndedFrom Phase

	archived bool
}

// Start begins a new practice session in the mode's initial phase and
// returns the entry effect (greeting prompt, timer, scratchpad).
func Start(mode Mode, topic *Topic, difficulty Difficulty, personality Personality) (*Session, Effect) {
	s := &Session{
		ID:          uuid.New().String(),
		Mode:        mode,
		Topic:       topic,
		Difficulty:  difficulty,
		Personality: personality,
		StartedAt:   time.Now(),
	}

	switch mode {
	case ModePart2Only:
		s.Phase = PhasePart2Prep
		p := prepPrompt(topic)
		return s, Effect{Prompt: p, Speak: p, StartTimer: PrepSeconds, ShowScratchpad: true}
	case ModePart3Only:
		s.Phase = PhasePart3
		return s, Effect{Prompt: promptPart3, Speak: promptPart3Speak}
	case ModeGrammarCoach:
		// Part 1 reused as a free-form phase; no exam semantics beyond
		// turn logging.
		s.Phase = PhasePart1
		return s, Effect{Prompt: promptCoach, Speak: promptCoach}
	default: // ModeFullTest, ModePart1Only
		s.Phase = PhasePart1
		return s, Effect{Prompt: promptIntroduction, Speak: promptIntroduction}
	}
}

// HandleExpiry processes a countdown expiry. Expiry is only meaningful in
// the two timed phases; anywhere else it is a stale event and ignored.
func (s *Session) HandleExpiry() Effect {
	switch s.Phase {
	case PhasePart2Prep:
		s.Phase = PhasePart2Speak
		return Effect{
			Prompt:     promptSpeakNow,
			Speak:      speakPrepOver,
			StartTimer: SpeakSeconds,
		}
	case PhasePart2Speak:
		s.Phase = PhasePart3
		return Effect{
			Prompt:         promptPart2Closing,
			Speak:          speakPart2Closing,
			HideScratchpad: true,
		}
	default:
		return Effect{}
	}
}

// HandleEvaluation consults an evaluation result for phase transitions.
// The finished flag is honored from any phase, regardless of how far the
// session drifted while the call was in flight.
func (s *Session) HandleEvaluation(finished bool) Effect {
	if finished {
		return s.complete()
	}
	return Effect{}
}

// AutoAdvance applies the full-test pacing rule: once the conversation
// ledger holds more than four turns while still in Part 1, the session is
// forced into Part 2 preparation. Returns false when the rule does not
// apply.
func (s *Session) AutoAdvance(ledgerLen int) (Effect, bool) {
	if s.Mode != ModeFullTest || s.Phase != PhasePart1 || ledgerLen <= autoAdvanceThreshold {
		return Effect{}, false
	}
	s.Phase = PhasePart2Prep
	p := prepPrompt(s.Topic)
	return Effect{Prompt: p, Speak: p, StartTimer: PrepSeconds, ShowScratchpad: true}, true
}

// End finishes the session on user request. Completed is terminal; calling
// End again is a no-op.
func (s *Session) End() Effect {
	return s.complete()
}

// Completed reports whether the session reached its terminal phase.
func (s *Session) Completed() bool {
	return s.Phase == PhaseCompleted
}

// Duration returns elapsed session time at the given instant.
func (s *Session) Duration(now time.Time) time.Duration {
	return now.Sub(s.StartedAt)
}

func (s *Session) complete() Effect {
	if s.archived {
		return Effect{StopTimer: true}
	}
	s.archived = true
	s.EndedFrom = s.Phase
	s.Phase = PhaseCompleted
	s.Timer.Stop()
	return Effect{StopTimer: true, Archive: true}
}
