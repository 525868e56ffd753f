package conversation

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrUnknownTurn is returned when a transcript is attached to a turn the
// ledger has never seen. The only legitimate caller attaches to a turn it
// inserted moments earlier, so this indicates a logic error.
var ErrUnknownTurn = errors.New("unknown conversation turn")

// Role identifies who produced a turn.
type Role string

const (
	RoleUser     Role = "user"
	RoleExaminer Role = "examiner"
)

// AudioPlaceholder stands in for a turn whose transcript has not arrived
// yet, both in the context window and in rendered transcripts.
const AudioPlaceholder = "[Audio]"

// Turn is one utterance in the conversation. A user turn is created with
// only AudioRef set and gains Text once the evaluator returns a transcript;
// an examiner turn is always created complete.
type Turn struct {
	ID        string         `json:"id"`
	Role      Role           `json:"role"`
	Text      string         `json:"text,omitempty"`
	AudioRef  string         `json:"audioRef,omitempty"`
	Feedback  *Feedback      `json:"feedback,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
	Seq       int            `json:"seq"`
}

// DisplayText returns the turn text, or the audio placeholder while the
// transcript is still outstanding.
func (t Turn) DisplayText() string {
	if t.Text != "" {
		return t.Text
	}
	if t.AudioRef != "" {
		return AudioPlaceholder
	}
	return ""
}

// Ledger is the append-only, insertion-ordered sequence of turns for the
// active session. It is exclusively owned by that session and confined to
// the host's event loop; there are no concurrent writers.
type Ledger struct {
	turns []Turn
	index map[string]int // turn id → position in turns
	seq   int
}

// NewLedger returns an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{index: make(map[string]int)}
}

// AppendUserTurn inserts a placeholder user turn carrying only the audio
// reference and returns its id for the later transcript attach. Inserted
// synchronously, before the evaluation call resolves, so the UI can show a
// "recording received" row immediately.
func (l *Ledger) AppendUserTurn(audioRef string) string {
	id := uuid.New().String()
	l.insert(Turn{
		ID:        id,
		Role:      RoleUser,
		AudioRef:  audioRef,
		Timestamp: time.Now(),
	})
	return id
}

// AppendExaminerTurn inserts a complete examiner turn. Examiner turns are
// never created without text.
func (l *Ledger) AppendExaminerTurn(text string, feedback *Feedback) string {
	id := uuid.New().String()
	l.insert(Turn{
		ID:        id,
		Role:      RoleExaminer,
		Text:      text,
		Feedback:  feedback,
		Timestamp: time.Now(),
	})
	return id
}

// AttachTranscript sets the text of a previously inserted turn, matched by
// id. It never creates a turn; an unknown id is an invariant violation.
func (l *Ledger) AttachTranscript(id, text string) error {
	i, ok := l.index[id]
	if !ok {
		return fmt.Errorf("attach transcript to %s: %w", id, ErrUnknownTurn)
	}
	l.turns[i].Text = text
	return nil
}

// ContextWindow formats the last n turns as a flat role-prefixed transcript
// for the evaluator. Turns without text render as the audio placeholder so
// ordering and count survive into the context.
func (l *Ledger) ContextWindow(n int) string {
	turns := l.turns
	if len(turns) > n {
		turns = turns[len(turns)-n:]
	}
	lines := make([]string, 0, len(turns))
	for _, t := range turns {
		lines = append(lines, fmt.Sprintf("%s: %s", t.Role, t.DisplayText()))
	}
	return strings.Join(lines, "\n")
}

// FeedbackTurns filters to examiner turns carrying a feedback record — the
// sole input to session-end aggregation.
func (l *Ledger) FeedbackTurns() []Turn {
	var out []Turn
	for _, t := range l.turns {
		if t.Role == RoleExaminer && t.Feedback != nil {
			out = append(out, t)
		}
	}
	return out
}

// Feedbacks returns the feedback records of FeedbackTurns, in order.
func (l *Ledger) Feedbacks() []Feedback {
	var out []Feedback
	for _, t := range l.FeedbackTurns() {
		out = append(out, *t.Feedback)
	}
	return out
}

// Turns returns a copy of all turns in insertion order.
func (l *Ledger) Turns() []Turn {
	out := make([]Turn, len(l.turns))
	copy(out, l.turns)
	return out
}

// Get returns the turn with the given id.
func (l *Ledger) Get(id string) (Turn, bool) {
	i, ok := l.index[id]
	if !ok {
		return Turn{}, false
	}
	return l.turns[i], true
}

// Len returns the number of turns.
func (l *Ledger) Len() int {
	return len(l.turns)
}

// Reset clears the ledger for the next session. The archived session keeps
// its own frozen copy of the turns.
func (l *Ledger) Reset() {
	l.turns = nil
	l.index = make(map[string]int)
	l.seq = 0
}

func (l *Ledger) insert(t Turn) {
	l.seq++
	t.Seq = l.seq
	l.index[t.ID] = len(l.turns)
	l.turns = append(l.turns, t)
}
