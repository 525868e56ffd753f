package stats

import (
	"time"

	"github.com/google/uuid"

	"github.com/rane05/IELTS-TalkMate/internal/conversation"
	"github.com/rane05/IELTS-TalkMate/internal/exam"
	"github.com/rane05/IELTS-TalkMate/internal/score"
)

// SessionRecord is the immutable archive entry built once at session end.
// It owns a frozen copy of the conversation ledger.
type SessionRecord struct {
	ID              string
	StartedAt       time.Time
	Mode            exam.Mode
	Topic           *exam.Topic
	DurationSeconds int
	Conversation    []conversation.Turn

	AverageBand        float64
	GrammarScore       int
	FluencyScore       int
	PronunciationScore int
	VocabularyScore    int

	// CompletedPhases records only the phase at the moment of completion,
	// not the full path of phases visited.
	CompletedPhases []exam.Phase
	ScratchpadNotes string
}

// BuildRecord freezes a finished session into its archive record: duration,
// aggregated scores, and a copy of the ledger contents.
func BuildRecord(s *exam.Session, ledger *conversation.Ledger, scratchpad string, now time.Time) SessionRecord {
	card := score.Aggregate(ledger.Feedbacks())

	return SessionRecord{
		ID:                 uuid.New().String(),
		StartedAt:          s.StartedAt,
		Mode:               s.Mode,
		Topic:              s.Topic,
		DurationSeconds:    int(s.Duration(now).Seconds()),
		Conversation:       ledger.Turns(),
		AverageBand:        card.AverageBand,
		GrammarScore:       card.Grammar,
		FluencyScore:       card.Fluency,
		PronunciationScore: card.Pronunciation,
		VocabularyScore:    card.Vocabulary,
		CompletedPhases:    []exam.Phase{s.EndedFrom},
		ScratchpadNotes:    scratchpad,
	}
}
