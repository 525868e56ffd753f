package stats

import (
	"testing"
	"time"

	"github.com/rane05/IELTS-TalkMate/internal/conversation"
	"github.com/rane05/IELTS-TalkMate/internal/exam"
)

func TestBuildRecord(t *testing.T) {
	s, _ := exam.Start(exam.ModeFullTest, exam.TopicByID("t10"), exam.DifficultyIntermediate, exam.PersonalityProfessional)

	ledger := conversation.NewLedger()
	ledger.AppendExaminerTurn("Hello, let's begin.", nil)
	ledger.AppendUserTurn("audio-1")
	ledger.AppendExaminerTurn("Well done.", &conversation.Feedback{
		EstimatedBand: 7.0,
		Pronunciation: &conversation.Pronunciation{OverallScore: 80},
	})

	s.End()
	now := s.StartedAt.Add(3 * time.Minute)
	rec := BuildRecord(s, ledger, "prep notes", now)

	if rec.ID == "" {
		t.Fatal("missing record ID")
	}
	if rec.DurationSeconds != 180 {
		t.Fatalf("DurationSeconds = %d, want 180", rec.DurationSeconds)
	}
	if len(rec.Conversation) != 3 {
		t.Fatalf("conversation turns = %d, want 3", len(rec.Conversation))
	}
	if rec.AverageBand != 7.0 {
		t.Fatalf("AverageBand = %v, want 7.0", rec.AverageBand)
	}
	if rec.PronunciationScore != 80 {
		t.Fatalf("PronunciationScore = %d, want 80", rec.PronunciationScore)
	}
	if len(rec.CompletedPhases) != 1 || rec.CompletedPhases[0] != exam.PhasePart1 {
		t.Fatalf("CompletedPhases = %v, want [PART_1]", rec.CompletedPhases)
	}
	if rec.ScratchpadNotes != "prep notes" {
		t.Fatalf("ScratchpadNotes = %q", rec.ScratchpadNotes)
	}
	if rec.Topic == nil || rec.Topic.ID != "t10" {
		t.Fatal("topic not carried into record")
	}
}
