package report

import (
	"strings"
	"testing"
	"time"

	"github.com/rane05/IELTS-TalkMate/internal/conversation"
	"github.com/rane05/IELTS-TalkMate/internal/exam"
	"github.com/rane05/IELTS-TalkMate/internal/stats"
)

func sampleRecord() stats.SessionRecord {
	return stats.SessionRecord{
		ID:                 "abc-123",
		StartedAt:          time.Date(2024, 3, 15, 14, 30, 0, 0, time.UTC),
		Mode:               exam.ModeFullTest,
		Topic:              exam.TopicByID("t10"),
		DurationSeconds:    185,
		AverageBand:        6.5,
		GrammarScore:       85,
		FluencyScore:       75,
		PronunciationScore: 70,
		VocabularyScore:    70,
		ScratchpadNotes:    "beach, summer, family trip",
		Conversation: []conversation.Turn{
			{Role: conversation.RoleExaminer, Text: "Where would you like to travel?"},
			{Role: conversation.RoleUser, AudioRef: "audio-1"},
			{Role: conversation.RoleExaminer, Text: "Interesting choice.", Feedback: &conversation.Feedback{EstimatedBand: 6.5}},
		},
	}
}

func TestRender(t *testing.T) {
	out := Render(sampleRecord())

	for _, want := range []string{
		"IELTS Speaking Session Report",
		"Date: 2024-03-15 14:30",
		"Mode: Full Test",
		"Duration: 3m 5s",
		"Topic: A Place You Want to Visit",
		"Overall Band: 6.5",
		"Grammar: 85%",
		"EXAMINER: Where would you like to travel?",
		"USER: [Audio]",
		"Band: 6.5",
		"NOTES:",
		"beach, summer, family trip",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q\n%s", want, out)
		}
	}
}

func TestRender_Optionals(t *testing.T) {
	rec := sampleRecord()
	rec.Topic = nil
	rec.ScratchpadNotes = ""
	out := Render(rec)

	if strings.Contains(out, "Topic:") {
		t.Error("topic line rendered for topicless session")
	}
	if strings.Contains(out, "NOTES:") {
		t.Error("notes section rendered without notes")
	}
}

func TestFilename(t *testing.T) {
	if got := Filename(sampleRecord()); got != "IELTS-Session-abc-123.txt" {
		t.Fatalf("Filename = %q", got)
	}
}
