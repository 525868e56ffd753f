package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/rane05/IELTS-TalkMate/internal/conversation"
	"github.com/rane05/IELTS-TalkMate/internal/evaluator"
	"github.com/rane05/IELTS-TalkMate/internal/exam"
	"github.com/rane05/IELTS-TalkMate/internal/stats"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "talkmate.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testRecord(id string, startedAt time.Time, band float64) stats.SessionRecord {
	return stats.SessionRecord{
		ID:              id,
		StartedAt:       startedAt,
		Mode:            exam.ModeFullTest,
		Topic:           exam.TopicByID("t10"),
		DurationSeconds: 300,
		AverageBand:     band,
		GrammarScore:    85,
		FluencyScore:    75,
		CompletedPhases: []exam.Phase{exam.PhasePart3},
		ScratchpadNotes: "notes",
		Conversation: []conversation.Turn{
			{ID: "turn-1", Role: conversation.RoleExaminer, Text: "Hello.", Seq: 1},
			{ID: "turn-2", Role: conversation.RoleUser, Text: "Hi.", Seq: 2,
				Feedback: &conversation.Feedback{EstimatedBand: band}},
		},
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSessionRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	startedAt := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	rec := testRecord("sess-1", startedAt, 6.5)
	if err := s.SaveSession(ctx, rec); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := s.GetSession(ctx, "sess-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Mode != exam.ModeFullTest {
		t.Fatalf("mode = %v", got.Mode)
	}
	if got.Topic == nil || got.Topic.ID != "t10" {
		t.Fatalf("topic = %+v", got.Topic)
	}
	if got.AverageBand != 6.5 || got.GrammarScore != 85 {
		t.Fatalf("scores = %v/%d", got.AverageBand, got.GrammarScore)
	}
	if len(got.CompletedPhases) != 1 || got.CompletedPhases[0] != exam.PhasePart3 {
		t.Fatalf("phases = %v", got.CompletedPhases)
	}
	if len(got.Conversation) != 2 {
		t.Fatalf("turns = %d, want 2", len(got.Conversation))
	}
	if got.Conversation[1].Feedback == nil || got.Conversation[1].Feedback.EstimatedBand != 6.5 {
		t.Fatal("feedback lost in round trip")
	}
	if got.ScratchpadNotes != "notes" {
		t.Fatalf("notes = %q", got.ScratchpadNotes)
	}
}

func TestGetSessionNotFound(t *testing.T) {
	s := openTestStore(t)
	_, err := s.GetSession(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestListSessionsNewestFirst(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	base := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	for i := range 3 {
		rec := testRecord("sess-"+string(rune('a'+i)), base.Add(time.Duration(i)*time.Hour), 6.0)
		if err := s.SaveSession(ctx, rec); err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	got, err := s.ListSessions(ctx, 2)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2 (limit)", len(got))
	}
	if got[0].ID != "sess-c" || got[1].ID != "sess-b" {
		t.Fatalf("order = %s, %s", got[0].ID, got[1].ID)
	}
}

func TestLoadRolling(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	base := stats.Baseline()

	// Empty store yields the baseline.
	r, err := s.LoadRolling(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if r.TotalSessions != base.TotalSessions {
		t.Fatalf("TotalSessions = %d, want baseline %d", r.TotalSessions, base.TotalSessions)
	}

	startedAt := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	if err := s.SaveSession(ctx, testRecord("sess-1", startedAt, 8.0)); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := s.SaveWord(ctx, stats.VocabularyItem{Word: "eloquent"}); err != nil {
		t.Fatalf("save word: %v", err)
	}

	r, err = s.LoadRolling(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if r.TotalSessions != base.TotalSessions+1 {
		t.Fatalf("TotalSessions = %d, want %d", r.TotalSessions, base.TotalSessions+1)
	}
	want := stats.Apply(base, testRecord("sess-1", startedAt, 8.0)).AverageBand
	if r.AverageBand != want {
		t.Fatalf("AverageBand = %v, want %v", r.AverageBand, want)
	}
	if len(r.VocabularyBank) != 1 || r.VocabularyBank[0].Word != "eloquent" {
		t.Fatalf("vocabulary bank = %+v", r.VocabularyBank)
	}
}

func TestSaveWordUpsert(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.SaveWord(ctx, stats.VocabularyItem{Word: "  Meticulous "}); err != nil {
		t.Fatalf("save: %v", err)
	}
	// Same word, different case: bumps the review count instead of inserting.
	if err := s.SaveWord(ctx, stats.VocabularyItem{Word: "meticulous"}); err != nil {
		t.Fatalf("re-save: %v", err)
	}

	words, err := s.ListWords(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(words) != 1 {
		t.Fatalf("words = %d, want 1", len(words))
	}
	if words[0].Word != "meticulous" {
		t.Fatalf("word = %q, want normalized lowercase", words[0].Word)
	}
	if words[0].ReviewCount != 1 {
		t.Fatalf("ReviewCount = %d, want 1", words[0].ReviewCount)
	}

	if err := s.SaveWord(ctx, stats.VocabularyItem{Word: "   "}); err == nil {
		t.Fatal("expected error for blank word")
	}
}

func TestEvaluationEvents(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	events := []evaluator.EvaluationEvent{
		{Model: "gemini-2.0-flash", Phase: "PART_1", Mode: "FULL_TEST", LatencyMs: 900, Success: true, Band: 6.5},
		{Model: "gemini-2.0-flash", Phase: "PART_2_SPEAK", Mode: "FULL_TEST", LatencyMs: 40, Success: false, Error: "rate limited"},
	}
	for _, ev := range events {
		if err := s.AppendEvaluation(ctx, ev); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	rows, err := s.ListEvaluations(ctx, 10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}
	// Newest first.
	if rows[0].Phase != "PART_2_SPEAK" || rows[0].Success {
		t.Fatalf("unexpected first row %+v", rows[0])
	}
	if rows[1].Band != 6.5 || !rows[1].Success {
		t.Fatalf("unexpected second row %+v", rows[1])
	}
}

func TestReset(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.SaveSession(ctx, testRecord("sess-1", time.Now().UTC(), 6.0)); err != nil {
		t.Fatal(err)
	}
	if err := s.SaveWord(ctx, stats.VocabularyItem{Word: "ornate"}); err != nil {
		t.Fatal(err)
	}
	if err := s.AppendEvaluation(ctx, evaluator.EvaluationEvent{Model: "mock"}); err != nil {
		t.Fatal(err)
	}

	if err := s.Reset(); err != nil {
		t.Fatalf("reset: %v", err)
	}

	sessions, err := s.ListSessions(ctx, 10)
	if err != nil || len(sessions) != 0 {
		t.Fatalf("sessions after reset = %d (%v)", len(sessions), err)
	}
	words, err := s.ListWords(ctx)
	if err != nil || len(words) != 0 {
		t.Fatalf("words after reset = %d (%v)", len(words), err)
	}
	rows, err := s.ListEvaluations(ctx, 10)
	if err != nil || len(rows) != 0 {
		t.Fatalf("evaluations after reset = %d (%v)", len(rows), err)
	}
}
