package stats

import (
	"testing"
	"time"
)

func record(band float64, startedAt time.Time, durationSeconds int) SessionRecord {
	return SessionRecord{
		ID:              "s-" + startedAt.Format("150405"),
		StartedAt:       startedAt,
		AverageBand:     band,
		DurationSeconds: durationSeconds,
	}
}

func TestApply_WeightedMean(t *testing.T) {
	r := Rolling{AverageBand: 6.0, TotalSessions: 3}

	r = Apply(r, record(8.0, time.Now(), 0))

	// (6.0*3 + 8.0) / 4 = 6.5
	if r.AverageBand != 6.5 {
		t.Fatalf("AverageBand = %v, want 6.5", r.AverageBand)
	}
	if r.TotalSessions != 4 {
		t.Fatalf("TotalSessions = %d, want 4", r.TotalSessions)
	}
}

func TestApply_RoundsToHalfBand(t *testing.T) {
	r := Rolling{AverageBand: 6.0, TotalSessions: 1}
	r = Apply(r, record(6.6, time.Now(), 0))

	// (6.0 + 6.6) / 2 = 6.3 -> 6.5
	if r.AverageBand != 6.5 {
		t.Fatalf("AverageBand = %v, want 6.5", r.AverageBand)
	}
}

func TestApply_PracticeMinutesTruncate(t *testing.T) {
	var r Rolling
	r = Apply(r, record(6.0, time.Now(), 119))
	if r.TotalPracticeMinutes != 1 {
		t.Fatalf("minutes = %d, want 1 (truncated)", r.TotalPracticeMinutes)
	}
}

func TestApply_TrendWindow(t *testing.T) {
	var r Rolling
	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	for i := range TrendWindow + 2 {
		r = Apply(r, record(5.0+float64(i)*0.5, base.AddDate(0, 0, i), 0))
	}

	if len(r.RecentBandTrend) != TrendWindow {
		t.Fatalf("trend length = %d, want %d", len(r.RecentBandTrend), TrendWindow)
	}
	last := r.RecentBandTrend[len(r.RecentBandTrend)-1]
	if last.Band != 5.0+float64(TrendWindow+1)*0.5 {
		t.Fatalf("trend did not keep the newest entries: %+v", r.RecentBandTrend)
	}
	if last.Date != base.AddDate(0, 0, TrendWindow+1).Format("2006-01-02") {
		t.Fatalf("trend date = %q", last.Date)
	}
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	orig := Rolling{
		RecentBandTrend: []TrendPoint{{Date: "2024-01-01", Band: 6.0}},
		Sessions:        []SessionRecord{{ID: "old"}},
	}
	_ = Apply(orig, record(7.0, time.Now(), 0))

	if len(orig.Sessions) != 1 || len(orig.RecentBandTrend) != 1 {
		t.Fatal("Apply mutated its input")
	}
}

func TestAddWord(t *testing.T) {
	now := time.Now()
	var r Rolling

	r = AddWord(r, "meticulous", now)
	if len(r.VocabularyBank) != 1 {
		t.Fatalf("bank size = %d, want 1", len(r.VocabularyBank))
	}
	if r.VocabularyBank[0].Definition == "" || r.VocabularyBank[0].Example == "" {
		t.Fatal("expected placeholder definition and example")
	}

	r = AddWord(r, "eloquent", now)
	if r.VocabularyBank[0].Word != "eloquent" {
		t.Fatalf("newest word not first: %+v", r.VocabularyBank)
	}

	// Case-insensitive duplicates are no-ops.
	r = AddWord(r, "Meticulous", now)
	if len(r.VocabularyBank) != 2 {
		t.Fatalf("duplicate added: bank size = %d", len(r.VocabularyBank))
	}
}

func TestTracker(t *testing.T) {
	tr := NewTracker(Rolling{AverageBand: 6.0, TotalSessions: 1})

	got := tr.ApplyRecord(record(7.0, time.Now(), 60))
	if got.TotalSessions != 2 {
		t.Fatalf("TotalSessions = %d, want 2", got.TotalSessions)
	}
	if snap := tr.Snapshot(); snap.TotalSessions != 2 {
		t.Fatalf("snapshot TotalSessions = %d, want 2", snap.TotalSessions)
	}

	got = tr.AddWord("articulate", time.Now())
	if len(got.VocabularyBank) != 1 {
		t.Fatal("AddWord did not update tracker state")
	}
	if snap := tr.Snapshot(); len(snap.VocabularyBank) != 1 {
		t.Fatal("snapshot missing added word")
	}
}

func TestBaseline(t *testing.T) {
	r := Baseline()
	if r.AverageBand != 6.5 || r.TotalSessions != 12 {
		t.Fatalf("unexpected baseline %+v", r)
	}
	if len(r.RecentBandTrend) != TrendWindow {
		t.Fatalf("baseline trend length = %d", len(r.RecentBandTrend))
	}
}
