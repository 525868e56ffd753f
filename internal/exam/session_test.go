package exam

import (
	"testing"
	"time"
)

func TestStart_ModeInitialPhases(t *testing.T) {
	topic := TopicByID("t10")

	tests := []struct {
		name      string
		mode      Mode
		wantPhase Phase
		timer     int
		scratch   bool
	}{
		{"full test", ModeFullTest, PhasePart1, 0, false},
		{"part 1 only", ModePart1Only, PhasePart1, 0, false},
		{"part 2 only", ModePart2Only, PhasePart2Prep, PrepSeconds, true},
		{"part 3 only", ModePart3Only, PhasePart3, 0, false},
		{"grammar coach", ModeGrammarCoach, PhasePart1, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, eff := Start(tt.mode, topic, DifficultyIntermediate, PersonalityProfessional)
			if s.Phase != tt.wantPhase {
				t.Fatalf("phase = %v, want %v", s.Phase, tt.wantPhase)
			}
			if eff.StartTimer != tt.timer {
				t.Fatalf("StartTimer = %d, want %d", eff.StartTimer, tt.timer)
			}
			if eff.ShowScratchpad != tt.scratch {
				t.Fatalf("ShowScratchpad = %v, want %v", eff.ShowScratchpad, tt.scratch)
			}
			if eff.Prompt == "" {
				t.Fatal("expected a non-empty entry prompt")
			}
			if s.ID == "" {
				t.Fatal("expected a session ID")
			}
		})
	}
}

func TestHandleExpiry_TimedPhaseTransitions(t *testing.T) {
	s, _ := Start(ModePart2Only, TopicByID("t1"), DifficultyBeginner, PersonalityEncouraging)

	eff := s.HandleExpiry()
	if s.Phase != PhasePart2Speak {
		t.Fatalf("phase = %v, want %v", s.Phase, PhasePart2Speak)
	}
	if eff.StartTimer != SpeakSeconds {
		t.Fatalf("StartTimer = %d, want %d", eff.StartTimer, SpeakSeconds)
	}

	eff = s.HandleExpiry()
	if s.Phase != PhasePart3 {
		t.Fatalf("phase = %v, want %v", s.Phase, PhasePart3)
	}
	if !eff.HideScratchpad {
		t.Fatal("expected scratchpad hidden on entry to Part 3")
	}

	// Expiry outside the timed phases is a stale event.
	eff = s.HandleExpiry()
	if eff != (Effect{}) {
		t.Fatalf("expected empty effect, got %+v", eff)
	}
	if s.Phase != PhasePart3 {
		t.Fatalf("stale expiry moved phase to %v", s.Phase)
	}
}

func TestAutoAdvance_FullTestOnly(t *testing.T) {
	tests := []struct {
		name      string
		mode      Mode
		ledgerLen int
		want      bool
	}{
		{"full test below threshold", ModeFullTest, 4, false},
		{"full test above threshold", ModeFullTest, 5, true},
		{"part 1 only never advances", ModePart1Only, 10, false},
		{"grammar coach never advances", ModeGrammarCoach, 10, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := Start(tt.mode, TopicByID("t4"), DifficultyBeginner, PersonalityStrict)
			eff, advanced := s.AutoAdvance(tt.ledgerLen)
			if advanced != tt.want {
				t.Fatalf("advanced = %v, want %v", advanced, tt.want)
			}
			if advanced {
				if s.Phase != PhasePart2Prep {
					t.Fatalf("phase = %v, want %v", s.Phase, PhasePart2Prep)
				}
				if eff.StartTimer != PrepSeconds || !eff.ShowScratchpad {
					t.Fatalf("unexpected advance effect %+v", eff)
				}
			}
		})
	}
}

func TestAutoAdvance_NotFromLaterPhases(t *testing.T) {
	s, _ := Start(ModeFullTest, TopicByID("t7"), DifficultyIntermediate, PersonalityProfessional)
	s.AutoAdvance(5)

	if _, advanced := s.AutoAdvance(20); advanced {
		t.Fatal("auto-advance fired outside Part 1")
	}
}

func TestHandleEvaluation_FinishedFromAnyPhase(t *testing.T) {
	s, _ := Start(ModeFullTest, TopicByID("t2"), DifficultyAdvanced, PersonalityProfessional)

	if eff := s.HandleEvaluation(false); eff.Archive {
		t.Fatal("unfinished evaluation archived the session")
	}

	s.AutoAdvance(5) // drift into Part 2 prep while a call is in flight
	eff := s.HandleEvaluation(true)
	if !eff.Archive || !eff.StopTimer {
		t.Fatalf("expected archive+stop effect, got %+v", eff)
	}
	if !s.Completed() {
		t.Fatal("expected completed session")
	}
	if s.EndedFrom != PhasePart2Prep {
		t.Fatalf("EndedFrom = %v, want %v", s.EndedFrom, PhasePart2Prep)
	}
}

func TestEnd_Idempotent(t *testing.T) {
	s, _ := Start(ModePart1Only, nil, DifficultyBeginner, PersonalityEncouraging)

	eff := s.End()
	if !eff.Archive {
		t.Fatal("first End did not archive")
	}
	eff = s.End()
	if eff.Archive {
		t.Fatal("second End archived again")
	}
	if !eff.StopTimer {
		t.Fatal("repeat End should still stop the timer")
	}
}

func TestDuration(t *testing.T) {
	s, _ := Start(ModePart1Only, nil, DifficultyBeginner, PersonalityProfessional)
	at := s.StartedAt.Add(90 * time.Second)
	if got := s.Duration(at); got != 90*time.Second {
		t.Fatalf("duration = %v, want 90s", got)
	}
}
