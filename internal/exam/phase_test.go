package exam

import "testing"

func TestPhaseStringRoundTrip(t *testing.T) {
	phases := []Phase{PhaseIdle, PhasePart1, PhasePart2Prep, PhasePart2Speak, PhasePart3, PhaseCompleted}
	for _, p := range phases {
		if got := ParsePhase(p.String()); got != p {
			t.Errorf("ParsePhase(%q) = %v, want %v", p.String(), got, p)
		}
	}
	if got := ParsePhase("bogus"); got != PhaseIdle {
		t.Errorf("ParsePhase(bogus) = %v, want PhaseIdle", got)
	}
}

func TestModeStringRoundTrip(t *testing.T) {
	modes := []Mode{ModeFullTest, ModePart1Only, ModePart2Only, ModePart3Only, ModeGrammarCoach}
	for _, m := range modes {
		if got := ParseMode(m.String()); got != m {
			t.Errorf("ParseMode(%q) = %v, want %v", m.String(), got, m)
		}
	}
	if got := ParseMode("bogus"); got != ModeFullTest {
		t.Errorf("ParseMode(bogus) = %v, want ModeFullTest", got)
	}
}

func TestTopicCatalog(t *testing.T) {
	all := Topics()
	if len(all) == 0 {
		t.Fatal("empty topic catalog")
	}

	for _, topic := range all {
		got := TopicByID(topic.ID)
		if got == nil || got.Name != topic.Name {
			t.Fatalf("TopicByID(%q) did not return %q", topic.ID, topic.Name)
		}
	}

	if TopicByID("no-such-topic") != nil {
		t.Fatal("expected nil for unknown topic id")
	}

	for _, d := range []Difficulty{DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced} {
		subset := TopicsByDifficulty(d)
		if len(subset) == 0 {
			t.Fatalf("no topics at difficulty %v", d)
		}
		for _, topic := range subset {
			if topic.Difficulty != d {
				t.Fatalf("topic %s has difficulty %v, want %v", topic.ID, topic.Difficulty, d)
			}
		}
	}
}
