package exam

// Phase represents one stage of the simulated speaking exam.
type Phase int

const (
	PhaseIdle Phase = iota
	PhasePart1
	PhasePart2Prep
	PhasePart2Speak
	PhasePart3
	PhaseCompleted
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "IDLE"
	case PhasePart1:
		return "PART_1"
	case PhasePart2Prep:
		return "PART_2_PREP"
	case PhasePart2Speak:
		return "PART_2_SPEAK"
	case PhasePart3:
		return "PART_3"
	case PhaseCompleted:
		return "COMPLETED"
	default:
		return "UNKNOWN"
	}
}

// Description returns the candidate-facing description of a phase, shown in
// the status bar during a session.
func (p Phase) Description() string {
	switch p {
	case PhasePart1:
		return "Part 1: Introduction & Interview (4-5 minutes). Short questions about yourself, home, work, studies."
	case PhasePart2Prep:
		return "Part 2: Individual Long Turn (Preparation). You have 1 minute to prepare notes."
	case PhasePart2Speak:
		return "Part 2: Individual Long Turn (Speaking). Speak for up to 2 minutes on the topic."
	case PhasePart3:
		return "Part 3: Two-way Discussion (4-5 minutes). Abstract questions related to the Part 2 topic."
	default:
		return "Introduction"
	}
}

// ParsePhase maps a wire-format phase string back to a Phase.
// Unrecognized strings map to PhaseIdle.
func ParsePhase(s string) Phase {
	switch s {
	case "PART_1":
		return PhasePart1
	case "PART_2_PREP":
		return PhasePart2Prep
	case "PART_2_SPEAK":
		return PhasePart2Speak
	case "PART_3":
		return PhasePart3
	case "COMPLETED":
		return PhaseCompleted
	default:
		return PhaseIdle
	}
}

// Mode selects which portion of the exam a practice session covers.
type Mode int

const (
	ModeFullTest Mode = iota
	ModePart1Only
	ModePart2Only
	ModePart3Only
	ModeGrammarCoach
)

func (m Mode) String() string {
	switch m {
	case ModeFullTest:
		return "FULL_TEST"
	case ModePart1Only:
		return "PART_1_ONLY"
	case ModePart2Only:
		return "PART_2_ONLY"
	case ModePart3Only:
		return "PART_3_ONLY"
	case ModeGrammarCoach:
		return "GRAMMAR_COACH"
	default:
		return "UNKNOWN"
	}
}

// DisplayName returns the human-readable mode name for menus and reports.
func (m Mode) DisplayName() string {
	switch m {
	case ModeFullTest:
		return "Full Test"
	case ModePart1Only:
		return "Part 1 Only"
	case ModePart2Only:
		return "Part 2 Only"
	case ModePart3Only:
		return "Part 3 Only"
	case ModeGrammarCoach:
		return "Grammar Coach"
	default:
		return "Unknown"
	}
}

// ParseMode maps a wire-format mode string back to a Mode.
// Unrecognized strings map to ModeFullTest.
func ParseMode(s string) Mode {
	switch s {
	case "PART_1_ONLY":
		return ModePart1Only
	case "PART_2_ONLY":
		return ModePart2Only
	case "PART_3_ONLY":
		return ModePart3Only
	case "GRAMMAR_COACH":
		return ModeGrammarCoach
	default:
		return ModeFullTest
	}
}

// Difficulty grades the topic catalog.
type Difficulty int

const (
	DifficultyBeginner Difficulty = iota
	DifficultyIntermediate
	DifficultyAdvanced
)

func (d Difficulty) String() string {
	switch d {
	case DifficultyBeginner:
		return "BEGINNER"
	case DifficultyIntermediate:
		return "INTERMEDIATE"
	case DifficultyAdvanced:
		return "ADVANCED"
	default:
		return "UNKNOWN"
	}
}

// Personality selects the examiner's conversational register.
type Personality int

const (
	PersonalityProfessional Personality = iota
	PersonalityEncouraging
	PersonalityStrict
)

func (p Personality) String() string {
	switch p {
	case PersonalityEncouraging:
		return "ENCOURAGING"
	case PersonalityStrict:
		return "STRICT"
	default:
		return "PROFESSIONAL"
	}
}
