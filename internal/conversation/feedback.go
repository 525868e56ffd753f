package conversation

// Pronunciation scores one utterance's pronunciation on a 0-100 scale.
type Pronunciation struct {
	OverallScore     int      `json:"overallScore"`
	Clarity          int      `json:"clarity"`
	Intonation       int      `json:"intonation"`
	WordStress       int      `json:"wordStress"`
	ProblematicWords []string `json:"problematicWords,omitempty"`
	Suggestions      []string `json:"suggestions,omitempty"`
}

// Feedback is the structured per-turn assessment attached to an examiner
// turn. Field names match the evaluator's wire schema.
type Feedback struct {
	GrammarMistakes       []string       `json:"grammarMistakes"`
	CorrectedVersion      string         `json:"correctedVersion"`
	MoreFluentVersion     string         `json:"moreFluentVersion,omitempty"`
	VocabularySuggestions []string       `json:"vocabularySuggestions,omitempty"`
	FluencyFeedback       string         `json:"fluencyFeedback,omitempty"`
	EstimatedBand         float64        `json:"estimatedBand"`
	ImprovementTip        string         `json:"improvementTip"`
	FillerWordCount       int            `json:"fillerWordCount,omitempty"`
	Pronunciation         *Pronunciation `json:"pronunciation,omitempty"`
}
