package evaluator

// responseSchemaName identifies the examiner-response schema for caching
// and for providers that name their structured-output formats.
const responseSchemaName = "examiner-response"

// responseSchema is the JSON Schema every provider's output must satisfy.
func responseSchema() map[string]any {
	stringArray := map[string]any{
		"type":  "array",
		"items": map[string]any{"type": "string"},
	}

	pronunciation := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"overallScore":     map[string]any{"type": "number", "description": "Overall pronunciation score 0-100"},
			"clarity":          map[string]any{"type": "number", "description": "Clarity score 0-100"},
			"intonation":       map[string]any{"type": "number", "description": "Intonation score 0-100"},
			"wordStress":       map[string]any{"type": "number", "description": "Word stress score 0-100"},
			"problematicWords": stringArray,
			"suggestions":      stringArray,
		},
		"required": []any{"overallScore", "clarity", "intonation", "wordStress"},
	}

	feedback := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"grammarMistakes":       stringArray,
			"correctedVersion":      map[string]any{"type": "string"},
			"moreFluentVersion":     map[string]any{"type": "string"},
			"vocabularySuggestions": stringArray,
			"fluencyFeedback":       map[string]any{"type": "string"},
			"estimatedBand":         map[string]any{"type": "number"},
			"improvementTip":        map[string]any{"type": "string"},
			"fillerWordCount":       map[string]any{"type": "number", "description": "Count of filler words like um, ah, uh, like, you know"},
			"pronunciation":         pronunciation,
		},
		"required": []any{"grammarMistakes", "correctedVersion", "estimatedBand", "improvementTip", "pronunciation", "fillerWordCount"},
	}

	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"examinerSpeech": map[string]any{"type": "string", "description": "The words the examiner says to the student."},
			"userTranscript": map[string]any{"type": "string", "description": "What the user said (transcribed from audio)."},
			"isExamFinished": map[string]any{"type": "boolean", "description": "Whether the IELTS test has concluded."},
			"feedback":       feedback,
		},
		"required": []any{"examinerSpeech", "feedback"},
	}
}
