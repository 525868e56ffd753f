// Package evaluator abstracts the external speech-evaluation service: given
// recorded audio, the current exam phase and conversational context, it
// returns a transcript, the examiner's next utterance, structured feedback
// and an exam-completion flag.
package evaluator

import (
	"context"

	"github.com/rane05/IELTS-TalkMate/internal/conversation"
	"github.com/rane05/IELTS-TalkMate/internal/exam"
)

// Evaluator is the core abstraction for the evaluation collaborator.
type Evaluator interface {
	// Evaluate sends one recorded answer for assessment and returns the
	// examiner's structured response.
	Evaluate(ctx context.Context, req Request) (*Result, error)

	// ModelID returns the model identifier serving requests.
	ModelID() string
}

// Transcriber converts an opaque audio payload into text. Providers without
// native audio input compose one in front of a text examiner.
type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte) (string, error)
}

// Request carries one recorded answer plus the session context the
// examiner needs to stay coherent.
type Request struct {
	// Audio is the opaque recorded payload (WAV).
	Audio []byte

	// Phase is the exam phase current at call time. The caller applies the
	// result against whatever phase is current at resolution time; only
	// the finished flag is honored regardless of drift.
	Phase exam.Phase

	// Context is the flat role-prefixed transcript of the recent turns.
	Context string

	Mode        exam.Mode
	Personality exam.Personality
}

// Result is the examiner's structured response.
type Result struct {
	ExaminerSpeech string                `json:"examinerSpeech"`
	UserTranscript string                `json:"userTranscript,omitempty"`
	IsExamFinished bool                  `json:"isExamFinished"`
	Feedback       conversation.Feedback `json:"feedback"`
}

// Fallback returns the safe substitute response used when the evaluation
// service fails: fixed apology text, zeroed feedback, exam not finished.
// Callers never observe a nil result in place of this.
func Fallback() *Result {
	return &Result{
		ExaminerSpeech: "I'm having trouble connecting to the evaluation server. Please try again.",
		IsExamFinished: false,
		Feedback: conversation.Feedback{
			GrammarMistakes:  []string{},
			CorrectedVersion: "Error processing audio.",
			FluencyFeedback:  "Check internet connection.",
			ImprovementTip:   "Ensure your API key is valid.",
			Pronunciation:    &conversation.Pronunciation{},
		},
	}
}
