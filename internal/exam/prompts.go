package exam

import "fmt"

// Prompt strings delivered by the examiner on phase entry. These are fixed
// script lines; everything conversational comes from the evaluator.
const (
	promptIntroduction = "Good afternoon. My name is Sarah. Could you tell me your full name?"
	promptPart3        = "Let's discuss some abstract questions. What do you think about..."
	promptPart3Speak   = "Let's discuss some abstract questions."
	promptCoach        = "Hello! I am your Grammar Coach. I'll help you correct your mistakes while we talk. What would you like to talk about today?"
	promptSpeakNow     = "Please start speaking now."
	speakPrepOver      = "Your one minute preparation is up. Please start speaking now. You have 2 minutes."
	promptPart2Closing = "Thank you. Now let's move on to Part 3."
	speakPart2Closing  = "Thank you. That is the end of Part 2."
)

// prepPrompt builds the Part 2 preparation instruction for a topic.
// A nil topic falls back to the default cue-card phrase.
func prepPrompt(topic *Topic) string {
	name := DefaultTopicName
	if topic != nil {
		name = topic.Name
	}
	return fmt.Sprintf("Now I will give you a topic: %s. You have one minute to prepare.", name)
}
