// Package score derives a single session-level score card from the
// heterogeneous per-turn feedback records of a completed session.
package score

import (
	"math"

	"github.com/rane05/IELTS-TalkMate/internal/conversation"
)

// Placeholder scores for the two dimensions no real analysis exists for
// yet. Kept constant for compatibility; a genuine fluency measure would be
// derived from fillerWordCount and fluencyFeedback.
const (
	fluencyPlaceholder    = 75
	vocabularyPlaceholder = 70
)

// Score a single grammar-clean turn contributes, and the flat score any
// turn with at least one mistake contributes regardless of mistake count.
const (
	grammarClean  = 100
	grammarFaulty = 70
)

// Card is the aggregated score record archived with a session.
type Card struct {
	AverageBand   float64
	Grammar       int
	Fluency       int
	Pronunciation int
	Vocabulary    int
}

// RoundBand rounds a band value to the nearest 0.5 step.
func RoundBand(v float64) float64 {
	return math.Round(v*2) / 2
}

// Aggregate computes the session score card from the feedback records of a
// completed session. With no records every score is zero.
//
// The pronunciation average is gated on the FIRST record having a
// pronunciation block, then averages overallScore across all records with
// missing blocks counting as zero. A session where only later turns carry
// pronunciation data scores 0, and one where only the first does is diluted
// by zeros. Known-questionable rule, preserved for compatibility pending
// product clarification.
func Aggregate(feedbacks []conversation.Feedback) Card {
	if len(feedbacks) == 0 {
		return Card{}
	}

	var bandSum float64
	var grammarSum int
	for _, f := range feedbacks {
		bandSum += f.EstimatedBand
		if len(f.GrammarMistakes) == 0 {
			grammarSum += grammarClean
		} else {
			grammarSum += grammarFaulty
		}
	}

	n := float64(len(feedbacks))

	pronunciation := 0
	if feedbacks[0].Pronunciation != nil {
		var sum int
		for _, f := range feedbacks {
			if f.Pronunciation != nil {
				sum += f.Pronunciation.OverallScore
			}
		}
		pronunciation = int(math.Round(float64(sum) / n))
	}

	return Card{
		AverageBand:   RoundBand(bandSum / n),
		Grammar:       int(math.Round(float64(grammarSum) / n)),
		Fluency:       fluencyPlaceholder,
		Pronunciation: pronunciation,
		Vocabulary:    vocabularyPlaceholder,
	}
}
