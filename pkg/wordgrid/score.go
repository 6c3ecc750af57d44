package wordgrid

import (
	"fmt"
	"math"

	"github.com/google/uuid"
)

const (
	// Quickness decays exponentially over the scoring window. It is
	// deliberately not clamped past the window: slower answers keep
	// losing value.
	quicknessBase   = 5.0
	quicknessWindow = 30.0

	// Elapsed time is floored so sub-second submissions cannot blow up
	// the curve.
	minElapsedSeconds = 1.0
)

// RoundResult is the ephemeral outcome of one answer submission. It is
// returned to the caller and never persisted.
type RoundResult struct {
	ID        uuid.UUID
	Answer    string
	Elapsed   float64
	Quickness float64
	Score     float64
	Message   string
}

// ScoreRound validates answer against the specific hand and the hand's
// feasibility index, then scores it. Player mistakes come back as
// zero-score results carrying a message, never as errors.
func ScoreRound(answer string, hand *Hand, elapsedSeconds float64, ix *FeasibilityIndex) *RoundResult {
	word := normalizeWord(answer)

	if !hand.Counts().Covers(CountLetters(word)) {
		return failedRound(answer, elapsedSeconds,
			fmt.Sprintf("'%s' uses characters not in the grid.", answer))
	}
	if !ix.Valid(word) {
		return failedRound(answer, elapsedSeconds,
			fmt.Sprintf("'%s' is not an English word.", answer))
	}

	elapsed := math.Max(elapsedSeconds, minElapsedSeconds)
	quickness := round2(math.Pow(quicknessBase, 1-elapsed/quicknessWindow))
	length := float64(len(word))

	return &RoundResult{
		ID:        uuid.New(),
		Answer:    answer,
		Elapsed:   elapsedSeconds,
		Quickness: quickness,
		Score:     round2(length * length * quickness * ix.Multiplier()),
		Message:   "Well done!",
	}
}

func failedRound(answer string, elapsedSeconds float64, message string) *RoundResult {
	return &RoundResult{
		ID:      uuid.New(),
		Answer:  answer,
		Elapsed: elapsedSeconds,
		Message: message,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
