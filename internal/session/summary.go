package session

import "math"

// Summary holds the data displayed on the completion screen.
type Summary struct {
	Total     int
	Answered  int
	Correct   int
	Score     float64
	IsCheater bool
}

// Summarize builds a Summary from the current state.
func (s *Session) Summarize() Summary {
	return Summary{
		Total:     s.Len(),
		Answered:  s.AnsweredCount(),
		Correct:   s.CorrectCount(),
		Score:     s.Score(),
		IsCheater: s.isCheater,
	}
}

// RoundScore rounds a score to one decimal place for display.
func RoundScore(score float64) float64 {
	return math.Round(score*10) / 10
}
