package session

import (
	"fmt"

	"github.com/corbin/geoquiz/internal/quiz"
)

// Mark is the state of one ledger slot.
type Mark int

const (
	Unanswered Mark = iota // Not answered yet
	Correct                // Last answer matched the question's answer
	Incorrect              // Last answer did not match
)

// String returns the snapshot form of the mark.
func (m Mark) String() string {
	switch m {
	case Unanswered:
		return "unanswered"
	case Correct:
		return "correct"
	case Incorrect:
		return "incorrect"
	default:
		return fmt.Sprintf("mark(%d)", int(m))
	}
}

// ParseMark converts a snapshot string back to a Mark.
func ParseMark(s string) (Mark, error) {
	switch s {
	case "unanswered":
		return Unanswered, nil
	case "correct":
		return Correct, nil
	case "incorrect":
		return Incorrect, nil
	}
	return Unanswered, fmt.Errorf("unknown mark %q", s)
}

// AnswerOutcome is the result of answering the current question.
type AnswerOutcome struct {
	IsCorrect bool

	// PresentedAsCheater is set when the cheat flag was on at answer time.
	// Feedback must use the judgment message instead of correctness.
	PresentedAsCheater bool
}

// MessageKey returns the catalog key for the feedback message.
// Cheat judgment takes precedence over correctness.
func (o AnswerOutcome) MessageKey() string {
	switch {
	case o.PresentedAsCheater:
		return quiz.KeyJudgment
	case o.IsCorrect:
		return quiz.KeyCorrect
	default:
		return quiz.KeyIncorrect
	}
}
