package session

import (
	"github.com/corbin/geoquiz/internal/quiz"
)

// Session is the runtime state of one quiz attempt: the current position,
// an answer ledger parallel to the bank and the sticky cheat flag.
//
// A Session is not safe for concurrent use. All calls, including Save and
// Restore, are expected on the goroutine that owns the UI loop.
type Session struct {
	bank         *quiz.Bank
	currentIndex int
	ledger       []Mark
	isCheater    bool
}

// New creates a session over bank in its initial state.
func New(bank *quiz.Bank) *Session {
	return &Session{
		bank:   bank,
		ledger: make([]Mark, bank.Len()),
	}
}

// Bank returns the question bank the session runs over.
func (s *Session) Bank() *quiz.Bank {
	return s.bank
}

// Len returns the number of questions.
func (s *Session) Len() int {
	return len(s.ledger)
}

// CurrentIndex returns the 0-based position of the current question.
func (s *Session) CurrentIndex() int {
	return s.currentIndex
}

// CurrentQuestion returns the question at the current position.
func (s *Session) CurrentQuestion() quiz.Question {
	return s.bank.At(s.currentIndex)
}

// IsFirst reports whether the current question is the first one.
func (s *Session) IsFirst() bool {
	return s.currentIndex == 0
}

// IsLast reports whether the current question is the last one.
func (s *Session) IsLast() bool {
	return s.currentIndex == len(s.ledger)-1
}

// Answer records choice for the current question, overwriting any earlier
// answer to it.
func (s *Session) Answer(choice bool) AnswerOutcome {
	correct := choice == s.CurrentQuestion().Answer
	if correct {
		s.ledger[s.currentIndex] = Correct
	} else {
		s.ledger[s.currentIndex] = Incorrect
	}
	return AnswerOutcome{
		IsCorrect:          correct,
		PresentedAsCheater: s.isCheater,
	}
}

// MoveToNext advances to the next question, wrapping to the first.
func (s *Session) MoveToNext() {
	s.currentIndex = (s.currentIndex + 1) % len(s.ledger)
}

// MoveToPrevious steps back one question, wrapping to the last.
func (s *Session) MoveToPrevious() {
	if s.currentIndex == 0 {
		s.currentIndex = len(s.ledger) - 1
		return
	}
	s.currentIndex--
}

// IsAnswered reports whether the current question has been answered.
func (s *Session) IsAnswered() bool {
	return s.ledger[s.currentIndex] != Unanswered
}

// IsComplete reports whether every question has been answered.
func (s *Session) IsComplete() bool {
	for _, m := range s.ledger {
		if m == Unanswered {
			return false
		}
	}
	return true
}

// Score returns the percentage of questions answered correctly, counting
// unanswered questions as wrong.
func (s *Session) Score() float64 {
	return 100 * float64(s.CorrectCount()) / float64(len(s.ledger))
}

// CorrectCount returns the number of slots marked Correct.
func (s *Session) CorrectCount() int {
	n := 0
	for _, m := range s.ledger {
		if m == Correct {
			n++
		}
	}
	return n
}

// AnsweredCount returns the number of slots that are not Unanswered.
func (s *Session) AnsweredCount() int {
	n := 0
	for _, m := range s.ledger {
		if m != Unanswered {
			n++
		}
	}
	return n
}

// Mark returns the ledger mark for question i.
func (s *Session) Mark(i int) Mark {
	return s.ledger[i]
}

// Marks returns a copy of the ledger.
func (s *Session) Marks() []Mark {
	out := make([]Mark, len(s.ledger))
	copy(out, s.ledger)
	return out
}

// SetCheater sets the cheat flag. The most recent write wins.
func (s *Session) SetCheater(flag bool) {
	s.isCheater = flag
}

// IsCheater reports whether the cheat flag is set.
func (s *Session) IsCheater() bool {
	return s.isCheater
}

// Reset returns to the first question and clears every answer.
// The cheat flag is left as is; clear it with SetCheater(false).
func (s *Session) Reset() {
	s.currentIndex = 0
	for i := range s.ledger {
		s.ledger[i] = Unanswered
	}
}
