package quiz

import (
	"errors"
	"fmt"
)

// ErrEmptyBank is returned when a bank would contain no questions.
var ErrEmptyBank = errors.New("question bank is empty")

// ErrIndexOutOfRange indicates a bank lookup outside [0, Len).
type ErrIndexOutOfRange struct {
	Index int
	Len   int
}

func (e *ErrIndexOutOfRange) Error() string {
	return fmt.Sprintf("question index %d out of range [0, %d)", e.Index, e.Len)
}

// ErrInvalidBank indicates a bank document that failed to parse or validate.
type ErrInvalidBank struct {
	Source string
	Err    error
}

func (e *ErrInvalidBank) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("invalid question bank %s: %v", e.Source, e.Err)
	}
	return fmt.Sprintf("invalid question bank: %v", e.Err)
}

func (e *ErrInvalidBank) Unwrap() error { return e.Err }
