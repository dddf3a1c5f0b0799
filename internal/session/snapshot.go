package session

import (
	"errors"
	"fmt"
)

// Snapshot is the serializable form of a session's state, saved by the
// host before teardown and handed back to Restore after reconstruction.
type Snapshot struct {
	CurrentIndex int      `json:"current_index"`
	Ledger       []string `json:"ledger"`
	IsCheater    bool     `json:"is_cheater"`
}

// Save captures the current state.
func (s *Session) Save() Snapshot {
	ledger := make([]string, len(s.ledger))
	for i, m := range s.ledger {
		ledger[i] = m.String()
	}
	return Snapshot{
		CurrentIndex: s.currentIndex,
		Ledger:       ledger,
		IsCheater:    s.isCheater,
	}
}

// Restore replaces the session state with snap. A nil snapshot, or one
// that does not fit the bank, restores the initial state instead.
func (s *Session) Restore(snap *Snapshot) {
	s.currentIndex = 0
	s.isCheater = false
	for i := range s.ledger {
		s.ledger[i] = Unanswered
	}

	if snap == nil || snap.Validate(len(s.ledger)) != nil {
		return
	}

	for i, v := range snap.Ledger {
		s.ledger[i], _ = ParseMark(v)
	}
	s.currentIndex = snap.CurrentIndex
	s.isCheater = snap.IsCheater
}

// Validate reports why snap cannot be restored into a session over a bank
// of n questions, or nil if it can.
func (snap *Snapshot) Validate(n int) error {
	if snap == nil {
		return errors.New("no snapshot")
	}
	if len(snap.Ledger) != n {
		return fmt.Errorf("ledger length %d, want %d", len(snap.Ledger), n)
	}
	if snap.CurrentIndex < 0 || snap.CurrentIndex >= n {
		return fmt.Errorf("current index %d out of range [0, %d)", snap.CurrentIndex, n)
	}
	for i, v := range snap.Ledger {
		if _, err := ParseMark(v); err != nil {
			return fmt.Errorf("ledger[%d]: %w", i, err)
		}
	}
	return nil
}
