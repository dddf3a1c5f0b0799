package quiz

// Bank is an immutable, ordered sequence of questions.
type Bank struct {
	questions []Question
}

// NewBank creates a bank from the given questions. The slice is copied.
func NewBank(questions ...Question) (*Bank, error) {
	if len(questions) == 0 {
		return nil, ErrEmptyBank
	}
	qs := make([]Question, len(questions))
	copy(qs, questions)
	return &Bank{questions: qs}, nil
}

// DefaultBank returns the six-question sample geography bank.
func DefaultBank() *Bank {
	return &Bank{questions: DefaultQuestions()}
}

// Len returns the number of questions.
func (b *Bank) Len() int {
	return len(b.questions)
}

// Get returns the question at index.
func (b *Bank) Get(index int) (Question, error) {
	if index < 0 || index >= len(b.questions) {
		return Question{}, &ErrIndexOutOfRange{Index: index, Len: len(b.questions)}
	}
	return b.questions[index], nil
}

// At is like Get but panics on an invalid index. Callers that keep their
// index within [0, Len) use it to avoid threading an impossible error.
func (b *Bank) At(index int) Question {
	q, err := b.Get(index)
	if err != nil {
		panic(err)
	}
	return q
}

// Questions returns a copy of the questions in order.
func (b *Bank) Questions() []Question {
	qs := make([]Question, len(b.questions))
	copy(qs, b.questions)
	return qs
}
