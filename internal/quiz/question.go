package quiz

// Question is a single true/false prompt in the bank.
type Question struct {
	// TextKey identifies the localized prompt in the message catalog,
	// e.g. "question_australia".
	TextKey string

	// Answer is the correct response to the prompt.
	Answer bool
}

// Prompt keys for the sample geography bank.
const (
	KeyAustralia = "question_australia"
	KeyOceans    = "question_oceans"
	KeyMideast   = "question_mideast"
	KeyAfrica    = "question_africa"
	KeyAmericas  = "question_americas"
	KeyAsia      = "question_asia"
)

// DefaultQuestions returns the sample geography questions in display order.
func DefaultQuestions() []Question {
	return []Question{
		{TextKey: KeyAustralia, Answer: true},
		{TextKey: KeyOceans, Answer: true},
		{TextKey: KeyMideast, Answer: false},
		{TextKey: KeyAfrica, Answer: false},
		{TextKey: KeyAmericas, Answer: true},
		{TextKey: KeyAsia, Answer: true},
	}
}
