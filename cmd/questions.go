package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/corbin/geoquiz/internal/quiz"
)

var showAnswers bool

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "List the question bank",
	RunE: func(cmd *cobra.Command, args []string) error {
		bank, cat, err := loadContent()
		if err != nil {
			return err
		}
		printQuestions(cmd.OutOrStdout(), bank, cat, showAnswers)
		return nil
	},
}

func init() {
	questionsCmd.Flags().BoolVar(&showAnswers, "answers", false, "Also print the correct answers")
}

// printQuestions writes one numbered line per question.
func printQuestions(w io.Writer, bank *quiz.Bank, cat *quiz.Catalog, answers bool) {
	for i, q := range bank.Questions() {
		line := fmt.Sprintf("%2d. %s", i+1, cat.Prompt(q))
		if answers {
			line += " (" + cat.AnswerLabel(q.Answer) + ")"
		}
		fmt.Fprintln(w, line)
	}
}
