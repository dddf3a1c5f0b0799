package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	qbank "github.com/corbin/geoquiz/internal/quiz"
	"github.com/corbin/geoquiz/internal/ui/components"
	"github.com/corbin/geoquiz/internal/ui/theme"
)

func (s *QuizScreen) View(width, height int) string {
	s.syncKeys()
	sess := s.game.Session()
	cat := s.game.Catalog()
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	var b strings.Builder
	b.WriteString("\n")

	// Position and ledger.
	b.WriteString(center.Foreground(theme.TextDim).Render(
		fmt.Sprintf("Question %d of %d", sess.CurrentIndex()+1, sess.Len())))
	b.WriteString("\n")
	b.WriteString(center.Render(components.Ledger(sess.Marks(), sess.CurrentIndex())))
	b.WriteString("\n\n")

	// Prompt.
	prompt := lipgloss.NewStyle().
		Width(min(width-8, 70)).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(cat.Prompt(sess.CurrentQuestion()))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, prompt))
	b.WriteString("\n\n")

	// Answer buttons.
	answers := components.Row(2,
		components.NewButton("t", cat.Text(qbank.KeyTrue), !s.keys.True.Enabled()),
		components.NewButton("f", cat.Text(qbank.KeyFalse), !s.keys.False.Enabled()),
	)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, answers))
	b.WriteString("\n\n")

	// Navigation buttons. Finish takes Next's place once every question
	// has been answered.
	forward := components.NewButton("n", cat.Text(qbank.KeyNext), !s.keys.Next.Enabled())
	if s.keys.Finish.Enabled() {
		forward = components.NewButton("enter", cat.Text(qbank.KeyFinish), false)
		forward.Primary = true
	}
	nav := components.Row(2,
		components.NewButton("p", cat.Text(qbank.KeyPrevious), !s.keys.Previous.Enabled()),
		forward,
		components.NewButton("c", cat.Text(qbank.KeyCheat), false),
	)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, nav))
	b.WriteString("\n\n")

	if line := s.feedbackLine(); line != "" {
		b.WriteString(center.Render(line))
		b.WriteString("\n")
	}
	if s.saveErr != nil {
		b.WriteString(center.Foreground(theme.Error).Render("Progress could not be saved."))
		b.WriteString("\n")
	}

	return b.String()
}

// feedbackLine renders the judgment for the last answer, if any.
func (s *QuizScreen) feedbackLine() string {
	if s.outcome == nil {
		return ""
	}
	text := s.game.Catalog().Text(s.outcome.MessageKey())
	switch {
	case s.outcome.PresentedAsCheater:
		return theme.Judgment.Render(text)
	case s.outcome.IsCorrect:
		return theme.Correct.Render(text)
	default:
		return theme.Incorrect.Render(text)
	}
}
