package summary

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/corbin/geoquiz/internal/quiz"
	"github.com/corbin/geoquiz/internal/router"
	"github.com/corbin/geoquiz/internal/screen"
	"github.com/corbin/geoquiz/internal/session"
	"github.com/corbin/geoquiz/internal/ui/components"
	"github.com/corbin/geoquiz/internal/ui/layout"
	"github.com/corbin/geoquiz/internal/ui/theme"
)

// SummaryScreen displays the result of a finished round.
type SummaryScreen struct {
	summary session.Summary
	catalog *quiz.Catalog
	done    key.Binding
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(sum session.Summary, catalog *quiz.Catalog) *SummaryScreen {
	return &SummaryScreen{
		summary: sum,
		catalog: catalog,
		done: key.NewBinding(
			key.WithKeys("enter", "esc"),
			key.WithHelp("Enter", "Home"),
		),
	}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Results"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return layout.Hints(s.done)
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok && key.Matches(kmsg, s.done) {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return s, nil
}

// ScoreText is the localized score message, rounded to one decimal.
func (s *SummaryScreen) ScoreText() string {
	return s.catalog.Text(quiz.KeyScore, session.RoundScore(s.summary.Score))
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(center.Foreground(theme.Primary).Bold(true).Render("Round complete!"))
	b.WriteString("\n\n")

	b.WriteString(center.Foreground(theme.Text).Bold(true).Render(s.ScoreText()))
	b.WriteString("\n\n")

	bar := components.NewProgressBar("", sum.Score/100, false, min(width-8, 50))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n\n")

	stats := fmt.Sprintf("Questions: %d        Correct: %d        Answered: %d",
		sum.Total, sum.Correct, sum.Answered)
	b.WriteString(center.Foreground(theme.TextDim).Render(stats))
	b.WriteString("\n")

	if sum.IsCheater {
		b.WriteString("\n")
		b.WriteString(center.Render(theme.Judgment.Render(s.catalog.Text(quiz.KeyJudgment))))
		b.WriteString("\n")
	}

	return b.String()
}
