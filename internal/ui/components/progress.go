package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/corbin/geoquiz/internal/session"
	"github.com/corbin/geoquiz/internal/ui/theme"
)

// ProgressBar displays a horizontal progress bar.
type ProgressBar struct {
	Label       string
	Percent     float64 // 0..1
	ShowPercent bool
	Width       int
}

// NewProgressBar creates a new progress bar.
func NewProgressBar(label string, percent float64, showPercent bool, width int) ProgressBar {
	return ProgressBar{
		Label:       label,
		Percent:     percent,
		ShowPercent: showPercent,
		Width:       width,
	}
}

// View renders the progress bar.
func (p ProgressBar) View() string {
	var result string

	if p.Label != "" {
		result += lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label) + "  "
	}

	labelWidth := lipgloss.Width(result)
	percentWidth := 0
	if p.ShowPercent {
		percentWidth = 8 // "  100.0%"
	}

	barWidth := p.Width - labelWidth - percentWidth
	if barWidth < 4 {
		barWidth = 4
	}

	filled := int(float64(barWidth) * p.Percent)
	filled = max(0, min(filled, barWidth))

	result += lipgloss.NewStyle().Background(theme.Secondary).Render(strings.Repeat(" ", filled)) +
		lipgloss.NewStyle().Background(theme.Border).Render(strings.Repeat(" ", barWidth-filled))

	if p.ShowPercent {
		result += lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("  %.1f%%", session.RoundScore(p.Percent*100)))
	}

	return result
}

// Ledger renders one cell per question: ✓ correct, ✗ incorrect, · not yet
// answered. The current question is bracketed.
func Ledger(marks []session.Mark, current int) string {
	cells := make([]string, len(marks))
	for i, m := range marks {
		var cell string
		switch m {
		case session.Correct:
			cell = theme.Correct.Render("✓")
		case session.Incorrect:
			cell = theme.Incorrect.Render("✗")
		default:
			cell = lipgloss.NewStyle().Foreground(theme.TextDim).Render("·")
		}
		if i == current {
			cell = theme.Selected.Render("[") + cell + theme.Selected.Render("]")
		} else {
			cell = " " + cell + " "
		}
		cells[i] = cell
	}
	return strings.Join(cells, "")
}
