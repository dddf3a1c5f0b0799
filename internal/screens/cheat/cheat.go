package cheat

import (
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/corbin/geoquiz/internal/game"
	"github.com/corbin/geoquiz/internal/quiz"
	"github.com/corbin/geoquiz/internal/screen"
	"github.com/corbin/geoquiz/internal/ui/components"
	"github.com/corbin/geoquiz/internal/ui/layout"
	"github.com/corbin/geoquiz/internal/ui/theme"
)

// CheatScreen warns the player and, on request, reveals the answer to the
// current question. Revealing marks the session as cheated.
type CheatScreen struct {
	game     *game.Game
	show     key.Binding
	revealed bool
}

var _ screen.Screen = (*CheatScreen)(nil)
var _ screen.KeyHintProvider = (*CheatScreen)(nil)

// New creates a CheatScreen for g's current question.
func New(g *game.Game) *CheatScreen {
	return &CheatScreen{
		game: g,
		show: key.NewBinding(
			key.WithKeys("s", "enter"),
			key.WithHelp("s", "Show answer"),
		),
	}
}

func (c *CheatScreen) Init() tea.Cmd {
	return nil
}

func (c *CheatScreen) Title() string {
	return "Cheat"
}

// Revealed reports whether the answer has been shown.
func (c *CheatScreen) Revealed() bool {
	return c.revealed
}

func (c *CheatScreen) KeyHints() []layout.KeyHint {
	c.show.SetEnabled(!c.revealed)
	return append(layout.Hints(c.show), layout.KeyHint{Key: "Esc", Description: "Back"})
}

func (c *CheatScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok || c.revealed || !key.Matches(kmsg, c.show) {
		return c, nil
	}
	c.revealed = true
	c.game.Session().SetCheater(true)
	return c, c.game.Checkpoint()
}

func (c *CheatScreen) View(width, height int) string {
	cat := c.game.Catalog()
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(center.Foreground(theme.Warning).Bold(true).Render(cat.Text(quiz.KeyWarning)))
	b.WriteString("\n\n")

	if c.revealed {
		answer := cat.AnswerLabel(c.game.Session().CurrentQuestion().Answer)
		b.WriteString(center.Foreground(theme.Text).Render(cat.Text(quiz.KeyAnswerReveal, answer)))
	} else {
		btn := components.NewButton("s", cat.Text(quiz.KeyShowAnswer), false)
		btn.Primary = true
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, btn.View()))
	}
	b.WriteString("\n")
	return b.String()
}
