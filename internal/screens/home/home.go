package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/corbin/geoquiz/internal/game"
	"github.com/corbin/geoquiz/internal/router"
	"github.com/corbin/geoquiz/internal/screen"
	"github.com/corbin/geoquiz/internal/screens/quiz"
	"github.com/corbin/geoquiz/internal/ui/components"
	"github.com/corbin/geoquiz/internal/ui/layout"
	"github.com/corbin/geoquiz/internal/ui/theme"
)

// Menu labels.
const (
	LabelStart  = "Start quiz"
	LabelResume = "Resume quiz"
	LabelReset  = "Reset progress"
	LabelExit   = "Exit"
)

// HomeScreen is the main menu.
type HomeScreen struct {
	game   *game.Game
	menu   components.Menu
	notice string
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(g *game.Game) *HomeScreen {
	h := &HomeScreen{game: g}
	h.menu = components.NewMenu(h.items())
	return h
}

// items builds the menu from the current session state, so returning
// from a round relabels Start/Resume and toggles Reset.
func (h *HomeScreen) items() []components.MenuItem {
	start := LabelStart
	if h.game.HasProgress() {
		start = LabelResume
	}
	return []components.MenuItem{
		{Label: start, Action: func() tea.Cmd {
			h.notice = ""
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: quiz.New(h.game)}
			}
		}},
		{Label: LabelReset, Disabled: !h.game.HasProgress() && !h.game.Session().IsCheater(), Action: h.reset},
		{Label: LabelExit, Action: func() tea.Cmd {
			return tea.Quit
		}},
	}
}

// reset clears progress and the cheat flag. Stored snapshots are wiped
// in the background; a failure replaces the notice.
func (h *HomeScreen) reset() tea.Cmd {
	h.notice = "Progress cleared."
	return h.game.Clear()
}

// refresh rebuilds the menu, keeping the selection where possible.
func (h *HomeScreen) refresh() {
	selected := h.menu.Selected
	h.menu = components.NewMenu(h.items())
	if selected < len(h.menu.Items) && !h.menu.Items[selected].Disabled {
		h.menu.Selected = selected
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	hints := layout.Hints(h.menu.Keys.Up, h.menu.Keys.Select)
	return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if msg, ok := msg.(game.ClearedMsg); ok {
		if msg.Err != nil {
			h.notice = "Reset failed: " + msg.Err.Error()
		}
		return h, nil
	}

	h.refresh()
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	h.refresh()
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	h.refresh()
	sess := h.game.Session()
	compact := height < 16

	var sections []string
	sections = append(sections, renderBanner(width, compact))
	sections = append(sections, lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Hint.Render("True or false? Test your geography.")))

	progress := fmt.Sprintf("%d of %d answered", sess.AnsweredCount(), sess.Len())
	stats := theme.Body.Render(progress) + "   " + components.Ledger(sess.Marks(), -1)
	sections = append(sections, lipgloss.PlaceHorizontal(width, lipgloss.Center, stats))

	menu := theme.Panel.Render(strings.TrimRight(h.menu.View(), "\n"))
	sections = append(sections, lipgloss.PlaceHorizontal(width, lipgloss.Center, menu))

	if h.notice != "" {
		sections = append(sections, lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Accent).Render(h.notice)))
	}

	return strings.Join(sections, "\n\n")
}
