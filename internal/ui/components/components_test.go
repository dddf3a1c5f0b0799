package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/corbin/geoquiz/internal/session"
)

type selectedMsg string

func testMenu() Menu {
	pick := func(label string) func() tea.Cmd {
		return func() tea.Cmd {
			return func() tea.Msg { return selectedMsg(label) }
		}
	}
	return NewMenu([]MenuItem{
		{Label: "Start", Action: pick("start")},
		{Label: "Reset", Action: pick("reset"), Disabled: true},
		{Label: "Exit", Action: pick("exit")},
	})
}

func TestMenu_SkipsDisabled(t *testing.T) {
	m := testMenu()

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if m.Selected != 2 {
		t.Errorf("selected = %d, want 2", m.Selected)
	}

	m, _ = m.Update(tea.KeyPressMsg{Code: 'k', Text: "k"})
	if m.Selected != 0 {
		t.Errorf("selected = %d, want 0", m.Selected)
	}
}

func TestMenu_Select(t *testing.T) {
	m := testMenu()
	m, _ = m.Update(tea.KeyPressMsg{Code: 'j', Text: "j"})

	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command on Enter")
	}
	if got := cmd(); got != selectedMsg("exit") {
		t.Errorf("msg = %v, want exit", got)
	}
}

func TestMenu_FirstEnabledSelected(t *testing.T) {
	m := NewMenu([]MenuItem{{Label: "a", Disabled: true}, {Label: "b"}})
	if m.Selected != 1 {
		t.Errorf("selected = %d, want 1", m.Selected)
	}
}

func TestMenu_View(t *testing.T) {
	view := testMenu().View()
	for _, label := range []string{"Start", "Reset", "Exit"} {
		if !strings.Contains(view, label) {
			t.Errorf("view missing %q", label)
		}
	}
}

func TestButton_View(t *testing.T) {
	b := NewButton("t", "True", false)
	if !strings.Contains(b.View(), "[t] True") {
		t.Errorf("view = %q", b.View())
	}
	row := Row(2, b, NewButton("f", "False", true))
	if !strings.Contains(row, "[f] False") {
		t.Errorf("row = %q", row)
	}
}

func TestLedger(t *testing.T) {
	marks := []session.Mark{session.Correct, session.Incorrect, session.Unanswered}
	view := Ledger(marks, 1)
	for _, want := range []string{"✓", "✗", "·", "["} {
		if !strings.Contains(view, want) {
			t.Errorf("ledger %q missing %q", view, want)
		}
	}
}

func TestProgressBar_View(t *testing.T) {
	view := NewProgressBar("Score", 5.0/6.0, true, 40).View()
	if !strings.Contains(view, "83.3%") {
		t.Errorf("view = %q, want 83.3%%", view)
	}
}
