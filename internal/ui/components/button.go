package components

import (
	"github.com/corbin/geoquiz/internal/ui/theme"
)

// Button is a labelled action with a hotkey. Disabled buttons render
// dimmed and are skipped by the screens that own them.
type Button struct {
	Hotkey   string
	Label    string
	Disabled bool
	Primary  bool
}

// NewButton creates a new button.
func NewButton(hotkey, label string, disabled bool) Button {
	return Button{
		Hotkey:   hotkey,
		Label:    label,
		Disabled: disabled,
	}
}

// View renders the button.
func (b Button) View() string {
	label := "[" + b.Hotkey + "] " + b.Label
	switch {
	case b.Disabled:
		return theme.ButtonDisabled.Render(label)
	case b.Primary:
		return theme.ButtonActive.Render(label)
	default:
		return theme.ButtonIdle.Render(label)
	}
}

// Row renders buttons side by side separated by gap spaces.
func Row(gap int, buttons ...Button) string {
	var s string
	for i, b := range buttons {
		if i > 0 {
			for j := 0; j < gap; j++ {
				s += " "
			}
		}
		s += b.View()
	}
	return s
}
