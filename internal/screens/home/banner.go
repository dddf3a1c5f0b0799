package home

import (
	"charm.land/lipgloss/v2"

	"github.com/corbin/geoquiz/internal/ui/theme"
)

const bannerFull = `  ___          ___       _
 / __|___ ___ / _ \ _  _(_)___
| (_ / -_) _ \ (_) | || | |_ /
 \___\___\___/\__\_\\_,_|_/__|`

const bannerCompact = "G · E · O · Q · U · I · Z"

// renderBanner returns the styled title block, or a one-line fallback
// when the content area is short.
func renderBanner(width int, compact bool) string {
	art := bannerFull
	if compact {
		art = bannerCompact
	}
	block := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render(art)
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, block)
}
