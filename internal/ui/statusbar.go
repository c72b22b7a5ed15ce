package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Hint is one key binding shown in the status bar.
type Hint struct {
	Key   string
	Label string
}

// RenderStatusBar renders the bottom key-hint bar.
func RenderStatusBar(width int, hints ...Hint) string {
	bar := ""
	for _, h := range hints {
		bar += "  " + StyleBarKey.Render("["+h.Key+"]") + StyleBarLabel.Render(" "+h.Label)
	}

	gap := width - lipgloss.Width(bar)
	if gap < 0 {
		gap = 0
	}

	return StyleStatusBar.Width(width).Render(bar + strings.Repeat(" ", gap))
}
