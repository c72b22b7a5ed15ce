package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"motorcalc.klederson.com/internal/config"
)

// RenderTitleBar renders the top bar with the app name and active search
// strategy.
func RenderTitleBar(width int, strategy string) string {
	title := fmt.Sprintf(" %s v%s ", config.AppName, config.AppVersion)

	left := StyleBarKey.Render(title)
	right := StyleBarLabel.Render(fmt.Sprintf("Search: %s", strategy)) + " "

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	return StyleTitleBar.Width(width).Render(left + strings.Repeat(" ", gap) + right)
}
