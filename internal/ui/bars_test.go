package ui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestRenderTitleBar_PadsToWidth(t *testing.T) {
	bar := RenderTitleBar(60, "grid search")

	if got := lipgloss.Width(bar); got != 60 {
		t.Errorf("title bar width = %d, want 60", got)
	}
}

func TestRenderStatusBar_PadsToWidth(t *testing.T) {
	bar := RenderStatusBar(60,
		Hint{Key: "Enter", Label: "accept"},
		Hint{Key: "Esc", Label: "quit"},
	)

	if got := lipgloss.Width(bar); got != 60 {
		t.Errorf("status bar width = %d, want 60", got)
	}
}

func TestRenderStatusBar_TightWidthDoesNotUnderflow(t *testing.T) {
	// Hints wider than the bar must not panic on a negative gap.
	bar := RenderStatusBar(4, Hint{Key: "Enter", Label: "restart the wizard"})

	if bar == "" {
		t.Error("expected a rendered bar even when hints exceed the width")
	}
}
