package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"motorcalc.klederson.com/internal/motor"
)

// RenderReport renders the two optimum panels side by side.
func RenderReport(rep motor.Report, capacityMAh float64, width int) string {
	half := width / 2
	if half < 36 {
		half = 36
	}

	left := renderResultPanel("AT MAXIMUM OUTPUT POWER", rep.PeakPower, capacityMAh, half)
	right := renderResultPanel("AT MAXIMUM EFFICIENCY", rep.PeakEfficiency, capacityMAh, half)

	return lipgloss.JoinHorizontal(lipgloss.Top, left, right)
}

func renderResultPanel(title string, pt motor.OperatingPoint, capacityMAh float64, width int) string {
	innerW := width - 4
	if innerW < 28 {
		innerW = 28
	}

	fields := []struct{ label, value string }{
		{"Current", fmt.Sprintf("%.2f A", pt.Current)},
		{"Speed", fmt.Sprintf("%.0f RPM", pt.Speed)},
		{"Torque", fmt.Sprintf("%.2f Ncm", pt.Torque*100)},
		{"Power in", fmt.Sprintf("%.2f W", pt.PowerIn)},
		{"Power out", fmt.Sprintf("%.2f W (%.3f HP)", pt.PowerOut, pt.Horsepower())},
		{"Efficiency", fmt.Sprintf("%.2f%%", pt.Efficiency)},
	}
	if capacityMAh > 0 {
		fields = append(fields, struct{ label, value string }{
			"Runtime", fmt.Sprintf("%.1f min", pt.RuntimeMinutes(capacityMAh)),
		})
	}

	lines := []string{
		StylePanelTitle.Render(title),
		StyleSeparator.Render(strings.Repeat("-", innerW)),
	}
	for _, f := range fields {
		label := StyleFieldLabel.Render(fmt.Sprintf("  %-12s", f.label))
		lines = append(lines, label+StyleFieldValue.Render(f.value))
	}

	return StylePanelBorder.Width(width - 2).Render(strings.Join(lines, "\n"))
}

// RenderCurveTable renders operating points at stepped current levels across
// the validated range.
func RenderCurveTable(points []motor.OperatingPoint, width int) string {
	header := fmt.Sprintf("  %8s %9s %8s %9s %9s %8s",
		"I (A)", "RPM", "Ncm", "W in", "W out", "Eff %")

	lines := []string{
		StylePanelTitle.Render("STEPPED CURRENT LEVELS"),
		StyleTableHeader.Render(header),
	}
	for _, pt := range points {
		row := fmt.Sprintf("  %8.2f %9.0f %8.2f %9.2f %9.2f %8.2f",
			pt.Current, pt.Speed, pt.Torque*100, pt.PowerIn, pt.PowerOut, pt.Efficiency)
		lines = append(lines, StyleTableRow.Render(row))
	}

	return StylePanelBorder.Width(width - 2).Render(strings.Join(lines, "\n"))
}

// RenderErrorBanner renders a fatal validation message.
func RenderErrorBanner(msg string, width int) string {
	return StyleErrorBanner.Width(width).Render("  Error: " + msg)
}

// RenderWarningBanner renders a non-fatal notice, e.g. a clamped range.
func RenderWarningBanner(msg string, width int) string {
	return StyleWarnBanner.Width(width).Render("  Warning: " + msg)
}
