package ui

import "fmt"

// RenderDoneRow renders an accepted wizard entry.
func RenderDoneRow(label, value, unit string) string {
	row := StyleFieldLabel.Render(fmt.Sprintf("  %-24s", label+":")) + StyleFieldValue.Render(value)
	if unit != "" {
		row += StyleUnit.Render(" " + unit)
	}
	return row
}

// RenderSkippedRow renders an optional entry that was left blank.
func RenderSkippedRow(label string) string {
	return StyleFieldLabel.Render(fmt.Sprintf("  %-24s", label+":")) + StyleSkipped.Render("skipped")
}

// RenderPromptRow renders the entry line currently being typed.
func RenderPromptRow(prompt, inputView string) string {
	return "  " + StylePrompt.Render(prompt) + inputView
}

// RenderQuestionRow renders a yes/no question line.
func RenderQuestionRow(question string) string {
	return "  " + StylePrompt.Render(question+" ") + StyleHelp.Render("[Y/n]")
}

// RenderInputError renders the inline validation message under the prompt.
func RenderInputError(msg string) string {
	return "  " + StyleInputError.Render(msg)
}
