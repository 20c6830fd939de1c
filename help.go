package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// KeyBinding represents a keyboard shortcut with its description
type KeyBinding struct {
	Key     string
	Action  string
	Section string
}

// All key bindings for the application
var keyBindings = []KeyBinding{
	// Navigation
	{"up/k", "Move up / scroll diff up", "Navigation"},
	{"down/j", "Move down / scroll diff down", "Navigation"},
	{"pgup", "Page up (diff panel)", "Navigation"},
	{"pgdown", "Page down (diff panel)", "Navigation"},

	// Actions
	{"enter/space", "Select file / Expand directory", "Actions"},
	{"s", "Toggle unstaged/staged changes", "Actions"},
	{"f", "Toggle diff/whole file view", "Actions"},

	// Panels
	{"tab", "Switch between file tree and diff", "Panels"},

	// System
	{"q/ctrl+c", "Quit application", "System"},
	{"?", "Show/hide this help screen", "System"},
}

// renderHelp renders the help modal
func (m Model) renderHelp() string {
	if !m.showHelp {
		return ""
	}

	modalWidth, modalHeight := helpModalDimensions(m.width, m.height)

	modalStyle := lipgloss.NewStyle().
		Width(modalWidth).
		Height(modalHeight).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBlue).
		Background(colorGray235).
		Padding(1, 2)

	var content strings.Builder

	content.WriteString(helpTitleStyle.Render("Keyboard Shortcuts"))
	content.WriteString("\n")

	currentSection := ""
	for _, kb := range keyBindings {
		if kb.Section != currentSection {
			currentSection = kb.Section
			content.WriteString("\n")
			content.WriteString(helpSectionStyle.Render(currentSection))
			content.WriteString("\n")
		}

		key := helpKeyStyle.Render(" " + kb.Key)
		desc := helpDescStyle.Render(kb.Action)
		content.WriteString(fmt.Sprintf("%s %s\n", key, desc))
	}

	content.WriteString("\n")
	content.WriteString(subtleStyle.Render("Press ? to close"))

	helpContent := modalStyle.Render(content.String())
	helpLines := strings.Split(helpContent, "\n")

	// Center the modal on screen
	verticalPadding := max(0, (m.height-len(helpLines))/2)
	horizontalPadding := max(0, (m.width-modalWidth)/2)

	var result strings.Builder
	result.WriteString(strings.Repeat("\n", verticalPadding))
	for _, line := range helpLines {
		result.WriteString(strings.Repeat(" ", horizontalPadding))
		result.WriteString(line)
		result.WriteString("\n")
	}

	return result.String()
}

// GetKeyBindings returns all key bindings (for documentation/testing)
func GetKeyBindings() []KeyBinding {
	return keyBindings
}
