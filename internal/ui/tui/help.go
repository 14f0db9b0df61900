package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

const helpKeyColumnWidth = 14 // Width for key column in help text (includes padding)

// HelpOverlay displays keyboard shortcuts in a centered overlay
type HelpOverlay struct {
	visible bool
	width   int
	height  int
	version string
}

// NewHelpOverlay creates a new help overlay component
func NewHelpOverlay(version string) HelpOverlay {
	return HelpOverlay{version: version}
}

// Toggle toggles the visibility of the help overlay
func (h *HelpOverlay) Toggle() {
	h.visible = !h.visible
}

// SetVisible sets the visibility of the help overlay
func (h *HelpOverlay) SetVisible(visible bool) {
	h.visible = visible
}

// IsVisible returns whether the help overlay is visible
func (h HelpOverlay) IsVisible() bool {
	return h.visible
}

// SetSize sets the dimensions of the help overlay
func (ho *HelpOverlay) SetSize(w, h int) {
	ho.width = w
	ho.height = h
}

// View renders the help overlay
func (h HelpOverlay) View() string {
	if !h.visible {
		return ""
	}

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		Padding(1, 3)

	sectionStyle := lipgloss.NewStyle().
		Foreground(ColorMuted).
		MarginTop(1)

	keyStyle := HelpOverlayKey
	descStyle := lipgloss.NewStyle().Foreground(ColorText)
	dimStyle := lipgloss.NewStyle().Foreground(ColorMuted)

	var content strings.Builder

	nameStyle := lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
	content.WriteString(nameStyle.Render("fx"))
	if h.version != "" {
		content.WriteString(dimStyle.Render(" " + h.version))
	}
	content.WriteString("\n")

	content.WriteString(sectionStyle.Render("Navigation"))
	content.WriteString("\n")
	content.WriteString(formatHelpLine(keyStyle, descStyle, "↑↓ jk", "Move selection"))
	content.WriteString(formatHelpLine(keyStyle, descStyle, "Esc", "Clear selection"))
	content.WriteString(formatHelpLine(keyStyle, descStyle, "→ l Enter", "Open directory"))
	content.WriteString(formatHelpLine(keyStyle, descStyle, "← h ⌫", "Parent directory"))

	content.WriteString(sectionStyle.Render("Listing"))
	content.WriteString("\n")
	content.WriteString(formatHelpLine(keyStyle, descStyle, "r", "Reload"))
	content.WriteString(formatHelpLine(keyStyle, descStyle, "s", "Reverse sort"))
	content.WriteString(formatHelpLine(keyStyle, descStyle, "q", "Quit"))

	content.WriteString("\n")
	content.WriteString(dimStyle.Render("Press any key to close"))

	box := boxStyle.Render(content.String())
	return lipgloss.Place(h.width, h.height, lipgloss.Center, lipgloss.Center, box)
}

// formatHelpLine formats a single help line with key and description
func formatHelpLine(keyStyle, descStyle lipgloss.Style, key, desc string) string {
	return keyStyle.Width(helpKeyColumnWidth).Render(key) + descStyle.Render(desc) + "\n"
}

// HelpBar renders the bottom key hints from the key map
func HelpBar(h help.Model, keys KeyMap, width int) string {
	h.Width = width
	return lipgloss.NewStyle().Padding(0, 1).MaxHeight(1).Render(h.View(keys))
}
