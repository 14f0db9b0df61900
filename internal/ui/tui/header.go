package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lumipallolabs/fx/internal/core"
	"github.com/lumipallolabs/fx/internal/model"
)

// Header displays the current location (2 lines)
type Header struct {
	width   int
	version string
}

// NewHeader creates a new header component
func NewHeader(version string) Header {
	return Header{version: version}
}

// SetWidth sets the header width
func (h *Header) SetWidth(w int) {
	h.width = w
}

// View renders the header
// Line 1: fx 0.1.0                               12 entries | A-Z
// Line 2: Dir: /home/user/src                 Parent: /home/user
func (h Header) View(state *core.NavState, order model.SortOrder) string {
	nameStyle := lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
	dimStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#9CA3AF")) // lighter dim gray

	appName := nameStyle.Render("fx")
	if h.version != "" {
		appName += dimStyle.Render(" " + h.version)
	}
	stats := dimStyle.Render(fmt.Sprintf("%d entries | %s", state.Entries.Len(), order))
	line1 := spread(appName, stats, h.width)

	dir := LabelStyle.Render("Dir: ") + PathStyle.Render(state.Dir)
	var parent string
	if state.AtRoot() {
		parent = dimStyle.Render("at root")
	} else {
		parent = LabelStyle.Render("Parent: ") + dimStyle.Render(state.ParentPath)
	}
	line2 := spread(dir, parent, h.width)

	return lipgloss.JoinVertical(lipgloss.Left, line1, line2)
}

// spread places left and right on one line separated by at least two spaces
func spread(left, right string, width int) string {
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 2 {
		gap = 2
	}
	return left + strings.Repeat(" ", gap) + right
}
