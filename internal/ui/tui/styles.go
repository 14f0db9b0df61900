package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lumipallolabs/fx/internal/model"
)

// Colors - cyberpunk/neon palette
var (
	ColorPrimary = lipgloss.Color("#C084FC") // soft violet
	ColorSuccess = lipgloss.Color("#39FF14") // neon green
	ColorWarning = lipgloss.Color("#FBBF24") // amber
	ColorDanger  = lipgloss.Color("#FF5555") // red
	ColorMuted   = lipgloss.Color("#4A5568") // darker muted
	ColorBorder  = lipgloss.Color("#4A5568") // border
	ColorCyan    = lipgloss.Color("#00FFFF") // neon cyan
	ColorDir     = lipgloss.Color("#00FFFF") // cyan for directories
	ColorFile    = lipgloss.Color("#A0A0A0") // dimmer for files
	ColorText    = lipgloss.Color("#E4E4E7") // default text
	ColorLabel   = lipgloss.Color("#6B7280")
)

// Styles
var (
	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	ColumnHeader = lipgloss.NewStyle().
			Foreground(ColorLabel).
			Bold(true)

	DirItemStyle = lipgloss.NewStyle().
			Foreground(ColorDir)

	FileItemStyle = lipgloss.NewStyle().
			Foreground(ColorFile)

	ItemSelected = lipgloss.NewStyle().
			Background(ColorPrimary).
			Foreground(lipgloss.Color("#FFFFFF")).
			Bold(true)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorLabel)

	ValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF"))

	PathStyle = lipgloss.NewStyle().
			Foreground(ColorCyan)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorDanger).
			Padding(0, 1)

	HelpOverlayKey = lipgloss.NewStyle().
			Foreground(ColorCyan).
			Padding(0, 1)

	permRead  = lipgloss.NewStyle().Foreground(ColorSuccess)
	permWrite = lipgloss.NewStyle().Foreground(ColorWarning)
	permExec  = lipgloss.NewStyle().Foreground(ColorDanger)
	permNone  = lipgloss.NewStyle().Foreground(ColorMuted)
)

// RenderPerm colors each permission flag
func RenderPerm(perm string) string {
	if perm == model.PermError {
		return permExec.Bold(true).Render(perm)
	}
	var b strings.Builder
	for _, c := range perm {
		s := string(c)
		switch c {
		case 'r':
			b.WriteString(permRead.Render(s))
		case 'w':
			b.WriteString(permWrite.Render(s))
		case 'x':
			b.WriteString(permExec.Render(s))
		default:
			b.WriteString(permNone.Render(s))
		}
	}
	return b.String()
}
