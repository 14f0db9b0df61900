package tui

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/gabriel-vasile/mimetype"

	"github.com/lumipallolabs/fx/internal/core"
	"github.com/lumipallolabs/fx/internal/format"
	"github.com/lumipallolabs/fx/internal/model"
)

// InfoPanel shows the metadata of the selected entry
type InfoPanel struct {
	width  int
	height int

	// lines are rendered for key, the selected path or "" for no selection
	key   string
	lines []string
	valid bool
}

// NewInfoPanel creates a new info panel
func NewInfoPanel() InfoPanel {
	return InfoPanel{}
}

// SetSize sets the panel dimensions
func (p *InfoPanel) SetSize(w, h int) {
	p.width = w
	p.height = h
}

// Invalidate forces the next Refresh to re-read the filesystem
func (p *InfoPanel) Invalidate() {
	p.valid = false
}

// Refresh recomputes the panel when the selection moved since the last call
func (p *InfoPanel) Refresh(state *core.NavState) {
	key := selectionKey(state)
	if p.valid && key == p.key {
		return
	}
	p.key = key
	p.lines = panelLines(state)
	p.valid = true
}

// View renders details for the selection, or a summary of the directory
func (p InfoPanel) View(state *core.NavState) string {
	if p.width < 4 || p.height < 3 {
		return ""
	}

	lines := p.lines
	if !p.valid || p.key != selectionKey(state) {
		lines = panelLines(state)
	}

	style := PanelStyle.
		Width(p.width - 2).
		Height(p.height - 2).
		MaxHeight(p.height)
	return style.Render(strings.Join(lines, "\n"))
}

func selectionKey(state *core.NavState) string {
	if entry, ok := state.SelectedEntry(); ok {
		return entry.Path
	}
	return ""
}

func panelLines(state *core.NavState) []string {
	if entry, ok := state.SelectedEntry(); ok {
		return entryDetails(entry)
	}
	return dirSummary(state)
}

func entryDetails(e model.Entry) []string {
	field := func(label, value string) string {
		return LabelStyle.Render(label+": ") + ValueStyle.Render(value)
	}

	lines := []string{
		lipgloss.NewStyle().Bold(true).Foreground(ColorText).Render(e.Name),
		"",
		field("Type", fileType(e)),
		LabelStyle.Render("Permissions: ") + RenderPerm(e.Perm),
		field("Size", format.OrPlaceholder(format.SizeOf(e.Path))),
	}

	modified, err := format.ModifiedOf(e.Path)
	if err != nil {
		lines = append(lines, field("Modified", format.Placeholder))
	} else {
		if info, err := os.Stat(e.Path); err == nil {
			if age := format.Age(info.ModTime()); age != "" {
				modified += " (" + age + ")"
			}
		}
		lines = append(lines, field("Modified", modified))
	}

	lines = append(lines, "", LabelStyle.Render("Path:"), PathStyle.Render(e.Path))
	return lines
}

func dirSummary(state *core.NavState) []string {
	var dirs, files, unreadable int
	for _, e := range state.Entries.Items() {
		switch {
		case e.HasPermError():
			unreadable++
		case e.IsDir:
			dirs++
		default:
			files++
		}
	}

	value := func(n int) string { return ValueStyle.Render(strconv.Itoa(n)) }
	lines := []string{
		LabelStyle.Render("No selection"),
		"",
		LabelStyle.Render("Directories: ") + value(dirs),
		LabelStyle.Render("Files: ") + value(files),
	}
	if unreadable > 0 {
		lines = append(lines, LabelStyle.Render("Unreadable: ")+lipgloss.NewStyle().Foreground(ColorDanger).Render(strconv.Itoa(unreadable)))
	}
	return lines
}

// fileType detects the content type using magic numbers
func fileType(e model.Entry) string {
	if e.IsDir {
		return "directory"
	}
	info, err := os.Stat(e.Path)
	if err != nil {
		return format.Placeholder
	}
	// reading a fifo or device could block the loop
	if !info.Mode().IsRegular() {
		return "special file"
	}
	mtype, err := mimetype.DetectFile(e.Path)
	if err != nil {
		return format.Placeholder
	}
	return mtype.String()
}
