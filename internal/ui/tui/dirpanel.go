package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lumipallolabs/fx/internal/core"
	"github.com/lumipallolabs/fx/internal/format"
	"github.com/lumipallolabs/fx/internal/model"
)

const (
	selectionMarker = ">> "
	permColWidth    = 11
	sizeColWidth    = 11
	timeColWidth    = 16
	minNameColWidth = 8
	chromeHeight    = 3 // borders plus column header
)

// rowMeta is the size and modified text of one listed entry
type rowMeta struct {
	size     string
	modified string
}

func readRowMeta(path string) rowMeta {
	return rowMeta{
		size:     format.OrPlaceholder(format.SizeOf(path)),
		modified: format.OrPlaceholder(format.ModifiedOf(path)),
	}
}

// DirPanel lists the entries of the current directory
type DirPanel struct {
	width  int
	height int
	offset int                // scroll offset
	meta   map[string]rowMeta // by path, filled for rows that were on screen
}

// NewDirPanel creates a new directory panel
func NewDirPanel() DirPanel {
	return DirPanel{meta: make(map[string]rowMeta)}
}

// SetSize sets the panel dimensions
func (p *DirPanel) SetSize(w, h int) {
	p.width = w
	p.height = h
}

// Reset scrolls back to the top and drops cached metadata, used after the
// listing is replaced
func (p *DirPanel) Reset() {
	p.offset = 0
	p.meta = make(map[string]rowMeta)
}

// Sync keeps the selected row inside the visible window and reads metadata
// for visible rows not seen since the last Reset
func (p *DirPanel) Sync(entries *core.SelectableList[model.Entry]) {
	if p.offset > entries.Len() {
		p.offset = 0
	}
	if cursor, ok := entries.Selected(); ok {
		if cursor < p.offset {
			p.offset = cursor
		}
		if rows := p.rows(); cursor >= p.offset+rows {
			p.offset = cursor - rows + 1
		}
	}

	if p.meta == nil {
		p.meta = make(map[string]rowMeta)
	}
	items := entries.Items()
	for i := p.offset; i < len(items) && i < p.offset+p.rows(); i++ {
		if _, ok := p.meta[items[i].Path]; !ok {
			p.meta[items[i].Path] = readRowMeta(items[i].Path)
		}
	}
}

func (p DirPanel) rows() int {
	rows := p.height - chromeHeight
	if rows < 1 {
		rows = 1
	}
	return rows
}

func (p DirPanel) nameWidth() int {
	w := p.width - 4 - permColWidth - sizeColWidth - timeColWidth
	if w < minNameColWidth {
		w = minNameColWidth
	}
	return w
}

// View renders the listing with permission, size and modified columns
func (p DirPanel) View(state *core.NavState) string {
	nameW := p.nameWidth()
	col := func(s string, w int) string {
		return lipgloss.NewStyle().Width(w).MaxWidth(w).Render(s)
	}

	header := ColumnHeader.Render(col("Name", nameW) + col("Perm", permColWidth) + col("Size", sizeColWidth) + col("Modified", timeColWidth))
	lines := []string{header}

	entries := state.Entries.Items()
	cursor, hasCursor := state.Entries.Selected()
	rows := p.rows()

	if len(entries) == 0 {
		lines = append(lines, LabelStyle.Render("(empty)"))
	}

	for i := p.offset; i < len(entries) && i < p.offset+rows; i++ {
		e := entries[i]
		meta, ok := p.meta[e.Path]
		if !ok {
			meta = readRowMeta(e.Path)
		}
		size, modified := meta.size, meta.modified

		name := "   " + e.Name
		if hasCursor && i == cursor {
			name = selectionMarker + e.Name
			row := col(name, nameW) + col(e.Perm, permColWidth) + col(size, sizeColWidth) + col(modified, timeColWidth)
			lines = append(lines, ItemSelected.Render(row))
			continue
		}

		nameStyle := FileItemStyle
		if e.IsDir {
			nameStyle = DirItemStyle
		}
		row := nameStyle.Render(col(name, nameW)) +
			col(RenderPerm(e.Perm), permColWidth) +
			col(size, sizeColWidth) +
			col(modified, timeColWidth)
		lines = append(lines, row)
	}

	style := PanelStyle.Width(p.width - 2).Height(p.height - 2).BorderForeground(ColorPrimary)
	return style.Render(strings.Join(lines, "\n"))
}
