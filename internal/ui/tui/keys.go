package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lumipallolabs/fx/internal/core"
)

// KeyMap defines all keyboard shortcuts
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Unselect key.Binding
	Descend  key.Binding
	Ascend   key.Binding
	Reload   key.Binding
	Sort     key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Unselect: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "unselect"),
		),
		Descend: key.NewBinding(
			key.WithKeys("enter", "right", "l"),
			key.WithHelp("→/enter", "open"),
		),
		Ascend: key.NewBinding(
			key.WithKeys("left", "h", "backspace"),
			key.WithHelp("←/⌫", "parent"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload"),
		),
		Sort: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "sort"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Action maps a key press to a controller action
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Down):
		return core.ActionMoveNext
	case key.Matches(msg, k.Up):
		return core.ActionMovePrevious
	case key.Matches(msg, k.Unselect):
		return core.ActionUnselect
	case key.Matches(msg, k.Descend):
		return core.ActionDescend
	case key.Matches(msg, k.Ascend):
		return core.ActionAscend
	case key.Matches(msg, k.Reload):
		return core.ActionReload
	case key.Matches(msg, k.Sort):
		return core.ActionToggleSort
	}
	return core.ActionNone
}

// ShortHelp returns a brief help string
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Descend, k.Ascend, k.Help, k.Quit}
}

// FullHelp returns all help bindings
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Unselect},
		{k.Descend, k.Ascend},
		{k.Reload, k.Sort},
		{k.Help, k.Quit},
	}
}
