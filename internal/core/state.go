package core

import (
	"path/filepath"

	"github.com/lumipallolabs/fx/internal/model"
)

// NavState is the directory currently on screen. A new value is built for
// every transition; fields are never updated one at a time.
type NavState struct {
	Dir        string // displayed directory
	ParentPath string // one level above Dir; equals Dir at the root
	Entries    *SelectableList[model.Entry]
}

// newNavState creates the state for dir with a fresh, unselected listing
func newNavState(dir string, entries []model.Entry) *NavState {
	return &NavState{
		Dir:        dir,
		ParentPath: filepath.Dir(dir),
		Entries:    NewSelectableList(entries),
	}
}

// AtRoot reports whether Dir has no parent
func (s *NavState) AtRoot() bool {
	return s.ParentPath == s.Dir
}

// SelectedEntry returns the entry under the cursor
func (s *NavState) SelectedEntry() (model.Entry, bool) {
	return s.Entries.SelectedItem()
}
