package model

import "path/filepath"

// PermError replaces the permission string when an entry's metadata cannot be read
const PermError = "ERR"

// Entry represents one child of the displayed directory
type Entry struct {
	Name  string // display name, "/" appended for directories
	Path  string
	Perm  string // 9-char rwx string or PermError
	IsDir bool   // resolved through symlinks
}

// NewEntry builds an entry for path, decorating the name of directories
func NewEntry(path string, isDir bool, perm string) Entry {
	name := filepath.Base(path)
	if isDir {
		name += string(filepath.Separator)
	}
	return Entry{
		Name:  name,
		Path:  path,
		Perm:  perm,
		IsDir: isDir,
	}
}

// HasPermError reports whether the entry's metadata was unreadable
func (e Entry) HasPermError() bool {
	return e.Perm == PermError
}
