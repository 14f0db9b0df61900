//go:build unix

package scanner

import (
	"os"

	"golang.org/x/sys/unix"
)

// statMode returns st_mode for path, following symlinks
func statMode(path string) (uint32, error) {
	var stat unix.Stat_t
	if err := unix.Stat(path, &stat); err != nil {
		return 0, &os.PathError{Op: "stat", Path: path, Err: err}
	}
	return uint32(stat.Mode), nil
}

func isDirMode(mode uint32) bool {
	return mode&unix.S_IFMT == unix.S_IFDIR
}
