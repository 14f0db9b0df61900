//go:build !unix

package scanner

import "os"

// modeDir marks directories in the synthesized mode, matching S_IFDIR
const modeDir = 0o040000

// statMode builds Unix-style mode bits from os.Stat
func statMode(path string) (uint32, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	mode := uint32(info.Mode().Perm())
	if info.IsDir() {
		mode |= modeDir
	}
	return mode, nil
}

func isDirMode(mode uint32) bool {
	return mode&0o170000 == modeDir
}
