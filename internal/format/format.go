// Package format turns raw filesystem attributes into display strings.
package format

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// Placeholder is rendered in place of a size or time that could not be read
const Placeholder = "Error"

// ErrUnsupported is returned when the filesystem exposes no modification time
var ErrUnsupported = errors.New("modification time not supported on this platform")

var sizeUnits = []string{"B", "kB", "MB", "GB", "TB", "PB"}

// timeLayout renders as "Tue Jan 05 14:32"
const timeLayout = "Mon Jan 02 15:04"

// Permissions renders the low nine mode bits as owner, group, other rwx triplets
func Permissions(mode uint32) string {
	var b strings.Builder
	b.Grow(9)
	for _, shift := range []uint{6, 3, 0} {
		bits := (mode >> shift) & 0b111
		b.WriteByte(flag(bits&0b100 != 0, 'r'))
		b.WriteByte(flag(bits&0b010 != 0, 'w'))
		b.WriteByte(flag(bits&0b001 != 0, 'x'))
	}
	return b.String()
}

func flag(set bool, c byte) byte {
	if set {
		return c
	}
	return '-'
}

// Size formats a byte count with binary scaling, e.g. "4 kB" or "4.50 kB"
func Size(bytes uint64) string {
	size := float64(bytes)
	unit := 0
	for size >= 1024 && unit < len(sizeUnits)-1 {
		size /= 1024
		unit++
	}

	size = math.Round(size*100) / 100
	if size == math.Trunc(size) {
		return fmt.Sprintf("%.0f %s", size, sizeUnits[unit])
	}
	return fmt.Sprintf("%.2f %s", size, sizeUnits[unit])
}

// SizeOf stats path and formats its length
func SizeOf(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("read size: %w", err)
	}
	return Size(uint64(info.Size())), nil
}

// ModifiedTime formats t in UTC
func ModifiedTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

// ModifiedOf stats path and formats its modification time
func ModifiedOf(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("read modification time: %w", err)
	}
	if info.ModTime().IsZero() {
		return "", ErrUnsupported
	}
	return ModifiedTime(info.ModTime()), nil
}

// Age returns a relative description such as "3 hours ago"
func Age(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return humanize.Time(t)
}

// OrPlaceholder returns s, or Placeholder when err is set
func OrPlaceholder(s string, err error) string {
	if err != nil {
		return Placeholder
	}
	return s
}
