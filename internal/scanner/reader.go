package scanner

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/lumipallolabs/fx/internal/format"
	"github.com/lumipallolabs/fx/internal/model"
)

// batchSize bounds how many directory entries are read per call
const batchSize = 256

var errNotDir = errors.New("not a directory")

// ModeFunc returns the raw mode bits of path, following symlinks
type ModeFunc func(path string) (uint32, error)

// dirReader is the part of *os.File the loader reads through
type dirReader interface {
	ReadDir(n int) ([]fs.DirEntry, error)
	Close() error
}

// Reader implements Lister on the local filesystem
type Reader struct {
	reporter Reporter
	mode     ModeFunc
	open     func(dir string) (dirReader, error)
}

// Option configures a Reader
type Option func(*Reader)

// WithReporter sets where skipped entries are reported
func WithReporter(r Reporter) Option {
	return func(rd *Reader) {
		if r != nil {
			rd.reporter = r
		}
	}
}

// WithModeFunc replaces the mode bit lookup
func WithModeFunc(fn ModeFunc) Option {
	return func(rd *Reader) {
		if fn != nil {
			rd.mode = fn
		}
	}
}

// NewReader creates a new directory reader
func NewReader(opts ...Option) *Reader {
	r := &Reader{
		reporter: discardReporter{},
		mode:     statMode,
		open:     openDir,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// List reads the immediate children of dir. Failing to open dir is an error;
// failures on single children are absorbed.
func (r *Reader) List(dir string) ([]model.Entry, error) {
	f, err := r.open(dir)
	if err != nil {
		return nil, fmt.Errorf("open directory: %w", err)
	}
	defer f.Close()

	var entries []model.Entry
	for {
		batch, err := f.ReadDir(batchSize)
		for _, d := range batch {
			entry, ok := r.entry(filepath.Join(dir, d.Name()), d)
			if ok {
				entries = append(entries, entry)
			}
		}
		if err != nil {
			if !errors.Is(err, io.EOF) {
				// keep what was read before the failure
				r.reporter.Report(fmt.Errorf("read directory %s: %w", dir, err))
			}
			break
		}
	}

	if entries == nil {
		entries = []model.Entry{}
	}
	return entries, nil
}

// entry builds the record for one child; false means the child is skipped
func (r *Reader) entry(path string, d os.DirEntry) (model.Entry, bool) {
	// Info lstat's the child; ErrNotExist means it vanished after enumeration
	if _, err := d.Info(); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			r.reporter.Report(fmt.Errorf("skip %s: %w", path, err))
			return model.Entry{}, false
		}
		return model.NewEntry(path, d.IsDir(), model.PermError), true
	}

	mode, err := r.mode(path)
	if err != nil {
		// the lstat type still holds; a dangling symlink is not a directory
		return model.NewEntry(path, d.IsDir(), model.PermError), true
	}
	return model.NewEntry(path, isDirMode(mode), format.Permissions(mode)), true
}

// openDir opens dir and rejects anything that is not a directory
func openDir(dir string) (dirReader, error) {
	f, err := os.Open(dir)
	if err != nil {
		return nil, err
	}
	if info, err := f.Stat(); err == nil && !info.IsDir() {
		f.Close()
		return nil, &fs.PathError{Op: "open", Path: dir, Err: errNotDir}
	}
	return f, nil
}
