package core

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumipallolabs/fx/internal/model"
	"github.com/lumipallolabs/fx/internal/scanner"
)

type recordingReporter struct {
	errs []error
}

func (r *recordingReporter) Report(err error) {
	r.errs = append(r.errs, err)
}

// failingLister delegates to a real reader except for paths in fail
type failingLister struct {
	next  scanner.Lister
	fail  map[string]bool
	calls int
}

func (l *failingLister) List(dir string) ([]model.Entry, error) {
	l.calls++
	if l.fail[dir] {
		return nil, &fs.PathError{Op: "open", Path: dir, Err: fs.ErrPermission}
	}
	return l.next.List(dir)
}

// setupTree creates:
//
//	root/a/inner.txt
//	root/b/
//	root/file.txt
func setupTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "a"), 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "b"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "a", "inner.txt"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "file.txt"), []byte("hello"), 0644))
	return root
}

func paths(s *NavState) []string {
	var out []string
	for _, e := range s.Entries.Items() {
		out = append(out, e.Path)
	}
	return out
}

func selectByBase(t *testing.T, c *Controller, base string) {
	t.Helper()
	for i, e := range c.State().Entries.Items() {
		if filepath.Base(e.Path) == base {
			require.True(t, c.State().Entries.Select(i))
			return
		}
	}
	t.Fatalf("entry %s not found", base)
}

func newTestController(t *testing.T, root string, opts ...Option) (*Controller, *recordingReporter) {
	t.Helper()
	rep := &recordingReporter{}
	c, err := NewController(root, append([]Option{WithReporter(rep)}, opts...)...)
	require.NoError(t, err)
	return c, rep
}

func TestNewController(t *testing.T) {
	root := setupTree(t)
	c, _ := newTestController(t, root)

	s := c.State()
	assert.Equal(t, root, s.Dir)
	assert.Equal(t, filepath.Dir(root), s.ParentPath)
	assert.Equal(t, []string{
		filepath.Join(root, "a"),
		filepath.Join(root, "b"),
		filepath.Join(root, "file.txt"),
	}, paths(s))

	_, ok := s.Entries.Selected()
	assert.False(t, ok)
}

func TestNewControllerMissingDir(t *testing.T) {
	_, err := NewController(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestDescendWithoutSelectionIsNoop(t *testing.T) {
	c, rep := newTestController(t, setupTree(t))
	before := c.State()

	assert.False(t, c.Descend())
	assert.Same(t, before, c.State())
	assert.Empty(t, rep.errs)
}

func TestDescendIntoFileIsNoop(t *testing.T) {
	c, rep := newTestController(t, setupTree(t))
	selectByBase(t, c, "file.txt")
	before := c.State()

	assert.False(t, c.Descend())
	assert.Same(t, before, c.State())
	assert.Empty(t, rep.errs)

	idx, ok := c.State().Entries.Selected()
	assert.True(t, ok)
	assert.Equal(t, 2, idx)
}

func TestDescendIntoReplacedDirectoryIsNoop(t *testing.T) {
	root := setupTree(t)
	lister := &failingLister{next: scanner.NewReader()}
	c, rep := newTestController(t, root, WithLister(lister))
	selectByBase(t, c, "b")
	before := c.State()

	// b turns into a file after the listing was read
	require.NoError(t, os.Remove(filepath.Join(root, "b")))
	require.NoError(t, os.WriteFile(filepath.Join(root, "b"), []byte("now a file"), 0644))
	calls := lister.calls

	assert.Nil(t, c.Apply(ActionDescend))
	assert.Same(t, before, c.State())
	assert.Equal(t, calls, lister.calls)
	assert.Empty(t, rep.errs)
}

func TestDescendThenAscendRoundTrip(t *testing.T) {
	root := setupTree(t)
	c, _ := newTestController(t, root)
	original := paths(c.State())

	selectByBase(t, c, "a")
	require.True(t, c.Descend())

	s := c.State()
	assert.Equal(t, filepath.Join(root, "a"), s.Dir)
	assert.Equal(t, root, s.ParentPath)
	assert.Equal(t, []string{filepath.Join(root, "a", "inner.txt")}, paths(s))
	_, ok := s.Entries.Selected()
	assert.False(t, ok, "cursor resets on descend")

	require.True(t, c.Ascend())
	s = c.State()
	assert.Equal(t, root, s.Dir)
	assert.Equal(t, filepath.Dir(root), s.ParentPath)
	assert.Equal(t, original, paths(s))
	_, ok = s.Entries.Selected()
	assert.False(t, ok, "cursor resets on ascend")
}

func TestDescendLoadFailureKeepsState(t *testing.T) {
	root := setupTree(t)
	lister := &failingLister{
		next: scanner.NewReader(),
		fail: map[string]bool{filepath.Join(root, "b"): true},
	}
	c, rep := newTestController(t, root, WithLister(lister))

	selectByBase(t, c, "b")
	before := c.State()

	ev := c.Apply(ActionDescend)
	failed, ok := ev.(LoadFailedEvent)
	require.True(t, ok, "expected LoadFailedEvent, got %T", ev)
	assert.Equal(t, filepath.Join(root, "b"), failed.Path)
	assert.True(t, errors.Is(failed.Err, fs.ErrPermission))

	assert.Same(t, before, c.State())
	assert.Equal(t, root, c.State().Dir)
	require.Len(t, rep.errs, 1)
	assert.True(t, errors.Is(rep.errs[0], fs.ErrPermission))
}

func TestAscendLoadFailureKeepsState(t *testing.T) {
	root := setupTree(t)
	lister := &failingLister{
		next: scanner.NewReader(),
		fail: map[string]bool{filepath.Dir(root): true},
	}
	c, rep := newTestController(t, root, WithLister(lister))
	before := c.State()

	assert.False(t, c.Ascend())
	assert.Same(t, before, c.State())
	assert.Len(t, rep.errs, 1)
}

func TestAscendAtRootIsNoop(t *testing.T) {
	rootDir := string(filepath.Separator)
	if vol := filepath.VolumeName(os.TempDir()); vol != "" {
		rootDir = vol + rootDir
	}

	lister := &failingLister{next: scanner.NewReader()}
	c, rep := newTestController(t, rootDir, WithLister(lister))
	require.True(t, c.State().AtRoot())

	calls := lister.calls
	before := c.State()

	assert.False(t, c.Ascend())
	assert.Nil(t, c.Apply(ActionAscend))
	assert.Same(t, before, c.State())
	assert.Equal(t, calls, lister.calls, "no load at the root")
	assert.Empty(t, rep.errs)
}

func TestReloadKeepsSelection(t *testing.T) {
	root := setupTree(t)
	c, _ := newTestController(t, root)
	selectByBase(t, c, "file.txt")

	require.NoError(t, os.WriteFile(filepath.Join(root, "0-first.txt"), nil, 0644))
	require.True(t, c.Reload())

	entries := c.State().Entries
	assert.Equal(t, 4, entries.Len())
	sel, ok := entries.SelectedItem()
	require.True(t, ok)
	assert.Equal(t, filepath.Join(root, "file.txt"), sel.Path)
}

func TestReloadAfterSelectedEntryRemoved(t *testing.T) {
	root := setupTree(t)
	c, _ := newTestController(t, root)
	selectByBase(t, c, "file.txt")

	require.NoError(t, os.Remove(filepath.Join(root, "file.txt")))
	require.True(t, c.Reload())

	_, ok := c.State().Entries.Selected()
	assert.False(t, ok)
	assert.Equal(t, 2, c.State().Entries.Len())
}

func TestToggleSort(t *testing.T) {
	root := setupTree(t)
	c, _ := newTestController(t, root)
	selectByBase(t, c, "a")

	c.Apply(ActionToggleSort)
	assert.Equal(t, model.SortZToA, c.SortOrder())
	assert.Equal(t, []string{
		filepath.Join(root, "file.txt"),
		filepath.Join(root, "b"),
		filepath.Join(root, "a"),
	}, paths(c.State()))

	sel, ok := c.State().SelectedEntry()
	require.True(t, ok)
	assert.Equal(t, filepath.Join(root, "a"), sel.Path)

	// the order survives navigation
	selectByBase(t, c, "a")
	require.True(t, c.Descend())
	require.True(t, c.Ascend())
	assert.Equal(t, filepath.Join(root, "file.txt"), paths(c.State())[0])
}

func TestApplyMovesCursor(t *testing.T) {
	c, _ := newTestController(t, setupTree(t))

	assert.Nil(t, c.Apply(ActionMoveNext))
	idx, ok := c.State().Entries.Selected()
	require.True(t, ok)
	assert.Equal(t, 0, idx)

	c.Apply(ActionMovePrevious)
	idx, _ = c.State().Entries.Selected()
	assert.Equal(t, 2, idx)

	c.Apply(ActionUnselect)
	_, ok = c.State().Entries.Selected()
	assert.False(t, ok)

	assert.Equal(t, QuitEvent{}, c.Apply(ActionQuit))
	assert.Nil(t, c.Apply(ActionNone))
}

func TestApplyDescendEmitsNavigated(t *testing.T) {
	root := setupTree(t)
	c, _ := newTestController(t, root)
	selectByBase(t, c, "b")

	ev := c.Apply(ActionDescend)
	assert.Equal(t, NavigatedEvent{Dir: filepath.Join(root, "b"), Parent: root}, ev)
	assert.Equal(t, 0, c.State().Entries.Len())

	// an empty directory never gains a selection
	c.Apply(ActionMoveNext)
	_, ok := c.State().Entries.Selected()
	assert.False(t, ok)
}

func TestActionString(t *testing.T) {
	assert.Equal(t, "Descend", ActionDescend.String())
	assert.Equal(t, "None", Action(99).String())
}
