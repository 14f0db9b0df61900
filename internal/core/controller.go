package core

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/lumipallolabs/fx/internal/logging"
	"github.com/lumipallolabs/fx/internal/model"
	"github.com/lumipallolabs/fx/internal/scanner"
)

// Reporter receives load failures that do not stop the browser
type Reporter interface {
	Report(err error)
}

// Controller owns the navigation state and performs directory transitions.
// It is driven from a single goroutine and does no locking.
type Controller struct {
	state    *NavState
	lister   scanner.Lister
	reporter Reporter
	order    model.SortOrder
}

// Option configures a Controller
type Option func(*Controller)

// WithLister sets the directory loader
func WithLister(l scanner.Lister) Option {
	return func(c *Controller) {
		if l != nil {
			c.lister = l
		}
	}
}

// WithReporter sets the diagnostic sink
func WithReporter(r Reporter) Option {
	return func(c *Controller) {
		if r != nil {
			c.reporter = r
		}
	}
}

// WithSortOrder sets the initial name ordering
func WithSortOrder(o model.SortOrder) Option {
	return func(c *Controller) {
		c.order = o
	}
}

// NewController loads dir and returns a controller showing it.
// An error here means the browser cannot start.
func NewController(dir string, opts ...Option) (*Controller, error) {
	c := &Controller{
		reporter: logging.NewReporter(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.lister == nil {
		c.lister = scanner.NewReader(scanner.WithReporter(c.reporter))
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", dir, err)
	}

	state, err := c.load(abs)
	if err != nil {
		return nil, err
	}
	c.state = state

	logging.Nav.Debugf("started in %s (parent %s)", state.Dir, state.ParentPath)
	return c, nil
}

// State returns the current state. Callers must treat it as read-only.
func (c *Controller) State() *NavState {
	return c.state
}

// SortOrder returns the active name ordering
func (c *Controller) SortOrder() model.SortOrder {
	return c.order
}

// Apply dispatches a logical action
func (c *Controller) Apply(action Action) Event {
	switch action {
	case ActionMoveNext:
		c.state.Entries.Next()
	case ActionMovePrevious:
		c.state.Entries.Previous()
	case ActionUnselect:
		c.state.Entries.Unselect()
	case ActionDescend:
		return c.descend()
	case ActionAscend:
		return c.ascend()
	case ActionReload:
		return c.reload()
	case ActionToggleSort:
		c.ToggleSort()
	case ActionQuit:
		return QuitEvent{}
	}
	return nil
}

// Descend enters the selected directory. It returns false when nothing
// changed: no selection, a selection that is not a directory on disk, or a
// failed load.
func (c *Controller) Descend() bool {
	_, ok := c.descend().(NavigatedEvent)
	return ok
}

// Ascend shows the parent directory. At the filesystem root it is a no-op.
func (c *Controller) Ascend() bool {
	_, ok := c.ascend().(NavigatedEvent)
	return ok
}

// Reload re-reads the displayed directory, keeping the selected path if it
// is still present
func (c *Controller) Reload() bool {
	_, ok := c.reload().(NavigatedEvent)
	return ok
}

// ToggleSort flips the name ordering and re-sorts the current listing
func (c *Controller) ToggleSort() {
	c.order = c.order.Reverse()

	entries := append([]model.Entry(nil), c.state.Entries.Items()...)
	model.SortByName(entries, c.order)

	next := &NavState{
		Dir:        c.state.Dir,
		ParentPath: c.state.ParentPath,
		Entries:    NewSelectableList(entries),
	}
	if sel, ok := c.state.SelectedEntry(); ok {
		selectPath(next, sel.Path)
	}
	c.state = next
}

func (c *Controller) descend() Event {
	entry, ok := c.state.SelectedEntry()
	if !ok || !entry.IsDir {
		return nil
	}
	// the listing may be stale; only a path that is still a directory is entered
	if info, err := os.Stat(entry.Path); err != nil || !info.IsDir() {
		logging.Nav.Debugf("descend ignored, %s is no longer a directory", entry.Path)
		return nil
	}
	return c.navigate(entry.Path)
}

func (c *Controller) ascend() Event {
	if c.state.AtRoot() {
		logging.Nav.Debugf("ascend ignored at root %s", c.state.Dir)
		return nil
	}
	return c.navigate(c.state.ParentPath)
}

func (c *Controller) reload() Event {
	selected, hasSelection := c.state.SelectedEntry()

	ev := c.navigate(c.state.Dir)
	if _, ok := ev.(NavigatedEvent); ok && hasSelection {
		selectPath(c.state, selected.Path)
	}
	return ev
}

// navigate builds the state for dir and swaps it in only after the load
// succeeded
func (c *Controller) navigate(dir string) Event {
	next, err := c.load(dir)
	if err != nil {
		c.reporter.Report(err)
		return LoadFailedEvent{Path: dir, Err: err}
	}

	c.state = next
	logging.Nav.Debugf("now in %s (%d entries)", next.Dir, next.Entries.Len())
	return NavigatedEvent{Dir: next.Dir, Parent: next.ParentPath}
}

func (c *Controller) load(dir string) (*NavState, error) {
	entries, err := c.lister.List(dir)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", dir, err)
	}
	model.SortByName(entries, c.order)
	return newNavState(dir, entries), nil
}

func selectPath(s *NavState, path string) {
	for i, e := range s.Entries.Items() {
		if e.Path == path {
			s.Entries.Select(i)
			return
		}
	}
}
