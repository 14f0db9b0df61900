package core

// noSelection is the cursor value when nothing is selected
const noSelection = -1

// SelectableList is an ordered collection with a wrapping cursor.
// The cursor is either unset or a valid index into items.
type SelectableList[T any] struct {
	items  []T
	cursor int
}

// NewSelectableList creates a list over items with nothing selected
func NewSelectableList[T any](items []T) *SelectableList[T] {
	return &SelectableList[T]{
		items:  items,
		cursor: noSelection,
	}
}

// Items returns the underlying items
func (l *SelectableList[T]) Items() []T {
	return l.items
}

// Len returns the number of items
func (l *SelectableList[T]) Len() int {
	return len(l.items)
}

// Next moves the cursor down, wrapping to the first item
func (l *SelectableList[T]) Next() {
	if len(l.items) == 0 {
		l.cursor = noSelection
		return
	}
	switch {
	case l.cursor == noSelection:
		l.cursor = 0
	case l.cursor >= len(l.items)-1:
		l.cursor = 0
	default:
		l.cursor++
	}
}

// Previous moves the cursor up, wrapping to the last item
func (l *SelectableList[T]) Previous() {
	if len(l.items) == 0 {
		l.cursor = noSelection
		return
	}
	switch {
	case l.cursor == noSelection:
		l.cursor = 0
	case l.cursor == 0:
		l.cursor = len(l.items) - 1
	default:
		l.cursor--
	}
}

// Unselect clears the cursor
func (l *SelectableList[T]) Unselect() {
	l.cursor = noSelection
}

// Select moves the cursor to i; out of range indexes are rejected
func (l *SelectableList[T]) Select(i int) bool {
	if i < 0 || i >= len(l.items) {
		return false
	}
	l.cursor = i
	return true
}

// Selected returns the cursor position
func (l *SelectableList[T]) Selected() (int, bool) {
	if l.cursor < 0 || l.cursor >= len(l.items) {
		return 0, false
	}
	return l.cursor, true
}

// SelectedItem returns the item under the cursor
func (l *SelectableList[T]) SelectedItem() (T, bool) {
	var zero T
	i, ok := l.Selected()
	if !ok {
		return zero, false
	}
	return l.items[i], true
}
