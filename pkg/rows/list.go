package rows

// NoSelection is the cursor value when a list has no rows.
const NoSelection = -1

// List is an ordered, cursor-carrying row collection. The cursor rules
// are part of the contract: edits preserve every other row's position,
// and deletes re-home the cursor to min(old, len-1) so it never points
// past the end of a shrunk list.
type List[T any] struct {
	items    []T
	selected int
}

// NewList builds a list from existing rows, selecting the first row when
// any exist.
func NewList[T any](items []T) List[T] {
	l := List[T]{items: items, selected: NoSelection}
	if len(items) > 0 {
		l.selected = 0
	}
	return l
}

// Items exposes the backing slice for iteration and collection.
func (l *List[T]) Items() []T {
	return l.items
}

// Len reports the number of rows.
func (l *List[T]) Len() int {
	return len(l.items)
}

// Selected returns the current row and its index, or false when the
// list is empty.
func (l *List[T]) Selected() (T, int, bool) {
	var zero T
	if l.selected < 0 || l.selected >= len(l.items) {
		return zero, NoSelection, false
	}
	return l.items[l.selected], l.selected, true
}

// SelectedIndex reports the cursor position, NoSelection when empty.
func (l *List[T]) SelectedIndex() int {
	if l.selected < 0 || l.selected >= len(l.items) {
		return NoSelection
	}
	return l.selected
}

// Select moves the cursor, clamping to the valid range.
func (l *List[T]) Select(i int) {
	if len(l.items) == 0 {
		l.selected = NoSelection
		return
	}
	if i < 0 {
		i = 0
	}
	if i >= len(l.items) {
		i = len(l.items) - 1
	}
	l.selected = i
}

// Add appends a row and selects it.
func (l *List[T]) Add(item T) {
	l.items = append(l.items, item)
	l.selected = len(l.items) - 1
}

// Edit replaces the row at i in place, leaving all other rows and the
// cursor untouched. Returns false for an out-of-range index.
func (l *List[T]) Edit(i int, item T) bool {
	if i < 0 || i >= len(l.items) {
		return false
	}
	l.items[i] = item
	return true
}

// Delete removes the row at i and re-homes the cursor. Returns false
// for an out-of-range index.
func (l *List[T]) Delete(i int) bool {
	if i < 0 || i >= len(l.items) {
		return false
	}
	l.items = append(l.items[:i], l.items[i+1:]...)
	switch {
	case len(l.items) == 0:
		l.selected = NoSelection
	case l.selected == i:
		l.selected = min(i, len(l.items)-1)
	case l.selected > i:
		l.selected--
	}
	return true
}

// Replace swaps the backing rows wholesale, used when re-expanding from
// a reloaded document. The cursor is clamped rather than reset so the
// UI keeps its place across a save.
func (l *List[T]) Replace(items []T) {
	l.items = items
	switch {
	case len(items) == 0:
		l.selected = NoSelection
	case l.selected == NoSelection:
		l.selected = 0
	case l.selected >= len(items):
		l.selected = len(items) - 1
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
