// Package cursor tracks navigation positions: a clamped selection within
// a list and a wrapping index over a fixed ring of tabs.
package cursor

// List is the selection within one list of a known length. The zero
// value is an empty list with nothing selected.
type List struct {
	n        int
	selected int
	ok       bool
}

// NewList returns a cursor over a list of n items with nothing selected.
func NewList(n int) List {
	return List{n: max(n, 0)}
}

// Len returns the length of the list the cursor covers.
func (l *List) Len() int { return l.n }

// Selected returns the selected index, or false when nothing is selected.
// When ok is true, 0 <= index < Len().
func (l *List) Selected() (index int, ok bool) {
	return l.selected, l.ok
}

// Next moves the selection down one item, stopping at the last item.
// From no selection it selects the first item. On an empty list it does
// nothing.
func (l *List) Next() {
	if l.n == 0 {
		return
	}
	if !l.ok {
		l.selected, l.ok = 0, true
		return
	}
	l.selected = min(l.selected+1, l.n-1)
}

// Previous moves the selection up one item, stopping at the first item.
// From no selection it selects the first item. On an empty list it does
// nothing.
func (l *List) Previous() {
	if l.n == 0 {
		return
	}
	if !l.ok {
		l.selected, l.ok = 0, true
		return
	}
	l.selected = max(l.selected-1, 0)
}

// Resize changes the list length and re-validates the selection: an empty
// list drops it, a shorter list clamps it to the new last item.
func (l *List) Resize(n int) {
	l.n = max(n, 0)
	if l.n == 0 {
		l.selected, l.ok = 0, false
		return
	}
	if l.ok && l.selected >= l.n {
		l.selected = l.n - 1
	}
}
