package cursor

// Ring is an index over a fixed number of slots that wraps in both
// directions.
type Ring struct {
	size  int
	index int
}

// NewRing returns a ring of size slots positioned at 0. A size below 1
// is treated as 1.
func NewRing(size int) Ring {
	return Ring{size: max(size, 1)}
}

// Index returns the active slot.
func (r *Ring) Index() int { return r.index }

// Size returns the number of slots.
func (r *Ring) Size() int { return r.size }

// Next advances to the following slot, wrapping from the last to the first.
func (r *Ring) Next() {
	r.index = (r.index + 1) % r.size
}

// Previous moves to the preceding slot, wrapping from the first to the last.
func (r *Ring) Previous() {
	r.index = (r.index + r.size - 1) % r.size
}

// Set moves to slot i. Out-of-range values are ignored and Set reports
// whether the index changed.
func (r *Ring) Set(i int) bool {
	if i < 0 || i >= r.size || i == r.index {
		return false
	}
	r.index = i
	return true
}
