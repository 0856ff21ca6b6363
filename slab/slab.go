// Package slab provides a generic, index-stable arena: values are
// inserted and addressed by an int handle that remains valid until the
// value is removed, and freed slots are reused by later inserts before
// the underlying slice grows.
package slab

// Arena is a slab allocator over values of type T.
type Arena[T any] struct {
	data    []*T
	removed []int
}

// New returns an empty Arena.
func New[T any]() *Arena[T] {
	return &Arena[T]{}
}

// Insert stores v and returns its index. A previously removed index is
// reused when one is available; otherwise the arena grows by one slot.
func (a *Arena[T]) Insert(v T) int {
	if n := len(a.removed); n > 0 {
		idx := a.removed[n-1]
		a.removed = a.removed[:n-1]
		a.data[idx] = &v
		return idx
	}
	a.data = append(a.data, &v)
	return len(a.data) - 1
}

// Get returns a pointer to the value at i and true, or nil and false if i
// is out of range or has been removed.
func (a *Arena[T]) Get(i int) (*T, bool) {
	if i < 0 || i >= len(a.data) || a.data[i] == nil {
		return nil, false
	}
	return a.data[i], true
}

// Remove frees the slot at i, returning the value that was stored there
// and true, or the zero value and false if i was already free or out of
// range.
func (a *Arena[T]) Remove(i int) (T, bool) {
	var zero T
	if i < 0 || i >= len(a.data) || a.data[i] == nil {
		return zero, false
	}
	v := *a.data[i]
	a.data[i] = nil
	a.removed = append(a.removed, i)
	return v, true
}

// Len returns the number of live (non-removed) entries.
func (a *Arena[T]) Len() int {
	return len(a.data) - len(a.removed)
}

// TotalLen returns the number of slots ever allocated, including holes
// left by Remove.
func (a *Arena[T]) TotalLen() int {
	return len(a.data)
}

// All calls yield(i, v) for every live entry in ascending index order,
// stopping early if yield returns false. It follows the range-over-func
// iterator shape so callers can write `for i, v := range a.All { ... }`.
func (a *Arena[T]) All(yield func(i int, v *T) bool) {
	for i, v := range a.data {
		if v == nil {
			continue
		}
		if !yield(i, v) {
			return
		}
	}
}
