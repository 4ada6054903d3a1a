package containers

// HashArray stores elements in a map keyed by position. It has no
// InsertAt or DeleteAt, so randaccess shifts elements through reads and
// writes to insert or delete.
type HashArray[T any] struct {
	m    map[int]T
	size int
}

// NewHashArray returns a HashArray holding elems.
func NewHashArray[T any](elems ...T) *HashArray[T] {
	h := &HashArray[T]{m: make(map[int]T, len(elems)), size: len(elems)}
	for i, v := range elems {
		h.m[i] = v
	}
	return h
}

// Values returns the elements in position order.
func (h *HashArray[T]) Values() []T {
	out := make([]T, h.size)
	for i := range out {
		out[i] = h.m[i]
	}
	return out
}

// ReadAt implements randaccess.Reader.
func (h *HashArray[T]) ReadAt(pos int) (T, error) {
	if pos < 0 || pos >= h.size {
		var zero T
		return zero, outOfBounds("readAt", pos, h.size)
	}
	return h.m[pos], nil
}

// WriteAt implements randaccess.Writer.
func (h *HashArray[T]) WriteAt(pos int, v T) error {
	if pos < 0 || pos >= h.size {
		return outOfBounds("writeAt", pos, h.size)
	}
	h.m[pos] = v
	return nil
}

// Count implements randaccess.Counter.
func (h *HashArray[T]) Count() int {
	return h.size
}

// Expand implements randaccess.Expander.
func (h *HashArray[T]) Expand(n int) error {
	if n < 0 {
		return outOfBounds("expand", n, h.size)
	}
	var zero T
	for range n {
		h.m[h.size] = zero
		h.size++
	}
	return nil
}

// Shrink implements randaccess.Shrinker.
func (h *HashArray[T]) Shrink(n int) error {
	if n < 0 || n > h.size {
		return outOfBounds("shrink", n, h.size)
	}
	for range n {
		h.size--
		delete(h.m, h.size)
	}
	return nil
}
