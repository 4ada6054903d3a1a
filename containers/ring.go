package containers

// Ring is a fixed-capacity ring buffer. Deleting the first element is
// O(1); growing past the capacity fails with ErrFull.
type Ring[T any] struct {
	buf  []T
	head int
	size int
}

// NewRing returns an empty Ring holding at most capacity elements.
func NewRing[T any](capacity int) *Ring[T] {
	return &Ring[T]{buf: make([]T, max(capacity, 0))}
}

// Capacity returns the maximum number of elements.
func (r *Ring[T]) Capacity() int {
	return len(r.buf)
}

func (r *Ring[T]) slot(pos int) int {
	return (r.head + pos) % len(r.buf)
}

// ReadAt implements randaccess.Reader.
func (r *Ring[T]) ReadAt(pos int) (T, error) {
	if pos < 0 || pos >= r.size {
		var zero T
		return zero, outOfBounds("readAt", pos, r.size)
	}
	return r.buf[r.slot(pos)], nil
}

// WriteAt implements randaccess.Writer.
func (r *Ring[T]) WriteAt(pos int, v T) error {
	if pos < 0 || pos >= r.size {
		return outOfBounds("writeAt", pos, r.size)
	}
	r.buf[r.slot(pos)] = v
	return nil
}

// Count implements randaccess.Counter.
func (r *Ring[T]) Count() int {
	return r.size
}

// Expand implements randaccess.Expander. It fails with ErrFull rather
// than grow past the capacity.
func (r *Ring[T]) Expand(n int) error {
	if n < 0 {
		return outOfBounds("expand", n, r.size)
	}
	if r.size+n > len(r.buf) {
		return ErrFull
	}
	var zero T
	for range n {
		r.size++
		r.buf[r.slot(r.size-1)] = zero
	}
	return nil
}

// Shrink implements randaccess.Shrinker.
func (r *Ring[T]) Shrink(n int) error {
	if n < 0 || n > r.size {
		return outOfBounds("shrink", n, r.size)
	}
	var zero T
	for range n {
		r.size--
		r.buf[r.slot(r.size)] = zero
	}
	return nil
}

// DeleteAt implements randaccess.Deleter. Deleting position 0 only
// advances the head.
func (r *Ring[T]) DeleteAt(pos int) (T, error) {
	var zero T
	if pos < 0 || pos >= r.size {
		return zero, outOfBounds("deleteAt", pos, r.size)
	}
	v := r.buf[r.slot(pos)]
	if pos == 0 {
		r.buf[r.head] = zero
		r.head = (r.head + 1) % len(r.buf)
		r.size--
		return v, nil
	}
	for i := pos; i < r.size-1; i++ {
		r.buf[r.slot(i)] = r.buf[r.slot(i+1)]
	}
	r.size--
	r.buf[r.slot(r.size)] = zero
	return v, nil
}
