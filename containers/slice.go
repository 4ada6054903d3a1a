package containers

import (
	"slices"
)

// Slice implements every primitive over a Go slice.
type Slice[T any] struct {
	elems []T
}

// NewSlice returns a Slice holding a copy of elems.
func NewSlice[T any](elems ...T) *Slice[T] {
	return &Slice[T]{elems: slices.Clone(elems)}
}

// Values returns a copy of the elements.
func (s *Slice[T]) Values() []T {
	return slices.Clone(s.elems)
}

// ReadAt implements randaccess.Reader.
func (s *Slice[T]) ReadAt(pos int) (T, error) {
	if pos < 0 || pos >= len(s.elems) {
		var zero T
		return zero, outOfBounds("readAt", pos, len(s.elems))
	}
	return s.elems[pos], nil
}

// WriteAt implements randaccess.Writer.
func (s *Slice[T]) WriteAt(pos int, v T) error {
	if pos < 0 || pos >= len(s.elems) {
		return outOfBounds("writeAt", pos, len(s.elems))
	}
	s.elems[pos] = v
	return nil
}

// Count implements randaccess.Counter.
func (s *Slice[T]) Count() int {
	return len(s.elems)
}

// Expand implements randaccess.Expander.
func (s *Slice[T]) Expand(n int) error {
	if n < 0 {
		return outOfBounds("expand", n, len(s.elems))
	}
	s.elems = append(s.elems, make([]T, n)...)
	return nil
}

// Shrink implements randaccess.Shrinker.
func (s *Slice[T]) Shrink(n int) error {
	if n < 0 || n > len(s.elems) {
		return outOfBounds("shrink", n, len(s.elems))
	}
	clear(s.elems[len(s.elems)-n:])
	s.elems = s.elems[:len(s.elems)-n]
	return nil
}

// InsertAt implements randaccess.Inserter. pos may equal Count.
func (s *Slice[T]) InsertAt(pos int, v T) error {
	if pos < 0 || pos > len(s.elems) {
		return outOfBounds("insertAt", pos, len(s.elems))
	}
	s.elems = slices.Insert(s.elems, pos, v)
	return nil
}

// DeleteAt implements randaccess.Deleter.
func (s *Slice[T]) DeleteAt(pos int) (T, error) {
	if pos < 0 || pos >= len(s.elems) {
		var zero T
		return zero, outOfBounds("deleteAt", pos, len(s.elems))
	}
	v := s.elems[pos]
	s.elems = slices.Delete(s.elems, pos, pos+1)
	return v, nil
}
