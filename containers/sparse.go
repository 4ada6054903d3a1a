package containers

import (
	"github.com/tidwall/btree"
)

// Sparse is a sequence whose unwritten positions read as the zero value.
// Only written positions are stored, in an ordered B-tree, so growing it
// is free and inserting or deleting re-keys only the entries that follow.
type Sparse[T any] struct {
	tr   *btree.Map[int, T]
	size int
}

// NewSparse returns an empty Sparse of the given length.
func NewSparse[T any](size int) *Sparse[T] {
	return &Sparse[T]{tr: btree.NewMap[int, T](32), size: max(size, 0)}
}

// Stored returns the number of materialized entries.
func (s *Sparse[T]) Stored() int {
	return s.tr.Len()
}

// ReadAt implements randaccess.Reader. Unwritten positions read as the
// zero value.
func (s *Sparse[T]) ReadAt(pos int) (T, error) {
	if pos < 0 || pos >= s.size {
		var zero T
		return zero, outOfBounds("readAt", pos, s.size)
	}
	v, _ := s.tr.Get(pos)
	return v, nil
}

// WriteAt implements randaccess.Writer.
func (s *Sparse[T]) WriteAt(pos int, v T) error {
	if pos < 0 || pos >= s.size {
		return outOfBounds("writeAt", pos, s.size)
	}
	s.tr.Set(pos, v)
	return nil
}

// Count implements randaccess.Counter.
func (s *Sparse[T]) Count() int {
	return s.size
}

// Expand implements randaccess.Expander. Nothing is stored for the new
// positions.
func (s *Sparse[T]) Expand(n int) error {
	if n < 0 {
		return outOfBounds("expand", n, s.size)
	}
	s.size += n
	return nil
}

// Shrink implements randaccess.Shrinker.
func (s *Sparse[T]) Shrink(n int) error {
	if n < 0 || n > s.size {
		return outOfBounds("shrink", n, s.size)
	}
	s.size -= n
	for _, k := range s.keysFrom(s.size) {
		s.tr.Delete(k)
	}
	return nil
}

// InsertAt implements randaccess.Inserter.
func (s *Sparse[T]) InsertAt(pos int, v T) error {
	if pos < 0 || pos > s.size {
		return outOfBounds("insertAt", pos, s.size)
	}
	keys := s.keysFrom(pos)
	for i := len(keys) - 1; i >= 0; i-- {
		moved, _ := s.tr.Delete(keys[i])
		s.tr.Set(keys[i]+1, moved)
	}
	s.tr.Set(pos, v)
	s.size++
	return nil
}

// DeleteAt implements randaccess.Deleter.
func (s *Sparse[T]) DeleteAt(pos int) (T, error) {
	if pos < 0 || pos >= s.size {
		var zero T
		return zero, outOfBounds("deleteAt", pos, s.size)
	}
	v, _ := s.tr.Delete(pos)
	for _, k := range s.keysFrom(pos + 1) {
		moved, _ := s.tr.Delete(k)
		s.tr.Set(k-1, moved)
	}
	s.size--
	return v, nil
}

// keysFrom collects the stored keys >= pivot so the tree can be changed
// while walking them.
func (s *Sparse[T]) keysFrom(pivot int) []int {
	var keys []int
	s.tr.Ascend(pivot, func(k int, _ T) bool {
		keys = append(keys, k)
		return true
	})
	return keys
}
