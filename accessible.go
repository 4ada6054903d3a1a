package randaccess

import (
	"iter"

	g "github.com/anacrolix/generics"

	"github.com/Pure-Company/randaccess/bulk"
)

// Accessible is the full mutable sequence: a Readable and a Writable
// over the same container, plus the operations that need both.
//
// When the container lacks InsertAt, insertion grows it by one and
// shifts the tail right. When it lacks DeleteAt, deletion shifts the
// tail left and shrinks by one.
type Accessible[T any] struct {
	*Readable[T]
	*Writable[T]
}

// New wraps c.
//
// Example:
//
//	a := New[int](containers.NewSlice(1, 2, 3))
//	a.Unshift(-1, -2)         // [-1 -2 1 2 3]
//	a.SliceRemove(Span(1, 2)) // Some([-2 1]), leaves [-1 2 3]
func New[T any](c Container[T], opts ...Option) *Accessible[T] {
	cfg := newConfig(opts)
	a := &Accessible[T]{
		Readable: newReadable[T](c, cfg),
		Writable: newWritable[T](c, cfg),
	}
	if a.Writable.inserter == nil {
		a.Writable.insert = a.insertShifting
	}
	if a.Writable.deleter == nil {
		a.Writable.remove = a.removeShifting
	}
	return a
}

// Both traits carry the size queries; these pick the read side.

// Capabilities returns the primitives of the wrapped container.
func (a *Accessible[T]) Capabilities() Capability { return a.Readable.Capabilities() }

// Count returns the number of elements.
func (a *Accessible[T]) Count() (int, error) { return a.Readable.Count() }

// IsEmpty reports whether the container holds no element. It is false
// when the container has no count.
func (a *Accessible[T]) IsEmpty() bool { return a.Readable.IsEmpty() }

// EachIndex calls fn with every position.
func (a *Accessible[T]) EachIndex(fn func(i int) bool) error { return a.Readable.EachIndex(fn) }

// Indexes is the iterator form of EachIndex.
func (a *Accessible[T]) Indexes() (iter.Seq[int], error) { return a.Readable.Indexes() }

func (a *Accessible[T]) read(pos int) (T, error) {
	return a.Readable.reader.ReadAt(pos)
}

func (a *Accessible[T]) write(pos int, v T) error {
	return a.Writable.writer.WriteAt(pos, v)
}

func (a *Accessible[T]) insertShifting(pos int, v T) error {
	n, err := a.Readable.size("insertAt")
	if err != nil {
		return err
	}
	if pos >= n {
		return a.Writable.replaceAt("insertAt", pos, v)
	}
	if err := a.Writable.expand(1); err != nil {
		return err
	}
	for i := n - 1; i >= pos; i-- {
		x, err := a.read(i)
		if err != nil {
			return err
		}
		if err := a.write(i+1, x); err != nil {
			return err
		}
	}
	return a.write(pos, v)
}

func (a *Accessible[T]) removeShifting(pos int) (T, error) {
	var zero T
	n, err := a.Readable.size("deleteAt")
	if err != nil {
		return zero, err
	}
	if a.Writable.shrinker == nil {
		return zero, missing("deleteAt", CapShrink)
	}
	res, err := a.read(pos)
	if err != nil {
		return zero, err
	}
	for i := pos + 1; i < n; i++ {
		x, err := a.read(i)
		if err != nil {
			return zero, err
		}
		if err := a.write(i-1, x); err != nil {
			return zero, err
		}
	}
	return res, a.Writable.shrink("deleteAt", 1)
}

// Replace makes the contents equal to other.
func (a *Accessible[T]) Replace(other []T) (*Accessible[T], error) {
	if err := a.Writable.replace(other); err != nil {
		return nil, err
	}
	return a, nil
}

// ============================================================================
// Removal
// ============================================================================

// compactWhere drops the elements matching drop in one forward pass and
// shrinks once. It returns the number of dropped elements.
func (a *Accessible[T]) compactWhere(op string, drop func(T) bool) (int, error) {
	n, err := a.Readable.size(op)
	if err != nil {
		return 0, err
	}
	dropped := 0
	for i := 0; i < n; i++ {
		v, err := a.read(i)
		if err != nil {
			return dropped, err
		}
		if drop(v) {
			dropped++
			continue
		}
		if dropped > 0 {
			if err := a.write(i-dropped, v); err != nil {
				return dropped, err
			}
		}
	}
	if dropped == 0 {
		return 0, nil
	}
	return dropped, a.Writable.shrink(op, dropped)
}

func (a *Accessible[T]) deleteAll(op string, v T) (int, error) {
	match := func(x T) bool { return a.Readable.eq(x, v) }
	if a.Writable.deleter == nil {
		return a.compactWhere(op, match)
	}
	n, err := a.Readable.size(op)
	if err != nil {
		return 0, err
	}
	deleted := 0
	for i := 0; i < n-deleted; {
		x, err := a.read(i)
		if err != nil {
			return deleted, err
		}
		if !match(x) {
			i++
			continue
		}
		if _, err := a.Writable.deleter.DeleteAt(i); err != nil {
			return deleted, err
		}
		deleted++
	}
	return deleted, nil
}

// Delete removes every element equal to v and returns v, or no value
// when nothing matched.
func (a *Accessible[T]) Delete(v T) (g.Option[T], error) {
	deleted, err := a.deleteAll("delete", v)
	if err != nil || deleted == 0 {
		return g.None[T](), err
	}
	return g.Some(v), nil
}

// DeleteOrElse removes every element equal to v. It returns v, or
// fallback() when nothing matched.
func (a *Accessible[T]) DeleteOrElse(v T, fallback func() T) (T, error) {
	deleted, err := a.deleteAll("delete", v)
	if err != nil {
		var zero T
		return zero, err
	}
	if deleted == 0 {
		return fallback(), nil
	}
	return v, nil
}

// RejectInPlace removes the elements satisfying pred. It returns a when
// something was removed, no value otherwise.
func (a *Accessible[T]) RejectInPlace(pred func(T) bool) (g.Option[*Accessible[T]], error) {
	return a.rejectInPlace("rejectInPlace", pred)
}

func (a *Accessible[T]) rejectInPlace(op string, pred func(T) bool) (g.Option[*Accessible[T]], error) {
	dropped, err := a.compactWhere(op, pred)
	if err != nil || dropped == 0 {
		return g.None[*Accessible[T]](), err
	}
	return g.Some(a), nil
}

// SelectInPlace keeps the elements satisfying pred. It returns a when
// something was removed, no value otherwise.
func (a *Accessible[T]) SelectInPlace(pred func(T) bool) (g.Option[*Accessible[T]], error) {
	return a.rejectInPlace("selectInPlace", func(v T) bool { return !pred(v) })
}

// DeleteIf removes the elements satisfying pred.
func (a *Accessible[T]) DeleteIf(pred func(T) bool) (*Accessible[T], error) {
	if _, err := a.rejectInPlace("deleteIf", pred); err != nil {
		return nil, err
	}
	return a, nil
}

// KeepIf keeps the elements satisfying pred.
func (a *Accessible[T]) KeepIf(pred func(T) bool) (*Accessible[T], error) {
	if _, err := a.rejectInPlace("keepIf", func(v T) bool { return !pred(v) }); err != nil {
		return nil, err
	}
	return a, nil
}

// SliceRemove removes the elements addressed by sel and returns them. A
// single position yields a one-element slice. Nothing is removed when
// sel does not address the sequence.
func (a *Accessible[T]) SliceRemove(sel Selector) (g.Option[[]T], error) {
	if err := sel.check("sliceRemove"); err != nil {
		return g.None[[]T](), err
	}
	if sel.kind == selectPos {
		v, err := a.SliceRemoveAt(sel.pos)
		if err != nil || !v.Ok {
			return g.None[[]T](), err
		}
		return g.Some([]T{v.Value}), nil
	}
	from, count, ok, err := a.Readable.resolveSelector("sliceRemove", sel)
	if err != nil || !ok {
		return g.None[[]T](), err
	}
	removed, err := a.Readable.readN(from, count)
	if err != nil {
		return g.None[[]T](), err
	}
	for range count {
		if _, err := a.Writable.remove(from); err != nil {
			return g.None[[]T](), err
		}
	}
	return g.Some(removed), nil
}

// SliceRemoveAt removes the element at pos and returns it.
func (a *Accessible[T]) SliceRemoveAt(pos int) (g.Option[T], error) {
	n, err := a.Readable.size("sliceRemove")
	if err != nil {
		return g.None[T](), err
	}
	if pos < 0 {
		pos += n
	}
	if pos < 0 || pos >= n {
		return g.None[T](), nil
	}
	v, err := a.Writable.remove(pos)
	if err != nil {
		return g.None[T](), err
	}
	return g.Some(v), nil
}

// Pop removes the last element and returns it.
func (a *Accessible[T]) Pop() (g.Option[T], error) {
	vals, err := a.PopN(1)
	if err != nil || len(vals) == 0 {
		return g.None[T](), err
	}
	return g.Some(vals[0]), nil
}

// PopN removes up to k trailing elements and returns them in order.
func (a *Accessible[T]) PopN(k int) ([]T, error) {
	if k < 0 {
		return nil, argumentErrorf("popN", "negative array size")
	}
	if a.Writable.shrinker == nil && a.Writable.deleter != nil {
		return a.Writable.popDeleting("pop", k)
	}
	n, err := a.Readable.size("pop")
	if err != nil {
		return nil, err
	}
	k = min(k, n)
	vals, err := a.Readable.readN(n-k, k)
	if err != nil {
		return nil, err
	}
	if err := a.Writable.shrink("pop", k); err != nil {
		return nil, err
	}
	return vals, nil
}

// Shift removes the first element and returns it.
func (a *Accessible[T]) Shift() (g.Option[T], error) {
	vals, err := a.ShiftN(1)
	if err != nil || len(vals) == 0 {
		return g.None[T](), err
	}
	return g.Some(vals[0]), nil
}

// ShiftN removes up to k leading elements and returns them in order.
func (a *Accessible[T]) ShiftN(k int) ([]T, error) {
	if k < 0 {
		return nil, argumentErrorf("shiftN", "negative array size")
	}
	n, err := a.Readable.size("shift")
	if err != nil {
		return nil, err
	}
	k = min(k, n)
	vals := make([]T, 0, k)
	for range k {
		v, err := a.Writable.remove(0)
		if err != nil {
			return nil, err
		}
		vals = append(vals, v)
	}
	return vals, nil
}

// Unshift inserts vs at the front, keeping their order.
func (a *Accessible[T]) Unshift(vs ...T) (*Accessible[T], error) {
	if err := a.Writable.Insert(0, vs...); err != nil {
		return nil, err
	}
	return a, nil
}

// ============================================================================
// Whole-sequence rewrites
// ============================================================================

// rewrite replaces the contents with the result of fn applied to them.
func (a *Accessible[T]) rewrite(fn func() ([]T, error)) (*Accessible[T], error) {
	vals, err := fn()
	if err != nil {
		return nil, err
	}
	return a.Replace(vals)
}

// modify is rewrite for the operations that report whether anything
// changed: no value when fn's result equals the current contents.
func (a *Accessible[T]) modify(fn func() ([]T, error)) (g.Option[*Accessible[T]], error) {
	vals, err := fn()
	if err != nil {
		return g.None[*Accessible[T]](), err
	}
	same, err := a.Readable.Equal(vals)
	if err != nil || same {
		return g.None[*Accessible[T]](), err
	}
	if _, err := a.Replace(vals); err != nil {
		return g.None[*Accessible[T]](), err
	}
	return g.Some(a), nil
}

// CollectInPlace replaces every element with fn applied to it.
func (a *Accessible[T]) CollectInPlace(fn func(T) T) (*Accessible[T], error) {
	return a.rewrite(func() ([]T, error) { return a.Readable.Collect(fn) })
}

// SortInPlace sorts the elements under the configured ordering.
func (a *Accessible[T]) SortInPlace() (*Accessible[T], error) {
	return a.rewrite(a.Readable.Sort)
}

// SortFuncInPlace sorts the elements by compare.
func (a *Accessible[T]) SortFuncInPlace(compare func(x, y T) int) (*Accessible[T], error) {
	return a.rewrite(func() ([]T, error) { return a.Readable.SortFunc(compare) })
}

// SortByInPlace sorts the elements by the key computed once per element.
func (a *Accessible[T]) SortByInPlace(key func(T) any) (*Accessible[T], error) {
	return a.rewrite(func() ([]T, error) { return a.Readable.SortBy(key) })
}

// ReverseInPlace reverses the elements.
func (a *Accessible[T]) ReverseInPlace() (*Accessible[T], error) {
	return a.rewrite(a.Readable.Reverse)
}

// RotateInPlace rotates the elements so that position cnt comes first.
func (a *Accessible[T]) RotateInPlace(cnt int) (*Accessible[T], error) {
	return a.rewrite(func() ([]T, error) { return a.Readable.Rotate(cnt) })
}

// ShuffleInPlace puts the elements in random order.
func (a *Accessible[T]) ShuffleInPlace() (*Accessible[T], error) {
	return a.rewrite(a.Readable.Shuffle)
}

// CompactInPlace removes nil elements.
func (a *Accessible[T]) CompactInPlace() (g.Option[*Accessible[T]], error) {
	return a.modify(a.Readable.Compact)
}

// UniqInPlace removes duplicates.
func (a *Accessible[T]) UniqInPlace() (g.Option[*Accessible[T]], error) {
	return a.modify(a.Readable.Uniq)
}

// UniqByInPlace removes the elements whose key was seen before.
func (a *Accessible[T]) UniqByInPlace(key func(T) any) (g.Option[*Accessible[T]], error) {
	return a.modify(func() ([]T, error) { return a.Readable.UniqBy(key) })
}

// FlattenInPlace splices nested slices into the sequence depth levels
// deep. Every flattened item must be a T, so this is mostly useful for
// T = any.
func (a *Accessible[T]) FlattenInPlace(depth int) (g.Option[*Accessible[T]], error) {
	return a.modify(func() ([]T, error) {
		flat, err := a.Readable.Flatten(depth)
		if err != nil {
			return nil, err
		}
		out := make([]T, len(flat))
		for i, x := range flat {
			if bulk.IsNil(x) {
				continue
			}
			v, ok := x.(T)
			if !ok {
				return nil, argumentErrorf("flattenInPlace", "flattened %T is not an element", x)
			}
			out[i] = v
		}
		return out, nil
	})
}
