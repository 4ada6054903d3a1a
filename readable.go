package randaccess

import (
	"fmt"
	"iter"
	"reflect"

	g "github.com/anacrolix/generics"

	"github.com/Pure-Company/randaccess/bulk"
)

// Materializer is anything that can produce its elements as a slice.
// Readable and Accessible implement it; the comparison and set
// operators accept it on their right-hand side.
type Materializer[T any] interface {
	ToSlice() ([]T, error)
}

// Readable derives the non-mutating sequence API from a single ReadAt
// primitive and an optional Count.
//
// Operations that need the element count fail with a
// *CapabilityMissingError when the container is not a Counter.
// Operations that only read trust the container to check bounds and
// return its errors unchanged.
type Readable[T any] struct {
	sizeTrait
	reader Reader[T]
	cfg    *config
}

// NewReadable wraps r.
//
// Example:
//
//	squares := ReadFunc[int](func(pos int) (int, error) {
//	    return pos * pos, nil
//	})
//	r := NewReadable[int](squares.Bounded(10))
//	last, _ := r.Last() // Some(81)
func NewReadable[T any](r Reader[T], opts ...Option) *Readable[T] {
	return newReadable(r, newConfig(opts))
}

func newReadable[T any](r Reader[T], cfg *config) *Readable[T] {
	return &Readable[T]{sizeTrait: newSizeTrait[T](r), reader: r, cfg: cfg}
}

func (r *Readable[T]) eq(a, b T) bool {
	return r.cfg.equal(a, b)
}

func (r *Readable[T]) compare(a, b T) (int, error) {
	c, ok := r.cfg.compare(a, b)
	if !ok {
		return 0, notComparable(a, b)
	}
	return c, nil
}

func notComparable(a, b any) error {
	return fmt.Errorf("randaccess: comparison of %T with %T failed: %w", a, b, ErrNotComparable)
}

// readN reads count elements starting at from.
func (r *Readable[T]) readN(from, count int) ([]T, error) {
	out := make([]T, 0, min(count, 1024))
	for i := 0; i < count; i++ {
		v, err := r.reader.ReadAt(from + i)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// materialize reads every element; op names the caller in errors.
func (r *Readable[T]) materialize(op string) ([]T, error) {
	n, err := r.size(op)
	if err != nil {
		return nil, err
	}
	return r.readN(0, n)
}

// other materializes the right-hand side of a binary operator.
func (r *Readable[T]) other(op string, v any) ([]T, error) {
	switch o := v.(type) {
	case []T:
		return o, nil
	case Materializer[T]:
		return o.ToSlice()
	}
	return nil, argumentErrorf(op, "no implicit conversion of %T into a sequence", v)
}

// ============================================================================
// Element access
// ============================================================================

// ToSlice returns every element.
func (r *Readable[T]) ToSlice() ([]T, error) {
	return r.materialize("toSlice")
}

// At returns the element at pos. Negative positions count from the end
// and need Count. Out-of-range positions yield no value, not an error.
func (r *Readable[T]) At(pos int) (g.Option[T], error) {
	p, ok, err := r.resolvePos("at", pos)
	if err != nil || !ok {
		return g.None[T](), err
	}
	v, err := r.reader.ReadAt(p)
	if err != nil {
		return g.None[T](), err
	}
	return g.Some(v), nil
}

// Slice returns the elements addressed by sel. The result is absent when
// sel does not address the sequence at all and empty when it addresses
// zero elements. A single position yields a one-element slice.
//
// Without Count, spans are read unclipped and negative positions fail.
func (r *Readable[T]) Slice(sel Selector) (g.Option[[]T], error) {
	from, count, ok, err := r.resolveSelector("slice", sel)
	if err != nil || !ok {
		return g.None[[]T](), err
	}
	vals, err := r.readN(from, count)
	if err != nil {
		return g.None[[]T](), err
	}
	return g.Some(vals), nil
}

// First returns the first element.
func (r *Readable[T]) First() (g.Option[T], error) {
	return r.At(0)
}

// FirstN returns up to n leading elements. Without Count exactly n
// elements are read.
func (r *Readable[T]) FirstN(n int) ([]T, error) {
	if n < 0 {
		return nil, argumentErrorf("firstN", "negative array size")
	}
	if r.hasCount() {
		n = min(n, r.counter.Count())
	}
	return r.readN(0, n)
}

// Last returns the last element.
func (r *Readable[T]) Last() (g.Option[T], error) {
	n, err := r.size("last")
	if err != nil || n == 0 {
		return g.None[T](), err
	}
	return r.At(n - 1)
}

// LastN returns up to n trailing elements.
func (r *Readable[T]) LastN(n int) ([]T, error) {
	if n < 0 {
		return nil, argumentErrorf("lastN", "negative array size")
	}
	size, err := r.size("lastN")
	if err != nil {
		return nil, err
	}
	n = min(n, size)
	return r.readN(size-n, n)
}

// Fetch returns the element at pos, or an *IndexError when pos is out of
// bounds and the count is known.
func (r *Readable[T]) Fetch(pos int) (T, error) {
	return r.fetch(pos, nil)
}

// FetchOr returns the element at pos, or def when pos is out of bounds.
func (r *Readable[T]) FetchOr(pos int, def T) (T, error) {
	return r.fetch(pos, func(int) T { return def })
}

// FetchOrElse returns the element at pos, or fallback(pos) when pos is
// out of bounds.
func (r *Readable[T]) FetchOrElse(pos int, fallback func(pos int) T) (T, error) {
	return r.fetch(pos, fallback)
}

func (r *Readable[T]) fetch(pos int, fallback func(int) T) (T, error) {
	var zero T
	if r.hasCount() {
		n := r.counter.Count()
		if pos < -n || pos >= n {
			if fallback != nil {
				return fallback(pos), nil
			}
			return zero, indexErrorf(pos, "index %d outside of the sequence bounds: %d...%d", pos, -n, n)
		}
	}
	v, err := r.At(pos)
	if err != nil {
		return zero, err
	}
	return v.Value, nil
}

// ValuesAt returns the elements addressed by every selector, in order.
// Positions past the end yield absent values. A range that still starts
// before zero after counting from the end is a *RangeError.
func (r *Readable[T]) ValuesAt(sels ...Selector) ([]g.Option[T], error) {
	var out []g.Option[T]
	for _, sel := range sels {
		if err := sel.check("valuesAt"); err != nil {
			return nil, err
		}
		switch sel.kind {
		case selectPos:
			v, err := r.At(sel.pos)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		case selectSpan:
			vals, err := r.Slice(sel)
			if err != nil {
				return nil, err
			}
			if vals.Ok {
				for _, v := range vals.Value {
					out = append(out, g.Some(v))
				}
			}
		case selectRange:
			first, last := sel.rng.First, sel.rng.Last
			if first < 0 || last < 0 {
				n, err := r.size("valuesAt")
				if err != nil {
					return nil, err
				}
				if first < 0 {
					first += n
				}
				if last < 0 {
					last += n
				}
			}
			if first < 0 {
				return nil, &RangeError{Range: sel.rng}
			}
			if sel.rng.Exclusive {
				last--
			}
			for i := first; i <= last; i++ {
				v, err := r.At(i)
				if err != nil {
					return nil, err
				}
				out = append(out, v)
			}
		}
	}
	return out, nil
}

// ============================================================================
// Iteration
// ============================================================================

// Each calls fn for every element in order until fn returns false.
func (r *Readable[T]) Each(fn func(i int, v T) bool) error {
	n, err := r.size("each")
	if err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		v, err := r.reader.ReadAt(i)
		if err != nil {
			return err
		}
		if !fn(i, v) {
			break
		}
	}
	return nil
}

// All yields every element in order. A missing Count or a failed read
// is yielded as the final pair with the zero value.
func (r *Readable[T]) All() iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		var zero T
		n, err := r.size("all")
		if err != nil {
			yield(zero, err)
			return
		}
		for i := 0; i < n; i++ {
			v, err := r.reader.ReadAt(i)
			if err != nil {
				yield(zero, err)
				return
			}
			if !yield(v, nil) {
				return
			}
		}
	}
}

// ReverseEach calls fn for every element from the last to the first
// until fn returns false.
func (r *Readable[T]) ReverseEach(fn func(i int, v T) bool) error {
	n, err := r.size("reverseEach")
	if err != nil {
		return err
	}
	for i := n - 1; i >= 0; i-- {
		v, err := r.reader.ReadAt(i)
		if err != nil {
			return err
		}
		if !fn(i, v) {
			break
		}
	}
	return nil
}

// Cycle calls fn for the elements over and over until fn returns false.
// Without Count it reads positions 0, 1, 2, ... and only stops when fn
// returns false or the container fails a read.
func (r *Readable[T]) Cycle(fn func(v T) bool) error {
	if !r.hasCount() {
		for i := 0; ; i++ {
			v, err := r.reader.ReadAt(i)
			if err != nil {
				return err
			}
			if !fn(v) {
				return nil
			}
		}
	}
	for {
		n := r.counter.Count()
		if n == 0 {
			return nil
		}
		for i := 0; i < n; i++ {
			v, err := r.reader.ReadAt(i)
			if err != nil {
				return err
			}
			if !fn(v) {
				return nil
			}
		}
	}
}

// CycleN calls fn for every element, times times over.
func (r *Readable[T]) CycleN(times int, fn func(v T) bool) error {
	n, err := r.size("cycleN")
	if err != nil {
		return err
	}
	for range times {
		for i := 0; i < n; i++ {
			v, err := r.reader.ReadAt(i)
			if err != nil {
				return err
			}
			if !fn(v) {
				return nil
			}
		}
	}
	return nil
}

// ============================================================================
// Search
// ============================================================================

// Index returns the position of the first element equal to v.
func (r *Readable[T]) Index(v T) (g.Option[int], error) {
	return r.IndexFunc(func(x T) bool { return r.eq(x, v) })
}

// IndexFunc returns the position of the first element satisfying pred.
func (r *Readable[T]) IndexFunc(pred func(T) bool) (g.Option[int], error) {
	found := g.None[int]()
	err := r.Each(func(i int, v T) bool {
		if pred(v) {
			found = g.Some(i)
			return false
		}
		return true
	})
	return found, err
}

// RIndex returns the position of the last element equal to v.
func (r *Readable[T]) RIndex(v T) (g.Option[int], error) {
	return r.RIndexFunc(func(x T) bool { return r.eq(x, v) })
}

// RIndexFunc returns the position of the last element satisfying pred.
func (r *Readable[T]) RIndexFunc(pred func(T) bool) (g.Option[int], error) {
	found := g.None[int]()
	err := r.ReverseEach(func(i int, v T) bool {
		if pred(v) {
			found = g.Some(i)
			return false
		}
		return true
	})
	return found, err
}

// Include reports whether some element equals v.
func (r *Readable[T]) Include(v T) (bool, error) {
	i, err := r.Index(v)
	return i.Ok, err
}

// IncludeFunc reports whether some element satisfies pred.
func (r *Readable[T]) IncludeFunc(pred func(T) bool) (bool, error) {
	i, err := r.IndexFunc(pred)
	return i.Ok, err
}

// elementAt returns the n-th item of v when v is a slice or an array.
func elementAt(v any, n int) (any, bool) {
	rv := reflect.ValueOf(v)
	if !isList(rv) || rv.Len() <= n {
		return nil, false
	}
	return rv.Index(n).Interface(), true
}

// Assoc returns the first element that is a non-empty slice whose first
// item equals key.
//
// Without Count the scan is unbounded: it reads positions 0, 1, 2, ...
// and ends only on a match or when the container fails a read.
func (r *Readable[T]) Assoc(key any) (g.Option[T], error) {
	match := func(v T) bool {
		k, ok := elementAt(v, 0)
		return ok && r.cfg.equal(k, key)
	}
	found := g.None[T]()
	visit := func(v T) bool {
		if match(v) {
			found = g.Some(v)
			return false
		}
		return true
	}
	var err error
	if r.hasCount() {
		err = r.Each(func(_ int, v T) bool { return visit(v) })
	} else {
		err = r.Cycle(visit)
	}
	return found, err
}

// Rassoc returns the first element that is a slice of at least two items
// whose second item equals v.
func (r *Readable[T]) Rassoc(v any) (g.Option[T], error) {
	found := g.None[T]()
	err := r.Each(func(_ int, el T) bool {
		if x, ok := elementAt(el, 1); ok && r.cfg.equal(x, v) {
			found = g.Some(el)
			return false
		}
		return true
	})
	return found, err
}

// ============================================================================
// Comparison
// ============================================================================

// Equal reports whether other holds equal elements in the same order.
// other may be a []T or any Materializer[T]. Without Count, Equal falls
// back to identity.
func (r *Readable[T]) Equal(other any) (bool, error) {
	if !r.hasCount() {
		switch o := other.(type) {
		case *Readable[T]:
			return o == r, nil
		case *Accessible[T]:
			return o.Readable == r, nil
		}
		return false, nil
	}
	var vals []T
	switch o := other.(type) {
	case []T:
		vals = o
	case Materializer[T]:
		var err error
		if vals, err = o.ToSlice(); err != nil {
			return false, err
		}
	default:
		return false, nil
	}
	n := r.counter.Count()
	if n != len(vals) {
		return false, nil
	}
	for i := 0; i < n; i++ {
		v, err := r.reader.ReadAt(i)
		if err != nil {
			return false, err
		}
		if !r.eq(v, vals[i]) {
			return false, nil
		}
	}
	return true, nil
}

// Compare orders r and other lexicographically: the first differing pair
// decides, then the shorter sequence comes first.
func (r *Readable[T]) Compare(other any) (int, error) {
	n, err := r.size("compare")
	if err != nil {
		return 0, err
	}
	vals, err := r.other("compare", other)
	if err != nil {
		return 0, err
	}
	for i := 0; i < min(n, len(vals)); i++ {
		v, err := r.reader.ReadAt(i)
		if err != nil {
			return 0, err
		}
		c, err := r.compare(v, vals[i])
		if err != nil {
			return 0, err
		}
		if c != 0 {
			return c, nil
		}
	}
	return cmpLen(n, len(vals)), nil
}

func cmpLen(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// ============================================================================
// Random draws
// ============================================================================

// Sample returns one element chosen at random.
func (r *Readable[T]) Sample() (g.Option[T], error) {
	n, err := r.size("sample")
	if err != nil || n == 0 {
		return g.None[T](), err
	}
	return r.At(r.cfg.rand.IntN(n))
}

// SampleN returns up to k distinct positions' elements chosen at random,
// in random order.
func (r *Readable[T]) SampleN(k int) ([]T, error) {
	if k < 0 {
		return nil, argumentErrorf("sampleN", "negative sample number")
	}
	n, err := r.size("sampleN")
	if err != nil {
		return nil, err
	}
	k = min(k, n)
	picked := make([]T, 0, k)
	for i := 0; i < n && k > 0; i++ {
		if r.cfg.rand.IntN(n-i) < k {
			v, err := r.reader.ReadAt(i)
			if err != nil {
				return nil, err
			}
			picked = append(picked, v)
			k--
		}
	}
	return bulk.Shuffle(picked, r.cfg.rand.IntN), nil
}
