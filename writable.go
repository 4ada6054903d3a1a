package randaccess

import (
	g "github.com/anacrolix/generics"
)

// Writable derives the mutating sequence API from a WriteAt primitive
// and whatever of Count, Expand, Shrink, InsertAt and DeleteAt the
// container also implements.
//
// A missing Expand is a no-op. Every other missing primitive makes the
// operations that need it fail with a *CapabilityMissingError.
type Writable[T any] struct {
	sizeTrait
	writer   Writer[T]
	expander Expander
	shrinker Shrinker
	inserter Inserter[T]
	deleter  Deleter[T]
	cfg      *config

	// insert and remove take normalized positions. Accessible swaps in
	// read/write fallbacks when InsertAt or DeleteAt is missing.
	insert func(pos int, v T) error
	remove func(pos int) (T, error)
}

// NewWritable wraps w.
func NewWritable[T any](w Writer[T], opts ...Option) *Writable[T] {
	return newWritable(w, newConfig(opts))
}

func newWritable[T any](w Writer[T], cfg *config) *Writable[T] {
	wr := &Writable[T]{sizeTrait: newSizeTrait[T](w), writer: w, cfg: cfg}
	if wr.caps.Has(CapExpand) {
		wr.expander = w.(Expander)
	}
	if wr.caps.Has(CapShrink) {
		wr.shrinker = w.(Shrinker)
	}
	if wr.caps.Has(CapInsertAt) {
		wr.inserter = w.(Inserter[T])
	}
	if wr.caps.Has(CapDeleteAt) {
		wr.deleter = w.(Deleter[T])
	}
	wr.insert = wr.insertPrimitive
	wr.remove = wr.removePrimitive
	return wr
}

func (w *Writable[T]) insertPrimitive(pos int, v T) error {
	if w.inserter == nil {
		return missing("insertAt", CapInsertAt)
	}
	return w.inserter.InsertAt(pos, v)
}

func (w *Writable[T]) removePrimitive(pos int) (T, error) {
	if w.deleter == nil {
		var zero T
		return zero, missing("deleteAt", CapDeleteAt)
	}
	return w.deleter.DeleteAt(pos)
}

func (w *Writable[T]) expand(n int) error {
	if n <= 0 || w.expander == nil {
		return nil
	}
	return w.expander.Expand(n)
}

// shrink fails without Shrink even when n is zero.
func (w *Writable[T]) shrink(op string, n int) error {
	if w.shrinker == nil {
		return missing(op, CapShrink)
	}
	if n <= 0 {
		return nil
	}
	return w.shrinker.Shrink(n)
}

// ============================================================================
// Single elements
// ============================================================================

// ReplaceAt stores v at pos. Negative positions count from the end;
// positions past the end grow the container first.
func (w *Writable[T]) ReplaceAt(pos int, v T) error {
	return w.replaceAt("replaceAt", pos, v)
}

func (w *Writable[T]) replaceAt(op string, pos int, v T) error {
	if pos < 0 {
		n, err := w.size(op)
		if err != nil {
			return err
		}
		if pos+n < 0 {
			return indexErrorf(pos, "index %d too small for array; minimum: -%d", pos, n)
		}
		pos += n
	}
	if w.hasCount() {
		if n := w.counter.Count(); pos >= n {
			if err := w.expand(pos - n + 1); err != nil {
				return err
			}
		}
	}
	return w.writer.WriteAt(pos, v)
}

// insertionPoint normalizes an insert position; -1 means after the last
// element.
func (w *Writable[T]) insertionPoint(op string, pos int) (int, error) {
	if pos >= 0 {
		return pos, nil
	}
	n, err := w.size(op)
	if err != nil {
		return 0, err
	}
	if n+pos+1 < 0 {
		return 0, indexErrorf(pos, "index %d too small for array; minimum: -%d", pos, n+1)
	}
	return n + pos + 1, nil
}

// InsertAt inserts v before pos. A negative pos counts from the end, so
// -1 appends.
func (w *Writable[T]) InsertAt(pos int, v T) error {
	p, err := w.insertionPoint("insertAt", pos)
	if err != nil {
		return err
	}
	return w.insert(p, v)
}

// Insert inserts vs before pos, keeping their order.
func (w *Writable[T]) Insert(pos int, vs ...T) error {
	if len(vs) == 0 {
		return nil
	}
	p, err := w.insertionPoint("insert", pos)
	if err != nil {
		return err
	}
	for i, v := range vs {
		if err := w.insert(p+i, v); err != nil {
			return err
		}
	}
	return nil
}

// DeleteAt removes the element at pos and returns it. Out-of-range
// positions remove nothing.
func (w *Writable[T]) DeleteAt(pos int) (g.Option[T], error) {
	p, ok, err := w.resolvePos("deleteAt", pos)
	if err != nil || !ok {
		return g.None[T](), err
	}
	v, err := w.remove(p)
	if err != nil {
		return g.None[T](), err
	}
	return g.Some(v), nil
}

// ============================================================================
// Growing and shrinking
// ============================================================================

// Append stores v after the last element.
func (w *Writable[T]) Append(v T) error {
	n, err := w.size("append")
	if err != nil {
		return err
	}
	if err := w.expand(1); err != nil {
		return err
	}
	return w.writer.WriteAt(n, v)
}

// Push appends vs in order.
func (w *Writable[T]) Push(vs ...T) error {
	for _, v := range vs {
		n, err := w.size("push")
		if err != nil {
			return err
		}
		if err := w.replaceAt("push", n, v); err != nil {
			return err
		}
	}
	return nil
}

// Concat appends every element of other.
func (w *Writable[T]) Concat(other []T) error {
	n, err := w.size("concat")
	if err != nil {
		return err
	}
	if err := w.expand(len(other)); err != nil {
		return err
	}
	for i, v := range other {
		if err := w.replaceAt("concat", n+i, v); err != nil {
			return err
		}
	}
	return nil
}

// Clear removes every element.
func (w *Writable[T]) Clear() error {
	n, err := w.size("clear")
	if err != nil {
		return err
	}
	return w.shrink("clear", n)
}

// Replace makes the contents equal to other, resizing as needed.
func (w *Writable[T]) Replace(other []T) (*Writable[T], error) {
	if err := w.replace(other); err != nil {
		return nil, err
	}
	return w, nil
}

func (w *Writable[T]) replace(other []T) error {
	n, err := w.size("replace")
	if err != nil {
		return err
	}
	switch diff := len(other) - n; {
	case diff < 0:
		err = w.shrink("replace", -diff)
	case diff > 0:
		err = w.expand(diff)
	}
	if err != nil {
		return err
	}
	for i, v := range other {
		if err := w.replaceAt("replace", i, v); err != nil {
			return err
		}
	}
	return nil
}

// ============================================================================
// Assignment
// ============================================================================

// Assign stores v at the elements addressed by sel. For a span or a
// range, v is spread when it is a []T or a Materializer[T]; any other
// value replaces the span as a single element.
func (w *Writable[T]) Assign(sel Selector, v T) error {
	if err := sel.check("assign"); err != nil {
		return err
	}
	if sel.kind == selectPos {
		return w.replaceAt("assign", sel.pos, v)
	}
	var vals []T
	switch x := any(v).(type) {
	case []T:
		vals = x
	case Materializer[T]:
		var err error
		if vals, err = x.ToSlice(); err != nil {
			return err
		}
	default:
		vals = []T{v}
	}
	return w.assign("assign", sel, vals)
}

// AssignSlice replaces the elements addressed by sel with vals. A single
// position is treated as a span of one element.
func (w *Writable[T]) AssignSlice(sel Selector, vals []T) error {
	if err := sel.check("assignSlice"); err != nil {
		return err
	}
	if sel.kind == selectPos {
		sel = Span(sel.pos, 1)
	}
	return w.assign("assignSlice", sel, vals)
}

func (w *Writable[T]) assign(op string, sel Selector, vals []T) error {
	if sel.kind == selectSpan {
		return w.assignSpan(op, sel.start, sel.length, vals)
	}
	r := sel.rng
	first, last := r.First, r.Last
	if first < 0 {
		if !w.hasCount() {
			return &RangeError{Range: r}
		}
		first += w.counter.Count()
		if first < 0 {
			return &RangeError{Range: r}
		}
	}
	if last < 0 {
		n, err := w.size(op)
		if err != nil {
			return err
		}
		last += n
	}
	if r.Exclusive {
		last--
	}
	return w.assignSpan(op, first, max(0, last-first+1), vals)
}

// assignSpan reconciles a span with its replacement. Positions are
// relative to the state after each primitive call: excess span elements
// are deleted at start+len(vals), extra replacement elements are
// inserted at start+length+i.
func (w *Writable[T]) assignSpan(op string, start, length int, vals []T) error {
	if w.hasCount() {
		n := w.counter.Count()
		if start < 0 {
			if start < -n {
				return indexErrorf(start, "index %d too small for array; minimum: -%d", start, n)
			}
			start += n
		}
		if length < 0 {
			return indexErrorf(start, "negative length (%d)", length)
		}
		if start > n {
			if err := w.expand(start - n); err != nil {
				return err
			}
			n = start
		}
		length = min(length, n-start)
	} else {
		if start < 0 {
			return missing(op, CapCount)
		}
		if length < 0 {
			return indexErrorf(start, "negative length (%d)", length)
		}
	}

	if len(vals) < length {
		for range length - len(vals) {
			if _, err := w.remove(start + len(vals)); err != nil {
				return err
			}
		}
		for i, v := range vals {
			if err := w.writer.WriteAt(start+i, v); err != nil {
				return err
			}
		}
		return nil
	}
	for i := 0; i < length; i++ {
		if err := w.writer.WriteAt(start+i, vals[i]); err != nil {
			return err
		}
	}
	for i := length; i < len(vals); i++ {
		if err := w.insert(start+i, vals[i]); err != nil {
			return err
		}
	}
	return nil
}

// ============================================================================
// Fill
// ============================================================================

// Fill stores v at every position addressed by bounds: none for the
// whole sequence, (start) up to the end, or (start, length). Positions
// past the end grow the container.
func (w *Writable[T]) Fill(v T, bounds ...int) error {
	return w.fill("fill", func(int) T { return v }, bounds)
}

// FillFunc is Fill with the value computed from the position.
func (w *Writable[T]) FillFunc(gen func(pos int) T, bounds ...int) error {
	return w.fill("fillFunc", gen, bounds)
}

// FillRange stores v at every position in r, last bound included unless
// r is exclusive.
func (w *Writable[T]) FillRange(v T, r Range) error {
	return w.fillRange("fillRange", func(int) T { return v }, r)
}

// FillRangeFunc is FillRange with the value computed from the position.
func (w *Writable[T]) FillRangeFunc(gen func(pos int) T, r Range) error {
	return w.fillRange("fillRangeFunc", gen, r)
}

func (w *Writable[T]) fill(op string, gen func(int) T, bounds []int) error {
	var start, end int
	switch len(bounds) {
	case 0, 1:
		n, err := w.size(op)
		if err != nil {
			return err
		}
		end = n
		if len(bounds) == 1 {
			start = bounds[0]
			if start < 0 {
				start = max(0, start+n)
			}
		}
	case 2:
		start = bounds[0]
		if start < 0 {
			n, err := w.size(op)
			if err != nil {
				return err
			}
			start = max(0, start+n)
		}
		end = start + bounds[1]
	default:
		return arityError(op, len(bounds)+1, "1..3")
	}
	for i := start; i < end; i++ {
		if err := w.replaceAt(op, i, gen(i)); err != nil {
			return err
		}
	}
	return nil
}

func (w *Writable[T]) fillRange(op string, gen func(int) T, r Range) error {
	first, last := r.First, r.Last
	if first < 0 || last < 0 {
		n, err := w.size(op)
		if err != nil {
			return err
		}
		if first < 0 {
			first += n
			if first < 0 {
				return &RangeError{Range: r}
			}
		}
		if last < 0 {
			last += n
		}
	}
	if r.Exclusive {
		last--
	}
	for i := first; i <= last; i++ {
		if err := w.replaceAt(op, i, gen(i)); err != nil {
			return err
		}
	}
	return nil
}

// ============================================================================
// Removal from the ends
// ============================================================================

// Pop removes the last element. Without Shrink it goes through DeleteAt
// and returns the removed element; through Shrink a bare Writable cannot
// read it, so the result is absent. Accessible always returns it.
func (w *Writable[T]) Pop() (g.Option[T], error) {
	vals, err := w.PopN(1)
	if err != nil || len(vals) == 0 {
		return g.None[T](), err
	}
	return g.Some(vals[0]), nil
}

// PopN removes up to n trailing elements. The removed elements are
// returned only when DeleteAt removed them.
func (w *Writable[T]) PopN(n int) ([]T, error) {
	if n < 0 {
		return nil, argumentErrorf("popN", "negative array size")
	}
	if w.shrinker == nil && w.deleter != nil {
		return w.popDeleting("pop", n)
	}
	if w.hasCount() {
		n = min(n, w.counter.Count())
	}
	return nil, w.shrink("pop", n)
}

// popDeleting removes the last k elements from the back, one DeleteAt
// each, and returns them in order.
func (w *Writable[T]) popDeleting(op string, k int) ([]T, error) {
	n, err := w.size(op)
	if err != nil {
		return nil, err
	}
	k = min(k, n)
	vals := make([]T, k)
	for i := k - 1; i >= 0; i-- {
		v, err := w.remove(n - k + i)
		if err != nil {
			return nil, err
		}
		vals[i] = v
	}
	return vals, nil
}

// Shift removes the first element through DeleteAt and returns it.
func (w *Writable[T]) Shift() (g.Option[T], error) {
	return w.DeleteAt(0)
}

// ShiftN removes up to n leading elements and returns them in order.
func (w *Writable[T]) ShiftN(n int) ([]T, error) {
	if n < 0 {
		return nil, argumentErrorf("shiftN", "negative array size")
	}
	vals := make([]T, 0, min(n, 1024))
	for range n {
		v, err := w.DeleteAt(0)
		if err != nil {
			return nil, err
		}
		if !v.Ok {
			break
		}
		vals = append(vals, v.Value)
	}
	return vals, nil
}
