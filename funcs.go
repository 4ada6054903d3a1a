package randaccess

import (
	"sync"
)

// ============================================================================
// Primitive Bindings
// ============================================================================

// ReadFunc is a functional binding for Reader.
// It implements Reader and provides composition methods.
//
// Example:
//
//	squares := ReadFunc[int](func(pos int) (int, error) {
//	    return pos * pos, nil
//	})
//
//	// Compose with transformations, then give it a length
//	r := NewReadable[int](squares.Map(negate).Bounded(10))
type ReadFunc[T any] func(pos int) (T, error)

// ReadAt implements Reader.
func (f ReadFunc[T]) ReadAt(pos int) (T, error) {
	return f(pos)
}

// Empty returns a reader whose every position is out of bounds (Monoid
// identity under Concat).
func (f ReadFunc[T]) Empty() ReadFunc[T] {
	return func(pos int) (T, error) {
		var zero T
		return zero, indexErrorf(pos, "index %d outside of an empty sequence", pos)
	}
}

// Concat reads the first n positions from f and the rest from next.
func (f ReadFunc[T]) Concat(n int, next ReadFunc[T]) ReadFunc[T] {
	return func(pos int) (T, error) {
		if pos < n {
			return f(pos)
		}
		return next(pos - n)
	}
}

// Map transforms every element as it is read.
func (f ReadFunc[T]) Map(transform func(T) T) ReadFunc[T] {
	return func(pos int) (T, error) {
		v, err := f(pos)
		if err != nil {
			return v, err
		}
		return transform(v), nil
	}
}

// Retry retries a failed read up to maxRetries times.
func (f ReadFunc[T]) Retry(maxRetries int) ReadFunc[T] {
	return func(pos int) (T, error) {
		var v T
		var err error
		for i := 0; i <= maxRetries; i++ {
			if v, err = f(pos); err == nil {
				return v, nil
			}
		}
		return v, err
	}
}

// Tap allows side effects without modifying the read.
func (f ReadFunc[T]) Tap(fn func(pos int, v T, err error)) ReadFunc[T] {
	return func(pos int) (T, error) {
		v, err := f(pos)
		fn(pos, v, err)
		return v, err
	}
}

// WithCount pairs f with a count.
func (f ReadFunc[T]) WithCount(count func() int) Funcs[T] {
	return Funcs[T]{ReadAtFunc: f, CountFunc: count}
}

// Bounded pairs f with a fixed count of n.
func (f ReadFunc[T]) Bounded(n int) Funcs[T] {
	return f.WithCount(func() int { return n })
}

// WriteFunc is a functional binding for Writer.
//
// Example:
//
//	log := WriteFunc[string](func(pos int, v string) error {
//	    fmt.Println(pos, v)
//	    return nil
//	})
//	w := NewWritable[string](log.Tee(store))
type WriteFunc[T any] func(pos int, v T) error

// WriteAt implements Writer.
func (f WriteFunc[T]) WriteAt(pos int, v T) error {
	return f(pos, v)
}

// Empty returns a writer that discards every write (Monoid identity).
func (f WriteFunc[T]) Empty() WriteFunc[T] {
	return func(int, T) error { return nil }
}

// Tee writes to f and then to every other writer, stopping at the first
// error.
func (f WriteFunc[T]) Tee(others ...Writer[T]) WriteFunc[T] {
	return func(pos int, v T) error {
		if err := f(pos, v); err != nil {
			return err
		}
		for _, o := range others {
			if err := o.WriteAt(pos, v); err != nil {
				return err
			}
		}
		return nil
	}
}

// Map transforms every element before it is written.
func (f WriteFunc[T]) Map(transform func(T) T) WriteFunc[T] {
	return func(pos int, v T) error {
		return f(pos, transform(v))
	}
}

// Tap allows side effects without modifying the write.
func (f WriteFunc[T]) Tap(fn func(pos int, v T, err error)) WriteFunc[T] {
	return func(pos int, v T) error {
		err := f(pos, v)
		fn(pos, v, err)
		return err
	}
}

// CountFunc is a functional binding for Counter.
type CountFunc func() int

// Count implements Counter.
func (f CountFunc) Count() int {
	return f()
}

// ExpandFunc is a functional binding for Expander.
type ExpandFunc func(n int) error

// Expand implements Expander.
func (f ExpandFunc) Expand(n int) error {
	return f(n)
}

// ShrinkFunc is a functional binding for Shrinker.
type ShrinkFunc func(n int) error

// Shrink implements Shrinker.
func (f ShrinkFunc) Shrink(n int) error {
	return f(n)
}

// InsertFunc is a functional binding for Inserter.
type InsertFunc[T any] func(pos int, v T) error

// InsertAt implements Inserter.
func (f InsertFunc[T]) InsertAt(pos int, v T) error {
	return f(pos, v)
}

// DeleteFunc is a functional binding for Deleter.
type DeleteFunc[T any] func(pos int) (T, error)

// DeleteAt implements Deleter.
func (f DeleteFunc[T]) DeleteAt(pos int) (T, error) {
	return f(pos)
}

// ============================================================================
// Container Binding
// ============================================================================

// Funcs is a functional binding for a whole container. A nil field is a
// missing capability: Capabilities reports exactly the non-nil fields,
// so the traits never call one.
//
// Example:
//
//	var data []string
//	a := New[string](Funcs[string]{
//	    ReadAtFunc:  func(pos int) (string, error) { return data[pos], nil },
//	    WriteAtFunc: func(pos int, v string) error { data[pos] = v; return nil },
//	    CountFunc:   func() int { return len(data) },
//	    ExpandFunc:  func(n int) error { data = append(data, make([]string, n)...); return nil },
//	})
type Funcs[T any] struct {
	ReadAtFunc   func(pos int) (T, error)
	CountFunc    func() int
	WriteAtFunc  func(pos int, v T) error
	ExpandFunc   func(n int) error
	ShrinkFunc   func(n int) error
	InsertAtFunc func(pos int, v T) error
	DeleteAtFunc func(pos int) (T, error)
}

// ReadAt implements Reader.
func (f Funcs[T]) ReadAt(pos int) (T, error) {
	if f.ReadAtFunc == nil {
		var zero T
		return zero, missing("readAt", CapReadAt)
	}
	return f.ReadAtFunc(pos)
}

// Count implements Counter. It returns 0 when CountFunc is nil.
func (f Funcs[T]) Count() int {
	if f.CountFunc == nil {
		return 0
	}
	return f.CountFunc()
}

// WriteAt implements Writer.
func (f Funcs[T]) WriteAt(pos int, v T) error {
	if f.WriteAtFunc == nil {
		return missing("writeAt", CapWriteAt)
	}
	return f.WriteAtFunc(pos, v)
}

// Expand implements Expander.
func (f Funcs[T]) Expand(n int) error {
	if f.ExpandFunc == nil {
		return nil
	}
	return f.ExpandFunc(n)
}

// Shrink implements Shrinker.
func (f Funcs[T]) Shrink(n int) error {
	if f.ShrinkFunc == nil {
		return missing("shrink", CapShrink)
	}
	return f.ShrinkFunc(n)
}

// InsertAt implements Inserter.
func (f Funcs[T]) InsertAt(pos int, v T) error {
	if f.InsertAtFunc == nil {
		return missing("insertAt", CapInsertAt)
	}
	return f.InsertAtFunc(pos, v)
}

// DeleteAt implements Deleter.
func (f Funcs[T]) DeleteAt(pos int) (T, error) {
	if f.DeleteAtFunc == nil {
		var zero T
		return zero, missing("deleteAt", CapDeleteAt)
	}
	return f.DeleteAtFunc(pos)
}

// Capabilities implements CapabilityReporter.
func (f Funcs[T]) Capabilities() Capability {
	var caps Capability
	set := func(c Capability, ok bool) {
		if ok {
			caps |= c
		}
	}
	set(CapReadAt, f.ReadAtFunc != nil)
	set(CapCount, f.CountFunc != nil)
	set(CapWriteAt, f.WriteAtFunc != nil)
	set(CapExpand, f.ExpandFunc != nil)
	set(CapShrink, f.ShrinkFunc != nil)
	set(CapInsertAt, f.InsertAtFunc != nil)
	set(CapDeleteAt, f.DeleteAtFunc != nil)
	return caps
}

// ============================================================================
// Helper Functions for Common Patterns
// ============================================================================

// FuncsOf binds the primitives c implements for element type T. The
// result has the same capability set as c, which makes it the starting
// point for decorators.
func FuncsOf[T any](c any) Funcs[T] {
	caps := CapabilitiesOf[T](c)
	var f Funcs[T]
	if caps.Has(CapReadAt) {
		f.ReadAtFunc = c.(Reader[T]).ReadAt
	}
	if caps.Has(CapCount) {
		f.CountFunc = c.(Counter).Count
	}
	if caps.Has(CapWriteAt) {
		f.WriteAtFunc = c.(Writer[T]).WriteAt
	}
	if caps.Has(CapExpand) {
		f.ExpandFunc = c.(Expander).Expand
	}
	if caps.Has(CapShrink) {
		f.ShrinkFunc = c.(Shrinker).Shrink
	}
	if caps.Has(CapInsertAt) {
		f.InsertAtFunc = c.(Inserter[T]).InsertAt
	}
	if caps.Has(CapDeleteAt) {
		f.DeleteAtFunc = c.(Deleter[T]).DeleteAt
	}
	return f
}

// SliceFuncs binds a container to the slice behind s. Every capability
// is present; positions are not bounds-checked beyond what slice
// indexing does.
func SliceFuncs[T any](s *[]T) Funcs[T] {
	return Funcs[T]{
		ReadAtFunc: func(pos int) (T, error) { return (*s)[pos], nil },
		CountFunc:  func() int { return len(*s) },
		WriteAtFunc: func(pos int, v T) error {
			(*s)[pos] = v
			return nil
		},
		ExpandFunc: func(n int) error {
			*s = append(*s, make([]T, n)...)
			return nil
		},
		ShrinkFunc: func(n int) error {
			*s = (*s)[:len(*s)-n]
			return nil
		},
		InsertAtFunc: func(pos int, v T) error {
			var zero T
			*s = append(*s, zero)
			copy((*s)[pos+1:], (*s)[pos:])
			(*s)[pos] = v
			return nil
		},
		DeleteAtFunc: func(pos int) (T, error) {
			v := (*s)[pos]
			*s = append((*s)[:pos], (*s)[pos+1:]...)
			return v, nil
		},
	}
}

// CallMetrics counts primitive calls per capability.
type CallMetrics struct {
	mu     sync.Mutex
	calls  map[Capability]int64
	errors int64
}

func (m *CallMetrics) record(c Capability, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.calls == nil {
		m.calls = make(map[Capability]int64)
	}
	m.calls[c]++
	if err != nil {
		m.errors++
	}
}

// Calls returns how many times the primitive c was called.
func (m *CallMetrics) Calls(c Capability) int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[c]
}

// Errors returns how many primitive calls failed.
func (m *CallMetrics) Errors() int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.errors
}

// WithMetrics wraps c so that every primitive call is counted in m. The
// capability set of c is preserved.
func WithMetrics[T any](c any, m *CallMetrics) Funcs[T] {
	f := FuncsOf[T](c)
	if read := f.ReadAtFunc; read != nil {
		f.ReadAtFunc = func(pos int) (T, error) {
			v, err := read(pos)
			m.record(CapReadAt, err)
			return v, err
		}
	}
	if count := f.CountFunc; count != nil {
		f.CountFunc = func() int {
			m.record(CapCount, nil)
			return count()
		}
	}
	if write := f.WriteAtFunc; write != nil {
		f.WriteAtFunc = func(pos int, v T) error {
			err := write(pos, v)
			m.record(CapWriteAt, err)
			return err
		}
	}
	if expand := f.ExpandFunc; expand != nil {
		f.ExpandFunc = func(n int) error {
			err := expand(n)
			m.record(CapExpand, err)
			return err
		}
	}
	if shrink := f.ShrinkFunc; shrink != nil {
		f.ShrinkFunc = func(n int) error {
			err := shrink(n)
			m.record(CapShrink, err)
			return err
		}
	}
	if insert := f.InsertAtFunc; insert != nil {
		f.InsertAtFunc = func(pos int, v T) error {
			err := insert(pos, v)
			m.record(CapInsertAt, err)
			return err
		}
	}
	if del := f.DeleteAtFunc; del != nil {
		f.DeleteAtFunc = func(pos int) (T, error) {
			v, err := del(pos)
			m.record(CapDeleteAt, err)
			return v, err
		}
	}
	return f
}
