package randaccess

import (
	"iter"
	"strings"
)

// ============================================================================
// Primitive capabilities
// ============================================================================

// Reader is the read primitive. The caller guarantees pos >= 0, and
// pos < Count() when the container is also a Counter.
type Reader[T any] interface {
	ReadAt(pos int) (T, error)
}

// Counter reports the number of elements.
type Counter interface {
	Count() int
}

// Writer is the write primitive. The caller guarantees pos >= 0, and
// pos < Count() when the container is also a Counter.
type Writer[T any] interface {
	WriteAt(pos int, v T) error
}

// Expander grows the container by n elements at the end.
type Expander interface {
	Expand(n int) error
}

// Shrinker removes n elements from the end.
type Shrinker interface {
	Shrink(n int) error
}

// Inserter inserts v before pos, shifting the following elements.
type Inserter[T any] interface {
	InsertAt(pos int, v T) error
}

// Deleter removes the element at pos and returns it.
type Deleter[T any] interface {
	DeleteAt(pos int) (T, error)
}

// Container is the minimum a type needs to be wrapped by New.
type Container[T any] interface {
	Reader[T]
	Writer[T]
}

// CapabilityReporter lets a type narrow its capability set below its
// method set. Funcs uses it so that a nil field is not a capability.
type CapabilityReporter interface {
	Capabilities() Capability
}

// ============================================================================
// Capability sets
// ============================================================================

// Capability is a set of primitives.
type Capability uint8

const (
	CapReadAt Capability = 1 << iota
	CapCount
	CapWriteAt
	CapExpand
	CapShrink
	CapInsertAt
	CapDeleteAt

	capNone Capability = 0
	CapAll             = CapReadAt | CapCount | CapWriteAt | CapExpand | CapShrink | CapInsertAt | CapDeleteAt
)

var capabilityNames = [...]string{"readAt", "count", "writeAt", "expand", "shrink", "insertAt", "deleteAt"}

// Has reports whether every capability in o is in c.
func (c Capability) Has(o Capability) bool {
	return c&o == o
}

func (c Capability) String() string {
	if c == capNone {
		return "none"
	}
	var names []string
	for i, name := range capabilityNames {
		if c&(1<<i) != 0 {
			names = append(names, name)
		}
	}
	return strings.Join(names, "|")
}

// CapabilitiesOf returns the primitives implemented by c for element
// type T. The set depends only on the dynamic type of c, never on what
// its methods do.
func CapabilitiesOf[T any](c any) Capability {
	var caps Capability
	if _, ok := c.(Reader[T]); ok {
		caps |= CapReadAt
	}
	if _, ok := c.(Counter); ok {
		caps |= CapCount
	}
	if _, ok := c.(Writer[T]); ok {
		caps |= CapWriteAt
	}
	if _, ok := c.(Expander); ok {
		caps |= CapExpand
	}
	if _, ok := c.(Shrinker); ok {
		caps |= CapShrink
	}
	if _, ok := c.(Inserter[T]); ok {
		caps |= CapInsertAt
	}
	if _, ok := c.(Deleter[T]); ok {
		caps |= CapDeleteAt
	}
	if r, ok := c.(CapabilityReporter); ok {
		caps &= r.Capabilities()
	}
	return caps
}

// ============================================================================
// Size trait
// ============================================================================

// sizeTrait is the part shared by the read and the write side: an
// optional element count and the queries derived from it.
type sizeTrait struct {
	counter Counter
	caps    Capability
}

func newSizeTrait[T any](c any) sizeTrait {
	caps := CapabilitiesOf[T](c)
	st := sizeTrait{caps: caps}
	if caps.Has(CapCount) {
		st.counter = c.(Counter)
	}
	return st
}

func (s *sizeTrait) hasCount() bool {
	return s.counter != nil
}

func (s *sizeTrait) size(op string) (int, error) {
	if s.counter == nil {
		return 0, missing(op, CapCount)
	}
	return s.counter.Count(), nil
}

// Capabilities returns the primitives of the wrapped container.
func (s *sizeTrait) Capabilities() Capability {
	return s.caps
}

// Count returns the number of elements.
func (s *sizeTrait) Count() (int, error) {
	return s.size("count")
}

// IsEmpty reports whether Count() <= 0. A container without a count is
// never empty; this is not an error.
func (s *sizeTrait) IsEmpty() bool {
	if s.counter == nil {
		return false
	}
	return s.counter.Count() <= 0
}

// EachIndex calls fn with 0, 1, ..., Count()-1 and stops early when fn
// returns false. No element is read.
func (s *sizeTrait) EachIndex(fn func(i int) bool) error {
	n, err := s.size("eachIndex")
	if err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		if !fn(i) {
			break
		}
	}
	return nil
}

// Indexes is the iterator form of EachIndex.
func (s *sizeTrait) Indexes() (iter.Seq[int], error) {
	n, err := s.size("indexes")
	if err != nil {
		return nil, err
	}
	return func(yield func(int) bool) {
		for i := range n {
			if !yield(i) {
				return
			}
		}
	}, nil
}
