package randaccess

import (
	"fmt"
)

// Range is an integer range. Negative bounds count from the end.
type Range struct {
	First     int
	Last      int
	Exclusive bool
}

// Incl returns the range first..last, last included.
func Incl(first, last int) Range {
	return Range{First: first, Last: last}
}

// Excl returns the range first...last, last excluded.
func Excl(first, last int) Range {
	return Range{First: first, Last: last, Exclusive: true}
}

func (r Range) String() string {
	if r.Exclusive {
		return fmt.Sprintf("%d...%d", r.First, r.Last)
	}
	return fmt.Sprintf("%d..%d", r.First, r.Last)
}

// ============================================================================
// Selectors
// ============================================================================

type selectorKind uint8

const (
	selectInvalid selectorKind = iota
	selectPos
	selectSpan
	selectRange
)

// Selector addresses part of a sequence: one position, a start/length
// span or a range. The zero Selector is invalid and makes every
// operation fail with an ArgumentError.
type Selector struct {
	kind   selectorKind
	pos    int
	start  int
	length int
	rng    Range
	err    error
}

// Pos selects a single position.
func Pos(i int) Selector {
	return Selector{kind: selectPos, pos: i}
}

// Span selects length elements starting at start.
func Span(start, length int) Selector {
	return Selector{kind: selectSpan, start: start, length: length}
}

// In selects the elements covered by r.
func In(r Range) Selector {
	return Selector{kind: selectRange, rng: r}
}

// Args builds a selector from a variadic argument list: (int), (Range)
// or (int, int). Any other shape yields a selector that fails with an
// ArgumentError when used.
func Args(args ...any) Selector {
	switch len(args) {
	case 1:
		switch a := args[0].(type) {
		case int:
			return Pos(a)
		case Range:
			return In(a)
		}
		return Selector{err: argumentErrorf("", "no implicit conversion of %T into Integer", args[0])}
	case 2:
		start, ok1 := args[0].(int)
		length, ok2 := args[1].(int)
		if !ok1 || !ok2 {
			return Selector{err: argumentErrorf("", "start and length must be integers, got %T and %T", args[0], args[1])}
		}
		return Span(start, length)
	}
	return Selector{err: arityError("", len(args), "1..2")}
}

func (s Selector) check(op string) error {
	if s.kind != selectInvalid {
		return nil
	}
	if s.err != nil {
		return withOp(s.err, op)
	}
	return arityError(op, 0, "1..2")
}

func (s Selector) String() string {
	switch s.kind {
	case selectPos:
		return fmt.Sprintf("[%d]", s.pos)
	case selectSpan:
		return fmt.Sprintf("[%d, %d]", s.start, s.length)
	case selectRange:
		return "[" + s.rng.String() + "]"
	}
	return "[invalid]"
}

// ============================================================================
// Normalization
// ============================================================================

// resolveSpan maps a start/length pair onto absolute positions. ok is
// false when the pair does not address the sequence at all, which is
// distinct from addressing zero elements.
func (s *sizeTrait) resolveSpan(op string, start, length int) (from, count int, ok bool, err error) {
	if !s.hasCount() {
		if start < 0 {
			return 0, 0, false, missing(op, CapCount)
		}
		if length < 0 {
			return 0, 0, false, nil
		}
		return start, length, true, nil
	}
	n := s.counter.Count()
	if start < 0 {
		start += n
		if start < 0 {
			return 0, 0, false, nil
		}
	}
	if start > n || length < 0 {
		return 0, 0, false, nil
	}
	return start, min(length, n-start), true, nil
}

// resolveRange maps a range onto absolute positions with the same
// three-way outcome as resolveSpan. An inverted range whose first bound
// is in bounds addresses zero elements.
func (s *sizeTrait) resolveRange(op string, r Range) (from, count int, ok bool, err error) {
	first, last := r.First, r.Last
	if !s.hasCount() {
		if first < 0 || last < 0 {
			return 0, 0, false, missing(op, CapCount)
		}
		if r.Exclusive {
			last--
		}
		return first, max(0, last-first+1), true, nil
	}
	n := s.counter.Count()
	if first < 0 {
		first += n
		if first < 0 {
			return 0, 0, false, nil
		}
	}
	if first > n {
		return 0, 0, false, nil
	}
	if last < 0 {
		last += n
	}
	if r.Exclusive {
		last--
	}
	if last >= n {
		last = n - 1
	}
	return first, max(0, last-first+1), true, nil
}

// resolveSelector resolves any multi-element selector. Single positions
// resolve to a span of one element.
func (s *sizeTrait) resolveSelector(op string, sel Selector) (from, count int, ok bool, err error) {
	if err := sel.check(op); err != nil {
		return 0, 0, false, err
	}
	switch sel.kind {
	case selectSpan:
		return s.resolveSpan(op, sel.start, sel.length)
	case selectRange:
		return s.resolveRange(op, sel.rng)
	}
	pos, ok, err := s.resolvePos(op, sel.pos)
	if !ok || err != nil {
		return 0, 0, ok, err
	}
	return pos, 1, true, nil
}

// resolvePos normalizes a single read position. ok is false when the
// position is out of range.
func (s *sizeTrait) resolvePos(op string, pos int) (int, bool, error) {
	if pos >= 0 && !s.hasCount() {
		return pos, true, nil
	}
	n, err := s.size(op)
	if err != nil {
		return 0, false, err
	}
	if pos < 0 {
		pos += n
	}
	if pos < 0 || pos >= n {
		return 0, false, nil
	}
	return pos, true, nil
}
