package randaccess

import (
	"cmp"
	"math/rand/v2"
	"reflect"

	"github.com/Pure-Company/randaccess/bulk"
)

// Rand is the randomness source used by Sample and Shuffle. It is not
// required to be cryptographically secure. *rand.Rand from math/rand/v2
// satisfies it.
type Rand interface {
	IntN(n int) int
}

// RandFunc is a functional binding for Rand.
type RandFunc func(n int) int

// IntN implements Rand.
func (f RandFunc) IntN(n int) int {
	return f(n)
}

type config struct {
	equal   func(a, b any) bool
	compare func(a, b any) (int, bool)
	rand    Rand
}

func newConfig(opts []Option) *config {
	cfg := &config{
		equal:   Equal,
		compare: Compare,
		rand:    RandFunc(rand.IntN),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Option configures a Readable, Writable or Accessible during creation.
type Option func(*config)

// WithEqual sets the element equality used by searches, Delete and the
// set operators.
func WithEqual(eq func(a, b any) bool) Option {
	return func(c *config) {
		if eq != nil {
			c.equal = eq
		}
	}
}

// WithCompare sets the element ordering used by Compare and Sort. The
// function reports false when a and b have no ordering.
func WithCompare(compare func(a, b any) (int, bool)) Option {
	return func(c *config) {
		if compare != nil {
			c.compare = compare
		}
	}
}

// WithNaturalOrder orders strings so that embedded numbers compare by
// value ("a2" < "a10").
func WithNaturalOrder() Option {
	return func(c *config) {
		base := c.compare
		c.compare = func(a, b any) (int, bool) {
			as, aok := a.(string)
			bs, bok := b.(string)
			if !aok || !bok {
				return base(a, b)
			}
			switch {
			case as == bs:
				return 0, true
			case bulk.NaturalLess(as, bs):
				return -1, true
			default:
				return 1, true
			}
		}
	}
}

// WithRand sets the randomness source of Sample and Shuffle.
func WithRand(r Rand) Option {
	return func(c *config) {
		if r != nil {
			c.rand = r
		}
	}
}

// ============================================================================
// Default element semantics
// ============================================================================

// Equal is the default element equality. Numbers compare by value across
// kinds, so 2 == 2.0; everything else uses reflect.DeepEqual.
func Equal(a, b any) bool {
	if x, y, ok := numbers(a, b); ok {
		return x.compare(y) == 0
	}
	return reflect.DeepEqual(a, b)
}

// Compare is the default element ordering. Numbers compare by value,
// strings bytewise, slices and arrays lexicographically and then by
// length. Any other pair is not comparable.
func Compare(a, b any) (int, bool) {
	if x, y, ok := numbers(a, b); ok {
		return x.compare(y), true
	}
	if as, ok := a.(string); ok {
		bs, ok := b.(string)
		if !ok {
			return 0, false
		}
		return cmp.Compare(as, bs), true
	}
	av, bv := reflect.ValueOf(a), reflect.ValueOf(b)
	if isList(av) && isList(bv) {
		n := min(av.Len(), bv.Len())
		for i := 0; i < n; i++ {
			c, ok := Compare(av.Index(i).Interface(), bv.Index(i).Interface())
			if !ok {
				return 0, false
			}
			if c != 0 {
				return c, true
			}
		}
		return cmp.Compare(av.Len(), bv.Len()), true
	}
	return 0, false
}

func isList(v reflect.Value) bool {
	return v.IsValid() && (v.Kind() == reflect.Slice || v.Kind() == reflect.Array)
}

// number holds either an exact integer or a float.
type number struct {
	i       int64
	u       uint64
	f       float64
	kind    int // 0 signed, 1 unsigned, 2 float
	present bool
}

func toNumber(v any) number {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return number{}
	}
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return number{i: rv.Int(), kind: 0, present: true}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return number{u: rv.Uint(), kind: 1, present: true}
	case reflect.Float32, reflect.Float64:
		return number{f: rv.Float(), kind: 2, present: true}
	}
	return number{}
}

func numbers(a, b any) (number, number, bool) {
	x := toNumber(a)
	if !x.present {
		return x, number{}, false
	}
	y := toNumber(b)
	return x, y, y.present
}

func (n number) float() float64 {
	switch n.kind {
	case 0:
		return float64(n.i)
	case 1:
		return float64(n.u)
	}
	return n.f
}

func (n number) compare(o number) int {
	switch {
	case n.kind == 0 && o.kind == 0:
		return cmp.Compare(n.i, o.i)
	case n.kind == 1 && o.kind == 1:
		return cmp.Compare(n.u, o.u)
	case n.kind == 0 && o.kind == 1:
		if n.i < 0 {
			return -1
		}
		return cmp.Compare(uint64(n.i), o.u)
	case n.kind == 1 && o.kind == 0:
		if o.i < 0 {
			return 1
		}
		return cmp.Compare(n.u, uint64(o.i))
	}
	return cmp.Compare(n.float(), o.float())
}
