package randaccess

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Pure-Company/randaccess/containers"
)

var errPastEnd = errors.New("read past the end")

// seq returns 0, 1, ..., n-1.
func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

// boundedReader reads vals without exposing a count, failing past the
// end the way a real container would.
func boundedReader[T any](vals ...T) ReadFunc[T] {
	return func(pos int) (T, error) {
		if pos >= len(vals) {
			var zero T
			return zero, fmt.Errorf("%w: %d", errPastEnd, pos)
		}
		return vals[pos], nil
	}
}

// counted reads vals and reports their count.
func counted[T any](vals ...T) *Readable[T] {
	return NewReadable[T](boundedReader(vals...).Bounded(len(vals)))
}

// backend builds an Accessible over a container holding vals.
type backend struct {
	name string
	new  func(t *testing.T, vals ...any) *Accessible[any]
}

// backends covers the primitive InsertAt/DeleteAt path (slice, sparse,
// funcs) and the shifting fallback path (hash).
var backends = []backend{
	{"slice", func(t *testing.T, vals ...any) *Accessible[any] {
		return New[any](containers.NewSlice(vals...))
	}},
	{"hash", func(t *testing.T, vals ...any) *Accessible[any] {
		return New[any](containers.NewHashArray(vals...))
	}},
	{"sparse", func(t *testing.T, vals ...any) *Accessible[any] {
		s := containers.NewSparse[any](len(vals))
		for i, v := range vals {
			require.NoError(t, s.WriteAt(i, v))
		}
		return New[any](s)
	}},
	{"funcs", func(t *testing.T, vals ...any) *Accessible[any] {
		data := append([]any(nil), vals...)
		return New[any](SliceFuncs(&data))
	}},
}

func forEachBackend(t *testing.T, fn func(t *testing.T, b backend)) {
	for _, b := range backends {
		t.Run(b.name, func(t *testing.T) {
			fn(t, b)
		})
	}
}

func contents(t *testing.T, a *Accessible[any]) []any {
	t.Helper()
	vals, err := a.ToSlice()
	require.NoError(t, err)
	return vals
}

func anys(vals ...int) []any {
	out := make([]any, len(vals))
	for i, v := range vals {
		out[i] = v
	}
	return out
}
