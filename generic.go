package randaccess

import (
	g "github.com/anacrolix/generics"
	"golang.org/x/exp/constraints"

	"github.com/Pure-Company/randaccess/bulk"
)

// Methods cannot introduce type parameters, so the operations whose
// result type differs from the element type live here.

// Map returns fn applied to every element of r.
func Map[T, U any](r *Readable[T], fn func(T) U) ([]U, error) {
	a, err := r.materialize("map")
	if err != nil {
		return nil, err
	}
	out := make([]U, len(a))
	for i, v := range a {
		out[i] = fn(v)
	}
	return out, nil
}

// Sum adds the elements of r.
func Sum[T constraints.Integer | constraints.Float](r *Readable[T]) (T, error) {
	a, err := r.materialize("sum")
	if err != nil {
		return 0, err
	}
	return bulk.Sum(a), nil
}

// Min returns the smallest element of r.
func Min[T constraints.Ordered](r *Readable[T]) (g.Option[T], error) {
	a, err := r.materialize("min")
	if err != nil {
		return g.None[T](), err
	}
	v, ok := bulk.Min(a)
	if !ok {
		return g.None[T](), nil
	}
	return g.Some(v), nil
}

// Max returns the largest element of r.
func Max[T constraints.Ordered](r *Readable[T]) (g.Option[T], error) {
	a, err := r.materialize("max")
	if err != nil {
		return g.None[T](), err
	}
	v, ok := bulk.Max(a)
	if !ok {
		return g.None[T](), nil
	}
	return g.Some(v), nil
}
