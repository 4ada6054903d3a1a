package randaccess

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/goccy/go-json"

	"github.com/Pure-Company/randaccess/bulk"
)

// The operators below materialize the sequence and hand the slice to
// package bulk. All of them need Count.

// ============================================================================
// Set operators and concatenation
// ============================================================================

func (r *Readable[T]) binary(op string, other any, fn func(a, b []T) []T) ([]T, error) {
	a, err := r.materialize(op)
	if err != nil {
		return nil, err
	}
	b, err := r.other(op, other)
	if err != nil {
		return nil, err
	}
	return fn(a, b), nil
}

// And returns the elements present in both sequences, without
// duplicates, in the order of r.
func (r *Readable[T]) And(other any) ([]T, error) {
	return r.binary("and", other, func(a, b []T) []T { return bulk.Intersect(a, b, r.eq) })
}

// Or returns the union of both sequences without duplicates.
func (r *Readable[T]) Or(other any) ([]T, error) {
	return r.binary("or", other, func(a, b []T) []T { return bulk.Union(a, b, r.eq) })
}

// Plus returns r followed by other.
func (r *Readable[T]) Plus(other any) ([]T, error) {
	return r.binary("plus", other, func(a, b []T) []T { return bulk.Concat(a, b) })
}

// Minus returns the elements of r that do not occur in other.
func (r *Readable[T]) Minus(other any) ([]T, error) {
	return r.binary("minus", other, func(a, b []T) []T { return bulk.Difference(a, b, r.eq) })
}

// Repeat returns r repeated n times.
func (r *Readable[T]) Repeat(n int) ([]T, error) {
	a, err := r.materialize("repeat")
	if err != nil {
		return nil, err
	}
	out, err := bulk.Repeat(a, n)
	if errors.Is(err, bulk.ErrNegative) {
		return nil, argumentErrorf("repeat", "negative argument")
	}
	return out, err
}

// Join renders the elements joined by sep.
func (r *Readable[T]) Join(sep string) (string, error) {
	a, err := r.materialize("join")
	if err != nil {
		return "", err
	}
	return bulk.Join(a, sep), nil
}

// ============================================================================
// Structural
// ============================================================================

// Compact returns the elements that are not nil.
func (r *Readable[T]) Compact() ([]T, error) {
	a, err := r.materialize("compact")
	if err != nil {
		return nil, err
	}
	return bulk.Compact(a), nil
}

// Flatten splices nested slices into the result depth levels deep; a
// negative depth flattens completely.
func (r *Readable[T]) Flatten(depth int) ([]any, error) {
	a, err := r.materialize("flatten")
	if err != nil {
		return nil, err
	}
	return bulk.Flatten(toAny(a), depth), nil
}

// Transpose treats every element as a row and swaps rows and columns.
func (r *Readable[T]) Transpose() ([][]any, error) {
	a, err := r.materialize("transpose")
	if err != nil {
		return nil, err
	}
	rows := make([][]any, len(a))
	for i, v := range a {
		rv := reflect.ValueOf(v)
		if !isList(rv) {
			return nil, argumentErrorf("transpose", "no implicit conversion of %T into a sequence", any(v))
		}
		row := make([]any, rv.Len())
		for j := range row {
			row[j] = rv.Index(j).Interface()
		}
		rows[i] = row
	}
	out, err := bulk.Transpose(rows)
	if err != nil {
		return nil, indexErrorf(0, "%v", err)
	}
	return out, nil
}

func toAny[T any](a []T) []any {
	out := make([]any, len(a))
	for i, v := range a {
		out[i] = v
	}
	return out
}

// ============================================================================
// Combinatorics
// ============================================================================

func (r *Readable[T]) combinatoric(op string, fn func(a []T) [][]T) ([][]T, error) {
	a, err := r.materialize(op)
	if err != nil {
		return nil, err
	}
	return fn(a), nil
}

// Combination returns every k-element combination in position order.
func (r *Readable[T]) Combination(k int) ([][]T, error) {
	return r.combinatoric("combination", func(a []T) [][]T { return bulk.Combinations(a, k) })
}

// RepeatedCombination returns every k-element combination with
// repetition.
func (r *Readable[T]) RepeatedCombination(k int) ([][]T, error) {
	return r.combinatoric("repeatedCombination", func(a []T) [][]T { return bulk.RepeatedCombinations(a, k) })
}

// Permutation returns every k-element permutation. A negative k means
// the whole length.
func (r *Readable[T]) Permutation(k int) ([][]T, error) {
	return r.combinatoric("permutation", func(a []T) [][]T {
		if k < 0 {
			return bulk.Permutations(a, len(a))
		}
		return bulk.Permutations(a, k)
	})
}

// RepeatedPermutation returns every k-element permutation with
// repetition.
func (r *Readable[T]) RepeatedPermutation(k int) ([][]T, error) {
	return r.combinatoric("repeatedPermutation", func(a []T) [][]T { return bulk.RepeatedPermutations(a, k) })
}

// Product returns the cartesian product of r and lists.
func (r *Readable[T]) Product(lists ...[]T) ([][]T, error) {
	return r.combinatoric("product", func(a []T) [][]T { return bulk.Product(a, lists...) })
}

// Zip pairs every element of r with the elements at the same position of
// lists; missing positions hold the zero value.
func (r *Readable[T]) Zip(lists ...[]T) ([][]T, error) {
	return r.combinatoric("zip", func(a []T) [][]T { return bulk.Zip(a, lists...) })
}

// ============================================================================
// Ordering
// ============================================================================

// Reverse returns the elements in reverse order.
func (r *Readable[T]) Reverse() ([]T, error) {
	a, err := r.materialize("reverse")
	if err != nil {
		return nil, err
	}
	return bulk.Reverse(a), nil
}

// Rotate returns the elements rotated so that position cnt comes first.
func (r *Readable[T]) Rotate(cnt int) ([]T, error) {
	a, err := r.materialize("rotate")
	if err != nil {
		return nil, err
	}
	return bulk.Rotate(a, cnt), nil
}

// Shuffle returns the elements in random order.
func (r *Readable[T]) Shuffle() ([]T, error) {
	a, err := r.materialize("shuffle")
	if err != nil {
		return nil, err
	}
	return bulk.Shuffle(a, r.cfg.rand.IntN), nil
}

// Sort returns the elements in ascending order under the configured
// ordering. Elements without an ordering fail with ErrNotComparable.
func (r *Readable[T]) Sort() ([]T, error) {
	return r.sort("sort", r.compare)
}

// SortFunc returns the elements sorted by compare.
func (r *Readable[T]) SortFunc(compare func(a, b T) int) ([]T, error) {
	return r.sort("sortFunc", func(a, b T) (int, error) { return compare(a, b), nil })
}

func (r *Readable[T]) sort(op string, compare func(a, b T) (int, error)) ([]T, error) {
	a, err := r.materialize(op)
	if err != nil {
		return nil, err
	}
	out, err := bulk.SortStable(a, compare)
	if err != nil {
		return nil, sortError(op, err)
	}
	return out, nil
}

// SortBy returns the elements sorted by the key computed once per
// element.
func (r *Readable[T]) SortBy(key func(T) any) ([]T, error) {
	a, err := r.materialize("sortBy")
	if err != nil {
		return nil, err
	}
	out, err := bulk.SortByKey(a, key, r.compareKeys)
	if err != nil {
		return nil, sortError("sortBy", err)
	}
	return out, nil
}

func (r *Readable[T]) compareKeys(a, b any) (int, error) {
	c, ok := r.cfg.compare(a, b)
	if !ok {
		return 0, notComparable(a, b)
	}
	return c, nil
}

func sortError(op string, err error) error {
	if errors.Is(err, ErrNotComparable) {
		return fmt.Errorf("%w: %w", argumentErrorf(op, "%v", err), ErrNotComparable)
	}
	return err
}

// ============================================================================
// Filtering
// ============================================================================

// Uniq returns the elements without duplicates, first occurrence kept.
func (r *Readable[T]) Uniq() ([]T, error) {
	a, err := r.materialize("uniq")
	if err != nil {
		return nil, err
	}
	return bulk.Uniq(a, r.eq), nil
}

// UniqBy returns the elements whose key was not seen before.
func (r *Readable[T]) UniqBy(key func(T) any) ([]T, error) {
	a, err := r.materialize("uniqBy")
	if err != nil {
		return nil, err
	}
	return bulk.UniqBy(a, key, r.cfg.equal), nil
}

// Collect returns fn applied to every element.
func (r *Readable[T]) Collect(fn func(T) T) ([]T, error) {
	a, err := r.materialize("collect")
	if err != nil {
		return nil, err
	}
	out := make([]T, len(a))
	for i, v := range a {
		out[i] = fn(v)
	}
	return out, nil
}

// Select returns the elements satisfying pred.
func (r *Readable[T]) Select(pred func(T) bool) ([]T, error) {
	return r.filter("select", pred, true)
}

// Reject returns the elements not satisfying pred.
func (r *Readable[T]) Reject(pred func(T) bool) ([]T, error) {
	return r.filter("reject", pred, false)
}

func (r *Readable[T]) filter(op string, pred func(T) bool, keep bool) ([]T, error) {
	a, err := r.materialize(op)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(a))
	for _, v := range a {
		if pred(v) == keep {
			out = append(out, v)
		}
	}
	return out, nil
}

// ============================================================================
// Rendering
// ============================================================================

// Pack encodes the elements into a binary string; see bulk.Pack for the
// template directives.
func (r *Readable[T]) Pack(template string) ([]byte, error) {
	a, err := r.materialize("pack")
	if err != nil {
		return nil, err
	}
	out, err := bulk.Pack(toAny(a), template)
	if err != nil {
		return nil, argumentErrorf("pack", "%v", err)
	}
	return out, nil
}

// Inspect renders the elements as JSON. Without Count the container is
// rendered by type only.
func (r *Readable[T]) Inspect() string {
	if !r.hasCount() {
		return fmt.Sprintf("#<%T>", r.reader)
	}
	a, err := r.materialize("inspect")
	if err != nil {
		return fmt.Sprintf("#<%T: %v>", r.reader, err)
	}
	b, err := json.Marshal(a)
	if err != nil {
		return fmt.Sprint(a)
	}
	return string(b)
}

func (r *Readable[T]) String() string {
	return r.Inspect()
}

// MarshalJSON encodes the elements as a JSON array.
func (r *Readable[T]) MarshalJSON() ([]byte, error) {
	a, err := r.materialize("marshalJSON")
	if err != nil {
		return nil, err
	}
	return json.Marshal(a)
}
