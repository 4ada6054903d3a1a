// Package bulk is the sequence library randaccess delegates to once a
// container has been materialized into a slice: set operators,
// combinatorics, flatten, transpose, pack, stable sorting and uniq.
//
// Every function returns a fresh slice and leaves its inputs untouched.
package bulk

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/bits-and-blooms/bitset"
	"github.com/maruel/natural"
	"golang.org/x/exp/constraints"
)

var (
	// ErrShape indicates rows of different lengths passed to Transpose.
	ErrShape = errors.New("bulk: element size differs")

	// ErrNegative indicates a negative count.
	ErrNegative = errors.New("bulk: negative argument")
)

// ============================================================================
// Set operators
// ============================================================================

func contains[T any](xs []T, v T, eq func(x, y T) bool) bool {
	for _, x := range xs {
		if eq(x, v) {
			return true
		}
	}
	return false
}

// Intersect returns the elements of a that also occur in b, first
// occurrence only, in the order of a.
func Intersect[T any](a, b []T, eq func(x, y T) bool) []T {
	out := make([]T, 0)
	for _, v := range a {
		if contains(b, v, eq) && !contains(out, v, eq) {
			out = append(out, v)
		}
	}
	return out
}

// Union returns the elements of a followed by those of b, first
// occurrence only.
func Union[T any](a, b []T, eq func(x, y T) bool) []T {
	out := make([]T, 0, len(a)+len(b))
	for _, v := range a {
		if !contains(out, v, eq) {
			out = append(out, v)
		}
	}
	for _, v := range b {
		if !contains(out, v, eq) {
			out = append(out, v)
		}
	}
	return out
}

// Difference returns every element of a that does not occur in b.
// Duplicates in a are kept.
func Difference[T any](a, b []T, eq func(x, y T) bool) []T {
	out := make([]T, 0, len(a))
	for _, v := range a {
		if !contains(b, v, eq) {
			out = append(out, v)
		}
	}
	return out
}

// Concat returns a followed by every list in others.
func Concat[T any](a []T, others ...[]T) []T {
	out := slices.Clone(a)
	if out == nil {
		out = make([]T, 0)
	}
	for _, o := range others {
		out = append(out, o...)
	}
	return out
}

// Repeat returns n copies of a, back to back.
func Repeat[T any](a []T, n int) ([]T, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegative, n)
	}
	out := make([]T, 0, len(a)*n)
	for range n {
		out = append(out, a...)
	}
	return out, nil
}

// Uniq removes later duplicates.
func Uniq[T any](a []T, eq func(x, y T) bool) []T {
	out := make([]T, 0, len(a))
	for _, v := range a {
		if !contains(out, v, eq) {
			out = append(out, v)
		}
	}
	return out
}

// UniqBy removes elements whose key equals the key of an earlier element.
func UniqBy[T, K any](a []T, key func(T) K, eq func(x, y K) bool) []T {
	out := make([]T, 0, len(a))
	seen := make([]K, 0, len(a))
	for _, v := range a {
		k := key(v)
		if !contains(seen, k, eq) {
			seen = append(seen, k)
			out = append(out, v)
		}
	}
	return out
}

// ============================================================================
// Nil handling and flattening
// ============================================================================

// IsNil reports whether v is nil or a nil pointer, map, slice, channel,
// function or interface.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// Compact removes nil elements.
func Compact[T any](a []T) []T {
	out := make([]T, 0, len(a))
	for _, v := range a {
		if !IsNil(v) {
			out = append(out, v)
		}
	}
	return out
}

// Flatten splices nested slices and arrays into the result, depth levels
// deep. A negative depth flattens completely.
func Flatten(a []any, depth int) []any {
	out := make([]any, 0, len(a))
	for _, v := range a {
		out = flattenInto(out, v, depth)
	}
	return out
}

func flattenInto(out []any, v any, depth int) []any {
	if depth == 0 || v == nil {
		return append(out, v)
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return append(out, v)
	}
	for i := 0; i < rv.Len(); i++ {
		out = flattenInto(out, rv.Index(i).Interface(), depth-1)
	}
	return out
}

// Transpose swaps rows and columns. All rows must have the same length.
func Transpose[T any](rows [][]T) ([][]T, error) {
	if len(rows) == 0 {
		return [][]T{}, nil
	}
	width := len(rows[0])
	out := make([][]T, width)
	for c := range out {
		out[c] = make([]T, len(rows))
	}
	for r, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("%w (%d should be %d)", ErrShape, len(row), width)
		}
		for c, v := range row {
			out[c][r] = v
		}
	}
	return out, nil
}

// Join renders every element with fmt.Sprint and joins them with sep.
// Nested slices are joined recursively and nil renders as the empty
// string.
func Join[T any](a []T, sep string) string {
	var b strings.Builder
	for i, v := range a {
		if i > 0 {
			b.WriteString(sep)
		}
		writeJoined(&b, v, sep)
	}
	return b.String()
}

func writeJoined(b *strings.Builder, v any, sep string) {
	if IsNil(v) {
		return
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		for i := 0; i < rv.Len(); i++ {
			if i > 0 {
				b.WriteString(sep)
			}
			writeJoined(b, rv.Index(i).Interface(), sep)
		}
		return
	}
	fmt.Fprint(b, v)
}

// ============================================================================
// Reordering
// ============================================================================

// Reverse returns a in reverse order.
func Reverse[T any](a []T) []T {
	out := slices.Clone(a)
	if out == nil {
		return make([]T, 0)
	}
	slices.Reverse(out)
	return out
}

// Rotate returns a rotated so that the element at cnt comes first. A
// negative cnt rotates the other way.
func Rotate[T any](a []T, cnt int) []T {
	n := len(a)
	out := make([]T, 0, n)
	if n == 0 {
		return out
	}
	k := ((cnt % n) + n) % n
	out = append(out, a[k:]...)
	return append(out, a[:k]...)
}

// Shuffle returns a random permutation of a. intn(n) must return a
// uniform integer in [0, n).
func Shuffle[T any](a []T, intn func(n int) int) []T {
	out := slices.Clone(a)
	if out == nil {
		return make([]T, 0)
	}
	for i := len(out) - 1; i > 0; i-- {
		j := intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// SortStable sorts a copy of a with a comparator that may fail. The
// first failure aborts the sort and is returned.
func SortStable[T any](a []T, compare func(x, y T) (int, error)) ([]T, error) {
	out := slices.Clone(a)
	if out == nil {
		out = make([]T, 0)
	}
	var firstErr error
	slices.SortStableFunc(out, func(x, y T) int {
		if firstErr != nil {
			return 0
		}
		c, err := compare(x, y)
		if err != nil {
			firstErr = err
			return 0
		}
		return c
	})
	if firstErr != nil {
		return nil, firstErr
	}
	return out, nil
}

// SortByKey sorts a copy of a by the keys computed once per element.
func SortByKey[T, K any](a []T, key func(T) K, compare func(x, y K) (int, error)) ([]T, error) {
	keys := make([]K, len(a))
	for i, v := range a {
		keys[i] = key(v)
	}
	return SortByKeys(a, keys, compare)
}

// SortByKeys sorts a copy of a by precomputed keys; keys[i] belongs to
// a[i].
func SortByKeys[T, K any](a []T, keys []K, compare func(x, y K) (int, error)) ([]T, error) {
	if len(keys) != len(a) {
		return nil, fmt.Errorf("%w (%d keys for %d elements)", ErrShape, len(keys), len(a))
	}
	order := make([]int, len(a))
	for i := range order {
		order[i] = i
	}
	order, err := SortStable(order, func(x, y int) (int, error) {
		return compare(keys[x], keys[y])
	})
	if err != nil {
		return nil, err
	}
	out := make([]T, len(a))
	for i, j := range order {
		out[i] = a[j]
	}
	return out, nil
}

// NaturalLess orders strings with embedded numbers by value.
func NaturalLess(a, b string) bool {
	return natural.Less(a, b)
}

// ============================================================================
// Aggregates
// ============================================================================

// Max returns the largest element of a.
func Max[T constraints.Ordered](a []T) (T, bool) {
	var zero T
	if len(a) == 0 {
		return zero, false
	}
	m := a[0]
	for _, v := range a[1:] {
		if v > m {
			m = v
		}
	}
	return m, true
}

// Min returns the smallest element of a.
func Min[T constraints.Ordered](a []T) (T, bool) {
	var zero T
	if len(a) == 0 {
		return zero, false
	}
	m := a[0]
	for _, v := range a[1:] {
		if v < m {
			m = v
		}
	}
	return m, true
}

// Sum adds up the elements of a.
func Sum[T constraints.Integer | constraints.Float](a []T) T {
	var s T
	for _, v := range a {
		s += v
	}
	return s
}

// ============================================================================
// Combinatorics
// ============================================================================

// Combinations returns every k-element subset of a, in index order.
func Combinations[T any](a []T, k int) [][]T {
	out := make([][]T, 0)
	if k < 0 || k > len(a) {
		return out
	}
	cur := make([]T, 0, k)
	var rec func(start int)
	rec = func(start int) {
		if len(cur) == k {
			out = append(out, append(make([]T, 0, k), cur...))
			return
		}
		for i := start; i <= len(a)-(k-len(cur)); i++ {
			cur = append(cur, a[i])
			rec(i + 1)
			cur = cur[:len(cur)-1]
		}
	}
	rec(0)
	return out
}

// RepeatedCombinations returns every k-element multiset drawn from a.
func RepeatedCombinations[T any](a []T, k int) [][]T {
	out := make([][]T, 0)
	if k < 0 || (len(a) == 0 && k > 0) {
		return out
	}
	cur := make([]T, 0, k)
	var rec func(start int)
	rec = func(start int) {
		if len(cur) == k {
			out = append(out, append(make([]T, 0, k), cur...))
			return
		}
		for i := start; i < len(a); i++ {
			cur = append(cur, a[i])
			rec(i)
			cur = cur[:len(cur)-1]
		}
	}
	rec(0)
	return out
}

// Permutations returns every ordered selection of k distinct positions
// of a.
func Permutations[T any](a []T, k int) [][]T {
	out := make([][]T, 0)
	n := len(a)
	if k < 0 || k > n {
		return out
	}
	used := bitset.New(uint(n))
	cur := make([]T, 0, k)
	var rec func()
	rec = func() {
		if len(cur) == k {
			out = append(out, append(make([]T, 0, k), cur...))
			return
		}
		for i := 0; i < n; i++ {
			if used.Test(uint(i)) {
				continue
			}
			used.Set(uint(i))
			cur = append(cur, a[i])
			rec()
			cur = cur[:len(cur)-1]
			used.Clear(uint(i))
		}
	}
	rec()
	return out
}

// RepeatedPermutations returns every ordered selection of k positions of
// a, repetition allowed.
func RepeatedPermutations[T any](a []T, k int) [][]T {
	out := make([][]T, 0)
	if k < 0 || (len(a) == 0 && k > 0) {
		return out
	}
	cur := make([]T, 0, k)
	var rec func()
	rec = func() {
		if len(cur) == k {
			out = append(out, append(make([]T, 0, k), cur...))
			return
		}
		for _, v := range a {
			cur = append(cur, v)
			rec()
			cur = cur[:len(cur)-1]
		}
	}
	rec()
	return out
}

// Product returns the cartesian product of a and lists.
func Product[T any](a []T, lists ...[]T) [][]T {
	all := append([][]T{a}, lists...)
	out := [][]T{make([]T, 0, len(all))}
	for _, list := range all {
		next := make([][]T, 0, len(out)*len(list))
		for _, prefix := range out {
			for _, v := range list {
				row := make([]T, len(prefix), len(all))
				copy(row, prefix)
				next = append(next, append(row, v))
			}
		}
		out = next
	}
	return out
}

// Zip pairs a[i] with lists[j][i]. Lists shorter than a contribute the
// zero value.
func Zip[T any](a []T, lists ...[]T) [][]T {
	out := make([][]T, len(a))
	for i, v := range a {
		row := make([]T, 1+len(lists))
		row[0] = v
		for j, l := range lists {
			if i < len(l) {
				row[j+1] = l[i]
			}
		}
		out[i] = row
	}
	return out
}
