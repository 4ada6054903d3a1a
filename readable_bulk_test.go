package randaccess

import (
	"encoding/json"
	"testing"

	g "github.com/anacrolix/generics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ============================================================================
// Set Operators
// ============================================================================

func TestReadable_SetOperators(t *testing.T) {
	r := counted(1, 2, 2, 3)
	other := []int{2, 3, 4}

	got, err := r.And(other)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, got)

	got, err = r.Or(other)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4}, got)

	got, err = r.Plus(counted(other...))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 2, 3, 2, 3, 4}, got)

	got, err = r.Minus(other)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, got)

	got, err = r.Repeat(2)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 2, 3, 1, 2, 2, 3}, got)

	_, err = r.Repeat(-1)
	assert.ErrorIs(t, err, ErrArgument)
	_, err = r.And(42)
	assert.ErrorIs(t, err, ErrArgument)
}

func TestReadable_Join(t *testing.T) {
	s, err := counted[any](1, []any{2, 3}, nil, "x").Join("-")
	require.NoError(t, err)
	assert.Equal(t, "1-2-3--x", s)
}

// ============================================================================
// Structural
// ============================================================================

func TestReadable_CompactFlatten(t *testing.T) {
	r := counted[any](1, nil, []any{2, []any{3}})

	vals, err := r.Compact()
	require.NoError(t, err)
	assert.Equal(t, []any{1, []any{2, []any{3}}}, vals)

	flat, err := r.Flatten(-1)
	require.NoError(t, err)
	assert.Equal(t, []any{1, nil, 2, 3}, flat)

	flat, err = r.Flatten(1)
	require.NoError(t, err)
	assert.Equal(t, []any{1, nil, 2, []any{3}}, flat)
}

func TestReadable_Transpose(t *testing.T) {
	got, err := counted([]int{1, 2}, []int{3, 4}, []int{5, 6}).Transpose()
	require.NoError(t, err)
	assert.Equal(t, [][]any{{1, 3, 5}, {2, 4, 6}}, got)

	_, err = counted([]int{1, 2}, []int{3}).Transpose()
	assert.ErrorIs(t, err, ErrIndex)

	_, err = counted(1, 2).Transpose()
	assert.ErrorIs(t, err, ErrArgument)
}

// ============================================================================
// Combinatorics
// ============================================================================

func TestReadable_Combinatorics(t *testing.T) {
	r := counted(1, 2, 3)

	got, err := r.Combination(2)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1, 2}, {1, 3}, {2, 3}}, got)

	got, err = r.RepeatedCombination(2)
	require.NoError(t, err)
	assert.Len(t, got, 6)

	got, err = r.Permutation(2)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1, 2}, {1, 3}, {2, 1}, {2, 3}, {3, 1}, {3, 2}}, got)

	got, err = r.Permutation(-1)
	require.NoError(t, err)
	assert.Len(t, got, 6)

	got, err = r.RepeatedPermutation(2)
	require.NoError(t, err)
	assert.Len(t, got, 9)

	got, err = counted(1, 2).Product([]int{3, 4})
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1, 3}, {1, 4}, {2, 3}, {2, 4}}, got)

	got, err = r.Zip([]int{4, 5})
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1, 4}, {2, 5}, {3, 0}}, got)

	got, err = r.Combination(4)
	require.NoError(t, err)
	assert.Empty(t, got)
}

// ============================================================================
// Ordering and Filtering
// ============================================================================

func TestReadable_Ordering(t *testing.T) {
	r := counted(3, 1, 2)

	got, err := r.Reverse()
	require.NoError(t, err)
	assert.Equal(t, []int{2, 1, 3}, got)

	got, err = r.Rotate(1)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, got)

	got, err = r.Sort()
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, got)

	got, err = r.SortFunc(func(a, b int) int { return b - a })
	require.NoError(t, err)
	assert.Equal(t, []int{3, 2, 1}, got)

	got, err = r.Shuffle()
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{1, 2, 3}, got)

	words := counted("ccc", "a", "bb")
	sorted, err := words.SortBy(func(s string) any { return len(s) })
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "bb", "ccc"}, sorted)
}

func TestReadable_Sort_NaturalOrder(t *testing.T) {
	r := NewReadable[string](boundedReader("a10", "a2", "a1").Bounded(3), WithNaturalOrder())
	got, err := r.Sort()
	require.NoError(t, err)
	assert.Equal(t, []string{"a1", "a2", "a10"}, got)

	plain, err := counted("a10", "a2", "a1").Sort()
	require.NoError(t, err)
	assert.Equal(t, []string{"a1", "a10", "a2"}, plain)
}

func TestReadable_Sort_NotComparable(t *testing.T) {
	_, err := counted[any](1, struct{}{}).Sort()
	assert.ErrorIs(t, err, ErrNotComparable)
	assert.ErrorIs(t, err, ErrArgument)

	_, err = counted(1, 2).SortBy(func(int) any { return struct{}{} })
	assert.ErrorIs(t, err, ErrNotComparable)
}

func TestReadable_Filtering(t *testing.T) {
	r := counted(1, 2, 3, 4, 2)

	got, err := r.Uniq()
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4}, got)

	got, err = r.UniqBy(func(v int) any { return v % 2 })
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, got)

	got, err = r.Select(func(v int) bool { return v%2 == 0 })
	require.NoError(t, err)
	assert.Equal(t, []int{2, 4, 2}, got)

	got, err = r.Reject(func(v int) bool { return v%2 == 0 })
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3}, got)

	got, err = r.Collect(func(v int) int { return v * v })
	require.NoError(t, err)
	assert.Equal(t, []int{1, 4, 9, 16, 4}, got)
}

// ============================================================================
// Rendering
// ============================================================================

func TestReadable_Pack(t *testing.T) {
	got, err := counted[any](65, 66, "hi").Pack("C2 a3")
	require.NoError(t, err)
	assert.Equal(t, []byte{'A', 'B', 'h', 'i', 0}, got)

	_, err = counted[any]("x").Pack("C")
	assert.ErrorIs(t, err, ErrArgument)
}

func TestReadable_Inspect(t *testing.T) {
	r := counted(1, 2, 3)
	assert.Equal(t, "[1,2,3]", r.Inspect())
	assert.Equal(t, "[1,2,3]", r.String())
	assert.Equal(t, "[]", counted[int]().Inspect())

	b, err := json.Marshal(struct {
		Items *Readable[string] `json:"items"`
	}{counted("a", "b")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"items":["a","b"]}`, string(b))
}

// ============================================================================
// Package-Level Helpers
// ============================================================================

func TestGenericHelpers(t *testing.T) {
	r := counted(3, 1, 2)

	strs, err := Map(r, func(v int) string { return string(rune('a' + v)) })
	require.NoError(t, err)
	assert.Equal(t, []string{"d", "b", "c"}, strs)

	sum, err := Sum(r)
	require.NoError(t, err)
	assert.Equal(t, 6, sum)

	lo, err := Min(r)
	require.NoError(t, err)
	assert.Equal(t, g.Some(1), lo)

	hi, err := Max(r)
	require.NoError(t, err)
	assert.Equal(t, g.Some(3), hi)

	none, err := Max(counted[int]())
	require.NoError(t, err)
	assert.False(t, none.Ok)

	_, err = Sum(NewReadable[int](boundedReader(1)))
	assert.ErrorIs(t, err, ErrCapabilityMissing)
}
