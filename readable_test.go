package randaccess

import (
	"strings"
	"testing"

	g "github.com/anacrolix/generics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ============================================================================
// Element Access
// ============================================================================

func TestReadable_At(t *testing.T) {
	r := counted(seq(10)...)
	tests := []struct {
		pos  int
		want g.Option[int]
	}{
		{0, g.Some(0)},
		{9, g.Some(9)},
		{10, g.None[int]()},
		{-1, g.Some(9)},
		{-10, g.Some(0)},
		{-11, g.None[int]()},
	}
	for _, tt := range tests {
		got, err := r.At(tt.pos)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "At(%d)", tt.pos)
	}
}

func TestReadable_Slice(t *testing.T) {
	r := counted(seq(10)...)
	tests := []struct {
		name string
		sel  Selector
		want g.Option[[]int]
	}{
		{"span before start", Span(-12, 2), g.None[[]int]()},
		{"span from negative start", Span(-10, 3), g.Some([]int{0, 1, 2})},
		{"span clipped at end", Span(8, 100), g.Some([]int{8, 9})},
		{"span at end", Span(10, 5), g.Some([]int{})},
		{"span past end", Span(11, 15), g.None[[]int]()},
		{"negative length", Span(2, -1), g.None[[]int]()},
		{"inclusive range", In(Incl(2, 4)), g.Some([]int{2, 3, 4})},
		{"exclusive range", In(Excl(2, 4)), g.Some([]int{2, 3})},
		{"negative range", In(Incl(-3, -1)), g.Some([]int{7, 8, 9})},
		{"inverted range", In(Incl(5, 2)), g.Some([]int{})},
		{"range at end", In(Incl(10, 12)), g.Some([]int{})},
		{"range past end", In(Incl(11, 12)), g.None[[]int]()},
		{"range before start", In(Incl(-11, 2)), g.None[[]int]()},
		{"range clipped at end", In(Incl(8, 20)), g.Some([]int{8, 9})},
		{"position", Pos(3), g.Some([]int{3})},
		{"negative position", Pos(-1), g.Some([]int{9})},
		{"position past end", Pos(10), g.None[[]int]()},
		{"args span", Args(2, 3), g.Some([]int{2, 3, 4})},
		{"args range", Args(Incl(1, 2)), g.Some([]int{1, 2})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Slice(tt.sel)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReadable_Slice_BadArguments(t *testing.T) {
	r := counted(seq(3)...)
	for _, sel := range []Selector{Args(), Args(1, 2, 3), Args("x"), Args(1, "y"), {}} {
		got, err := r.Slice(sel)
		assert.ErrorIs(t, err, ErrArgument, "selector %v", sel)
		assert.False(t, got.Ok)
	}
	_, err := r.Slice(Args())
	assert.EqualError(t, err, "randaccess: slice: wrong number of arguments (0 for 1..2)")
}

func TestReadable_WithoutCount(t *testing.T) {
	square := ReadFunc[int](func(pos int) (int, error) { return pos * pos, nil })
	r := NewReadable[int](square)

	v, err := r.At(4)
	require.NoError(t, err)
	assert.Equal(t, g.Some(16), v)

	_, err = r.At(-1)
	assert.ErrorIs(t, err, ErrCapabilityMissing)

	// Spans are read without clipping.
	s, err := r.Slice(Span(2, 3))
	require.NoError(t, err)
	assert.Equal(t, []int{4, 9, 16}, s.Value)

	_, err = r.Slice(Span(-1, 2))
	assert.ErrorIs(t, err, ErrCapabilityMissing)
	_, err = r.Slice(In(Incl(0, -1)))
	assert.ErrorIs(t, err, ErrCapabilityMissing)

	first, err := r.FirstN(3)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 4}, first)

	for name, op := range map[string]func() error{
		"toSlice": func() error { _, err := r.ToSlice(); return err },
		"last":    func() error { _, err := r.Last(); return err },
		"index":   func() error { _, err := r.Index(4); return err },
		"sort":    func() error { _, err := r.Sort(); return err },
		"sample":  func() error { _, err := r.Sample(); return err },
		"compare": func() error { _, err := r.Compare([]int{1}); return err },
		"each":    func() error { return r.Each(func(int, int) bool { return true }) },
	} {
		assert.ErrorIs(t, op(), ErrCapabilityMissing, name)
	}

	// Equality falls back to identity.
	same, err := r.Equal(r)
	require.NoError(t, err)
	assert.True(t, same)
	same, err = r.Equal([]int{})
	require.NoError(t, err)
	assert.False(t, same)

	assert.True(t, strings.HasPrefix(r.Inspect(), "#<"))
	assert.False(t, r.IsEmpty())
}

func TestReadable_ReadErrorsPropagate(t *testing.T) {
	r := NewReadable[int](boundedReader(1, 2))
	_, err := r.At(5)
	assert.ErrorIs(t, err, errPastEnd)
	_, err = r.Slice(Span(0, 3))
	assert.ErrorIs(t, err, errPastEnd)
}

func TestReadable_FirstLast(t *testing.T) {
	r := counted(seq(10)...)

	v, err := r.First()
	require.NoError(t, err)
	assert.Equal(t, g.Some(0), v)
	v, err = r.Last()
	require.NoError(t, err)
	assert.Equal(t, g.Some(9), v)

	vals, err := r.FirstN(3)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, vals)
	vals, err = r.FirstN(20)
	require.NoError(t, err)
	assert.Len(t, vals, 10)
	vals, err = r.LastN(3)
	require.NoError(t, err)
	assert.Equal(t, []int{7, 8, 9}, vals)

	_, err = r.FirstN(-1)
	assert.ErrorIs(t, err, ErrArgument)
	_, err = r.LastN(-1)
	assert.ErrorIs(t, err, ErrArgument)

	v, err = counted[int]().Last()
	require.NoError(t, err)
	assert.False(t, v.Ok)
}

func TestReadable_Fetch(t *testing.T) {
	r := counted(seq(10)...)

	v, err := r.Fetch(-2)
	require.NoError(t, err)
	assert.Equal(t, 8, v)

	_, err = r.Fetch(10)
	assert.ErrorIs(t, err, ErrIndex)
	_, err = r.Fetch(-11)
	assert.ErrorIs(t, err, ErrIndex)

	v, err = r.FetchOr(20, -1)
	require.NoError(t, err)
	assert.Equal(t, -1, v)

	v, err = r.FetchOrElse(20, func(pos int) int { return pos * 2 })
	require.NoError(t, err)
	assert.Equal(t, 40, v)
}

func TestReadable_ValuesAt(t *testing.T) {
	r := counted(seq(10)...)
	got, err := r.ValuesAt(Pos(1), Pos(20), In(Incl(8, 11)), Span(0, 2))
	require.NoError(t, err)
	assert.Equal(t, []g.Option[int]{
		g.Some(1), g.None[int](),
		g.Some(8), g.Some(9), g.None[int](), g.None[int](),
		g.Some(0), g.Some(1),
	}, got)

	_, err = r.ValuesAt(Args())
	assert.ErrorIs(t, err, ErrArgument)

	_, err = r.ValuesAt(Pos(0), In(Incl(-20, 1)))
	assert.ErrorIs(t, err, ErrRange)
	var rerr *RangeError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, Incl(-20, 1), rerr.Range)
}

// ============================================================================
// Iteration
// ============================================================================

func TestReadable_Each(t *testing.T) {
	r := counted(10, 20, 30)

	var got []int
	require.NoError(t, r.Each(func(i, v int) bool {
		got = append(got, i, v)
		return true
	}))
	assert.Equal(t, []int{0, 10, 1, 20, 2, 30}, got)

	got = nil
	require.NoError(t, r.ReverseEach(func(_, v int) bool {
		got = append(got, v)
		return v != 20
	}))
	assert.Equal(t, []int{30, 20}, got)

	got = nil
	for v, err := range r.All() {
		require.NoError(t, err)
		got = append(got, v)
	}
	assert.Equal(t, []int{10, 20, 30}, got)
}

func TestReadable_All_ReportsErrors(t *testing.T) {
	r := NewReadable[int](boundedReader(1))
	var errs int
	for _, err := range r.All() {
		assert.ErrorIs(t, err, ErrCapabilityMissing)
		errs++
	}
	assert.Equal(t, 1, errs)
}

func TestReadable_Cycle(t *testing.T) {
	r := counted(1, 2, 3)

	var got []int
	require.NoError(t, r.Cycle(func(v int) bool {
		got = append(got, v)
		return len(got) < 7
	}))
	assert.Equal(t, []int{1, 2, 3, 1, 2, 3, 1}, got)

	got = nil
	require.NoError(t, r.CycleN(2, func(v int) bool {
		got = append(got, v)
		return true
	}))
	assert.Equal(t, []int{1, 2, 3, 1, 2, 3}, got)

	// An empty sequence ends the cycle at once.
	require.NoError(t, counted[int]().Cycle(func(int) bool {
		t.Fatal("called on empty sequence")
		return false
	}))

	// Without a count the cycle only stops on the container's error.
	err := NewReadable[int](boundedReader(1, 2)).Cycle(func(int) bool { return true })
	assert.ErrorIs(t, err, errPastEnd)
}

// ============================================================================
// Search
// ============================================================================

func TestReadable_Index(t *testing.T) {
	r := counted(1, 2, 3, 2)

	i, err := r.Index(2)
	require.NoError(t, err)
	assert.Equal(t, g.Some(1), i)

	i, err = r.RIndex(2)
	require.NoError(t, err)
	assert.Equal(t, g.Some(3), i)

	i, err = r.Index(5)
	require.NoError(t, err)
	assert.False(t, i.Ok)

	i, err = r.IndexFunc(func(v int) bool { return v > 2 })
	require.NoError(t, err)
	assert.Equal(t, g.Some(2), i)

	i, err = r.RIndexFunc(func(v int) bool { return v < 2 })
	require.NoError(t, err)
	assert.Equal(t, g.Some(0), i)

	ok, err := r.Include(3)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = r.IncludeFunc(func(v int) bool { return v > 3 })
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestReadable_Include_NumericEquality(t *testing.T) {
	r := counted[any](1, 2, 3)
	ok, err := r.Include(2.0)
	require.NoError(t, err)
	assert.True(t, ok)

	strict := NewReadable[any](boundedReader[any](1, 2, 3).Bounded(3), WithEqual(func(a, b any) bool { return a == b }))
	ok, err = strict.Include(2.0)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestReadable_Assoc(t *testing.T) {
	pairs := []any{[]any{"a", 1}, "x", []any{"b", 2}, []any{}}
	r := counted(pairs...)

	v, err := r.Assoc("b")
	require.NoError(t, err)
	assert.Equal(t, g.Some[any]([]any{"b", 2}), v)

	v, err = r.Assoc("z")
	require.NoError(t, err)
	assert.False(t, v.Ok)

	v, err = r.Rassoc(1)
	require.NoError(t, err)
	assert.Equal(t, g.Some[any]([]any{"a", 1}), v)

	// Without a count the scan runs until it matches or the container
	// fails.
	unbounded := NewReadable[any](boundedReader(pairs...))
	v, err = unbounded.Assoc("b")
	require.NoError(t, err)
	assert.True(t, v.Ok)
	_, err = unbounded.Assoc("z")
	assert.ErrorIs(t, err, errPastEnd)
}

// ============================================================================
// Comparison
// ============================================================================

func TestReadable_Equal(t *testing.T) {
	r := counted(1, 2, 3)
	tests := []struct {
		name  string
		other any
		want  bool
	}{
		{"equal slice", []int{1, 2, 3}, true},
		{"equal readable", counted(1, 2, 3), true},
		{"shorter", []int{1, 2}, false},
		{"different", []int{1, 2, 4}, false},
		{"not a sequence", 42, false},
		{"other element type", []string{"1"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Equal(tt.other)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReadable_Compare(t *testing.T) {
	r := counted(1, 2, 3)
	tests := []struct {
		other []int
		want  int
	}{
		{[]int{1, 2, 3}, 0},
		{[]int{1, 2, 4}, -1},
		{[]int{1, 2}, 1},
		{[]int{1, 2, 3, 0}, -1},
		{[]int{0, 9, 9}, 1},
	}
	for _, tt := range tests {
		got, err := r.Compare(tt.other)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "Compare(%v)", tt.other)
	}

	mixed := counted[any](1, "a")
	_, err := mixed.Compare([]any{1, 2})
	assert.ErrorIs(t, err, ErrNotComparable)

	_, err = r.Compare("nope")
	assert.ErrorIs(t, err, ErrArgument)
}

// ============================================================================
// Random Draws
// ============================================================================

func TestReadable_Sample(t *testing.T) {
	first := WithRand(RandFunc(func(int) int { return 0 }))
	r := NewReadable[int](boundedReader(seq(10)...).Bounded(10), first)

	v, err := r.Sample()
	require.NoError(t, err)
	assert.Equal(t, g.Some(0), v)

	vals, err := r.SampleN(3)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{0, 1, 2}, vals)

	vals, err = counted(seq(10)...).SampleN(20)
	require.NoError(t, err)
	assert.ElementsMatch(t, seq(10), vals)

	_, err = r.SampleN(-1)
	assert.ErrorIs(t, err, ErrArgument)

	v, err = counted[int]().Sample()
	require.NoError(t, err)
	assert.False(t, v.Ok)
}
