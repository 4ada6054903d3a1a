package randaccess

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pure-Company/randaccess/containers"
)

// ============================================================================
// Capability Sets
// ============================================================================

func TestCapabilitiesOf(t *testing.T) {
	tests := []struct {
		name string
		c    any
		want Capability
	}{
		{"read func", ReadFunc[int](func(int) (int, error) { return 0, nil }), CapReadAt},
		{"write func", WriteFunc[int](func(int, int) error { return nil }), CapWriteAt},
		{"slice", containers.NewSlice[int](), CapAll},
		{"hash", containers.NewHashArray[int](), CapReadAt | CapWriteAt | CapCount | CapExpand | CapShrink},
		{"ring", containers.NewRing[int](2), CapAll &^ CapInsertAt},
		{"funcs narrows to non-nil fields", Funcs[int]{
			ReadAtFunc: func(int) (int, error) { return 0, nil },
			CountFunc:  func() int { return 0 },
		}, CapReadAt | CapCount},
		{"wrong element type", containers.NewSlice[string](), CapCount | CapExpand | CapShrink},
		{"not a container", 42, capNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CapabilitiesOf[int](tt.c))
		})
	}
}

func TestCapability_String(t *testing.T) {
	assert.Equal(t, "none", capNone.String())
	assert.Equal(t, "readAt|count", (CapReadAt | CapCount).String())
	assert.Equal(t, "readAt|count|writeAt|expand|shrink|insertAt|deleteAt", CapAll.String())
}

func TestCapability_Has(t *testing.T) {
	assert.True(t, CapAll.Has(CapShrink|CapCount))
	assert.False(t, CapReadAt.Has(CapReadAt|CapCount))
	assert.True(t, CapReadAt.Has(capNone))
}

// ============================================================================
// Size Trait
// ============================================================================

func TestSizeTrait_WithCount(t *testing.T) {
	r := counted(seq(4)...)

	n, err := r.Count()
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.False(t, r.IsEmpty())
	assert.True(t, counted[int]().IsEmpty())

	var seen []int
	require.NoError(t, r.EachIndex(func(i int) bool {
		seen = append(seen, i)
		return i < 2
	}))
	assert.Equal(t, []int{0, 1, 2}, seen)

	idx, err := r.Indexes()
	require.NoError(t, err)
	seen = nil
	for i := range idx {
		seen = append(seen, i)
	}
	assert.Equal(t, []int{0, 1, 2, 3}, seen)
}

func TestSizeTrait_WithoutCount(t *testing.T) {
	r := NewReadable[int](boundedReader(1, 2, 3))

	_, err := r.Count()
	require.ErrorIs(t, err, ErrCapabilityMissing)
	var missing *CapabilityMissingError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, CapCount, missing.Capability)
	assert.Equal(t, "count", missing.Op)

	// A container without a count is never empty.
	assert.False(t, r.IsEmpty())

	assert.ErrorIs(t, r.EachIndex(func(int) bool { return true }), ErrCapabilityMissing)
	_, err = r.Indexes()
	assert.ErrorIs(t, err, ErrCapabilityMissing)
}

func TestErrors_Is(t *testing.T) {
	assert.ErrorIs(t, missing("x", CapShrink), ErrCapabilityMissing)
	assert.ErrorIs(t, indexErrorf(1, "bad"), ErrIndex)
	assert.ErrorIs(t, &RangeError{Range: Incl(-5, 2)}, ErrRange)
	assert.ErrorIs(t, arityError("fill", 4, "1..3"), ErrArgument)
	assert.NotErrorIs(t, arityError("fill", 4, "1..3"), ErrIndex)

	assert.EqualError(t, missing("shrink", CapShrink), "randaccess: shrink requires the shrink capability")
	assert.EqualError(t, arityError("fill", 4, "1..3"), "randaccess: fill: wrong number of arguments (4 for 1..3)")
	assert.EqualError(t, &RangeError{Range: Excl(-5, 2)}, "randaccess: -5...2 out of range")
}
