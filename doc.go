/*
Package randaccess derives a complete sequence API from a handful of
primitive operations on a container.

# Overview

A container implements some of seven primitives: ReadAt, Count,
WriteAt, Expand, Shrink, InsertAt and DeleteAt. Wrapping it in one of
the traits gives it the rest of a dynamic-array API, written once in
terms of those primitives:

  - Readable: indexing, slicing, search, comparison, sampling and the
    bulk transforms (set operators, combinatorics, sort, flatten, pack).
  - Writable: replace, insert, delete, append, fill, assignment to
    positions, spans and ranges.
  - Accessible: both, plus the mutations that need to read and write,
    such as Delete, SliceRemove, Unshift and the in-place sorts.

# Quick Example

	a := randaccess.New[int](containers.NewSlice(1, 2, 3))

	a.Unshift(-1, -2)                    // [-1 -2 1 2 3]
	a.SliceRemove(randaccess.Span(1, 2)) // Some([-2 1])
	v, _ := a.At(-1)                     // Some(3)

# Capabilities

Which primitives a container has is decided once, from its method set,
when it is wrapped. An operation that needs a missing primitive fails
with a *CapabilityMissingError naming it:

	r := randaccess.NewReadable[int](randaccess.ReadFunc[int](square))
	r.At(4)  // Some(16)
	r.At(-1) // CapabilityMissing: negative positions need Count

Missing optional primitives have fallbacks: Accessible emulates InsertAt
with Expand and shifting writes, and DeleteAt with shifting writes and
Shrink.

# Absent Values

Reads that may find nothing return g.Option values from
github.com/anacrolix/generics. Out-of-range access is an absent value,
not an error.

# Functional Bindings

Every primitive has a func type (ReadFunc, WriteFunc, CountFunc, ...)
and Funcs binds a whole container from closures. A nil field of Funcs is
a missing capability:

	var data []string
	a := randaccess.New[string](randaccess.SliceFuncs(&data))

No mocks are needed in tests: pass closures that record or fail.
*/
package randaccess
