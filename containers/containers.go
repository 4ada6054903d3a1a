// Package containers holds small containers that implement the
// randaccess primitives over different storage: a Go slice, a hash map,
// an ordered B-tree and a fixed-capacity ring.
//
// Primitives check their positions and fail with ErrOutOfBounds; the
// randaccess traits return those errors unchanged.
package containers

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfBounds indicates a position or count the container does not
	// hold.
	ErrOutOfBounds = errors.New("containers: out of bounds")

	// ErrFull indicates a Ring cannot grow past its capacity.
	ErrFull = errors.New("containers: ring is full")
)

func outOfBounds(op string, pos, count int) error {
	return fmt.Errorf("%w: %s at %d with %d elements", ErrOutOfBounds, op, pos, count)
}
