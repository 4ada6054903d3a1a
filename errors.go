package randaccess

import (
	"errors"
	"fmt"
)

// Sentinel errors. Every error returned by a derived operation matches
// exactly one of them through errors.Is, except errors raised by the
// container's own primitives, which are returned unchanged.
var (
	// ErrCapabilityMissing indicates the container does not implement a
	// primitive the operation needs.
	ErrCapabilityMissing = errors.New("capability missing")

	// ErrIndex indicates a position that is structurally invalid after
	// normalization.
	ErrIndex = errors.New("index error")

	// ErrRange indicates a range selector outside the legal domain.
	ErrRange = errors.New("range error")

	// ErrArgument indicates a call shape that is not accepted.
	ErrArgument = errors.New("argument error")

	// ErrNotComparable indicates two elements have no defined ordering.
	ErrNotComparable = errors.New("not comparable")
)

// CapabilityMissingError is returned when an operation needs a primitive
// the container does not provide.
type CapabilityMissingError struct {
	Op         string
	Capability Capability
}

func (e *CapabilityMissingError) Error() string {
	return fmt.Sprintf("randaccess: %s requires the %s capability", e.Op, e.Capability)
}

// Is reports whether target is ErrCapabilityMissing.
func (e *CapabilityMissingError) Is(target error) bool {
	return target == ErrCapabilityMissing
}

func missing(op string, c Capability) error {
	return &CapabilityMissingError{Op: op, Capability: c}
}

// IndexError is returned for positions that cannot be addressed.
type IndexError struct {
	Index int
	msg   string
}

func (e *IndexError) Error() string {
	return "randaccess: " + e.msg
}

// Is reports whether target is ErrIndex.
func (e *IndexError) Is(target error) bool {
	return target == ErrIndex
}

func indexErrorf(index int, format string, args ...any) error {
	return &IndexError{Index: index, msg: fmt.Sprintf(format, args...)}
}

// RangeError is returned when a range selector starts before the first
// element, whether it is read or assigned.
type RangeError struct {
	Range Range
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("randaccess: %s out of range", e.Range)
}

// Is reports whether target is ErrRange.
func (e *RangeError) Is(target error) bool {
	return target == ErrRange
}

// ArgumentError is returned for call shapes that are not accepted, such
// as a wrong number of arguments.
type ArgumentError struct {
	Op  string
	msg string
}

func (e *ArgumentError) Error() string {
	if e.Op == "" {
		return "randaccess: " + e.msg
	}
	return "randaccess: " + e.Op + ": " + e.msg
}

// Is reports whether target is ErrArgument.
func (e *ArgumentError) Is(target error) bool {
	return target == ErrArgument
}

func arityError(op string, got int, want string) error {
	return &ArgumentError{Op: op, msg: fmt.Sprintf("wrong number of arguments (%d for %s)", got, want)}
}

func argumentErrorf(op string, format string, args ...any) error {
	return &ArgumentError{Op: op, msg: fmt.Sprintf(format, args...)}
}

// withOp returns a copy of an argument error carrying op, so selectors
// built before they are used still name the failing operation.
func withOp(err error, op string) error {
	var ae *ArgumentError
	if errors.As(err, &ae) && ae.Op == "" {
		return &ArgumentError{Op: op, msg: ae.msg}
	}
	return err
}
