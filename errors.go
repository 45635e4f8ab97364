package clusters

import (
	"errors"
	"fmt"
)

var (
	// ErrNotConverged is returned by iterative algorithms that stop before
	// reaching a stable assignment.
	ErrNotConverged = errors.New("clustering did not converge")

	// ErrInvalidConfig is returned when an algorithm is configured with
	// parameters it cannot run with.
	ErrInvalidConfig = errors.New("invalid algorithm configuration")

	// ErrPartition is returned when a result does not partition its input.
	ErrPartition = errors.New("result does not partition input")

	// ErrNilResult is returned when an algorithm reports success without a
	// result. It matches ErrPartition via errors.Is.
	ErrNilResult = fmt.Errorf("%w: algorithm returned a nil result", ErrPartition)
)

// ErrInvalidParameter indicates a single rejected algorithm parameter.
//
// It matches ErrInvalidConfig via errors.Is.
type ErrInvalidParameter struct {
	Name  string
	Value any
	cause error
}

// NewInvalidParameter returns an ErrInvalidParameter wrapping cause.
func NewInvalidParameter(name string, value any, cause error) *ErrInvalidParameter {
	return &ErrInvalidParameter{Name: name, Value: value, cause: cause}
}

func (e *ErrInvalidParameter) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("invalid parameter %s=%v: %v", e.Name, e.Value, e.cause)
	}
	return fmt.Sprintf("invalid parameter %s=%v", e.Name, e.Value)
}

func (e *ErrInvalidParameter) Unwrap() []error {
	if e.cause == nil {
		return []error{ErrInvalidConfig}
	}
	return []error{ErrInvalidConfig, e.cause}
}

// ErrMissingPoint indicates an input point that appears in neither a cluster
// nor the noise.
type ErrMissingPoint struct {
	Index int
}

func (e *ErrMissingPoint) Error() string {
	return fmt.Sprintf("input point %d missing from result", e.Index)
}

func (e *ErrMissingPoint) Unwrap() error { return ErrPartition }

// ErrUnexpectedPoint indicates a result point that has no unconsumed
// counterpart in the input: either it was never submitted, or it is reported
// more than once.
//
// Position counts points in result order, clusters first, then noise.
type ErrUnexpectedPoint struct {
	Position int
}

func (e *ErrUnexpectedPoint) Error() string {
	return fmt.Sprintf("result point %d is duplicated or not part of the input", e.Position)
}

func (e *ErrUnexpectedPoint) Unwrap() error { return ErrPartition }

// ErrSizeMismatch indicates that clusters plus noise hold a different number
// of points than the input.
type ErrSizeMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrSizeMismatch) Error() string {
	return fmt.Sprintf("partition size mismatch: expected %d points, got %d", e.Expected, e.Actual)
}

func (e *ErrSizeMismatch) Unwrap() error { return ErrPartition }

// ErrLabelMismatch indicates a label slice that does not line up with its points.
type ErrLabelMismatch struct {
	Points int
	Labels int
}

func (e *ErrLabelMismatch) Error() string {
	return fmt.Sprintf("label mismatch: %d points, %d labels", e.Points, e.Labels)
}

// ErrInvalidLabel indicates a label below Noise.
type ErrInvalidLabel struct {
	Index int
	Label int
}

func (e *ErrInvalidLabel) Error() string {
	return fmt.Sprintf("invalid label %d at index %d", e.Label, e.Index)
}
