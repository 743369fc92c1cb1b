package fem

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is matched by every *ShapeError.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNonAffineElement is returned by CheckAffineMap.
	ErrNonAffineElement = errors.New("element map is not affine")
)

// ShapeError reports an input whose dimension disagrees with the element or
// mesh it is evaluated against.
type ShapeError struct {
	Op       string // Operation, e.g. "ShapeFunctionsAt"
	What     string // Offending dimension, e.g. "evaluation point rows"
	Expected int
	Actual   int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s: %s: %s: expected %d, actual %d",
		e.Op, ErrInvalidArgument, e.What, e.Expected, e.Actual)
}

func (e *ShapeError) Is(target error) bool { return target == ErrInvalidArgument }

func checkDim(op, what string, expected, actual int) error {
	if expected != actual {
		return &ShapeError{Op: op, What: what, Expected: expected, Actual: actual}
	}
	return nil
}
