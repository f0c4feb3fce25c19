package matrix

import "errors"

// Sentinel errors for the scalar Matrix implementations.
var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are
	// non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrIndexOutOfBounds indicates a row or column index outside valid
	// range.
	ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")

	// ErrDimensionMismatch indicates a non-square matrix was passed to an
	// operation that requires one.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")
)
