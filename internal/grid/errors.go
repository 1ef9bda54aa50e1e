package grid

import "errors"

var (
	// ErrAllocation indicates the cell buffers could not be obtained.
	ErrAllocation = errors.New("grid: buffer allocation failed")

	// ErrDimensions indicates a non-positive width or height.
	ErrDimensions = errors.New("grid: width and height must be positive")

	// ErrStates indicates fewer than two distinct states.
	ErrStates = errors.New("grid: at least two states are required")
)
