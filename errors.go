package quadtree

import "errors"

// Errors returned by tree construction and insertion.
var (
	ErrInvalidRect       = errors.New("rectangle must have left < right and bottom < top with finite bounds")
	ErrInvalidOptions    = errors.New("invalid tree options")
	ErrOutOfBounds       = errors.New("position doesn't fall within bounds of tree")
	ErrDuplicatePosition = errors.New("position is already occupied")
	ErrUnseparable       = errors.New("positions can't be separated by subdivision")
)
