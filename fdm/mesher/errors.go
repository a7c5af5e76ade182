package mesher

import "errors"

var (
	// ErrInvalidRange is returned when end <= start.
	ErrInvalidRange = errors.New("mesher: end must be larger than start")
	// ErrInvalidSize is returned for fewer than two nodes.
	ErrInvalidSize = errors.New("mesher: size must be >= 2")
	// ErrNotIncreasing is returned when locations are not strictly increasing.
	ErrNotIncreasing = errors.New("mesher: locations must be strictly increasing")
	// ErrLayoutMismatch is returned when a 1D mesher does not fit the layout.
	ErrLayoutMismatch = errors.New("mesher: size of 1d mesher does not fit to layout")
	// ErrInvalidDensity is returned for a non-positive concentration density.
	ErrInvalidDensity = errors.New("mesher: density must be > 0")
	// ErrPointOutOfRange is returned for a concentration point outside [start, end].
	ErrPointOutOfRange = errors.New("mesher: concentration point must be between start and end")
	// ErrInvalidSpot is returned for a non-positive spot or forward.
	ErrInvalidSpot = errors.New("mesher: negative or null underlying")
)
