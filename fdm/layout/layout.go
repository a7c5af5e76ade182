package layout

import (
	"errors"
	"fmt"
	"iter"
)

// ErrInvalidDimension is returned for an empty or non-positive dimension list.
var ErrInvalidDimension = errors.New("layout: dimensions must be non-empty and > 0")

// Layout is an immutable description of a row-major N-dimensional grid.
type Layout struct {
	dim     []int
	spacing []int
	size    int
}

// New returns the layout for a grid with dim[k] points along axis k.
func New(dim []int) (*Layout, error) {
	if len(dim) == 0 {
		return nil, ErrInvalidDimension
	}

	l := &Layout{
		dim:     append([]int(nil), dim...),
		spacing: make([]int, len(dim)),
	}

	stride := 1
	for k, d := range dim {
		if d <= 0 {
			return nil, fmt.Errorf("%w: dim[%d] = %d", ErrInvalidDimension, k, d)
		}
		l.spacing[k] = stride
		stride *= d
	}
	l.size = stride

	return l, nil
}

// MustNew is like New but panics on invalid dimensions.
func MustNew(dim ...int) *Layout {
	l, err := New(dim)
	if err != nil {
		panic(err)
	}
	return l
}

// Dim returns a copy of the number of points per axis.
func (l *Layout) Dim() []int {
	return append([]int(nil), l.dim...)
}

// DimAt returns the number of points along axis.
func (l *Layout) DimAt(axis int) int {
	return l.dim[axis]
}

// Spacing returns a copy of the per-axis strides.
func (l *Layout) Spacing() []int {
	return append([]int(nil), l.spacing...)
}

// SpacingAt returns the stride of axis.
func (l *Layout) SpacingAt(axis int) int {
	return l.spacing[axis]
}

// Size returns the total number of grid points.
func (l *Layout) Size() int {
	return l.size
}

// Rank returns the number of axes.
func (l *Layout) Rank() int {
	return len(l.dim)
}

// Index returns the flat index of coordinates.
func (l *Layout) Index(coordinates []int) int {
	index := 0
	for k, c := range coordinates {
		index += c * l.spacing[k]
	}
	return index
}

// Coordinates returns the coordinate tuple of a flat index.
func (l *Layout) Coordinates(index int) []int {
	coordinates := make([]int, len(l.dim))
	for k := len(l.dim) - 1; k >= 0; k-- {
		coordinates[k] = index / l.spacing[k]
		index -= coordinates[k] * l.spacing[k]
	}
	return coordinates
}

// Begin returns an iterator positioned at the first grid point.
func (l *Layout) Begin() *Iterator {
	return &Iterator{
		layout:      l,
		coordinates: make([]int, len(l.dim)),
	}
}

// All yields every flat index together with its coordinates, in flat-index
// order. The coordinate slice is reused between iterations and must not be
// retained.
func (l *Layout) All() iter.Seq2[int, []int] {
	return func(yield func(int, []int) bool) {
		for it := l.Begin(); !it.Done(); it.Next() {
			if !yield(it.index, it.coordinates) {
				return
			}
		}
	}
}

// Neighbour returns the flat index reached from the iterator position by
// moving offset steps along axis.
func (l *Layout) Neighbour(it *Iterator, axis, offset int) int {
	return l.NeighbourAt(it.coordinates, it.index, axis, offset)
}

// NeighbourAt is Neighbour for an explicit (coordinates, index) pair.
//
// Steps beyond the grid are mirrored back: a coordinate below zero is
// negated, and one at or above dim[axis] becomes 2*(dim[axis]-1) - c. An
// axis with a single point maps every step onto itself.
func (l *Layout) NeighbourAt(coordinates []int, index, axis, offset int) int {
	base := index - coordinates[axis]*l.spacing[axis]
	return base + l.reflect(axis, coordinates[axis]+offset)*l.spacing[axis]
}

// Neighbour2 moves along two axes at once, reflecting each independently.
func (l *Layout) Neighbour2(it *Iterator, axis1, offset1, axis2, offset2 int) int {
	return l.Neighbour2At(it.coordinates, it.index, axis1, offset1, axis2, offset2)
}

// Neighbour2At is Neighbour2 for an explicit (coordinates, index) pair.
func (l *Layout) Neighbour2At(coordinates []int, index, axis1, offset1, axis2, offset2 int) int {
	base := index - coordinates[axis1]*l.spacing[axis1] - coordinates[axis2]*l.spacing[axis2]
	c1 := l.reflect(axis1, coordinates[axis1]+offset1)
	c2 := l.reflect(axis2, coordinates[axis2]+offset2)
	return base + c1*l.spacing[axis1] + c2*l.spacing[axis2]
}

func (l *Layout) reflect(axis, c int) int {
	if l.dim[axis] == 1 {
		return 0
	}
	if c < 0 {
		return -c
	}
	if n := l.dim[axis]; c >= n {
		return 2*(n-1) - c
	}
	return c
}

// Permutation returns the flat indices reordered so that axis direction
// varies fastest. Walking the result visits every pencil along direction
// contiguously, whatever the native storage order.
func (l *Layout) Permutation(direction int) []int {
	newDim := append([]int(nil), l.dim...)
	newDim[0], newDim[direction] = newDim[direction], newDim[0]

	newSpacing := make([]int, len(newDim))
	stride := 1
	for k, d := range newDim {
		newSpacing[k] = stride
		stride *= d
	}
	newSpacing[0], newSpacing[direction] = newSpacing[direction], newSpacing[0]

	perm := make([]int, l.size)
	for index, coordinates := range l.All() {
		newIndex := 0
		for k, c := range coordinates {
			newIndex += c * newSpacing[k]
		}
		perm[newIndex] = index
	}
	return perm
}

// HyperplaneSize returns the number of grid points with a fixed coordinate
// along axis.
func (l *Layout) HyperplaneSize(axis int) int {
	return l.size / l.dim[axis]
}
