package layout

// Iterator walks a layout in flat-index order. The invariant
// index == sum(coordinates[k] * spacing[k]) holds at every position.
type Iterator struct {
	layout      *Layout
	coordinates []int
	index       int
}

// Next advances to the following grid point, incrementing axis 0 first and
// carrying into higher axes.
func (it *Iterator) Next() {
	it.index++
	for k, d := range it.layout.dim {
		it.coordinates[k]++
		if it.coordinates[k] < d {
			return
		}
		it.coordinates[k] = 0
	}
}

// Done reports whether the iterator has moved past the last grid point.
func (it *Iterator) Done() bool {
	return it.index >= it.layout.size
}

// Index returns the current flat index.
func (it *Iterator) Index() int {
	return it.index
}

// Coordinates returns the current coordinates. The slice is owned by the
// iterator.
func (it *Iterator) Coordinates() []int {
	return it.coordinates
}

// Coordinate returns the current coordinate along axis.
func (it *Iterator) Coordinate(axis int) int {
	return it.coordinates[axis]
}
