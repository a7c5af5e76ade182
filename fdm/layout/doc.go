// Package layout maps an N-dimensional tensor grid onto a single flat index.
//
// A [Layout] stores the number of points per axis and the stride of every
// axis, with axis 0 varying fastest:
//
//	spacing[0] = 1
//	spacing[k+1] = dim[k] * spacing[k]
//
// An [Iterator] walks all points in flat-index order with odometer
// semantics. Neighbour lookups reflect at the grid edges instead of wrapping,
// so operators built on a layout never index outside [0, Size()).
package layout
