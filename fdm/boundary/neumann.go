package boundary

import (
	"github.com/cwbudde/algo-fdm/fdm/mesher"
	"github.com/cwbudde/algo-fdm/fdm/operator"
)

// Neumann fixes the first difference across the boundary node of every
// pencil: u[1] - u[0] = value on the lower side and u[n-1] - u[n-2] = value
// on the upper side.
type Neumann struct {
	side      Side
	direction int
	value     float64
	indices   []int
	// inner[k] is the neighbour of indices[k] inside the grid.
	inner []int
}

// NewNeumann returns a condition on side of direction.
func NewNeumann(m mesher.Mesher, value float64, direction int, side Side) (*Neumann, error) {
	l := m.Layout()
	if err := checkPlacement(l, direction, side); err != nil {
		return nil, err
	}

	step := 1
	if side == Upper {
		step = -1
	}
	indices := IndicesOnBoundary(l, direction, side)
	inner := make([]int, len(indices))
	for k, i := range indices {
		inner[k] = i + step*l.SpacingAt(direction)
	}

	return &Neumann{
		side:      side,
		direction: direction,
		value:     value,
		indices:   indices,
		inner:     inner,
	}, nil
}

// ApplyBeforeApplying turns the boundary rows of op into the one-sided
// difference.
func (c *Neumann) ApplyBeforeApplying(op *operator.TripleBand) {
	if op.Direction() != c.direction {
		return
	}
	for _, i := range c.indices {
		c.setRow(op, i, 1, 0)
	}
}

// ApplyAfterApplying rebuilds the boundary entries from their inner
// neighbours.
func (c *Neumann) ApplyAfterApplying(u []float64) {
	for k, i := range c.indices {
		if c.side == Lower {
			u[i] = u[c.inner[k]] - c.value
		} else {
			u[i] = u[c.inner[k]] + c.value
		}
	}
}

// ApplyBeforeSolving rewrites the boundary rows so that the system
// (a*op + b*I) x = rhs solved by op.SolveSplitting holds the prescribed
// difference at every boundary node. With a = 0 the system has no
// operator part left to rewrite and op is left unchanged.
func (c *Neumann) ApplyBeforeSolving(op *operator.TripleBand, rhs []float64, a, b float64) {
	if op.Direction() != c.direction || a == 0 {
		return
	}
	for _, i := range c.indices {
		c.setRow(op, i, a, b)
		rhs[i] = c.value
	}
}

func (c *Neumann) ApplyAfterSolving([]float64) {}

func (c *Neumann) SetTime(float64) {}

// setRow writes the row r with a*r + b*e_i equal to the first difference
// {0, -1, 1} on the lower side and {-1, 1, 0} on the upper side.
func (c *Neumann) setRow(op *operator.TripleBand, i int, a, b float64) {
	if c.side == Lower {
		op.SetRow(i, 0, (-1-b)/a, 1/a)
	} else {
		op.SetRow(i, -1/a, (1-b)/a, 0)
	}
}
