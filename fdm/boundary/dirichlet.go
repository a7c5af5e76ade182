package boundary

import (
	"github.com/cwbudde/algo-fdm/fdm/mesher"
	"github.com/cwbudde/algo-fdm/fdm/operator"
)

// Dirichlet pins the solution to a fixed value on one side of an axis.
type Dirichlet struct {
	side     Side
	value    float64
	indices  []int
	xExtreme float64
}

// NewDirichlet returns a condition holding value on side of direction.
func NewDirichlet(m mesher.Mesher, value float64, direction int, side Side) (*Dirichlet, error) {
	l := m.Layout()
	if err := checkPlacement(l, direction, side); err != nil {
		return nil, err
	}
	indices := IndicesOnBoundary(l, direction, side)
	return &Dirichlet{
		side:     side,
		value:    value,
		indices:  indices,
		xExtreme: m.Locations(direction)[indices[0]],
	}, nil
}

// Indices returns the flat indices the condition pins.
func (d *Dirichlet) Indices() []int { return d.indices }

func (d *Dirichlet) ApplyBeforeApplying(*operator.TripleBand) {}

func (d *Dirichlet) ApplyBeforeSolving(*operator.TripleBand, []float64, float64, float64) {}

func (d *Dirichlet) ApplyAfterApplying(u []float64) {
	d.pin(u)
}

func (d *Dirichlet) ApplyAfterSolving(u []float64) {
	d.pin(u)
}

func (d *Dirichlet) SetTime(float64) {}

// ValueAt returns the boundary value when x lies beyond the boundary node
// and value otherwise.
func (d *Dirichlet) ValueAt(x, value float64) float64 {
	if (d.side == Lower && x < d.xExtreme) || (d.side == Upper && x > d.xExtreme) {
		return d.value
	}
	return value
}

func (d *Dirichlet) pin(u []float64) {
	for _, i := range d.indices {
		u[i] = d.value
	}
}
