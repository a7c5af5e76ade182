package mesher

import (
	"fmt"

	"github.com/cwbudde/algo-fdm/fdm/layout"
)

// Mesher is an N-dimensional grid: a layout plus node positions along
// every axis.
type Mesher interface {
	Layout() *layout.Layout
	Location(coordinates []int, axis int) float64
	Dplus(coordinates []int, axis int) float64
	Dminus(coordinates []int, axis int) float64
	// Locations returns, for every flat index, the node position along
	// axis.
	Locations(axis int) []float64
}

// Composite is the tensor product of 1D meshers.
type Composite struct {
	layout  *layout.Layout
	meshers []Mesher1D
}

// NewComposite builds a composite mesher and the layout implied by the
// mesher sizes.
func NewComposite(meshers ...Mesher1D) (*Composite, error) {
	dim := make([]int, len(meshers))
	for i, m := range meshers {
		dim[i] = m.Size()
	}
	l, err := layout.New(dim)
	if err != nil {
		return nil, err
	}
	return NewCompositeWithLayout(l, meshers...)
}

// NewCompositeWithLayout builds a composite mesher over an existing layout.
func NewCompositeWithLayout(l *layout.Layout, meshers ...Mesher1D) (*Composite, error) {
	if l.Rank() != len(meshers) {
		return nil, fmt.Errorf("%w: layout rank %d, %d meshers", ErrLayoutMismatch, l.Rank(), len(meshers))
	}
	for i, m := range meshers {
		if m.Size() != l.DimAt(i) {
			return nil, fmt.Errorf("%w: axis %d has %d nodes, layout expects %d",
				ErrLayoutMismatch, i, m.Size(), l.DimAt(i))
		}
	}
	return &Composite{
		layout:  l,
		meshers: append([]Mesher1D(nil), meshers...),
	}, nil
}

// Layout returns the shared layout.
func (c *Composite) Layout() *layout.Layout {
	return c.layout
}

// Mesher returns the 1D mesher along axis.
func (c *Composite) Mesher(axis int) Mesher1D {
	return c.meshers[axis]
}

// Location returns the node position along axis at coordinates.
func (c *Composite) Location(coordinates []int, axis int) float64 {
	return c.meshers[axis].Location(coordinates[axis])
}

// Dplus returns the forward spacing along axis at coordinates.
func (c *Composite) Dplus(coordinates []int, axis int) float64 {
	return c.meshers[axis].Dplus(coordinates[axis])
}

// Dminus returns the backward spacing along axis at coordinates.
func (c *Composite) Dminus(coordinates []int, axis int) float64 {
	return c.meshers[axis].Dminus(coordinates[axis])
}

// Locations returns the node position along axis for every flat index.
func (c *Composite) Locations(axis int) []float64 {
	out := make([]float64, c.layout.Size())
	m := c.meshers[axis]
	for i, coordinates := range c.layout.All() {
		out[i] = m.Location(coordinates[axis])
	}
	return out
}
