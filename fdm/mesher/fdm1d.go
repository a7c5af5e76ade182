package mesher

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-fdm/fdm/core"
)

// Mesher1D is a one-dimensional grid.
type Mesher1D interface {
	Size() int
	Location(i int) float64
	Locations() []float64
	// Dplus returns x[i+1] - x[i], undefined (NaN) at the last node.
	Dplus(i int) float64
	// Dminus returns x[i] - x[i-1], undefined (NaN) at the first node.
	Dminus(i int) float64
}

// Fdm1D is the concrete 1D mesher returned by all constructors.
type Fdm1D struct {
	locations []float64
	dplus     []float64
	dminus    []float64
}

// NewPredefined returns a mesher on the given strictly increasing locations.
func NewPredefined(locations []float64) (*Fdm1D, error) {
	if len(locations) < 2 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, len(locations))
	}
	return fromLocations(append([]float64(nil), locations...))
}

// fromLocations takes ownership of x and derives the spacings from it.
func fromLocations(x []float64) (*Fdm1D, error) {
	n := len(x)
	m := &Fdm1D{
		locations: x,
		dplus:     make([]float64, n),
		dminus:    make([]float64, n),
	}

	for i := 0; i < n-1; i++ {
		d := x[i+1] - x[i]
		if !(d > 0) {
			return nil, fmt.Errorf("%w: x[%d] = %g, x[%d] = %g", ErrNotIncreasing, i, x[i], i+1, x[i+1])
		}
		m.dplus[i] = d
		m.dminus[i+1] = d
	}
	m.dplus[n-1] = core.Undefined()
	m.dminus[0] = core.Undefined()

	return m, nil
}

// Size returns the number of nodes.
func (m *Fdm1D) Size() int {
	return len(m.locations)
}

// Location returns node i.
func (m *Fdm1D) Location(i int) float64 {
	return m.locations[i]
}

// Locations returns a copy of all nodes.
func (m *Fdm1D) Locations() []float64 {
	return append([]float64(nil), m.locations...)
}

// Dplus returns the forward spacing at node i.
func (m *Fdm1D) Dplus(i int) float64 {
	return m.dplus[i]
}

// Dminus returns the backward spacing at node i.
func (m *Fdm1D) Dminus(i int) float64 {
	return m.dminus[i]
}

// Start returns the first node.
func (m *Fdm1D) Start() float64 {
	return m.locations[0]
}

// End returns the last node.
func (m *Fdm1D) End() float64 {
	return m.locations[len(m.locations)-1]
}

// Contains reports whether some node lies within tol of x.
func (m *Fdm1D) Contains(x, tol float64) bool {
	for _, l := range m.locations {
		if math.Abs(l-x) <= tol {
			return true
		}
	}
	return false
}

func validateRange(start, end float64, size int) error {
	if !(end > start) {
		return fmt.Errorf("%w: start = %g, end = %g", ErrInvalidRange, start, end)
	}
	if size < 2 {
		return fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	return nil
}
