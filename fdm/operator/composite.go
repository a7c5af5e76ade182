package operator

import (
	"github.com/cwbudde/algo-fdm/fdm/sparse"
)

// Composite is a time-dependent operator assembled from per-direction
// pieces, as consumed by splitting schemes.
type Composite interface {
	// Size returns the number of directions the operator spans.
	Size() int
	// SetTime rebuilds the operator for the step [t1, t2].
	SetTime(t1, t2 float64) error
	Apply(r []float64) []float64
	// ApplyMixed applies the cross-derivative terms only.
	ApplyMixed(r []float64) []float64
	// ApplyDirection applies the terms acting along one direction.
	ApplyDirection(direction int, r []float64) []float64
	// SolveSplitting solves (I + a*L_direction) x = r.
	SolveSplitting(direction int, r []float64, a float64) ([]float64, error)
	// Preconditioner returns an approximate solve of (I + dt*L) x = r.
	Preconditioner(r []float64, dt float64) ([]float64, error)
	// ToMatrixDecomp returns one sparse matrix per direction plus, if
	// present, one for the mixed terms.
	ToMatrixDecomp() []*sparse.DOK
}

// AxisOp is a composite operator acting along a single direction.
type AxisOp interface {
	Composite
	Direction() int
}

// ToMatrix returns the sum of the matrix decomposition of op.
func ToMatrix(op Composite) (*sparse.DOK, error) {
	return sparse.Sum(op.ToMatrixDecomp()...)
}

// axisBase implements the direction-dispatch part of Composite for
// operators whose whole generator is one TripleBand.
type axisBase struct {
	direction int
	mapT      *TripleBand
}

func (b *axisBase) Size() int { return 1 }

// Map returns the generator assembled by the last SetTime.
func (b *axisBase) Map() *TripleBand { return b.mapT }

// Direction returns the axis the operator acts along.
func (b *axisBase) Direction() int { return b.direction }

func (b *axisBase) Apply(r []float64) []float64 {
	return b.mapT.Apply(r)
}

func (b *axisBase) ApplyMixed(r []float64) []float64 {
	return make([]float64, len(r))
}

func (b *axisBase) ApplyDirection(direction int, r []float64) []float64 {
	if direction == b.direction {
		return b.mapT.Apply(r)
	}
	return make([]float64, len(r))
}

func (b *axisBase) SolveSplitting(direction int, r []float64, a float64) ([]float64, error) {
	if direction == b.direction {
		return b.mapT.SolveSplitting(r, a, 1)
	}
	return append([]float64(nil), r...), nil
}

func (b *axisBase) Preconditioner(r []float64, dt float64) ([]float64, error) {
	return b.SolveSplitting(b.direction, r, dt)
}

func (b *axisBase) ToMatrixDecomp() []*sparse.DOK {
	return []*sparse.DOK{b.mapT.ToMatrix()}
}
