package operator

import (
	"fmt"

	"github.com/cwbudde/algo-fdm/fdm/mesher"
	"github.com/cwbudde/algo-fdm/fdm/model"
)

// HullWhiteOp is the Hull-White generator in the shifted state x = r - phi(t):
//
//	L = -a x d/dx + sigma^2/2 d2/dx2 - (x + phi)
//
// where phi is averaged over the step.
type HullWhiteOp struct {
	axisBase

	model model.HullWhite
	x     []float64
	dzMap *TripleBand
}

// NewHullWhiteOp builds the operator along direction of m.
func NewHullWhiteOp(m mesher.Mesher, hw *model.HullWhite, direction int) (*HullWhiteOp, error) {
	if hw == nil || hw.Curve == nil {
		return nil, fmt.Errorf("%w: hull-white model", ErrMissingModel)
	}

	dx, err := NewFirstDerivative(direction, m)
	if err != nil {
		return nil, err
	}
	dxx, err := NewSecondDerivative(direction, m)
	if err != nil {
		return nil, err
	}
	mapT, err := NewTripleBand(direction, m)
	if err != nil {
		return nil, err
	}

	x := m.Locations(direction)
	reversion := make([]float64, len(x))
	for i, v := range x {
		reversion[i] = -hw.A * v
	}
	dz, err := dx.Mult(reversion).Add(dxx.Mult([]float64{0.5 * hw.Sigma * hw.Sigma}))
	if err != nil {
		return nil, err
	}

	return &HullWhiteOp{
		axisBase: axisBase{direction: direction, mapT: mapT},
		model:    *hw,
		x:        x,
		dzMap:    dz,
	}, nil
}

// SetTime rebuilds the generator for the step [t1, t2].
func (op *HullWhiteOp) SetTime(t1, t2 float64) error {
	phi := 0.5 * (op.model.ShortRate(t1, 0) + op.model.ShortRate(t2, 0))
	b := make([]float64, len(op.x))
	for i, v := range op.x {
		b[i] = -(v + phi)
	}
	return op.mapT.Axpyb(nil, op.dzMap, op.dzMap, b)
}
