package operator

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-fdm/fdm/mesher"
	"github.com/cwbudde/algo-fdm/fdm/model"
)

// BlackScholesOption configures NewBlackScholesOp.
type BlackScholesOption func(*blackScholesConfig)

type blackScholesConfig struct {
	direction        int
	localVol         bool
	illegalOverwrite float64
	hasOverwrite     bool
	quanto           *model.QuantoHelper
}

// WithDirection sets the axis holding log-spot. Default 0.
func WithDirection(direction int) BlackScholesOption {
	return func(c *blackScholesConfig) {
		c.direction = direction
	}
}

// WithLocalVol switches to the local volatility surface of the process.
func WithLocalVol() BlackScholesOption {
	return func(c *blackScholesConfig) {
		c.localVol = true
	}
}

// WithIllegalLocalVolOverwrite replaces local volatilities the surface
// fails to deliver by vol. Negative values are ignored and leave such
// failures fatal.
func WithIllegalLocalVolOverwrite(vol float64) BlackScholesOption {
	return func(c *blackScholesConfig) {
		if vol >= 0 {
			c.illegalOverwrite = vol
			c.hasOverwrite = true
		}
	}
}

// WithQuantoHelper subtracts the quanto drift adjustment.
func WithQuantoHelper(h *model.QuantoHelper) BlackScholesOption {
	return func(c *blackScholesConfig) {
		c.quanto = h
	}
}

// BlackScholesOp is the Black-Scholes generator in log-spot x = ln S:
//
//	L = (r - q - v/2) d/dx + v/2 d2/dx2 - r
//
// with v the forward variance rate over the current step, or the squared
// local volatility at every node.
type BlackScholesOp struct {
	axisBase

	riskFree model.YieldCurve
	dividend model.YieldCurve
	vol      model.BlackVolCurve
	local    model.LocalVol
	strike   float64
	cfg      blackScholesConfig

	// spot levels exp(x), only kept for local volatility.
	x      []float64
	dxMap  *TripleBand
	dxxMap *TripleBand
}

// NewBlackScholesOp builds the operator on m. The process curves are read
// on every SetTime.
func NewBlackScholesOp(m mesher.Mesher, process *model.BlackScholesProcess, strike float64, opts ...BlackScholesOption) (*BlackScholesOp, error) {
	cfg := blackScholesConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if process == nil {
		return nil, fmt.Errorf("%w: black-scholes process", ErrMissingModel)
	}
	if cfg.localVol && process.Local == nil {
		return nil, model.ErrMissingLocalVol
	}

	dx, err := NewFirstDerivative(cfg.direction, m)
	if err != nil {
		return nil, err
	}
	dxx, err := NewSecondDerivative(cfg.direction, m)
	if err != nil {
		return nil, err
	}
	mapT, err := NewTripleBand(cfg.direction, m)
	if err != nil {
		return nil, err
	}

	op := &BlackScholesOp{
		axisBase: axisBase{direction: cfg.direction, mapT: mapT},
		riskFree: process.RiskFree,
		dividend: process.Dividend,
		vol:      process.Vol,
		local:    process.Local,
		strike:   strike,
		cfg:      cfg,
		dxMap:    dx,
		dxxMap:   dxx,
	}
	if cfg.localVol {
		op.x = m.Locations(cfg.direction)
		for i, v := range op.x {
			op.x[i] = math.Exp(v)
		}
	}
	return op, nil
}

// SetTime rebuilds the generator for the step [t1, t2].
func (op *BlackScholesOp) SetTime(t1, t2 float64) error {
	if !(t2 > t1) {
		return fmt.Errorf("%w: [%g, %g]", ErrInvalidStep, t1, t2)
	}
	r := op.riskFree.ForwardRate(t1, t2)
	q := op.dividend.ForwardRate(t1, t2)

	if !op.cfg.localVol {
		v := model.BlackForwardVariance(op.vol, t1, t2, op.strike) / (t2 - t1)
		drift := r - q - 0.5*v
		if op.cfg.quanto != nil {
			drift -= op.cfg.quanto.Adjustment([]float64{math.Sqrt(v)}, t1, t2)[0]
		}
		return op.mapT.Axpyb([]float64{drift}, op.dxMap, op.dxxMap.Mult([]float64{0.5 * v}), []float64{-r})
	}

	t := 0.5 * (t1 + t2)
	n := len(op.x)
	v := make([]float64, n)
	for i, s := range op.x {
		sigma, err := op.local.LocalVol(t, s)
		if err != nil {
			if !op.cfg.hasOverwrite {
				return fmt.Errorf("%w: t = %g, s = %g: %w", ErrIllegalLocalVol, t, s, err)
			}
			sigma = op.cfg.illegalOverwrite
		}
		v[i] = sigma * sigma
	}

	drift := make([]float64, n)
	half := make([]float64, n)
	for i, vi := range v {
		drift[i] = r - q - 0.5*vi
		half[i] = 0.5 * vi
	}
	if op.cfg.quanto != nil {
		vol := make([]float64, n)
		for i, vi := range v {
			vol[i] = math.Sqrt(vi)
		}
		for i, adj := range op.cfg.quanto.Adjustment(vol, t1, t2) {
			drift[i] -= adj
		}
	}
	return op.mapT.Axpyb(drift, op.dxMap, op.dxxMap.Mult(half), []float64{-r})
}
