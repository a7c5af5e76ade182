package mesher

import (
	"fmt"
	"math"
	"sort"

	"github.com/cwbudde/algo-fdm/fdm/model"
	"gonum.org/v1/gonum/stat/distuv"
)

const (
	defaultEps         = 1e-4
	defaultScaleFactor = 1.5
	stepsPerYear       = 24
)

// BlackScholesOption configures NewBlackScholes.
type BlackScholesOption func(*blackScholesConfig)

type blackScholesConfig struct {
	eps, scaleFactor float64
	xMin, xMax       *float64
	cPoint, density  float64
	hasCPoint        bool
	dividends        []model.Dividend
	quanto           *model.QuantoHelper
	spotAdjustment   float64
}

// WithEps sets the tail probability cut off at each side of the grid.
func WithEps(eps float64) BlackScholesOption {
	return func(cfg *blackScholesConfig) {
		if eps > 0 && eps < 0.5 {
			cfg.eps = eps
		}
	}
}

// WithScaleFactor widens (>1) or narrows (<1) the quantile-based bounds.
func WithScaleFactor(scale float64) BlackScholesOption {
	return func(cfg *blackScholesConfig) {
		if scale > 0 {
			cfg.scaleFactor = scale
		}
	}
}

// WithXMin fixes the lower log-space bound.
func WithXMin(x float64) BlackScholesOption {
	return func(cfg *blackScholesConfig) {
		cfg.xMin = &x
	}
}

// WithXMax fixes the upper log-space bound.
func WithXMax(x float64) BlackScholesOption {
	return func(cfg *blackScholesConfig) {
		cfg.xMax = &x
	}
}

// WithConcentrationPoint clusters nodes around level s (in spot units).
func WithConcentrationPoint(s, density float64) BlackScholesOption {
	return func(cfg *blackScholesConfig) {
		cfg.cPoint = s
		cfg.density = density
		cfg.hasCPoint = true
	}
}

// WithDividends accounts for discrete dividends when sizing the grid.
func WithDividends(divs []model.Dividend) BlackScholesOption {
	return func(cfg *blackScholesConfig) {
		cfg.dividends = append([]model.Dividend(nil), divs...)
	}
}

// WithQuanto adjusts the forward for a quanto payout.
func WithQuanto(h *model.QuantoHelper) BlackScholesOption {
	return func(cfg *blackScholesConfig) {
		cfg.quanto = h
	}
}

// WithSpotAdjustment shifts the spot used to project the forward.
func WithSpotAdjustment(adj float64) BlackScholesOption {
	return func(cfg *blackScholesConfig) {
		cfg.spotAdjustment = adj
	}
}

// NewBlackScholes returns a log-space mesher for a Black-Scholes process.
//
// The forward is rolled through every dividend date and through at least
// 24 intermediate steps per year. The grid spans
//
//	[log(min fwd) - k, log(max fwd) + k],  k = vol*sqrt(T)*N^-1(1-eps)*scale
//
// unless WithXMin/WithXMax fix a bound.
func NewBlackScholes(size int, process *model.BlackScholesProcess, maturity, strike float64,
	opts ...BlackScholesOption,
) (*Fdm1D, error) {
	cfg := blackScholesConfig{eps: defaultEps, scaleFactor: defaultScaleFactor}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	spot := process.X0()
	if !(spot > 0) {
		return nil, fmt.Errorf("%w: spot = %g", ErrInvalidSpot, spot)
	}

	type step struct{ t, amount float64 }
	var steps []step
	for _, d := range cfg.dividends {
		if d.Time >= 0 && d.Time <= maturity {
			steps = append(steps, step{d.Time, d.Amount})
		}
	}
	n := max(2, int(stepsPerYear*maturity))
	for i := range n {
		steps = append(steps, step{float64(i+1) * maturity / float64(n), 0})
	}
	sort.SliceStable(steps, func(i, j int) bool {
		if steps[i].t != steps[j].t {
			return steps[i].t < steps[j].t
		}
		return steps[i].amount < steps[j].amount
	})

	rTS := process.RiskFree
	qTS := process.Dividend
	if cfg.quanto != nil {
		qTS = cfg.quanto.DividendCurve(qTS, process.Vol, strike)
	}

	lastTime := 0.0
	fwd := spot + cfg.spotAdjustment
	mi, ma := fwd, fwd
	for _, s := range steps {
		fwd = fwd / rTS.Discount(s.t) * rTS.Discount(lastTime) *
			qTS.Discount(s.t) / qTS.Discount(lastTime)
		mi, ma = math.Min(mi, fwd), math.Max(ma, fwd)

		fwd -= s.amount
		mi, ma = math.Min(mi, fwd), math.Max(ma, fwd)

		lastTime = s.t
	}
	if !(mi > 0) {
		return nil, fmt.Errorf("%w: minimal forward = %g", ErrInvalidSpot, mi)
	}

	normInvEps := distuv.UnitNormal.Quantile(1 - cfg.eps)
	sigmaSqrtT := process.Vol.BlackVol(maturity, strike) * math.Sqrt(maturity)

	xMin := math.Log(mi) - sigmaSqrtT*normInvEps*cfg.scaleFactor
	xMax := math.Log(ma) + sigmaSqrtT*normInvEps*cfg.scaleFactor
	if cfg.xMin != nil {
		xMin = *cfg.xMin
	}
	if cfg.xMax != nil {
		xMax = *cfg.xMax
	}

	if cfg.hasCPoint && cfg.cPoint > 0 {
		if lc := math.Log(cfg.cPoint); lc >= xMin && lc <= xMax {
			return NewConcentrating(xMin, xMax, size, WithConcentration(lc, cfg.density))
		}
	}
	return NewUniform(xMin, xMax, size)
}
