// Package ode integrates ordinary differential equations with an adaptive
// Cash-Karp Runge-Kutta scheme. It is used by the concentrating mesher to
// solve the grid-density ODE.
package ode

import (
	"errors"
	"fmt"
	"math"
)

const (
	maxSteps = 10000
	tiny     = 1e-30
	safety   = 0.9
	pGrow    = -0.2
	pShrink  = -0.25
	errCon   = 1.89e-4
)

var (
	// ErrStepSizeTooSmall is returned when the next step falls below the minimum.
	ErrStepSizeTooSmall = errors.New("ode: step size too small")
	// ErrStepSizeUnderflow is returned when a rejected step no longer advances x.
	ErrStepSizeUnderflow = errors.New("ode: step size underflow")
	// ErrTooManySteps is returned when the integration does not reach its end point.
	ErrTooManySteps = errors.New("ode: too many steps")
)

// Function evaluates the right hand side y'(x) = f(x, y) into dydx.
type Function func(x float64, y, dydx []float64)

// Function1D is the scalar form of Function.
type Function1D func(x, y float64) float64

// Config controls the adaptive integrator.
type Config struct {
	// Tolerance is the relative error accepted per step.
	Tolerance float64
	// InitialStepSize is the size of the first trial step.
	InitialStepSize float64
	// MinStepSize aborts the integration if a step falls below it.
	MinStepSize float64
}

// DefaultConfig returns the tolerances used by the meshers.
func DefaultConfig() Config {
	return Config{
		Tolerance:       1e-6,
		InitialStepSize: 1e-4,
	}
}

// Statistics summarises one integration.
type Statistics struct {
	StepCount     int
	RejectedCount int
}

// Integrator is an adaptive Cash-Karp Runge-Kutta integrator.
type Integrator struct {
	cfg  Config
	stat Statistics
}

// New returns an integrator; non-positive tolerance or step fall back to defaults.
func New(cfg Config) *Integrator {
	def := DefaultConfig()
	if cfg.Tolerance <= 0 {
		cfg.Tolerance = def.Tolerance
	}
	if cfg.InitialStepSize <= 0 {
		cfg.InitialStepSize = def.InitialStepSize
	}
	return &Integrator{cfg: cfg}
}

// Statistics returns the counters of the last integration.
func (in *Integrator) Statistics() Statistics {
	return in.stat
}

// Solve1D integrates a scalar ODE from (x1, y1) to x2 and returns y(x2).
func (in *Integrator) Solve1D(f Function1D, y1, x1, x2 float64) (float64, error) {
	y, err := in.Solve(func(x float64, y, dydx []float64) {
		dydx[0] = f(x, y[0])
	}, []float64{y1}, x1, x2)
	if err != nil {
		return 0, err
	}
	return y[0], nil
}

// Solve integrates f from (x1, y1) to x2 and returns y(x2). y1 is not modified.
func (in *Integrator) Solve(f Function, y1 []float64, x1, x2 float64) ([]float64, error) {
	n := len(y1)
	y := append([]float64(nil), y1...)
	dydx := make([]float64, n)
	yScale := make([]float64, n)
	w := newWorkspace(n)

	in.stat = Statistics{}
	h := math.Copysign(in.cfg.InitialStepSize, x2-x1)
	x := x1

	for range maxSteps {
		f(x, y, dydx)
		for i := range y {
			yScale[i] = math.Abs(y[i]) + math.Abs(dydx[i]*h) + tiny
		}
		if (x+h-x2)*(x+h-x1) > 0 {
			h = x2 - x
		}

		hdid, hnext, err := in.step(f, w, y, dydx, &x, h, yScale)
		if err != nil {
			return nil, err
		}
		if hdid == h {
			in.stat.StepCount++
		} else {
			in.stat.RejectedCount++
		}

		if (x-x2)*(x2-x1) >= 0 {
			return y, nil
		}
		if math.Abs(hnext) <= in.cfg.MinStepSize {
			return nil, fmt.Errorf("%w: %g at x = %g", ErrStepSizeTooSmall, hnext, x)
		}
		h = hnext
	}

	return nil, ErrTooManySteps
}

// step performs one quality-controlled step, shrinking h until the error
// estimate is within tolerance. It advances x and y in place.
func (in *Integrator) step(f Function, w *workspace, y, dydx []float64, x *float64, htry float64,
	yScale []float64,
) (hdid, hnext float64, err error) {
	h := htry
	for {
		w.cashKarp(f, y, dydx, *x, h)

		errMax := 0.0
		for i := range y {
			errMax = math.Max(errMax, math.Abs(w.yErr[i]/yScale[i]))
		}
		errMax /= in.cfg.Tolerance

		if errMax > 1 {
			shrunk := safety * h * math.Pow(errMax, pShrink)
			if h >= 0 {
				h = math.Max(shrunk, h/10)
			} else {
				h = math.Min(shrunk, h/10)
			}
			if *x+h == *x {
				return 0, 0, fmt.Errorf("%w at x = %g", ErrStepSizeUnderflow, *x)
			}
			continue
		}

		if errMax > errCon {
			hnext = safety * h * math.Pow(errMax, pGrow)
		} else {
			hnext = 5 * h
		}
		*x += h
		copy(y, w.yTemp)
		return h, hnext, nil
	}
}
