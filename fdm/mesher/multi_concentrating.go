package mesher

import (
	"fmt"
	"math"
	"sort"

	"github.com/cwbudde/algo-fdm/fdm/core"
	"github.com/cwbudde/algo-fdm/internal/ode"
	"github.com/cwbudde/algo-fdm/internal/rootfind"
	"gonum.org/v1/gonum/interp"
)

const (
	defaultMultiTolerance = 1e-8
	machineEpsilon        = 2.220446049250313e-16
)

// ConcentrationPoint is one point of a multi-point concentrating mesher.
type ConcentrationPoint struct {
	Point   float64
	Density float64
	// Required forces Point onto a grid node.
	Required bool
}

// MultiConcentratingOption configures NewMultiConcentrating.
type MultiConcentratingOption func(*multiConfig)

type multiConfig struct {
	tol float64
}

// WithTolerance sets the accuracy of the ODE integration and root searches.
func WithTolerance(tol float64) MultiConcentratingOption {
	return func(cfg *multiConfig) {
		if tol > 0 {
			cfg.tol = tol
		}
	}
}

// densityODE is the grid-density equation
//
//	dy/dx = a / sqrt(sum_i 1/(beta_i + (y - p_i)^2))
//
// whose solution maps equidistant x in [0, 1] onto clustered nodes y.
type densityODE struct {
	points, betas []float64
	integrator    *ode.Integrator
}

func (f *densityODE) rhs(a, y float64) float64 {
	s := 0.0
	for i, p := range f.points {
		s += 1 / (f.betas[i] + (y-p)*(y-p))
	}
	return a / math.Sqrt(s)
}

func (f *densityODE) solve(a, y0, x0, x1 float64) (float64, error) {
	return f.integrator.Solve1D(func(_, y float64) float64 { return f.rhs(a, y) }, y0, x0, x1)
}

// NewMultiConcentrating returns a grid on [start, end] concentrated around
// several points at once. Required points are placed exactly on grid nodes.
func NewMultiConcentrating(start, end float64, size int, cPoints []ConcentrationPoint,
	opts ...MultiConcentratingOption,
) (*Fdm1D, error) {
	if err := validateRange(start, end, size); err != nil {
		return nil, err
	}
	if len(cPoints) == 0 {
		return NewUniform(start, end, size)
	}

	cfg := multiConfig{tol: defaultMultiTolerance}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	fct := &densityODE{
		points:     make([]float64, len(cPoints)),
		betas:      make([]float64, len(cPoints)),
		integrator: ode.New(ode.Config{Tolerance: cfg.tol}),
	}
	for i, cp := range cPoints {
		if !(cp.Density > 0) {
			return nil, fmt.Errorf("%w: %g", ErrInvalidDensity, cp.Density)
		}
		d := cp.Density * (end - start)
		fct.points[i] = cp.Point
		fct.betas[i] = d * d
	}

	aInit := 0.0
	for i, p := range fct.points {
		c1 := math.Asinh((start - p) / fct.betas[i])
		c2 := math.Asinh((end - p) / fct.betas[i])
		aInit += (c2 - c1) / float64(len(fct.points))
	}

	// scaling factor a so that y(1) = end
	var odeErr error
	a, err := rootfind.Brent{}.Solve(func(a float64) float64 {
		y, err := fct.solve(a, start, 0, 1)
		if err != nil {
			odeErr = err
			return math.NaN()
		}
		return y - end
	}, cfg.tol, aInit, 0.1*aInit)
	if odeErr != nil {
		return nil, fmt.Errorf("mesher: density ode: %w", odeErr)
	}
	if err != nil {
		return nil, fmt.Errorf("mesher: density scaling: %w", err)
	}

	x := make([]float64, size)
	y := make([]float64, size)
	y[0] = start
	dx := 1 / float64(size-1)
	for i := 1; i < size; i++ {
		x[i] = float64(i) * dx
		if y[i], err = fct.solve(a, y[i-1], x[i-1], x[i]); err != nil {
			return nil, fmt.Errorf("mesher: density ode: %w", err)
		}
	}

	// remove the residual so that y(1) == end
	dy := y[size-1] - end
	for i := 1; i < size; i++ {
		y[i] -= float64(i) * dx * dy
	}

	var odeSolution interp.PiecewiseLinear
	if err := odeSolution.Fit(x, y); err != nil {
		return nil, fmt.Errorf("mesher: density interpolation: %w", err)
	}

	type breakpoint struct{ u, z float64 }
	w := []breakpoint{{0, 0}}
	for i, cp := range cPoints {
		p := fct.points[i]
		if !cp.Required || p <= start || p >= end {
			continue
		}

		j := sort.SearchFloat64s(y, p)
		e, err := rootfind.Brent{}.Solve(func(u float64) float64 {
			return odeSolution.Predict(u) - p
		}, machineEpsilon, x[j], 0.5/float64(size))
		if err != nil {
			return nil, fmt.Errorf("mesher: locating %g: %w", p, err)
		}
		w = append(w, breakpoint{math.Min(x[size-2], x[j]), e})
	}
	w = append(w, breakpoint{1, 1})

	sort.SliceStable(w, func(i, j int) bool { return w[i].u < w[j].u })
	u := make([]float64, 0, len(w))
	z := make([]float64, 0, len(w))
	for _, b := range w {
		if len(u) > 0 && core.CloseEnough(u[len(u)-1], b.u) {
			continue
		}
		u = append(u, b.u)
		z = append(z, b.z)
	}

	var transform interp.PiecewiseLinear
	if err := transform.Fit(u, z); err != nil {
		return nil, fmt.Errorf("mesher: concentration transform: %w", err)
	}

	locations := make([]float64, size)
	for i := range locations {
		locations[i] = odeSolution.Predict(transform.Predict(x[i]))
	}
	locations[0] = start
	locations[size-1] = end

	return fromLocations(locations)
}
