package mesher

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-fdm/fdm/core"
	"gonum.org/v1/gonum/interp"
)

// ConcentratingOption configures NewConcentrating.
type ConcentratingOption func(*concentratingConfig)

type concentratingConfig struct {
	point, density float64
	hasPoint       bool
	required       bool
}

// WithConcentration concentrates nodes around point. density is relative to
// the grid width; smaller values concentrate more strongly.
func WithConcentration(point, density float64) ConcentratingOption {
	return func(cfg *concentratingConfig) {
		cfg.point = point
		cfg.density = density
		cfg.hasPoint = true
	}
}

// WithRequiredPoint forces the concentration point onto a grid node.
func WithRequiredPoint() ConcentratingOption {
	return func(cfg *concentratingConfig) {
		cfg.required = true
	}
}

// NewConcentrating returns a grid on [start, end] whose nodes cluster around
// a concentration point through the change of variables
//
//	x(u) = c + d*sinh(c1*(1-u) + c2*u),  c1 = asinh((start-c)/d), c2 = asinh((end-c)/d)
//
// for equidistant u in [0, 1]. Without a concentration point the grid is
// uniform.
func NewConcentrating(start, end float64, size int, opts ...ConcentratingOption) (*Fdm1D, error) {
	if err := validateRange(start, end, size); err != nil {
		return nil, err
	}

	var cfg concentratingConfig
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	x := make([]float64, size)
	dx := 1 / float64(size-1)

	if cfg.hasPoint {
		cPoint := cfg.point
		density := cfg.density * (end - start)
		if cPoint < start || cPoint > end {
			return nil, fmt.Errorf("%w: %g not in [%g, %g]", ErrPointOutOfRange, cPoint, start, end)
		}
		if !(density > 0) {
			return nil, fmt.Errorf("%w: %g", ErrInvalidDensity, cfg.density)
		}

		c1 := math.Asinh((start - cPoint) / density)
		c2 := math.Asinh((end - cPoint) / density)

		var transform *interp.PiecewiseLinear
		if cfg.required && size > 2 {
			u := []float64{0}
			z := []float64{0}
			if !core.CloseEnough(cPoint, start) && !core.CloseEnough(cPoint, end) {
				z0 := -c1 / (c2 - c1)
				node := core.Clamp(math.Round(z0*float64(size-1)), 1, float64(size-2))
				u = append(u, node/float64(size-1))
				z = append(z, z0)
			}
			u = append(u, 1)
			z = append(z, 1)

			transform = &interp.PiecewiseLinear{}
			if err := transform.Fit(u, z); err != nil {
				return nil, fmt.Errorf("mesher: concentration transform: %w", err)
			}
		}

		for i := 1; i < size-1; i++ {
			li := float64(i) * dx
			if transform != nil {
				li = transform.Predict(li)
			}
			x[i] = cPoint + density*math.Sinh(c1*(1-li)+c2*li)
		}
	} else {
		for i := 1; i < size-1; i++ {
			x[i] = start + float64(i)*dx*(end-start)
		}
	}

	x[0] = start
	x[size-1] = end

	return fromLocations(x)
}
