package step

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/interp"

	"github.com/cwbudde/algo-fdm/fdm/core"
	"github.com/cwbudde/algo-fdm/fdm/layout"
	"github.com/cwbudde/algo-fdm/fdm/mesher"
	"github.com/cwbudde/algo-fdm/fdm/model"
)

// DividendOption configures NewDividendHandler.
type DividendOption func(*dividendConfig)

type dividendConfig struct {
	linear bool
}

// WithLinearSpace treats the mesher axis as spot levels instead of log-spot.
func WithLinearSpace() DividendOption {
	return func(c *dividendConfig) {
		c.linear = true
	}
}

// DividendHandler shifts the solution across discrete cash dividends.
//
// At a dividend time every pencil along the spot direction is resampled:
// the value at spot S becomes the value just before the payment at
// max(S_min, S - D), interpolated linearly in spot.
type DividendHandler struct {
	dividends []model.Dividend
	direction int
	layout    *layout.Layout
	// spot levels along the direction
	x []float64
}

// NewDividendHandler returns a handler for dividends on direction of m.
func NewDividendHandler(dividends []model.Dividend, m mesher.Mesher, direction int, opts ...DividendOption) (*DividendHandler, error) {
	var cfg dividendConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	l := m.Layout()
	if direction < 0 || direction >= l.Rank() {
		return nil, fmt.Errorf("%w: %d for rank %d", ErrInvalidDirection, direction, l.Rank())
	}

	n := l.DimAt(direction)
	x := make([]float64, n)
	coordinates := make([]int, l.Rank())
	for k := range n {
		coordinates[direction] = k
		x[k] = m.Location(coordinates, direction)
		if !cfg.linear {
			x[k] = math.Exp(x[k])
		}
	}

	return &DividendHandler{
		dividends: append([]model.Dividend(nil), dividends...),
		direction: direction,
		layout:    l,
		x:         x,
	}, nil
}

// StoppingTimes returns the dividend times.
func (h *DividendHandler) StoppingTimes() []float64 {
	out := make([]float64, len(h.dividends))
	for i, d := range h.dividends {
		out[i] = d.Time
	}
	return out
}

// ApplyTo applies every dividend paid at t.
func (h *DividendHandler) ApplyTo(a []float64, t float64) {
	for _, d := range h.dividends {
		if core.CloseEnough(d.Time, t) {
			h.shift(a, d.Amount)
		}
	}
}

func (h *DividendHandler) shift(a []float64, amount float64) {
	n := len(h.x)
	spacing := h.layout.SpacingAt(h.direction)
	values := make([]float64, n)
	shifted := make([]float64, n)

	for base, coordinates := range h.layout.All() {
		if coordinates[h.direction] != 0 {
			continue
		}
		for k := range n {
			values[k] = a[base+k*spacing]
		}

		var pl interp.PiecewiseLinear
		if err := pl.Fit(h.x, values); err != nil {
			// Fit only fails on malformed abscissae, which the mesher rules out.
			panic(err)
		}
		for k := range n {
			shifted[k] = pl.Predict(math.Max(h.x[0], h.x[k]-amount))
		}
		for k := range n {
			a[base+k*spacing] = shifted[k]
		}
	}
}
