package mesher

import (
	"github.com/cwbudde/algo-fdm/fdm/core"
	"gonum.org/v1/gonum/floats"
)

// NewUniform returns size equidistant nodes spanning [start, end].
func NewUniform(start, end float64, size int) (*Fdm1D, error) {
	if err := validateRange(start, end, size); err != nil {
		return nil, err
	}

	x := floats.Span(make([]float64, size), start, end)
	dx := (end - start) / float64(size-1)

	m := &Fdm1D{
		locations: x,
		dplus:     core.Filled(size, dx),
		dminus:    core.Filled(size, dx),
	}
	m.dplus[size-1] = core.Undefined()
	m.dminus[0] = core.Undefined()

	return m, nil
}
