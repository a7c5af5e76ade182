package ode

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolve1DExponential(t *testing.T) {
	in := New(Config{Tolerance: 1e-10})
	got, err := in.Solve1D(func(_, y float64) float64 { return y }, 1, 0, 1)
	require.NoError(t, err)
	assert.InDelta(t, math.E, got, 1e-8)
	assert.Positive(t, in.Statistics().StepCount)
}

func TestSolve1DBackwards(t *testing.T) {
	in := New(DefaultConfig())
	got, err := in.Solve1D(func(x, _ float64) float64 { return 2 * x }, 1, 1, 0)
	require.NoError(t, err)
	assert.InDelta(t, 0, got, 1e-6)
}

func TestSolveHarmonicOscillator(t *testing.T) {
	in := New(Config{Tolerance: 1e-10})
	f := func(_ float64, y, dydx []float64) {
		dydx[0] = y[1]
		dydx[1] = -y[0]
	}
	y0 := []float64{0, 1}

	got, err := in.Solve(f, y0, 0, math.Pi/2)
	require.NoError(t, err)
	assert.InDelta(t, 1, got[0], 1e-8)
	assert.InDelta(t, 0, got[1], 1e-8)
	assert.Equal(t, []float64{0, 1}, y0)
}

func TestSolveZeroInterval(t *testing.T) {
	got, err := New(Config{}).Solve1D(func(_, y float64) float64 { return y }, 3, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, 3.0, got)
}

func TestMinStepSize(t *testing.T) {
	in := New(Config{Tolerance: 1e-12, MinStepSize: 0.5})
	_, err := in.Solve1D(func(_, y float64) float64 { return y }, 1, 0, 10)
	require.ErrorIs(t, err, ErrStepSizeTooSmall)
}
