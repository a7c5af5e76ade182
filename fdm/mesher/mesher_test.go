package mesher

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireStrictlyIncreasing(t *testing.T, m Mesher1D) {
	t.Helper()
	for i := 1; i < m.Size(); i++ {
		require.Greater(t, m.Location(i), m.Location(i-1), "node %d", i)
	}
}

func requireConsistentSpacing(t *testing.T, m Mesher1D) {
	t.Helper()
	n := m.Size()
	require.True(t, math.IsNaN(m.Dminus(0)))
	require.True(t, math.IsNaN(m.Dplus(n-1)))
	for i := 0; i < n-1; i++ {
		d := m.Location(i+1) - m.Location(i)
		require.InDelta(t, d, m.Dplus(i), 1e-12)
		require.InDelta(t, d, m.Dminus(i+1), 1e-12)
	}
}

func TestUniform(t *testing.T) {
	m, err := NewUniform(-1, 1, 5)
	require.NoError(t, err)

	assert.Equal(t, 5, m.Size())
	assert.InDeltaSlice(t, []float64{-1, -0.5, 0, 0.5, 1}, m.Locations(), 1e-15)
	assert.Equal(t, 0.5, m.Dplus(0))
	assert.Equal(t, -1.0, m.Start())
	assert.Equal(t, 1.0, m.End())
	requireConsistentSpacing(t, m)
}

func TestUniformRejectsInvalidInput(t *testing.T) {
	_, err := NewUniform(1, 1, 10)
	require.ErrorIs(t, err, ErrInvalidRange)

	_, err = NewUniform(2, 1, 10)
	require.ErrorIs(t, err, ErrInvalidRange)

	_, err = NewUniform(0, 1, 1)
	require.ErrorIs(t, err, ErrInvalidSize)
}

func TestPredefined(t *testing.T) {
	x := []float64{0, 0.1, 0.5, 2}
	m, err := NewPredefined(x)
	require.NoError(t, err)

	x[0] = -5
	assert.Equal(t, 0.0, m.Location(0))
	assert.InDelta(t, 0.4, m.Dplus(1), 1e-15)
	assert.InDelta(t, 1.5, m.Dminus(3), 1e-15)
	requireConsistentSpacing(t, m)

	_, err = NewPredefined([]float64{0, 1, 1, 2})
	require.ErrorIs(t, err, ErrNotIncreasing)

	_, err = NewPredefined([]float64{0, 2, 1})
	require.ErrorIs(t, err, ErrNotIncreasing)

	_, err = NewPredefined([]float64{0})
	require.ErrorIs(t, err, ErrInvalidSize)
}

func TestConcentratingPlacesRequiredPoint(t *testing.T) {
	m, err := NewConcentrating(0, 10, 101, WithConcentration(5, 0.1), WithRequiredPoint())
	require.NoError(t, err)

	requireStrictlyIncreasing(t, m)
	requireConsistentSpacing(t, m)
	assert.Equal(t, 0.0, m.Start())
	assert.Equal(t, 10.0, m.End())
	assert.True(t, m.Contains(5, 1e-6))
	assert.InDelta(t, 5, m.Location(50), 1e-12)

	// nodes are denser around the concentration point
	assert.Less(t, m.Dplus(50), m.Dplus(0))
	assert.Less(t, m.Dplus(50), m.Dminus(100))
}

func TestConcentratingAsymmetricRequiredPoint(t *testing.T) {
	m, err := NewConcentrating(0, 10, 51, WithConcentration(3.3, 0.05), WithRequiredPoint())
	require.NoError(t, err)

	requireStrictlyIncreasing(t, m)
	assert.True(t, m.Contains(3.3, 1e-10))
}

func TestConcentratingWithoutPointIsUniform(t *testing.T) {
	m, err := NewConcentrating(2, 4, 5)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{2, 2.5, 3, 3.5, 4}, m.Locations(), 1e-15)
}

func TestConcentratingPointAtBoundary(t *testing.T) {
	m, err := NewConcentrating(0, 1, 21, WithConcentration(0, 0.1), WithRequiredPoint())
	require.NoError(t, err)
	requireStrictlyIncreasing(t, m)
	assert.Less(t, m.Dplus(0), m.Dminus(20))
}

func TestConcentratingRejectsInvalidInput(t *testing.T) {
	_, err := NewConcentrating(0, 1, 11, WithConcentration(2, 0.1))
	require.ErrorIs(t, err, ErrPointOutOfRange)

	_, err = NewConcentrating(0, 1, 11, WithConcentration(0.5, 0))
	require.ErrorIs(t, err, ErrInvalidDensity)

	_, err = NewConcentrating(1, 0, 11)
	require.ErrorIs(t, err, ErrInvalidRange)
}

func TestMultiConcentratingPlacesRequiredPoints(t *testing.T) {
	points := []ConcentrationPoint{
		{Point: 3, Density: 0.1, Required: true},
		{Point: 7, Density: 0.1, Required: true},
	}
	m, err := NewMultiConcentrating(0, 10, 101, points)
	require.NoError(t, err)

	requireStrictlyIncreasing(t, m)
	requireConsistentSpacing(t, m)
	assert.Equal(t, 0.0, m.Start())
	assert.Equal(t, 10.0, m.End())
	assert.True(t, m.Contains(3, 1e-6))
	assert.True(t, m.Contains(7, 1e-6))

	// the density around both points is higher than at the middle
	spacingNear := func(x float64) float64 {
		for i := 0; i < m.Size()-1; i++ {
			if m.Location(i+1) > x {
				return m.Dplus(i)
			}
		}
		return math.NaN()
	}
	assert.Less(t, spacingNear(3), spacingNear(5))
	assert.Less(t, spacingNear(7), spacingNear(5))
}

func TestMultiConcentratingWithoutPointsIsUniform(t *testing.T) {
	m, err := NewMultiConcentrating(0, 1, 3, nil)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0, 0.5, 1}, m.Locations(), 1e-15)
}

func TestMultiConcentratingRejectsInvalidDensity(t *testing.T) {
	_, err := NewMultiConcentrating(0, 1, 11, []ConcentrationPoint{{Point: 0.5}})
	require.ErrorIs(t, err, ErrInvalidDensity)
}
