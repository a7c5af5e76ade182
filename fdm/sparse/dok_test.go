package sparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestDOKSetAt(t *testing.T) {
	m := New(3, 2)
	m.Set(0, 1, 2)
	m.Add(0, 1, 3)
	m.Add(2, 0, -1)

	assert.Equal(t, 5.0, m.At(0, 1))
	assert.Equal(t, -1.0, m.At(2, 0))
	assert.Equal(t, 0.0, m.At(1, 1))
	assert.Equal(t, 2, m.NNZ())

	m.Set(2, 0, 0)
	assert.Equal(t, 1, m.NNZ())

	r, c := m.Dims()
	assert.Equal(t, 3, r)
	assert.Equal(t, 2, c)
	assert.Equal(t, 5.0, m.T().At(1, 0))
}

func TestDOKBounds(t *testing.T) {
	m := New(2, 2)
	assert.Panics(t, func() { m.At(2, 0) })
	assert.Panics(t, func() { m.Set(0, -1, 1) })
	assert.Panics(t, func() { New(0, 1) })
	assert.Panics(t, func() { m.MulVec([]float64{1}) })
}

func TestDOKEntriesSorted(t *testing.T) {
	m := New(3, 3)
	m.Set(2, 1, 1)
	m.Set(0, 2, 2)
	m.Set(0, 0, 3)

	assert.Equal(t, []Entry{{0, 0, 3}, {0, 2, 2}, {2, 1, 1}}, m.Entries())
}

func TestDOKMatchesGonumDense(t *testing.T) {
	m := New(3, 3)
	m.Set(0, 0, 2)
	m.Set(0, 1, -1)
	m.Set(1, 0, -1)
	m.Set(1, 1, 2)
	m.Set(1, 2, -1)
	m.Set(2, 1, -1)
	m.Set(2, 2, 2)

	x := []float64{1, 2, 3}
	var want mat.VecDense
	want.MulVec(m, mat.NewVecDense(3, x))

	assert.InDeltaSlice(t, mat.Col(nil, 0, &want), m.MulVec(x), 1e-15)
	assert.True(t, mat.Equal(m, m.Dense()))
}

func TestSum(t *testing.T) {
	a := New(2, 2)
	a.Set(0, 0, 1)
	b := New(2, 2)
	b.Set(0, 0, 2)
	b.Set(1, 0, 4)

	s, err := Sum(a, b)
	require.NoError(t, err)
	assert.Equal(t, 3.0, s.At(0, 0))
	assert.Equal(t, 4.0, s.At(1, 0))

	_, err = Sum(a, New(3, 2))
	require.ErrorIs(t, err, ErrShape)

	_, err = Sum()
	require.ErrorIs(t, err, ErrShape)
}

func TestSolve(t *testing.T) {
	m := New(3, 3)
	m.Set(0, 0, 4)
	m.Set(0, 1, 1)
	m.Set(1, 0, 1)
	m.Set(1, 1, 3)
	m.Set(1, 2, 1)
	m.Set(2, 1, 1)
	m.Set(2, 2, 2)

	b := []float64{1, 2, 3}
	x, err := Solve(m, b)
	require.NoError(t, err)
	assert.InDeltaSlice(t, b, m.MulVec(x), 1e-12)
}

func TestSolveErrors(t *testing.T) {
	_, err := Solve(New(2, 3), []float64{1, 2})
	require.ErrorIs(t, err, ErrShape)

	singular := New(2, 2)
	singular.Set(0, 0, 1)
	singular.Set(1, 0, 1)
	_, err = Solve(singular, []float64{1, 2})
	require.ErrorIs(t, err, ErrSingular)
}
