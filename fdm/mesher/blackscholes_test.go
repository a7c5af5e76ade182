package mesher

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-fdm/fdm/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const normInv9999 = 3.7190164854556804

func TestBlackScholesBounds(t *testing.T) {
	p := model.NewFlatBlackScholes(100, 0.05, 0.02, 0.2)
	m, err := NewBlackScholes(101, p, 1, 100)
	require.NoError(t, err)

	k := 0.2 * normInv9999 * 1.5
	assert.InDelta(t, math.Log(100)-k, m.Start(), 1e-8)
	assert.InDelta(t, math.Log(100)+0.03+k, m.End(), 1e-8)
	assert.Equal(t, 101, m.Size())
	requireConsistentSpacing(t, m)
}

func TestBlackScholesDividendWidensLowerBound(t *testing.T) {
	p := model.NewFlatBlackScholes(100, 0.05, 0.02, 0.2)
	divs := []model.Dividend{{Time: 0.5, Amount: 5}, {Time: 2, Amount: 50}}
	m, err := NewBlackScholes(51, p, 1, 100, WithDividends(divs))
	require.NoError(t, err)

	// the forward peaks just before the dividend and drops below spot after it
	ma := 100 * math.Exp(0.03*0.5)
	mi := ma - 5
	k := 0.2 * normInv9999 * 1.5
	assert.InDelta(t, math.Log(mi)-k, m.Start(), 1e-8)
	assert.InDelta(t, math.Log(ma)+k, m.End(), 1e-8)
}

func TestBlackScholesIgnoresPastDividends(t *testing.T) {
	p := model.NewFlatBlackScholes(100, 0.05, 0.02, 0.2)
	plain, err := NewBlackScholes(31, p, 1, 100)
	require.NoError(t, err)
	past, err := NewBlackScholes(31, p, 1, 100, WithDividends([]model.Dividend{{Time: -0.5, Amount: 50}}))
	require.NoError(t, err)

	assert.Equal(t, plain.Locations(), past.Locations())
}

func TestBlackScholesOptions(t *testing.T) {
	p := model.NewFlatBlackScholes(100, 0.0, 0.0, 0.3)
	m, err := NewBlackScholes(41, p, 2, 100,
		WithEps(1e-3), WithScaleFactor(1), WithXMax(6), WithSpotAdjustment(10))
	require.NoError(t, err)

	assert.InDelta(t, math.Log(110)-0.3*math.Sqrt(2)*3.090232306167813, m.Start(), 1e-8)
	assert.Equal(t, 6.0, m.End())

	m, err = NewBlackScholes(41, p, 1, 100, WithXMin(3), WithXMax(6))
	require.NoError(t, err)
	assert.Equal(t, 3.0, m.Start())
	assert.InDelta(t, 3.075, m.Location(1), 1e-12)
}

func TestBlackScholesConcentration(t *testing.T) {
	p := model.NewFlatBlackScholes(100, 0.03, 0.0, 0.25)
	m, err := NewBlackScholes(101, p, 1, 100, WithConcentrationPoint(100, 0.05))
	require.NoError(t, err)
	requireStrictlyIncreasing(t, m)

	atm := 0
	for i := 0; i < m.Size()-1; i++ {
		if m.Location(i+1) > math.Log(100) {
			atm = i
			break
		}
	}
	assert.Less(t, m.Dplus(atm), m.Dplus(0))
	assert.Less(t, m.Dplus(atm), m.Dminus(m.Size()-1))
}

func TestBlackScholesQuantoShiftsForward(t *testing.T) {
	p := model.NewFlatBlackScholes(100, 0.05, 0.0, 0.2)
	h := &model.QuantoHelper{
		Domestic: model.FlatForward{Rate: 0.05},
		Foreign:  model.FlatForward{Rate: 0.01},
		FxVol:    model.FlatVol{Vol: 0.1},
		FxLevel:  1,
	}
	plain, err := NewBlackScholes(21, p, 1, 100)
	require.NoError(t, err)
	quanto, err := NewBlackScholes(21, p, 1, 100, WithQuanto(h))
	require.NoError(t, err)

	// the quanto drift reduces the forward by rD - rF
	assert.InDelta(t, plain.End()-0.04, quanto.End(), 1e-8)
}

func TestBlackScholesRejectsInvalidSpot(t *testing.T) {
	p := model.NewFlatBlackScholes(0, 0.05, 0, 0.2)
	_, err := NewBlackScholes(11, p, 1, 100)
	require.ErrorIs(t, err, ErrInvalidSpot)

	p = model.NewFlatBlackScholes(10, 0, 0, 0.2)
	_, err = NewBlackScholes(11, p, 1, 100, WithDividends([]model.Dividend{{Time: 0.5, Amount: 20}}))
	require.ErrorIs(t, err, ErrInvalidSpot)
}
