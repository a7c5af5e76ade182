package operator

import (
	"github.com/cwbudde/algo-fdm/fdm/mesher"
)

// NewFirstDerivative returns the central first-derivative stencil along
// direction on a possibly non-uniform mesher. The first and last node of
// every pencil use one-sided differences.
func NewFirstDerivative(direction int, m mesher.Mesher) (*TripleBand, error) {
	l := m.Layout()
	op, err := NewTripleBand(direction, m)
	if err != nil {
		return nil, err
	}

	n := l.DimAt(direction)
	for i, coordinates := range l.All() {
		hm := m.Dminus(coordinates, direction)
		hp := m.Dplus(coordinates, direction)

		switch coordinates[direction] {
		case 0:
			op.SetRow(i, 0, -1/hp, 1/hp)
		case n - 1:
			op.SetRow(i, -1/hm, 1/hm, 0)
		default:
			zetam1 := hm * (hm + hp)
			zeta0 := hm * hp
			zetap1 := hp * (hm + hp)
			op.SetRow(i, -hp/zetam1, (hp-hm)/zeta0, hm/zetap1)
		}
	}
	return op, nil
}

// NewSecondDerivative returns the three-point second-derivative stencil
// along direction. Rows at both ends of every pencil are zero.
func NewSecondDerivative(direction int, m mesher.Mesher) (*TripleBand, error) {
	l := m.Layout()
	op, err := NewTripleBand(direction, m)
	if err != nil {
		return nil, err
	}

	n := l.DimAt(direction)
	for i, coordinates := range l.All() {
		c := coordinates[direction]
		if c == 0 || c == n-1 {
			continue
		}
		hm := m.Dminus(coordinates, direction)
		hp := m.Dplus(coordinates, direction)
		zetam1 := hm * (hm + hp)
		zeta0 := hm * hp
		zetap1 := hp * (hm + hp)
		op.SetRow(i, 2/zetam1, -2/zeta0, 2/zetap1)
	}
	return op, nil
}
