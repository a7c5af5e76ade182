package operator

import (
	"fmt"

	vecmath "github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-fdm/fdm/core"
	"github.com/cwbudde/algo-fdm/fdm/layout"
	"github.com/cwbudde/algo-fdm/fdm/mesher"
	"github.com/cwbudde/algo-fdm/fdm/sparse"
)

var scratch = core.NewPool()

// TripleBand is a banded operator along one direction of a layout.
//
// Row i maps u to lower[i]*u[i0[i]] + diag[i]*u[i] + upper[i]*u[i2[i]],
// where i0 and i2 are the mirrored neighbours of i along the direction.
// The neighbour tables and the solve ordering are immutable and shared
// between copies; only the three bands are owned per operator.
type TripleBand struct {
	direction int
	layout    *layout.Layout

	i0           []int
	i2           []int
	reverseIndex []int

	lower []float64
	diag  []float64
	upper []float64
}

// NewTripleBand returns a zero operator along direction of the mesher
// layout.
func NewTripleBand(direction int, m mesher.Mesher) (*TripleBand, error) {
	l := m.Layout()
	if direction < 0 || direction >= l.Rank() {
		return nil, fmt.Errorf("%w: %d for rank %d", ErrInvalidDirection, direction, l.Rank())
	}

	n := l.Size()
	op := &TripleBand{
		direction:    direction,
		layout:       l,
		i0:           make([]int, n),
		i2:           make([]int, n),
		reverseIndex: l.Permutation(direction),
		lower:        make([]float64, n),
		diag:         make([]float64, n),
		upper:        make([]float64, n),
	}
	for i, coordinates := range l.All() {
		op.i0[i] = l.NeighbourAt(coordinates, i, direction, -1)
		op.i2[i] = l.NeighbourAt(coordinates, i, direction, 1)
	}
	return op, nil
}

// Direction returns the axis the operator acts along.
func (op *TripleBand) Direction() int { return op.direction }

// Layout returns the layout the operator is defined on.
func (op *TripleBand) Layout() *layout.Layout { return op.layout }

// Size returns the number of rows.
func (op *TripleBand) Size() int { return len(op.diag) }

// Row returns the three coefficients of row i.
func (op *TripleBand) Row(i int) (lower, diag, upper float64) {
	return op.lower[i], op.diag[i], op.upper[i]
}

// SetRow overwrites the three coefficients of row i.
func (op *TripleBand) SetRow(i int, lower, diag, upper float64) {
	op.lower[i] = lower
	op.diag[i] = diag
	op.upper[i] = upper
}

// Lower returns the band read at the backward neighbour. The slice is a
// view; callers must not modify it.
func (op *TripleBand) Lower() []float64 { return op.lower }

// Diag returns the diagonal band as a view.
func (op *TripleBand) Diag() []float64 { return op.diag }

// Upper returns the band read at the forward neighbour as a view.
func (op *TripleBand) Upper() []float64 { return op.upper }

// Clone returns an independent copy of the bands sharing the neighbour tables.
func (op *TripleBand) Clone() *TripleBand {
	c := *op
	c.lower = append([]float64(nil), op.lower...)
	c.diag = append([]float64(nil), op.diag...)
	c.upper = append([]float64(nil), op.upper...)
	return &c
}

func (op *TripleBand) empty() *TripleBand {
	c := *op
	n := op.Size()
	c.lower = make([]float64, n)
	c.diag = make([]float64, n)
	c.upper = make([]float64, n)
	return &c
}

// Apply returns the operator applied to r.
func (op *TripleBand) Apply(r []float64) []float64 {
	op.checkLen(len(r))
	out := make([]float64, len(r))
	for i := range out {
		out[i] = op.lower[i]*r[op.i0[i]] + op.diag[i]*r[i] + op.upper[i]*r[op.i2[i]]
	}
	return out
}

// Mult returns diag(u)*op: row i scaled by u[i]. A length-one u scales
// every row by the same factor.
func (op *TripleBand) Mult(u []float64) *TripleBand {
	out := op.empty()
	if len(u) == 1 {
		vecmath.ScaleBlock(out.lower, op.lower, u[0])
		vecmath.ScaleBlock(out.diag, op.diag, u[0])
		vecmath.ScaleBlock(out.upper, op.upper, u[0])
		return out
	}
	op.checkLen(len(u))
	vecmath.MulBlock(out.lower, op.lower, u)
	vecmath.MulBlock(out.diag, op.diag, u)
	vecmath.MulBlock(out.upper, op.upper, u)
	return out
}

// MultR returns op*diag(u): each coefficient scaled by u at the column it
// reads. At the ends of a pencil the band reaching past the edge reads the
// mirrored node, so it is scaled by 1 instead.
func (op *TripleBand) MultR(u []float64) *TripleBand {
	op.checkLen(len(u))
	out := op.empty()
	n := op.layout.DimAt(op.direction)
	spacing := op.layout.SpacingAt(op.direction)
	for i := range out.diag {
		c := (i / spacing) % n
		lo, up := u[op.i0[i]], u[op.i2[i]]
		if c == 0 {
			lo = 1
		}
		if c == n-1 {
			up = 1
		}
		out.lower[i] = op.lower[i] * lo
		out.diag[i] = op.diag[i] * u[i]
		out.upper[i] = op.upper[i] * up
	}
	return out
}

// Add returns op + m. Both operators must act along the same direction of
// layouts of the same size.
func (op *TripleBand) Add(m *TripleBand) (*TripleBand, error) {
	if err := op.compatible(m); err != nil {
		return nil, err
	}
	out := op.empty()
	vecmath.AddBlock(out.lower, op.lower, m.lower)
	vecmath.AddBlock(out.diag, op.diag, m.diag)
	vecmath.AddBlock(out.upper, op.upper, m.upper)
	return out, nil
}

// AddDiag returns op + diag(u). A length-one u adds the same value to every
// diagonal entry.
func (op *TripleBand) AddDiag(u []float64) *TripleBand {
	out := op.Clone()
	if len(u) == 1 {
		for i := range out.diag {
			out.diag[i] += u[0]
		}
		return out
	}
	op.checkLen(len(u))
	vecmath.AddBlockInPlace(out.diag, u)
	return out
}

// Axpyb sets op to diag(a)*x + y + diag(b) in place.
//
// a and b are each nil (the term is absent), of length one (broadcast) or
// of the operator size. The receiver may alias x or y.
func (op *TripleBand) Axpyb(a []float64, x, y *TripleBand, b []float64) error {
	if err := op.compatible(y); err != nil {
		return err
	}
	if len(a) > 0 {
		if err := op.compatible(x); err != nil {
			return err
		}
	}
	if err := op.checkCoefficients("a", a); err != nil {
		return err
	}
	if err := op.checkCoefficients("b", b); err != nil {
		return err
	}

	switch len(a) {
	case 0:
		copy(op.lower, y.lower)
		copy(op.diag, y.diag)
		copy(op.upper, y.upper)
	case 1:
		buf := scratch.Get(op.Size())
		defer scratch.Put(buf)
		scaled := *buf
		for _, band := range [][3][]float64{
			{op.lower, x.lower, y.lower},
			{op.diag, x.diag, y.diag},
			{op.upper, x.upper, y.upper},
		} {
			vecmath.ScaleBlock(scaled, band[1], a[0])
			vecmath.AddBlock(band[0], band[2], scaled)
		}
	default:
		vecmath.MulAddBlock(op.lower, a, x.lower, y.lower)
		vecmath.MulAddBlock(op.diag, a, x.diag, y.diag)
		vecmath.MulAddBlock(op.upper, a, x.upper, y.upper)
	}

	switch len(b) {
	case 0:
	case 1:
		for i := range op.diag {
			op.diag[i] += b[0]
		}
	default:
		vecmath.AddBlockInPlace(op.diag, b)
	}
	return nil
}

// SolveSplitting solves (a*op + b*I) x = r for x.
//
// Each pencil along the operator direction is an independent tridiagonal
// system, swept in the layout permutation that makes the direction
// contiguous. The band reaching past either end of a pencil must be zero.
func (op *TripleBand) SolveSplitting(r []float64, a, b float64) ([]float64, error) {
	op.checkLen(len(r))

	n := op.layout.DimAt(op.direction)
	rev := op.reverseIndex
	for j, ri := range rev {
		switch c := j % n; {
		case c == 0 && op.lower[ri] != 0:
			return nil, fmt.Errorf("%w: lower[%d] = %g", ErrBoundaryBand, ri, op.lower[ri])
		case c == n-1 && op.upper[ri] != 0:
			return nil, fmt.Errorf("%w: upper[%d] = %g", ErrBoundaryBand, ri, op.upper[ri])
		}
	}

	size := len(r)
	ret := make([]float64, size)
	buf := scratch.Get(size)
	defer scratch.Put(buf)
	tmp := *buf

	var bet float64
	for j, ri := range rev {
		if j%n == 0 {
			bet = a*op.diag[ri] + b
			if bet == 0 {
				return nil, fmt.Errorf("%w: row %d", ErrZeroPivot, ri)
			}
			bet = 1 / bet
			ret[ri] = r[ri] * bet
			continue
		}
		rim1 := rev[j-1]
		tmp[j] = a * op.upper[rim1] * bet
		bet = b + a*(op.diag[ri]-tmp[j]*op.lower[ri])
		if bet == 0 {
			return nil, fmt.Errorf("%w: row %d", ErrZeroPivot, ri)
		}
		bet = 1 / bet
		ret[ri] = (r[ri] - a*op.lower[ri]*ret[rim1]) * bet
	}

	for j := size - 2; j >= 0; j-- {
		if (j+1)%n == 0 {
			continue
		}
		ret[rev[j]] -= tmp[j+1] * ret[rev[j+1]]
	}
	return ret, nil
}

// ToMatrix returns the operator as an explicit sparse matrix. Mirrored
// neighbours that coincide are summed into one entry.
func (op *TripleBand) ToMatrix() *sparse.DOK {
	n := op.Size()
	m := sparse.New(n, n)
	for i := range n {
		m.Add(i, op.i0[i], op.lower[i])
		m.Add(i, i, op.diag[i])
		m.Add(i, op.i2[i], op.upper[i])
	}
	return m
}

func (op *TripleBand) compatible(m *TripleBand) error {
	if m.direction != op.direction {
		return fmt.Errorf("%w: %d and %d", ErrDirectionMismatch, op.direction, m.direction)
	}
	if m.Size() != op.Size() {
		return fmt.Errorf("%w: %d and %d rows", ErrSizeMismatch, op.Size(), m.Size())
	}
	return nil
}

func (op *TripleBand) checkCoefficients(name string, v []float64) error {
	if len(v) > 1 && len(v) != op.Size() {
		return fmt.Errorf("%w: %s has %d entries, want 1 or %d", ErrSizeMismatch, name, len(v), op.Size())
	}
	return nil
}

func (op *TripleBand) checkLen(n int) {
	if n != op.Size() {
		panic(fmt.Sprintf("operator: vector length %d, want %d", n, op.Size()))
	}
}
