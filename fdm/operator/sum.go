package operator

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"

	"github.com/cwbudde/algo-fdm/fdm/sparse"
)

// SumOp is the sum of axis operators acting along distinct directions. It
// carries no mixed terms.
type SumOp struct {
	ops   []AxisOp
	owner map[int]AxisOp
}

// NewSumOp combines ops. Every direction may be claimed by one operator only.
func NewSumOp(ops ...AxisOp) (*SumOp, error) {
	if len(ops) == 0 {
		return nil, errors.New("operator: sum of no operators")
	}
	s := &SumOp{
		ops:   append([]AxisOp(nil), ops...),
		owner: make(map[int]AxisOp, len(ops)),
	}
	for _, op := range ops {
		d := op.Direction()
		if _, dup := s.owner[d]; dup {
			return nil, fmt.Errorf("%w: direction %d claimed twice", ErrDirectionMismatch, d)
		}
		s.owner[d] = op
	}
	return s, nil
}

// Size returns the number of directions spanned.
func (s *SumOp) Size() int { return len(s.ops) }

// SetTime forwards the step to every operator and reports all failures.
func (s *SumOp) SetTime(t1, t2 float64) error {
	var err error
	for _, op := range s.ops {
		err = multierr.Append(err, op.SetTime(t1, t2))
	}
	return err
}

func (s *SumOp) Apply(r []float64) []float64 {
	out := make([]float64, len(r))
	for _, op := range s.ops {
		for i, v := range op.Apply(r) {
			out[i] += v
		}
	}
	return out
}

func (s *SumOp) ApplyMixed(r []float64) []float64 {
	return make([]float64, len(r))
}

func (s *SumOp) ApplyDirection(direction int, r []float64) []float64 {
	if op, ok := s.owner[direction]; ok {
		return op.ApplyDirection(direction, r)
	}
	return make([]float64, len(r))
}

func (s *SumOp) SolveSplitting(direction int, r []float64, a float64) ([]float64, error) {
	if op, ok := s.owner[direction]; ok {
		return op.SolveSplitting(direction, r, a)
	}
	return append([]float64(nil), r...), nil
}

// Preconditioner solves along every direction in turn.
func (s *SumOp) Preconditioner(r []float64, dt float64) ([]float64, error) {
	out := r
	for _, op := range s.ops {
		var err error
		if out, err = op.SolveSplitting(op.Direction(), out, dt); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (s *SumOp) ToMatrixDecomp() []*sparse.DOK {
	var out []*sparse.DOK
	for _, op := range s.ops {
		out = append(out, op.ToMatrixDecomp()...)
	}
	return out
}
