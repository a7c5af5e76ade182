package boundary

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-fdm/fdm/layout"
	"github.com/cwbudde/algo-fdm/fdm/operator"
)

var (
	// ErrInvalidSide is returned for a condition built on Side None.
	ErrInvalidSide = errors.New("boundary: invalid side")
	// ErrInvalidDirection is returned when the direction is outside the layout rank.
	ErrInvalidDirection = errors.New("boundary: invalid direction")
)

// Side selects the end of an axis a condition acts on.
type Side int

const (
	None Side = iota
	Lower
	Upper
)

func (s Side) String() string {
	switch s {
	case None:
		return "none"
	case Lower:
		return "lower"
	case Upper:
		return "upper"
	default:
		return fmt.Sprintf("Side(%d)", int(s))
	}
}

// Condition is a boundary condition hooked into a time-stepping scheme.
type Condition interface {
	ApplyBeforeApplying(op *operator.TripleBand)
	ApplyAfterApplying(u []float64)
	// ApplyBeforeSolving prepares op and rhs for op.SolveSplitting(rhs, a, b).
	ApplyBeforeSolving(op *operator.TripleBand, rhs []float64, a, b float64)
	ApplyAfterSolving(u []float64)
	SetTime(t float64)
}

// IndicesOnBoundary returns, in layout order, the flat indices lying on the
// given side of direction. Side None yields no indices.
func IndicesOnBoundary(l *layout.Layout, direction int, side Side) []int {
	var target int
	switch side {
	case Lower:
		target = 0
	case Upper:
		target = l.DimAt(direction) - 1
	default:
		return nil
	}

	out := make([]int, 0, l.HyperplaneSize(direction))
	for i, coordinates := range l.All() {
		if coordinates[direction] == target {
			out = append(out, i)
		}
	}
	return out
}

func checkPlacement(l *layout.Layout, direction int, side Side) error {
	if direction < 0 || direction >= l.Rank() {
		return fmt.Errorf("%w: %d for rank %d", ErrInvalidDirection, direction, l.Rank())
	}
	if side != Lower && side != Upper {
		return fmt.Errorf("%w: %v", ErrInvalidSide, side)
	}
	return nil
}

// Set is an ordered list of conditions applied in turn.
type Set []Condition

func (s Set) ApplyBeforeApplying(op *operator.TripleBand) {
	for _, c := range s {
		c.ApplyBeforeApplying(op)
	}
}

func (s Set) ApplyAfterApplying(u []float64) {
	for _, c := range s {
		c.ApplyAfterApplying(u)
	}
}

func (s Set) ApplyBeforeSolving(op *operator.TripleBand, rhs []float64, a, b float64) {
	for _, c := range s {
		c.ApplyBeforeSolving(op, rhs, a, b)
	}
}

func (s Set) ApplyAfterSolving(u []float64) {
	for _, c := range s {
		c.ApplyAfterSolving(u)
	}
}

func (s Set) SetTime(t float64) {
	for _, c := range s {
		c.SetTime(t)
	}
}
