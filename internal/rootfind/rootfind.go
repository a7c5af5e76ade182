// Package rootfind provides one-dimensional root finders used to place
// concentration points of meshers exactly on a grid node.
package rootfind

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-fdm/fdm/core"
)

const (
	defaultMaxEvaluations = 100
	growthFactor          = 1.6
	epsilon               = 2.220446049250313e-16
)

var (
	// ErrNoBracket is returned when no sign change can be found around the guess.
	ErrNoBracket = errors.New("rootfind: unable to bracket root")
	// ErrMaxEvaluations is returned when the solver does not converge in time.
	ErrMaxEvaluations = errors.New("rootfind: maximum number of function evaluations exceeded")
	// ErrInvalidInterval is returned for an interval that does not contain the guess.
	ErrInvalidInterval = errors.New("rootfind: invalid interval")
)

// Func is a scalar function whose root is sought.
type Func func(x float64) float64

// Solver finds x with f(x) = 0 inside a bracket [xMin, xMax].
type Solver interface {
	SolveBracketed(f Func, accuracy, xMin, xMax float64) (float64, error)
}

// state carries the bracket and the evaluation budget of one solve.
type state struct {
	xMin, xMax   float64
	fxMin, fxMax float64
	evaluations  int
	maxEval      int
}

// Solve brackets a root starting from guess, expanding by step, and refines
// it with s.
func Solve(s Solver, f Func, accuracy, guess, step float64, maxEvaluations int) (float64, error) {
	if maxEvaluations <= 0 {
		maxEvaluations = defaultMaxEvaluations
	}

	root := guess
	st := state{maxEval: maxEvaluations}
	st.fxMax = f(root)
	if isZero(st.fxMax) {
		return root, nil
	}

	if st.fxMax > 0 {
		st.xMin = root - step
		st.fxMin = f(st.xMin)
		st.xMax = root
	} else {
		st.xMin = root
		st.fxMin = st.fxMax
		st.xMax = root + step
		st.fxMax = f(st.xMax)
	}

	flipflop := -1
	for st.evaluations = 2; st.evaluations <= st.maxEval; st.evaluations++ {
		if st.fxMin*st.fxMax <= 0 {
			if isZero(st.fxMin) {
				return st.xMin, nil
			}
			if isZero(st.fxMax) {
				return st.xMax, nil
			}
			return s.SolveBracketed(f, accuracy, st.xMin, st.xMax)
		}

		switch {
		case math.Abs(st.fxMin) < math.Abs(st.fxMax):
			st.xMin += growthFactor * (st.xMin - st.xMax)
			st.fxMin = f(st.xMin)
		case math.Abs(st.fxMin) > math.Abs(st.fxMax):
			st.xMax += growthFactor * (st.xMax - st.xMin)
			st.fxMax = f(st.xMax)
		case flipflop == -1:
			st.xMin += growthFactor * (st.xMin - st.xMax)
			st.fxMin = f(st.xMin)
			st.evaluations++
			flipflop = 1
		default:
			st.xMax += growthFactor * (st.xMax - st.xMin)
			st.fxMax = f(st.xMax)
			flipflop = -1
		}
	}

	return 0, fmt.Errorf("%w: best bracket [%g, %g] with f = [%g, %g]",
		ErrNoBracket, st.xMin, st.xMax, st.fxMin, st.fxMax)
}

func isZero(v float64) bool {
	return core.CloseEnough(v, 0)
}

func checkBracket(f Func, xMin, xMax float64) (float64, float64, error) {
	if xMin >= xMax {
		return 0, 0, fmt.Errorf("%w: [%g, %g]", ErrInvalidInterval, xMin, xMax)
	}

	fxMin, fxMax := f(xMin), f(xMax)
	if fxMin*fxMax > 0 {
		return 0, 0, fmt.Errorf("%w: f(%g) = %g, f(%g) = %g", ErrNoBracket, xMin, fxMin, xMax, fxMax)
	}
	return fxMin, fxMax, nil
}
