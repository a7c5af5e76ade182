package rootfind

import "math"

// Bisection halves the bracket until it is narrower than the accuracy.
type Bisection struct {
	MaxEvaluations int
}

// Solve brackets a root from guess and refines it.
func (b Bisection) Solve(f Func, accuracy, guess, step float64) (float64, error) {
	return Solve(b, f, accuracy, guess, step, b.MaxEvaluations)
}

// SolveBracketed refines a root known to lie in [xMin, xMax].
func (b Bisection) SolveBracketed(f Func, accuracy, xMin, xMax float64) (float64, error) {
	fxMin, fxMax, err := checkBracket(f, xMin, xMax)
	if err != nil {
		return 0, err
	}
	if isZero(fxMin) {
		return xMin, nil
	}
	if isZero(fxMax) {
		return xMax, nil
	}

	accuracy = math.Max(accuracy, epsilon)
	maxEval := b.MaxEvaluations
	if maxEval <= 0 {
		maxEval = defaultMaxEvaluations
	}

	// orient so that f(root) < 0 and f(root+dx) > 0
	root, dx := xMin, xMax-xMin
	if fxMin >= 0 {
		root, dx = xMax, xMin-xMax
	}

	for evaluations := 2; evaluations <= maxEval; evaluations++ {
		dx /= 2
		xMid := root + dx
		fMid := f(xMid)
		if fMid <= 0 {
			root = xMid
		}
		if math.Abs(dx) < accuracy || isZero(fMid) {
			return root, nil
		}
	}

	return 0, ErrMaxEvaluations
}
