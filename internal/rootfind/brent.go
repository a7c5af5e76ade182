package rootfind

import "math"

// Brent combines bisection, secant and inverse quadratic interpolation.
type Brent struct {
	// MaxEvaluations bounds the number of function evaluations; zero means 100.
	MaxEvaluations int
}

// Solve brackets a root from guess and refines it.
func (b Brent) Solve(f Func, accuracy, guess, step float64) (float64, error) {
	return Solve(b, f, accuracy, guess, step, b.MaxEvaluations)
}

// SolveBracketed refines a root known to lie in [xMin, xMax].
func (b Brent) SolveBracketed(f Func, accuracy, xMin, xMax float64) (float64, error) {
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

	var d, e float64
	root, froot := xMax, fxMax

	for evaluations := 2; evaluations <= maxEval; evaluations++ {
		if (froot > 0 && fxMax > 0) || (froot < 0 && fxMax < 0) {
			xMax, fxMax = xMin, fxMin
			d = root - xMin
			e = d
		}
		if math.Abs(fxMax) < math.Abs(froot) {
			xMin, root, xMax = root, xMax, root
			fxMin, froot, fxMax = froot, fxMax, froot
		}

		tol := 2*epsilon*math.Abs(root) + 0.5*accuracy
		xMid := (xMax - root) / 2
		if math.Abs(xMid) <= tol || isZero(froot) {
			return root, nil
		}

		if math.Abs(e) >= tol && math.Abs(fxMin) > math.Abs(froot) {
			var p, q float64
			s := froot / fxMin
			if xMin == xMax {
				p = 2 * xMid * s
				q = 1 - s
			} else {
				q = fxMin / fxMax
				r := froot / fxMax
				p = s * (2*xMid*q*(q-r) - (root-xMin)*(r-1))
				q = (q - 1) * (r - 1) * (s - 1)
			}
			if p > 0 {
				q = -q
			}
			p = math.Abs(p)

			min1 := 3*xMid*q - math.Abs(tol*q)
			min2 := math.Abs(e * q)
			if 2*p < math.Min(min1, min2) {
				e = d
				d = p / q
			} else {
				d = xMid
				e = d
			}
		} else {
			d = xMid
			e = d
		}

		xMin, fxMin = root, froot
		if math.Abs(d) > tol {
			root += d
		} else {
			root += math.Copysign(tol, xMid)
		}
		froot = f(root)
	}

	return 0, ErrMaxEvaluations
}
