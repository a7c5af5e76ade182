package model

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/interp"
)

// instantaneousDt is the width used to approximate instantaneous forwards.
const instantaneousDt = 1e-4

// ErrInvalidCurve is returned for curve nodes that cannot be interpolated.
var ErrInvalidCurve = errors.New("model: invalid curve nodes")

// YieldCurve provides discount factors and continuously compounded forward rates.
type YieldCurve interface {
	Discount(t float64) float64
	// ForwardRate returns the continuous forward between t1 and t2. For
	// t1 == t2 it returns the instantaneous forward.
	ForwardRate(t1, t2 float64) float64
}

// FlatForward is a curve with a constant continuous rate.
type FlatForward struct {
	Rate float64
}

// Discount returns exp(-rate*t).
func (c FlatForward) Discount(t float64) float64 {
	return math.Exp(-c.Rate * t)
}

// ForwardRate returns the constant rate.
func (c FlatForward) ForwardRate(_, _ float64) float64 {
	return c.Rate
}

// ZeroCurve linearly interpolates continuously compounded zero rates.
// Rates are held flat outside the node range.
type ZeroCurve struct {
	pl interp.PiecewiseLinear
}

// NewZeroCurve fits zero rates at strictly increasing times.
func NewZeroCurve(times, rates []float64) (*ZeroCurve, error) {
	if len(times) != len(rates) || len(times) < 2 {
		return nil, fmt.Errorf("%w: %d times, %d rates", ErrInvalidCurve, len(times), len(rates))
	}

	for i := 1; i < len(times); i++ {
		if times[i] <= times[i-1] {
			return nil, fmt.Errorf("%w: times not strictly increasing at %d", ErrInvalidCurve, i)
		}
	}

	c := &ZeroCurve{}
	if err := c.pl.Fit(times, rates); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCurve, err)
	}
	return c, nil
}

// ZeroRate returns the interpolated zero rate at t.
func (c *ZeroCurve) ZeroRate(t float64) float64 {
	return c.pl.Predict(t)
}

// Discount returns exp(-z(t)*t).
func (c *ZeroCurve) Discount(t float64) float64 {
	return math.Exp(-c.ZeroRate(t) * t)
}

// ForwardRate returns the forward implied by the zero rates.
func (c *ZeroCurve) ForwardRate(t1, t2 float64) float64 {
	return forwardFromDiscounts(c, t1, t2)
}

func forwardFromDiscounts(c YieldCurve, t1, t2 float64) float64 {
	if t2 < t1 {
		t1, t2 = t2, t1
	}
	if t2-t1 < instantaneousDt {
		mid := 0.5 * (t1 + t2)
		t1 = math.Max(0, mid-0.5*instantaneousDt)
		t2 = t1 + instantaneousDt
	}
	return math.Log(c.Discount(t1)/c.Discount(t2)) / (t2 - t1)
}

// BlackVolCurve provides Black volatilities by expiry and strike.
type BlackVolCurve interface {
	BlackVol(t, strike float64) float64
}

// FlatVol is a constant Black volatility.
type FlatVol struct {
	Vol float64
}

// BlackVol returns the constant volatility.
func (v FlatVol) BlackVol(_, _ float64) float64 {
	return v.Vol
}

// BlackVariance returns vol(t)^2 * t.
func BlackVariance(v BlackVolCurve, t, strike float64) float64 {
	vol := v.BlackVol(t, strike)
	return vol * vol * t
}

// BlackForwardVariance returns the variance accrued between t1 and t2.
func BlackForwardVariance(v BlackVolCurve, t1, t2, strike float64) float64 {
	return BlackVariance(v, t2, strike) - BlackVariance(v, t1, strike)
}

// BlackForwardVol returns the volatility implied by the forward variance.
func BlackForwardVol(v BlackVolCurve, t1, t2, strike float64) float64 {
	if t2 == t1 {
		return v.BlackVol(t1, strike)
	}
	return math.Sqrt(BlackForwardVariance(v, t1, t2, strike) / (t2 - t1))
}

// LocalVol provides local volatilities. Implementations report
// unavailable values, such as negative implied densities, as errors.
type LocalVol interface {
	LocalVol(t, s float64) (float64, error)
}

// LocalVolFunc adapts a function to LocalVol.
type LocalVolFunc func(t, s float64) (float64, error)

// LocalVol calls f.
func (f LocalVolFunc) LocalVol(t, s float64) (float64, error) {
	return f(t, s)
}

// FlatLocalVol is a constant local volatility.
type FlatLocalVol struct {
	Vol float64
}

// LocalVol returns the constant volatility.
func (v FlatLocalVol) LocalVol(_, _ float64) (float64, error) {
	return v.Vol, nil
}
