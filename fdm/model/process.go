package model

import (
	"errors"
	"math"
)

// ErrMissingLocalVol is returned when a local-volatility operator is built
// from a process without a local volatility surface.
var ErrMissingLocalVol = errors.New("model: process has no local volatility")

// BlackScholesProcess is the generalized Black-Scholes-Merton process
// dS/S = (r - q) dt + sigma dW.
type BlackScholesProcess struct {
	Spot     float64
	RiskFree YieldCurve
	Dividend YieldCurve
	Vol      BlackVolCurve
	// Local is optional and only used by local-volatility operators.
	Local LocalVol
}

// NewFlatBlackScholes returns a process with flat rate, yield and volatility.
func NewFlatBlackScholes(spot, rate, dividend, vol float64) *BlackScholesProcess {
	return &BlackScholesProcess{
		Spot:     spot,
		RiskFree: FlatForward{Rate: rate},
		Dividend: FlatForward{Rate: dividend},
		Vol:      FlatVol{Vol: vol},
		Local:    FlatLocalVol{Vol: vol},
	}
}

// X0 returns the spot.
func (p *BlackScholesProcess) X0() float64 {
	return p.Spot
}

// HullWhite is the one-factor model dr = (theta(t) - a r) dt + sigma dW,
// fitted to Curve. The state variable x = r - phi(t) has dynamics
// dx = -a x dt + sigma dW.
type HullWhite struct {
	A     float64
	Sigma float64
	Curve YieldCurve
}

// Phi returns the deterministic shift fitting the model to the curve.
func (m HullWhite) Phi(t float64) float64 {
	var temp float64
	if m.A < math.Sqrt(epsilon) {
		temp = m.Sigma * t
	} else {
		temp = m.Sigma * (1 - math.Exp(-m.A*t)) / m.A
	}
	return m.Curve.ForwardRate(t, t) + 0.5*temp*temp
}

// ShortRate returns the short rate for state x at time t.
func (m HullWhite) ShortRate(t, x float64) float64 {
	return x + m.Phi(t)
}

const epsilon = 2.220446049250313e-16

// Dividend is a discrete cash dividend paid at Time (in years).
type Dividend struct {
	Time   float64
	Amount float64
}

// Payoff maps an underlying level to an exercise value.
type Payoff func(s float64) float64

// CallPayoff returns max(s - strike, 0).
func CallPayoff(strike float64) Payoff {
	return func(s float64) float64 { return math.Max(s-strike, 0) }
}

// PutPayoff returns max(strike - s, 0).
func PutPayoff(strike float64) Payoff {
	return func(s float64) float64 { return math.Max(strike-s, 0) }
}
