package model

import "math"

// QuantoHelper computes the drift adjustment of an equity quoted in a
// foreign currency and paid in the domestic one.
type QuantoHelper struct {
	Domestic    YieldCurve
	Foreign     YieldCurve
	FxVol       BlackVolCurve
	Correlation float64
	// FxLevel is the exchange-rate level used to read FxVol.
	FxLevel float64
}

// Adjustment returns rD - rF + rho * equityVol * fxVol over [t1, t2] for
// every equity volatility.
func (h *QuantoHelper) Adjustment(equityVol []float64, t1, t2 float64) []float64 {
	rd := h.Domestic.ForwardRate(t1, t2)
	rf := h.Foreign.ForwardRate(t1, t2)
	fxVol := BlackForwardVol(h.FxVol, t1, t2, h.FxLevel)

	out := make([]float64, len(equityVol))
	for i, v := range equityVol {
		out[i] = rd - rf + h.Correlation*v*fxVol
	}
	return out
}

// DividendCurve returns the dividend curve q adjusted for the quanto drift
// at the given equity volatility and strike.
func (h *QuantoHelper) DividendCurve(q YieldCurve, equityVol BlackVolCurve, strike float64) YieldCurve {
	return quantoCurve{q: q, helper: h, eqVol: equityVol, strike: strike}
}

type quantoCurve struct {
	q      YieldCurve
	helper *QuantoHelper
	eqVol  BlackVolCurve
	strike float64
}

func (c quantoCurve) Discount(t float64) float64 {
	if t == 0 {
		return 1
	}
	h := c.helper
	spread := -math.Log(h.Domestic.Discount(t)) + math.Log(h.Foreign.Discount(t))
	vol := c.eqVol.BlackVol(t, c.strike) * h.FxVol.BlackVol(t, h.FxLevel)
	return c.q.Discount(t) * math.Exp(-spread-h.Correlation*vol*t)
}

func (c quantoCurve) ForwardRate(t1, t2 float64) float64 {
	return forwardFromDiscounts(c, t1, t2)
}
