// Package mesher places grid nodes along each axis of a finite-difference
// problem and combines per-axis meshers into an N-dimensional mesher.
//
// One-dimensional meshers ([Fdm1D]) store strictly increasing locations and
// the one-sided spacings dminus/dplus. The spacing before the first node and
// after the last node do not exist and are reported as NaN.
//
// Available 1D meshers:
//
//   - [NewUniform]:           equidistant nodes
//   - [NewPredefined]:        caller supplied nodes
//   - [NewConcentrating]:     sinh-stretched nodes around one point
//   - [NewMultiConcentrating]: ODE-driven density around several points
//   - [NewBlackScholes]:      log-space grid spanning the quantiles of a
//     Black-Scholes process
//
// [Composite] tensor-products 1D meshers over a shared [layout.Layout].
package mesher
