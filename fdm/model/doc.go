// Package model defines the market collaborators consumed by the
// finite-difference operators: yield curves, volatility curves, stochastic
// processes and short-rate models.
//
// Operators read these values on every SetTime call and never hold on to
// mutable state, so a process or curve is treated as an immutable snapshot.
// The flat and interpolated implementations here are sufficient for tests and
// tooling; pricing code is expected to provide its own.
package model
