// Package core holds small numeric helpers shared by the finite-difference
// packages: tolerant float comparison, clamping, slice utilities and
// a scratch vector pool.
package core
