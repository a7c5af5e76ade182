// Package operator provides finite-difference operators on a mesher.
//
// The building block is [TripleBand], a banded operator along one axis of an
// N-dimensional layout. Each row couples a node with its two neighbours
// along that axis; neighbours outside the grid are mirrored back inside, so
// every row holds exactly three coefficients. The first and second
// derivative stencils are TripleBands built from the mesher spacings.
//
// Model operators such as the Black-Scholes and Hull-White generators
// implement [Composite]: they are time dependent, rebuilt by SetTime for a
// step [t1, t2], and expose the per-direction pieces an ADI or implicit
// scheme needs.
package operator
