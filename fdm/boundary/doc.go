// Package boundary implements boundary conditions for the operators of
// package operator.
//
// A condition is applied around the two operations a time-stepping scheme
// performs: before and after applying an operator explicitly, and before
// and after solving with it implicitly. Conditions act on the pencils of a
// single direction and leave operators along other directions untouched.
package boundary
