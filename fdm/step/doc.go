// Package step implements step conditions: adjustments a backward
// time-stepping scheme applies to the solution at given times, such as
// discrete dividends and early exercise.
package step
