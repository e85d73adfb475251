// SPDX-License-Identifier: MIT
// Package ld: special functions on the log scale.

package ld

import (
	"math"

	"gonum.org/v1/gonum/mathext"
)

// Gammaln returns log|Γ(x)|.
func Gammaln(x float64) float64 {
	v, _ := math.Lgamma(x)
	return v
}

// Factorialln returns log(n!), or NaN for n < 0.
func Factorialln(n float64) float64 {
	if n < 0 {
		return math.NaN()
	}

	return Gammaln(n + 1)
}

// Combinationln returns log(n choose m).
func Combinationln(n, m float64) float64 {
	return Factorialln(n) - Factorialln(m) - Factorialln(n-m)
}

// Betaln returns log B(a, b).
func Betaln(a, b float64) float64 {
	return mathext.Lbeta(a, b)
}

// isInt reports whether x is a finite integer.
func isInt(x float64) bool {
	return x == math.Trunc(x) && !math.IsInf(x, 0)
}
