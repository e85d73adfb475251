// SPDX-License-Identifier: MIT
// Package ld: discrete log mass functions.

package ld

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// validProb reports whether p is a probability.
func validProb(p float64) bool {
	return p >= 0 && p <= 1
}

// Bern is the Bernoulli log mass of x ∈ {0, 1}.
func Bern(x, prob float64) float64 {
	if !validProb(prob) {
		return math.NaN()
	}
	if x != 0 && x != 1 {
		return math.Inf(-1)
	}

	d := distuv.Bernoulli{P: prob}

	return d.LogProb(x)
}

// Cat is the categorical log mass of the 1-based category x. probs are used
// as given and are not renormalized.
func Cat(x float64, probs []float64) float64 {
	if !isInt(x) || x < 1 || int(x) > len(probs) {
		return math.Inf(-1)
	}

	return math.Log(probs[int(x)-1])
}

// Binom is the binomial log mass of x successes in size trials.
func Binom(x, size, prob float64) float64 {
	if !validProb(prob) || !isInt(size) || size < 0 {
		return math.NaN()
	}
	if !isInt(x) || x < 0 || x > size {
		return math.Inf(-1)
	}
	if prob == 0 || prob == 1 {
		if size*prob == x {
			return 0
		}
		return math.Inf(-1)
	}

	d := distuv.Binomial{N: size, P: prob}

	return d.LogProb(x)
}

// NBinom is the negative binomial log mass of x failures before size successes.
func NBinom(x, size, prob float64) float64 {
	if !(prob > 0 && prob <= 1) || !(size > 0) {
		return math.NaN()
	}
	if !isInt(x) || x < 0 {
		return math.Inf(-1)
	}

	return Combinationln(x+size-1, size-1) + x*math.Log1p(-prob) + size*math.Log(prob)
}

// Hyper is the hypergeometric log mass of x white balls in k draws from an
// urn of m white and n black balls.
func Hyper(x, m, n, k float64) float64 {
	if !isInt(x) || x < 0 || x > k || x > m || k-x > n {
		return math.Inf(-1)
	}

	return Combinationln(m, x) + Combinationln(n, k-x) - Combinationln(m+n, k)
}

// Pois is the Poisson log mass of count x with rate lambda.
func Pois(x, lambda float64) float64 {
	if !(lambda > 0) {
		return math.NaN()
	}
	if !isInt(x) || x < 0 {
		return math.Inf(-1)
	}

	d := distuv.Poisson{Lambda: lambda}

	return d.LogProb(x)
}
