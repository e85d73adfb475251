// SPDX-License-Identifier: MIT
// Package ld: continuous log densities.

package ld

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distmv"
	"gonum.org/v1/gonum/stat/distuv"
)

// Norm is the normal log density with mean and standard deviation sd.
func Norm(x, mean, sd float64) float64 {
	if !(sd > 0) {
		return math.NaN()
	}

	d := distuv.Normal{Mu: mean, Sigma: sd}

	return d.LogProb(x)
}

// Cauchy is the Cauchy log density with location and scale.
func Cauchy(x, location, scale float64) float64 {
	if !(scale > 0) {
		return math.NaN()
	}
	z := (x - location) / scale

	return -math.Log(math.Pi*scale) - math.Log1p(z*z)
}

// BivarNorm is the bivariate normal log density with per-axis means and sds
// and correlation corr in (-1, 1).
func BivarNorm(x, mean, sd [2]float64, corr float64) float64 {
	if !(sd[0] > 0 && sd[1] > 0) || !(corr > -1 && corr < 1) {
		return math.NaN()
	}
	c := corr * sd[0] * sd[1]
	cov := mat.NewSymDense(2, []float64{sd[0] * sd[0], c, c, sd[1] * sd[1]})
	n, ok := distmv.NewNormal(mean[:], cov, nil)
	if !ok {
		return math.NaN()
	}

	return n.LogProb(x[:])
}

// Laplace is the double-exponential log density with location and scale.
func Laplace(x, location, scale float64) float64 {
	if !(scale > 0) {
		return math.NaN()
	}

	d := distuv.Laplace{Mu: location, Scale: scale}

	return d.LogProb(x)
}

// Gamma is the gamma log density with shape and scale (rate = 1/scale).
func Gamma(x, shape, scale float64) float64 {
	if !(shape > 0 && scale > 0) {
		return math.NaN()
	}
	switch {
	case x < 0:
		return math.Inf(-1)
	case x == 0:
		switch {
		case shape == 1:
			return -math.Log(scale)
		case shape < 1:
			return math.Inf(1)
		default:
			return math.Inf(-1)
		}
	}

	d := distuv.Gamma{Alpha: shape, Beta: 1 / scale}

	return d.LogProb(x)
}

// InvGamma is the inverse-gamma log density with shape and scale.
func InvGamma(x, shape, scale float64) float64 {
	if !(shape > 0 && scale > 0) {
		return math.NaN()
	}
	if x <= 0 {
		return math.Inf(-1)
	}

	d := distuv.InverseGamma{Alpha: shape, Beta: scale}

	return d.LogProb(x)
}

// LNorm is the log-normal log density; meanlog and sdlog are on the log scale.
func LNorm(x, meanlog, sdlog float64) float64 {
	if !(sdlog > 0) {
		return math.NaN()
	}
	if x <= 0 {
		return math.Inf(-1)
	}

	d := distuv.LogNormal{Mu: meanlog, Sigma: sdlog}

	return d.LogProb(x)
}

// Pareto is the Pareto log density with minimum scale and tail index shape.
func Pareto(x, scale, shape float64) float64 {
	if !(scale > 0 && shape > 0) {
		return math.NaN()
	}
	if x < scale {
		return math.Inf(-1)
	}

	d := distuv.Pareto{Xm: scale, Alpha: shape}

	return d.LogProb(x)
}

// T is the location-scale Student's t log density with nu degrees of freedom.
// Infinite nu gives the normal density.
func T(x, mu, sigma, nu float64) float64 {
	if !(sigma > 0 && nu > 0) {
		return math.NaN()
	}
	if math.IsInf(nu, 1) {
		return Norm(x, mu, sigma)
	}

	d := distuv.StudentsT{Mu: mu, Sigma: sigma, Nu: nu}

	return d.LogProb(x)
}

// Exp is the exponential log density with rate.
func Exp(x, rate float64) float64 {
	if !(rate > 0) {
		return math.NaN()
	}
	if x < 0 {
		return math.Inf(-1)
	}

	d := distuv.Exponential{Rate: rate}

	return d.LogProb(x)
}

// Unif is the uniform log density on [lo, hi].
func Unif(x, lo, hi float64) float64 {
	if !(hi > lo) {
		return math.NaN()
	}
	if x < lo || x > hi {
		return math.Inf(-1)
	}

	return -math.Log(hi - lo)
}

// Beta is the beta log density with shape1 and shape2.
func Beta(x, shape1, shape2 float64) float64 {
	if !(shape1 > 0 && shape2 > 0) {
		return math.NaN()
	}
	if x < 0 || x > 1 {
		return math.Inf(-1)
	}
	if shape1 == 1 && shape2 == 1 {
		return 0
	}

	d := distuv.Beta{Alpha: shape1, Beta: shape2}

	return d.LogProb(x)
}
