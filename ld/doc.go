// Package ld is a library of log-density functions for writing
// log-posteriors. Names and parameterizations follow R's d* functions
// (ld.Norm(x, mean, sd) is log dnorm(x, mean, sd)).
//
// Conventions:
//
//   - A value outside the support returns -Inf. The sampler treats -Inf as
//     zero density, so a posterior can reject a state by returning it.
//   - Invalid distribution parameters (non-positive scale, probability outside
//     [0,1]) return NaN; a NaN acceptance ratio always rejects.
//   - Continuous densities are computed with gonum's stat/distuv and distmv
//     where gonum carries the distribution; the rest use math.Lgamma directly.
//
// The sampler itself never calls this package; it only evaluates the user's
// log-posterior.
package ld
