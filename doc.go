// Package amwg is an adaptive Markov-chain Monte-Carlo engine built on
// Adaptive Metropolis-Within-Gibbs (Roberts & Rosenthal 2008).
//
// You describe a model as a set of named, typed parameters and an
// unnormalized log-posterior over them. The sampler updates one parameter
// (or one slot of an array parameter) at a time with a random-walk
// Metropolis step whose proposal scale tunes itself from the observed
// acceptance rate. Binary parameters are drawn exactly from their two-state
// full conditional.
//
// Packages:
//
//	ndarray/  — dense row-major numeric arrays with an explicit shape
//	param/    — parameter descriptors, completion (defaults + init), YAML/JSON loading
//	chain/    — the shared chain state: parameters plus derived quantities
//	stepper/  — Metropolis, Binary, Component and Amwg steppers; adaptation options; seeded RNG
//	sampler/  — the driver: burn-in, sampling, thinning, monitoring, summaries
//	ld/       — log densities (R parameterizations) for writing posteriors
//	cmd/amwg  — CLI running built-in models from a YAML run file
//
// Quick example:
//
//	params := map[string]param.Descriptor{
//		"mu":    {Type: param.Real},
//		"sigma": {Type: param.Real, Lower: param.Bound(0), Init: param.InitValue(1)},
//	}
//	logPost := func(s *chain.State, data any) float64 {
//		mu, sigma := s.Scalar("mu"), s.Scalar("sigma")
//		lp := ld.Norm(mu, 0, 100) + ld.Unif(sigma, 0, 100)
//		for _, y := range data.([]float64) {
//			lp += ld.Norm(y, mu, sigma)
//		}
//		return lp
//	}
//	s, err := sampler.New(params, logPost, data, sampler.WithSeed(1))
//	if err != nil { ... }
//	s.Burn(5000)
//	draws := s.Sample(5000)
//
// Out of scope: gradient-based samplers, convergence diagnostics, running
// several chains in parallel, persisting chain state.
//
// See examples/ for runnable programs.
package amwg
