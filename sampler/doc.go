// Package sampler drives an Adaptive Metropolis-Within-Gibbs chain.
//
// A Sampler owns the shared chain.State, binds the user's log-posterior and
// data into a zero-argument evaluator, and builds one stepper.Amwg over the
// completed parameter set.
//
// Quick start:
//
//	s, err := sampler.New(descs, logPost, data, sampler.WithSeed(7))
//	if err != nil { ... }
//	s.Burn(5000)
//	draws := s.Sample(5000)
//	mu := draws.Scalars("mu")
//
// Lifecycle:
//
//   - New completes the descriptors, builds the state, evaluates the
//     log-posterior once (so derived quantities exist before the first draw)
//     and builds the stepper tree. Any failure returns an error and no Sampler.
//   - Step sweeps every parameter once. When the log-posterior writes derived
//     quantities, Step evaluates it once more so they match the new parameters.
//   - Sample(n) records the state before iteration i whenever i % thin == 0,
//     giving ceil(n/thin) draws per monitored name.
//
// A Sampler is not safe for concurrent use.
package sampler
