// Package chain holds the live state of a Markov chain: the current value of
// every declared parameter plus any derived quantities written by the
// log-posterior.
//
// One State is shared by reference between a sampler and every stepper it
// owns. Steppers mutate parameter arrays in place (the *ndarray.Array values
// returned by Param never change identity), and the log-posterior reads the
// whole state on each evaluation:
//
//	func logPost(s *chain.State, data any) float64 {
//		mu, sigma := s.Scalar("mu"), s.Scalar("sigma")
//		lp := ld.Norm(mu, 0, 100) + ld.Unif(sigma, 0, 100)
//		for _, y := range data.([]float64) {
//			lp += ld.Norm(y, mu, sigma)
//		}
//		_ = s.SetDerived("cv", sigma/mu) // monitored like a parameter
//		return lp
//	}
//
// Derived quantities live in a separate namespace: they are never stepped,
// cannot shadow a parameter, and are reported by DerivedNames.
//
// State is not safe for concurrent use; a chain is advanced by one goroutine.
package chain
