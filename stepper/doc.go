// Package stepper implements the Markov transitions of an Adaptive
// Metropolis-Within-Gibbs chain.
//
// A Stepper mutates part of a shared chain.State by one transition. All
// steppers in a tree hold the same state by reference and evaluate the same
// zero-argument LogDensity closure, which reads the whole state. Steppers never
// keep private copies of parameter values.
//
// Variants:
//
//   - Metropolis: scalar random-walk step for real or int slots, with batch
//     adaptation of the log proposal scale.
//   - Binary: exact two-state Gibbs draw for a binary slot.
//   - Component: fans a leaf stepper out over every slot of a multi-dimensional
//     parameter, visiting each array level in a fresh random order.
//   - Amwg: one sub-stepper per named parameter, swept in a fresh random order
//     on every call.
//
// Adaptation rule (Metropolis):
//
//	after every BatchSize iterations, with k = number of completed batches,
//	delta = min(MaxAdaptationStep, 1/sqrt(k));
//	logScale += delta if batch acceptance rate > TargetAcceptRate,
//	logScale -= delta otherwise.
//
// Options are layered: hard defaults (DefaultOptions), then AmwgOptions.Global,
// then the per-parameter ParamOptions, then per-slot SlotOverrides. Every layer
// uses pointer fields so an explicit zero or false overrides the layer below.
//
// Determinism: every stepper draws from the *rand.Rand it was built with.
// NewRand(seed) gives a reproducible PCG stream. *rand.Rand is not safe for
// concurrent use and neither are steppers.
package stepper
