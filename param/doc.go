// Package param defines the parameter model of a sampling run: typed,
// dimensioned, bounded parameters with initial values.
//
// A model declares its parameters as a map from name to Descriptor. Any
// Descriptor field may be left out:
//
//	descs := map[string]param.Descriptor{
//		"mu":    {},                                        // real, scalar, unbounded
//		"sigma": {Lower: param.Bound(0), Init: param.InitValue(1)},
//		"z":     {Type: param.Binary, Dim: []int{10}},
//		"beta":  {Dim: []int{3, 2}, Init: param.InitArray(betaInit)},
//	}
//
// Complete normalizes the map into Specs, where every field is populated:
//
//   - Type defaults to Real; an unknown type is rejected.
//   - Dim defaults to [1] (a scalar); every extent must be positive.
//   - Lower/Upper default to -Inf/+Inf; Binary always uses [0, 1].
//   - Init defaults to an InitFunc value per slot (FixedInit unless another
//     policy is supplied); a single value or a generator is broadcast over
//     Dim; an explicit array must match Dim exactly.
//
// Complete never mutates its input. Completing the Descriptors of a
// completed Specs value yields an equal Specs value.
//
// Descriptor maps can also be read from YAML or JSON (LoadYAML, LoadJSON):
//
//	mu: {type: real}
//	sigma: {type: real, lower: 0, init: 1}
//	mat: {type: int, dim: [3, 3]}
//
// Bounds accept numbers, null, and the strings "inf", "-inf", "Infinity",
// "-Infinity" (YAML's .inf works as well).
package param
