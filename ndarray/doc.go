// Package ndarray provides the dense, row-major numeric array used to hold
// parameter values of any shape.
//
// An Array is described by its dimension vector dim = [d0, d1, ..., dk] and a
// flat backing slice of d0*d1*...*dk float64 values. The dimension vector [1]
// denotes a scalar, so "a scalar or a nested array of numbers" always has one
// concrete representation and one set of accessors.
//
// Arrays are mutated in place (Set, SetFlat). Code that shares an *Array
// shares its values; Clone produces an independent copy.
//
//	a, _ := ndarray.Full([]int{2, 3}, 0.5)
//	_ = a.Set(1.25, 1, 2)
//	v, _ := a.At(1, 2) // 1.25
//	fmt.Println(a.Nested()) // [[0.5 0.5 0.5] [0.5 0.5 1.25]]
//
// Nested values coming from JSON or YAML decoders ([]any of []any of numbers)
// are converted with FromNested; Nested goes the other way.
package ndarray
