// SPDX-License-Identifier: MIT
// Package chain: sentinel error set.

package chain

import "errors"

var (
	// ErrUnknownName indicates a lookup of a name that is neither a declared
	// parameter nor a derived quantity.
	ErrUnknownName = errors.New("chain: unknown name")

	// ErrShadowsParam indicates an attempt to write a derived quantity under
	// the name of a declared parameter.
	ErrShadowsParam = errors.New("chain: derived quantity shadows a parameter")
)
