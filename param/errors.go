// SPDX-License-Identifier: MIT
// Package param: sentinel error set.
//
// Every validation failure satisfies errors.Is(err, ErrInvalidParameter);
// the narrower sentinels identify which field was at fault.

package param

import "errors"

var (
	// ErrInvalidParameter is the class of all malformed-descriptor errors.
	ErrInvalidParameter = errors.New("param: invalid parameter")

	// ErrInvalidType indicates a type outside {real, int, binary}.
	ErrInvalidType = errors.New("param: unknown parameter type")

	// ErrBadDim indicates an empty dimension vector or a non-positive extent.
	ErrBadDim = errors.New("param: invalid dimension")

	// ErrBadBounds indicates lower > upper where an initial value must be synthesized.
	ErrBadBounds = errors.New("param: lower bound exceeds upper bound")

	// ErrInitShape indicates an explicit initial array whose shape differs from Dim.
	ErrInitShape = errors.New("param: init shape does not match dim")

	// ErrDecode indicates a descriptor file field that could not be interpreted.
	ErrDecode = errors.New("param: cannot decode descriptor")
)
