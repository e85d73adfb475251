// SPDX-License-Identifier: MIT
// Package ndarray: sentinel error set.

package ndarray

import "errors"

var (
	// ErrBadShape is returned when a dimension vector is empty, holds a
	// non-positive extent, or does not describe the given data.
	ErrBadShape = errors.New("ndarray: invalid shape")

	// ErrOutOfRange indicates that an index is outside the array bounds or
	// that the number of indices does not match the array rank.
	ErrOutOfRange = errors.New("ndarray: index out of range")

	// ErrNotNumeric indicates that a nested value holds a leaf which is not a number.
	ErrNotNumeric = errors.New("ndarray: non-numeric element")
)
