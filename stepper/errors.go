// SPDX-License-Identifier: MIT
// Package stepper: sentinel error set.

package stepper

import "errors"

var (
	// ErrUnsupportedType is returned when a parameter type has no stepper.
	ErrUnsupportedType = errors.New("stepper: unsupported parameter type")

	// ErrNotImplemented marks a capability invoked on Base rather than a concrete stepper.
	ErrNotImplemented = errors.New("stepper: not implemented")

	// ErrBadOption is returned for out-of-range adaptation options.
	ErrBadOption = errors.New("stepper: invalid option")

	// ErrBadSlot is returned when a slot offset or index lies outside the parameter.
	ErrBadSlot = errors.New("stepper: slot out of range")

	// ErrNilArgument is returned when a required constructor argument is nil.
	ErrNilArgument = errors.New("stepper: nil argument")
)
