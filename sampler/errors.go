// SPDX-License-Identifier: MIT
// Package sampler: sentinel error set.

package sampler

import "errors"

var (
	// ErrNilPosterior is returned by New when no log-posterior is given.
	ErrNilPosterior = errors.New("sampler: nil log-posterior")

	// ErrBadThin is returned for a thinning interval below 1.
	ErrBadThin = errors.New("sampler: thinning interval must be >= 1")

	// ErrUnknownMonitor is returned when a monitored name is neither a
	// parameter nor a derived quantity.
	ErrUnknownMonitor = errors.New("sampler: unknown monitored name")
)
