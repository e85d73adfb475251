// SPDX-License-Identifier: MIT
// Package sampler: functional options.
//
// Option constructors validate and panic on meaningless input; New never panics
// on configuration. Options apply in order, later ones win.

package sampler

import (
	"log/slog"
	"math/rand/v2"

	"github.com/katalvlaran/amwg/param"
	"github.com/katalvlaran/amwg/stepper"
)

// Option customizes a Sampler before construction.
type Option func(*config)

// config aggregates every knob New reads.
type config struct {
	rng      *rand.Rand
	thin     int
	monitor  []string // nil: all parameters and derived quantities
	initFn   param.InitFunc
	stepping stepper.AmwgOptions
	logger   *slog.Logger
}

// newConfig starts from deterministic defaults and applies opts in order.
// Complexity: O(len(opts)).
func newConfig(opts ...Option) config {
	cfg := config{
		thin:   1,
		initFn: param.FixedInit,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = stepper.NewRand(0)
	}
	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}

	return cfg
}

// WithSeed seeds a fresh PCG stream. Seed 0 uses the fixed default.
func WithSeed(seed uint64) Option {
	return func(c *config) {
		c.rng = stepper.NewRand(seed)
	}
}

// WithRand uses r for every random draw. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("sampler: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithThin sets the initial thinning interval. Panics if k < 1.
func WithThin(k int) Option {
	if k < 1 {
		panic("sampler: WithThin(k<1)")
	}
	return func(c *config) {
		c.thin = k
	}
}

// WithMonitor sets the initial monitored names; no names means all.
// Unknown names make New fail with ErrUnknownMonitor.
func WithMonitor(names ...string) Option {
	cp := append([]string(nil), names...)
	return func(c *config) {
		if len(cp) == 0 {
			c.monitor = nil
			return
		}
		c.monitor = cp
	}
}

// WithInit replaces the default-init policy used to fill missing init values.
// Panics on nil.
func WithInit(fn param.InitFunc) Option {
	if fn == nil {
		panic("sampler: WithInit(nil)")
	}
	return func(c *config) {
		c.initFn = fn
	}
}

// WithStepperOptions sets global and per-parameter adaptation options.
func WithStepperOptions(o stepper.AmwgOptions) Option {
	return func(c *config) {
		c.stepping = o
	}
}

// WithLogger routes the sampler's Debug records to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("sampler: WithLogger(nil)")
	}
	return func(c *config) {
		c.logger = l
	}
}
