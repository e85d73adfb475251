// SPDX-License-Identifier: MIT
// Package sampler: the Sampler driver.

package sampler

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/google/uuid"

	"github.com/katalvlaran/amwg/chain"
	"github.com/katalvlaran/amwg/ndarray"
	"github.com/katalvlaran/amwg/param"
	"github.com/katalvlaran/amwg/stepper"
)

// LogPosterior returns the unnormalized log-posterior of state given data.
// It may write derived quantities into state and must not change parameters.
type LogPosterior func(state *chain.State, data any) float64

// Sampler owns one chain.
type Sampler struct {
	runID   string
	specs   param.Specs
	state   *chain.State
	data    any
	eval    stepper.LogDensity
	amwg    *stepper.Amwg
	rng     *rand.Rand
	thin    int
	monitor []string // nil: all keys
	log     *slog.Logger
}

// Info is a diagnostic snapshot of a Sampler.
type Info struct {
	RunID    string                    `json:"run_id" yaml:"run_id"`
	State    map[string]*ndarray.Array `json:"state" yaml:"state"`
	Thin     int                       `json:"thin" yaml:"thin"`
	Monitor  []string                  `json:"monitor" yaml:"monitor"`
	Steppers stepper.Info              `json:"steppers" yaml:"steppers"`
}

// New completes descs, builds the chain state, evaluates logPost once and
// builds the AMWG stepper tree. Errors from completion wrap
// param.ErrInvalidParameter; unsupported types wrap stepper.ErrUnsupportedType.
// A log-posterior that reads an undeclared name fails here with
// chain.ErrUnknownName.
func New(descs map[string]param.Descriptor, logPost LogPosterior, data any, opts ...Option) (*Sampler, error) {
	// Stage 1 (Validate).
	if logPost == nil {
		return nil, ErrNilPosterior
	}
	cfg := newConfig(opts...)

	specs, err := param.Complete(descs, cfg.initFn)
	if err != nil {
		return nil, fmt.Errorf("sampler: %w", err)
	}

	// Stage 2 (State + first evaluation).
	s := &Sampler{
		runID: uuid.New().String(),
		specs: specs,
		state: chain.New(specs),
		data:  data,
		rng:   cfg.rng,
		thin:  cfg.thin,
	}
	s.log = cfg.logger.With(slog.String("run_id", s.runID))
	s.eval = func() float64 { return logPost(s.state, s.data) }

	lp, err := s.firstEval()
	if err != nil {
		return nil, err
	}

	// Stage 3 (Steppers + monitor).
	s.amwg, err = stepper.NewAmwg(specs, s.state, s.eval, s.rng, cfg.stepping)
	if err != nil {
		return nil, fmt.Errorf("sampler: %w", err)
	}
	if cfg.monitor != nil {
		if err = s.Monitor(cfg.monitor...); err != nil {
			return nil, err
		}
	}

	s.log.Debug("sampler constructed",
		slog.Any("params", specs.Names()),
		slog.Any("derived", s.state.DerivedNames()),
		slog.Float64("log_posterior", lp))

	return s, nil
}

// firstEval runs the log-posterior on the initial state. A panic carrying an
// error from the state accessors is turned into a returned error.
func (s *Sampler) firstEval() (lp float64, err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if e, ok := r.(error); ok && (errors.Is(e, chain.ErrUnknownName) || errors.Is(e, ndarray.ErrOutOfRange)) {
			err = fmt.Errorf("sampler: initial log-posterior: %w", e)
			return
		}
		panic(r)
	}()

	return s.eval(), nil
}

// Step sweeps every parameter once and returns the shared state.
func (s *Sampler) Step() *chain.State {
	s.amwg.Step()
	if s.state.HasDerived() {
		s.eval()
	}

	return s.state
}

// Burn runs n steps and discards them.
func (s *Sampler) Burn(n int) {
	s.log.Debug("burn start", slog.Int("n", n))
	for i := 0; i < n; i++ {
		s.Step()
	}
	s.log.Debug("burn done", slog.Int("n", n))
}

// Sample runs n steps. Before step i, when i % thin == 0, it records a copy of
// every monitored value. Each sequence has ceil(n/thin) entries; n <= 0 gives
// empty sequences.
// Complexity: O(n) steps plus O(draws × monitored slots) copying.
func (s *Sampler) Sample(n int) Samples {
	names := s.monitored()
	size := 0
	if n > 0 {
		size = n / s.thin
		if n%s.thin != 0 {
			size++
		}
	}
	out := make(Samples, len(names))
	for _, name := range names {
		out[name] = make([]*ndarray.Array, 0, size)
	}

	s.log.Debug("sample start", slog.Int("n", n), slog.Int("thin", s.thin), slog.Any("monitor", names))
	for i := 0; i < n; i++ {
		if i%s.thin == 0 {
			for _, name := range names {
				a, _ := s.state.Lookup(name)
				out[name] = append(out[name], a.Clone())
			}
		}
		s.Step()
	}
	s.log.Debug("sample done", slog.Int("draws", size))

	return out
}

// Monitor sets the names recorded by Sample. No names restores the default
// of every parameter and derived quantity. On error the previous setting stays.
func (s *Sampler) Monitor(names ...string) error {
	if len(names) == 0 {
		s.monitor = nil
		return nil
	}
	seen := make(map[string]bool, len(names))
	list := make([]string, 0, len(names))
	for _, name := range names {
		if _, ok := s.state.Lookup(name); !ok {
			return fmt.Errorf("Monitor(%q): %w", name, ErrUnknownMonitor)
		}
		if !seen[name] {
			seen[name] = true
			list = append(list, name)
		}
	}
	s.monitor = list

	return nil
}

// Thin sets the keep-every-kth interval used by Sample.
func (s *Sampler) Thin(k int) error {
	if k < 1 {
		return fmt.Errorf("Thin(%d): %w", k, ErrBadThin)
	}
	s.thin = k

	return nil
}

// StartAdaptation resumes proposal-scale tuning in every stepper.
func (s *Sampler) StartAdaptation() {
	s.amwg.StartAdaptation()
	s.log.Debug("adaptation started")
}

// StopAdaptation freezes proposal scales in every stepper.
func (s *Sampler) StopAdaptation() {
	s.amwg.StopAdaptation()
	s.log.Debug("adaptation stopped")
}

// Info returns a snapshot of the state, thinning, monitor list and stepper tree.
func (s *Sampler) Info() Info {
	return Info{
		RunID:    s.runID,
		State:    s.state.Snapshot(),
		Thin:     s.thin,
		Monitor:  s.monitored(),
		Steppers: s.amwg.Info(),
	}
}

// State returns the live shared state.
func (s *Sampler) State() *chain.State { return s.state }

// Specs returns a copy of the completed parameter specs.
func (s *Sampler) Specs() param.Specs {
	out := make(param.Specs, len(s.specs))
	for name, spec := range s.specs {
		out[name] = spec.Clone()
	}

	return out
}

// RunID returns the identifier attached to this sampler's log records.
func (s *Sampler) RunID() string { return s.runID }

// LogPosterior evaluates the log-posterior at the current state.
func (s *Sampler) LogPosterior() float64 { return s.eval() }

// monitored resolves the current monitor list.
func (s *Sampler) monitored() []string {
	if s.monitor == nil {
		return s.state.Keys()
	}

	return append([]string(nil), s.monitor...)
}
