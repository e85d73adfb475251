// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"math"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/amwg/chain"
	"github.com/katalvlaran/amwg/ld"
	"github.com/katalvlaran/amwg/param"
	"github.com/katalvlaran/amwg/sampler"
)

// model is a built-in posterior over a vector of observations.
type model struct {
	name    string
	summary string
	params  func(data []float64) map[string]param.Descriptor
	logPost sampler.LogPosterior
	check   func(data []float64) error
}

var models = map[string]model{
	"normal": {
		name:    "normal",
		summary: "mean mu and sd sigma of normal data; priors Normal(0,100), Uniform(0,100)",
		params: func([]float64) map[string]param.Descriptor {
			return map[string]param.Descriptor{
				"mu":    {Type: param.Real},
				"sigma": {Type: param.Real, Lower: param.Bound(0), Upper: param.Bound(100), Init: param.InitValue(1)},
			}
		},
		logPost: func(s *chain.State, data any) float64 {
			mu, sigma := s.Scalar("mu"), s.Scalar("sigma")
			lp := ld.Norm(mu, 0, 100) + ld.Unif(sigma, 0, 100)
			for _, y := range data.([]float64) {
				lp += ld.Norm(y, mu, sigma)
			}
			return lp
		},
	},
	"poisson": {
		name:    "poisson",
		summary: "rate lambda of count data; prior Exponential(0.01)",
		params: func([]float64) map[string]param.Descriptor {
			return map[string]param.Descriptor{
				"lambda": {Type: param.Real, Lower: param.Bound(0), Init: param.InitValue(1)},
			}
		},
		logPost: func(s *chain.State, data any) float64 {
			lambda := s.Scalar("lambda")
			lp := ld.Exp(lambda, 0.01)
			for _, y := range data.([]float64) {
				lp += ld.Pois(y, lambda)
			}
			return lp
		},
		check: func(data []float64) error {
			for i, y := range data {
				if y < 0 || y != float64(int64(y)) {
					return fmt.Errorf("data[%d] = %g is not a count", i, y)
				}
			}
			return nil
		},
	},
	"bernoulli": {
		name:    "bernoulli",
		summary: "success probability theta of 0/1 data; prior Beta(1,1); derived odds",
		params: func([]float64) map[string]param.Descriptor {
			return map[string]param.Descriptor{
				"theta": {Type: param.Real, Lower: param.Bound(0), Upper: param.Bound(1)},
			}
		},
		logPost: func(s *chain.State, data any) float64 {
			theta := s.Scalar("theta")
			_ = s.SetDerived("odds", theta/(1-theta))
			lp := ld.Beta(theta, 1, 1)
			for _, y := range data.([]float64) {
				lp += ld.Bern(y, theta)
			}
			return lp
		},
		check: func(data []float64) error {
			for i, y := range data {
				if y != 0 && y != 1 {
					return fmt.Errorf("data[%d] = %g is not 0 or 1", i, y)
				}
			}
			return nil
		},
	},
	"mixture-flag": {
		name:    "mixture-flag",
		summary: "two unit-variance normal clusters: means mu0 < mu1, binary flag z[i] per point; derived n1",
		params: func(data []float64) map[string]param.Descriptor {
			n := len(data)
			if n == 0 {
				n = 1
			}
			return map[string]param.Descriptor{
				"mu0": {Type: param.Real, Init: param.InitValue(-1)},
				"mu1": {Type: param.Real, Init: param.InitValue(1)},
				"z":   {Type: param.Binary, Dim: []int{n}},
			}
		},
		logPost: func(s *chain.State, data any) float64 {
			mu0, mu1 := s.Scalar("mu0"), s.Scalar("mu1")
			if mu0 >= mu1 {
				return math.Inf(-1) // ordered means, no label switching
			}
			z := s.Param("z")
			lp := ld.Norm(mu0, 0, 10) + ld.Norm(mu1, 0, 10)
			n1 := 0.0
			for i, y := range data.([]float64) {
				zi := z.Flat(i)
				n1 += zi
				lp += ld.Bern(zi, 0.5)
				if zi == 1 {
					lp += ld.Norm(y, mu1, 1)
				} else {
					lp += ld.Norm(y, mu0, 1)
				}
			}
			_ = s.SetDerived("n1", n1)
			return lp
		},
	},
}

// lookupModel returns the named model or an error listing the known ones.
func lookupModel(name string) (model, error) {
	m, ok := models[name]
	if !ok {
		return model{}, fmt.Errorf("unknown model %q (known: %v)", name, modelNames())
	}

	return m, nil
}

func modelNames() []string {
	names := make([]string, 0, len(models))
	for name := range models {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

func newModelsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "List built-in models",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, name := range modelNames() {
				fmt.Fprintf(tw, "%s\t%s\n", name, models[name].summary)
			}
			return tw.Flush()
		},
	}
}
