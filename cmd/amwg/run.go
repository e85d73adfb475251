// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/amwg/param"
	"github.com/katalvlaran/amwg/sampler"
)

// Output formats for amwg run.
const (
	outputSummary = "summary"
	outputJSON    = "json"
	outputDraws   = "draws"
)

// runOptions holds the flags of amwg run. Flags set on the command line win
// over the run file.
type runOptions struct {
	root    *rootOptions
	file    string
	burn    int
	samples int
	thin    int
	seed    uint64
	monitor []string
	output  string
}

func (o *runOptions) addFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&o.file, "file", "f", "", "YAML run file (required)")
	fs.IntVar(&o.burn, "burn", 0, "burn-in iterations")
	fs.IntVar(&o.samples, "samples", 0, "sampled iterations")
	fs.IntVar(&o.thin, "thin", 1, "keep every k-th iteration")
	fs.Uint64Var(&o.seed, "seed", 0, "random seed (0 uses the fixed default)")
	fs.StringSliceVar(&o.monitor, "monitor", nil, "names to record (default: all)")
	fs.StringVarP(&o.output, "output", "o", outputSummary, "output format: summary, json or draws")
}

func newRunCommand(root *rootOptions) *cobra.Command {
	opts := &runOptions{root: root}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Sample a built-in model configured by a YAML run file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadRunConfig(opts.file)
			if err != nil {
				return err
			}
			opts.override(cmd.Flags(), &cfg)
			if err = cfg.validate(); err != nil {
				return err
			}
			return opts.run(cmd.OutOrStdout(), cfg)
		},
	}
	opts.addFlags(cmd.Flags())
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

// override copies explicitly set flags into cfg.
func (o *runOptions) override(fs *pflag.FlagSet, cfg *runConfig) {
	if fs.Changed("burn") {
		cfg.Burn = o.burn
	}
	if fs.Changed("samples") {
		cfg.Samples = o.samples
	}
	if fs.Changed("thin") {
		cfg.Thin = o.thin
	}
	if fs.Changed("seed") {
		cfg.Seed = o.seed
	}
	if fs.Changed("monitor") {
		cfg.Monitor = o.monitor
	}
}

func (o *runOptions) run(w io.Writer, cfg runConfig) error {
	switch o.output {
	case outputSummary, outputJSON, outputDraws:
	default:
		return fmt.Errorf("--output %q: want summary, json or draws", o.output)
	}

	m, err := lookupModel(cfg.Model)
	if err != nil {
		return err
	}
	if m.check != nil {
		if err = m.check(cfg.Data); err != nil {
			return fmt.Errorf("model %s: %w", m.name, err)
		}
	}

	logger := o.root.logger
	if logger == nil {
		logger = slog.Default()
	}
	descs := mergeDescriptors(m.params(cfg.Data), cfg.Params)
	s, err := sampler.New(descs, m.logPost, cfg.Data,
		sampler.WithSeed(cfg.Seed),
		sampler.WithThin(cfg.Thin),
		sampler.WithMonitor(cfg.Monitor...),
		sampler.WithStepperOptions(cfg.Stepper),
		sampler.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	logger.Info("sampling",
		slog.String("model", m.name),
		slog.String("run_id", s.RunID()),
		slog.Int("burn", cfg.Burn),
		slog.Int("samples", cfg.Samples),
		slog.Int("thin", cfg.Thin))
	s.Burn(cfg.Burn)
	draws := s.Sample(cfg.Samples)
	logger.Info("done", slog.String("run_id", s.RunID()), slog.Float64("log_posterior", s.LogPosterior()))

	switch o.output {
	case outputJSON:
		return writeJSON(w, sampler.Summarize(draws))
	case outputDraws:
		return writeJSON(w, draws)
	}

	return writeSummary(w, sampler.Summarize(draws))
}

// mergeDescriptors lays the run file's fields over the model's descriptors.
func mergeDescriptors(base, over map[string]param.Descriptor) map[string]param.Descriptor {
	out := make(map[string]param.Descriptor, len(base)+len(over))
	for name, d := range base {
		out[name] = d
	}
	for name, o := range over {
		d := out[name]
		if o.Type != "" {
			d.Type = o.Type
		}
		if o.Dim != nil {
			d.Dim = o.Dim
		}
		if o.Lower != nil {
			d.Lower = o.Lower
		}
		if o.Upper != nil {
			d.Upper = o.Upper
		}
		if o.Init != nil {
			d.Init = o.Init
		}
		out[name] = d
	}

	return out
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}

// writeSummary prints one row per slot, names sorted.
func writeSummary(w io.Writer, sums map[string][]sampler.Summary) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "name\tn\tmean\tsd\t2.5%\t50%\t97.5%\t")
	names := make([]string, 0, len(sums))
	for name := range sums {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		for _, s := range sums[name] {
			label := name
			if len(sums[name]) > 1 {
				label = name + "[" + joinInts(s.Index) + "]"
			}
			fmt.Fprintf(tw, "%s\t%d\t%.4g\t%.4g\t%.4g\t%.4g\t%.4g\t\n",
				label, s.N, s.Mean, s.SD, s.Q025, s.Median, s.Q975)
		}
	}

	return tw.Flush()
}

func joinInts(xs []int) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = fmt.Sprint(x)
	}

	return strings.Join(parts, ",")
}
