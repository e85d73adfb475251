// SPDX-License-Identifier: MIT
// Command amwg runs built-in models through the AMWG sampler.
//
//	amwg run -f run.yaml [--burn N] [--samples N] [--thin K] [--seed S] [--output summary|json|draws]
//	amwg models
//	amwg complete -f params.yaml
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

// rootOptions holds flags shared by every subcommand.
type rootOptions struct {
	logLevel string
	logger   *slog.Logger
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:          "amwg",
		Short:        "Adaptive Metropolis-Within-Gibbs sampler",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := newLogger(cmd.ErrOrStderr(), opts.logLevel)
			if err != nil {
				return err
			}
			opts.logger = logger
			return nil
		},
	}
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "log level: debug, info, warn or error")

	cmd.AddCommand(
		newRunCommand(opts),
		newModelsCommand(),
		newCompleteCommand(),
	)

	return cmd
}

// newLogger builds a tint console logger writing to w.
func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		return nil, fmt.Errorf("--log-level %q: %w", level, err)
	}

	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      lvl,
		TimeFormat: time.Kitchen,
	})), nil
}
