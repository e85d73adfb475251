// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/amwg/param"
)

func newCompleteCommand() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "complete",
		Short: "Print the completed form of a parameter file as JSON",
		Long: `Reads a name → descriptor map (YAML, or JSON for *.json files), fills
in defaults and prints the result. Infinite bounds print as null.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			descs, err := readDescriptors(file)
			if err != nil {
				return err
			}
			specs, err := param.Complete(descs, nil)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), specs)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "parameter file (required)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

// readDescriptors picks the decoder from the file extension.
func readDescriptors(path string) (map[string]param.Descriptor, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var load func(io.Reader) (map[string]param.Descriptor, error) = param.LoadYAML
	if strings.EqualFold(filepath.Ext(path), ".json") {
		load = param.LoadJSON
	}
	descs, err := load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return descs, nil
}
