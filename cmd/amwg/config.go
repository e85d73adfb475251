// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/amwg/param"
	"github.com/katalvlaran/amwg/stepper"
)

// runConfig is the YAML run file.
//
//	model: normal
//	data: [100, 62, 96]
//	burn: 5000
//	samples: 5000
//	thin: 1
//	seed: 7
//	monitor: [mu]
//	params:            # merged over the model's own descriptors
//	  sigma: {init: 10}
//	stepper:
//	  global: {batch_size: 100}
//	  params:
//	    mu: {log_scale: 1}
type runConfig struct {
	Model   string                      `yaml:"model"`
	Data    []float64                   `yaml:"data"`
	Burn    int                         `yaml:"burn"`
	Samples int                         `yaml:"samples"`
	Thin    int                         `yaml:"thin"`
	Seed    uint64                      `yaml:"seed"`
	Monitor []string                    `yaml:"monitor"`
	Params  map[string]param.Descriptor `yaml:"params"`
	Stepper stepper.AmwgOptions         `yaml:"stepper"`
}

// defaultRunConfig mirrors the burn/sample sizes used throughout the tests.
func defaultRunConfig() runConfig {
	return runConfig{Burn: 5000, Samples: 5000, Thin: 1}
}

// loadRunConfig reads path over the defaults.
func loadRunConfig(path string) (runConfig, error) {
	cfg := defaultRunConfig()
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err = yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, cfg.validate()
}

func (c runConfig) validate() error {
	switch {
	case c.Model == "":
		return fmt.Errorf("run file: model is required")
	case c.Burn < 0 || c.Samples < 0:
		return fmt.Errorf("run file: burn and samples must be >= 0")
	case c.Thin < 1:
		return fmt.Errorf("run file: thin must be >= 1")
	}

	return nil
}
