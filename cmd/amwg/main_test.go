// SPDX-License-Identifier: MIT
package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), err
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestModelsCommand(t *testing.T) {
	out, err := execute(t, "models")
	require.NoError(t, err)
	for _, name := range []string{"bernoulli", "mixture-flag", "normal", "poisson"} {
		assert.Contains(t, out, name)
	}
}

func TestCompleteCommand(t *testing.T) {
	path := writeFile(t, "params.yaml", `
mu: {type: real}
sigma: {type: real, lower: 0, init: 1}
`)
	out, err := execute(t, "complete", "-f", path)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"mu":    {"type": "real", "dim": [1], "lower": null, "upper": null, "init": [0.5]},
		"sigma": {"type": "real", "dim": [1], "lower": 0, "upper": null, "init": [1]}
	}`, out)

	bad := writeFile(t, "bad.json", `{"x": {"lower": 2, "upper": 1}}`)
	_, err = execute(t, "complete", "-f", bad)
	assert.Error(t, err)
}

func TestRunCommand_Summary(t *testing.T) {
	path := writeFile(t, "run.yaml", `
model: normal
data: [100, 62, 96, 122, 141, 144, 74, 73, 78, 128]
burn: 2000
samples: 2000
seed: 7
stepper:
  global: {batch_size: 25}
`)
	out, err := execute(t, "run", "-f", path, "--log-level", "warn")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "mean")
	assert.Contains(t, lines[1], "mu")
	assert.Contains(t, lines[2], "sigma")
}

func TestRunCommand_JSONAndOverrides(t *testing.T) {
	path := writeFile(t, "run.yaml", `
model: bernoulli
data: [1, 0, 1, 1, 0, 1, 1, 1]
samples: 10000
params:
  theta: {init: 0.2}
`)
	out, err := execute(t, "run", "-f", path, "--burn", "500", "--samples", "1000", "--thin", "10", "-o", "json", "--log-level", "error")
	require.NoError(t, err)

	var sums map[string][]struct {
		N    int     `json:"n"`
		Mean float64 `json:"mean"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &sums))
	require.Contains(t, sums, "odds")
	assert.Equal(t, 100, sums["theta"][0].N)
	assert.InDelta(t, 0.7, sums["theta"][0].Mean, 0.15)
}

func TestRunCommand_Draws(t *testing.T) {
	path := writeFile(t, "run.yaml", `
model: mixture-flag
data: [-2.1, -1.9, -2.3, 3.1, 2.8, 3.3]
burn: 500
samples: 20
thin: 5
monitor: [z, n1]
`)
	out, err := execute(t, "run", "-f", path, "-o", "draws", "--log-level", "error")
	require.NoError(t, err)

	var draws map[string][]json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(out), &draws))
	assert.Len(t, draws["z"], 4)
	assert.Len(t, draws["n1"], 4)
	assert.NotContains(t, draws, "mu0")
}

func TestRunCommand_Errors(t *testing.T) {
	unknown := writeFile(t, "run.yaml", "model: nope\n")
	_, err := execute(t, "run", "-f", unknown, "--log-level", "error")
	assert.ErrorContains(t, err, "unknown model")

	counts := writeFile(t, "run.yaml", "model: poisson\ndata: [1, 2.5]\n")
	_, err = execute(t, "run", "-f", counts, "--log-level", "error")
	assert.ErrorContains(t, err, "not a count")

	ok := writeFile(t, "run.yaml", "model: poisson\ndata: [1, 2]\n")
	_, err = execute(t, "run", "-f", ok, "--thin", "0", "--log-level", "error")
	assert.Error(t, err)
	_, err = execute(t, "run", "-f", ok, "-o", "xml", "--log-level", "error")
	assert.Error(t, err)
	_, err = execute(t, "run", "-f", ok, "--log-level", "loud")
	assert.Error(t, err)
	_, err = execute(t, "run")
	assert.Error(t, err)
}
