package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/lvfit/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const lineCSV = "x,y\n1,3.1\n2,4.9\n3,7.2\n4,8.8\n5,11.1\n6,12.9\n"

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))

	return p
}

// TestRun_Linear fits a CSV file and writes a PNG.
func TestRun_Linear(t *testing.T) {
	dir := t.TempDir()
	data := writeFile(t, dir, "line.csv", lineCSV)
	out := filepath.Join(dir, "line.png")

	var stdout, stderr bytes.Buffer
	err := run([]string{"--skip-header", "-o", out, "-d", "2", data}, nil, &stdout, &stderr)
	require.NoError(t, err, stderr.String())

	assert.FileExists(t, out)
	assert.True(t, strings.HasPrefix(stdout.String(), "linear: params="))
	assert.Contains(t, stderr.String(), "fit complete")
}

// TestRun_ConfigFile takes settings from a config file; flags still win.
func TestRun_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	data := writeFile(t, dir, "line.csv", lineCSV)
	cfg := writeFile(t, dir, "lvfit.yaml", strings.Join([]string{
		"model: none",
		"skip-header: true",
		"format: png",
		"output: " + dir,
		"decimals: 3",
		"",
	}, "\n"))

	var stdout, stderr bytes.Buffer
	require.NoError(t, run([]string{"--config", cfg, data}, nil, &stdout, &stderr), stderr.String())
	assert.FileExists(t, filepath.Join(dir, "graph.png"))
	assert.Contains(t, stdout.String(), "none: no fit")

	stdout.Reset()
	require.NoError(t, run([]string{"-c", cfg, "--model", "linear", data}, nil, &stdout, &stderr), stderr.String())
	assert.Contains(t, stdout.String(), "linear: params=")
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	cfg := writeFile(t, dir, "c.yaml", "model: exp\ndecimals: 7\nscientific: true\ny-col: 3\n")

	s, set, app := newApp()
	_, err := app.Parse([]string{"--decimals", "2", "data.csv"})
	require.NoError(t, err)
	require.NoError(t, loadConfig(cfg, s, set))

	assert.Equal(t, model.NameExponential, s.Model)
	assert.Equal(t, 2, s.Decimals, "flag beats config")
	assert.True(t, s.Scientific)
	assert.Equal(t, 3, s.YCol)
	assert.Equal(t, 0, s.XCol)

	assert.Error(t, loadConfig(filepath.Join(dir, "missing.yaml"), s, set))
}

func TestRun_Errors(t *testing.T) {
	dir := t.TempDir()
	data := writeFile(t, dir, "line.csv", lineCSV)
	var sink bytes.Buffer

	cases := map[string][]string{
		"no data":        {},
		"bad model":      {"--skip-header", "--model", "cubic", data},
		"bad engine":     {"--skip-header", "--engine", "gnuplot", data},
		"bad method":     {"--skip-header", "--method", "newton", data},
		"bad decimals":   {"--skip-header", "--decimals", "-1", data},
		"header as data": {data},
		"missing file":   {filepath.Join(dir, "nope.csv")},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Error(t, run(args, nil, &sink, &sink))
		})
	}
}
