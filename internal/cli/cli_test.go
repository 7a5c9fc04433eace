package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/buildgridgo/internal/app"
)

func TestParse_Defaults(t *testing.T) {
	out := &bytes.Buffer{}

	cfg, shouldExit, err := Parse([]string{"grids/firmware.hcl"}, out)
	require.NoError(t, err)
	require.False(t, shouldExit)

	assert.Equal(t, "grids/firmware.hcl", cfg.MatrixPath)
	assert.Equal(t, app.FormatAuto, cfg.Format)
	assert.Equal(t, "print", cfg.Runner)
	assert.Equal(t, 4, cfg.WorkerCount)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.DryRun)
}

func TestParse_MatrixFlagVariants(t *testing.T) {
	out := &bytes.Buffer{}

	cfg, _, err := Parse([]string{"-matrix", "a.hcl"}, out)
	require.NoError(t, err)
	assert.Equal(t, "a.hcl", cfg.MatrixPath)

	cfg, _, err = Parse([]string{"-m", "b.yaml"}, out)
	require.NoError(t, err)
	assert.Equal(t, "b.yaml", cfg.MatrixPath)
}

func TestParse_AllOptions(t *testing.T) {
	out := &bytes.Buffer{}

	cfg, _, err := Parse([]string{
		"-format", "yaml",
		"-runner", "cargo",
		"-workers", "8",
		"-project-dir", "/src/firmware",
		"-dry-run",
		"-log-format", "json",
		"-log-level", "debug",
		"matrix.yaml",
	}, out)
	require.NoError(t, err)

	assert.Equal(t, "yaml", cfg.Format)
	assert.Equal(t, "cargo", cfg.Runner)
	assert.Equal(t, 8, cfg.WorkerCount)
	assert.Equal(t, "/src/firmware", cfg.ProjectDir)
	assert.True(t, cfg.DryRun)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestParse_NoPathPrintsUsage(t *testing.T) {
	out := &bytes.Buffer{}

	cfg, shouldExit, err := Parse(nil, out)
	require.NoError(t, err)
	assert.True(t, shouldExit)
	assert.Nil(t, cfg)
	assert.Contains(t, out.String(), "Usage:")
}

func TestParse_InvalidValuesReturnExitError(t *testing.T) {
	cases := []struct {
		name string
		args []string
	}{
		{"bad log format", []string{"-log-format", "xml", "a.hcl"}},
		{"bad log level", []string{"-log-level", "loud", "a.hcl"}},
		{"bad format", []string{"-format", "toml", "a.hcl"}},
		{"zero workers", []string{"-workers", "0", "a.hcl"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out := &bytes.Buffer{}
			_, _, err := Parse(tc.args, out)
			require.Error(t, err)

			exitErr, ok := err.(*ExitError)
			require.True(t, ok)
			assert.Equal(t, 2, exitErr.Code)
		})
	}
}

func TestParse_UnknownFlag(t *testing.T) {
	out := &bytes.Buffer{}
	_, _, err := Parse([]string{"--bogus"}, out)
	require.Error(t, err)

	exitErr, ok := err.(*ExitError)
	require.True(t, ok)
	assert.Equal(t, 2, exitErr.Code)
}
