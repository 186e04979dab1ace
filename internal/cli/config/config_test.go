package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlviz/internal/cli/config"
)

// TestLoad_Defaults checks the built-in layer.
func TestLoad_Defaults(t *testing.T) {
	c, err := config.Load("", nil)
	require.NoError(t, err)
	require.Equal(t, "styled", c.Tool)
	require.Empty(t, c.Edges)
	require.False(t, c.Verbose)
}

// TestLoad_File layers a YAML file over the defaults.
func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lvlviz.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tool: quick\ndataset: cora\n"), 0o644))

	c, err := config.Load(path, nil)
	require.NoError(t, err)
	require.Equal(t, "quick", c.Tool)
	require.Equal(t, "cora", c.Dataset)
}

// TestLoad_MissingExplicitFile is an error; a missing default file is not.
func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"), nil)
	require.Error(t, err)
}

// TestLoad_EnvOverride layers LVLVIZ_* variables over files.
func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("LVLVIZ_TOOL", "quick")
	t.Setenv("LVLVIZ_VERBOSE", "true")

	c, err := config.Load("", nil)
	require.NoError(t, err)
	require.Equal(t, "quick", c.Tool)
	require.True(t, c.Verbose)
}

// TestLoad_FlagOverride puts explicit flags on top of everything.
func TestLoad_FlagOverride(t *testing.T) {
	t.Setenv("LVLVIZ_TOOL", "quick")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("tool", "", "")
	fs.String("edges", "", "")
	require.NoError(t, fs.Parse([]string{"--tool=styled", "--edges=graph.csv"}))

	c, err := config.Load("", fs)
	require.NoError(t, err)
	require.Equal(t, "styled", c.Tool)
	require.Equal(t, "graph.csv", c.Edges)
}
