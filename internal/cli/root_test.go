// SPDX-License-Identifier: MIT

package cli

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/katalvlaran/gcalg/internal/cli/config"
)

// execute runs the root command in an empty working directory with a
// no-op logger.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Chdir(t.TempDir())
	prev := buildLogger
	buildLogger = func(bool) (*zap.Logger, error) { return zap.NewNop(), nil }
	t.Cleanup(func() { buildLogger = prev })

	root := NewRootCmd()
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()

	return buf.String(), err
}

func TestRoot_Flags(t *testing.T) {
	out, err := execute(t, "--names=x,y,z", "--max-degree=3", "-o", "plain", "hilbert")
	require.NoError(t, err)
	assert.Equal(t, "1 3 3 1\n", out)
}

func TestRoot_EnvAndFlags(t *testing.T) {
	t.Setenv("GCALG_NAMES", "x,y,z,t")
	t.Setenv("GCALG_DEGREES", "1,2,2,3")
	t.Setenv("GCALG_MAX_DEGREE", "8")
	t.Setenv("GCALG_OUTPUT", "plain")

	out, err := execute(t, "--max-degree=6", "mul", "z*t + x*y^2", "1")
	require.NoError(t, err)
	assert.Equal(t, "z*t + x*y^2\n", out)

	out, err = execute(t, "degree", "y*t")
	require.NoError(t, err)
	assert.Equal(t, "5\n", out)
}

func TestRoot_InitThenBasis(t *testing.T) {
	out, err := execute(t, "init")
	require.NoError(t, err)
	assert.Contains(t, out, config.DefaultFile)
	_, err = os.Stat(config.DefaultFile)
	require.NoError(t, err)

	// execute moves to a fresh directory, so pass the file explicitly.
	path, err := os.Getwd()
	require.NoError(t, err)
	out, err = execute(t, "--config", path+"/"+config.DefaultFile, "-o", "plain", "basis")
	require.NoError(t, err)
	assert.Equal(t, "1\nz\ny\nx\ny*z\nx*z\nx*y\nx*y*z\n", out)
}

func TestRoot_MissingConfig(t *testing.T) {
	_, err := execute(t, "basis")
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestRoot_VersionSkipsConfig(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "gcalg v"+Version+"\n", out)
}

func TestRoot_Verbose(t *testing.T) {
	_, err := execute(t, "-v", "--degrees=1", "--max-degree=1", "info")
	require.NoError(t, err)
}
