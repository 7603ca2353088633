// SPDX-License-Identifier: MIT

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `names: [x, y, z, t]
degrees: [1, 2, 2, 3]
max_degree: 6
latex_mul_symbol: '\smile'
`

// inTempDir runs the test in an empty working directory so that no
// gcalg.yaml from the repository is picked up.
func inTempDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)

	return dir
}

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

func TestLoad_FromDefaultFile(t *testing.T) {
	inTempDir(t)
	writeFile(t, DefaultFile, sampleYAML)

	cfg, used, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultFile, used)
	assert.Equal(t, []string{"x", "y", "z", "t"}, cfg.Names)
	assert.Equal(t, []int{1, 2, 2, 3}, cfg.Degrees)
	assert.Equal(t, 6, cfg.MaxDegree)
	assert.Equal(t, RingInt, cfg.Ring)
	assert.Equal(t, DefaultMulSymbol, cfg.MulSymbol)
	assert.Equal(t, `\smile`, cfg.LatexMulSymbol)
	assert.Equal(t, OutputTable, cfg.Output)
}

func TestLoad_ExplicitFile(t *testing.T) {
	dir := inTempDir(t)
	path := filepath.Join(dir, "other.yaml")
	writeFile(t, path, "degrees: [2, 2]\nmax_degree: 4\n")

	cfg, used, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, path, used)
	assert.Empty(t, cfg.Names)
	assert.Equal(t, []int{2, 2}, cfg.Degrees)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	inTempDir(t)
	_, _, err := Load("nope.yaml", nil)
	require.Error(t, err)
}

func TestLoad_Precedence(t *testing.T) {
	inTempDir(t)
	writeFile(t, DefaultFile, sampleYAML)
	t.Setenv("GCALG_MAX_DEGREE", "5")
	t.Setenv("GCALG_OUTPUT", "plain")

	cfg, _, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.MaxDegree, "env beats file")
	assert.Equal(t, OutputPlain, cfg.Output)

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.Int("max-degree", 0, "")
	fs.String("output", "", "")
	fs.String("mul-symbol", "", "")
	require.NoError(t, fs.Parse([]string{"--max-degree=4", "--mul-symbol=."}))

	cfg, _, err = Load("", fs)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.MaxDegree, "flag beats env")
	assert.Equal(t, ".", cfg.MulSymbol)
	assert.Equal(t, OutputPlain, cfg.Output, "unchanged flag does not override")
}

func TestLoad_EnvOnly(t *testing.T) {
	inTempDir(t)
	t.Setenv("GCALG_DEGREES", "1,1")
	t.Setenv("GCALG_MAX_DEGREE", "2")
	t.Setenv("GCALG_RING", "gf")
	t.Setenv("GCALG_MODULUS", "3")

	cfg, used, err := Load("", nil)
	require.NoError(t, err)
	assert.Empty(t, used)
	assert.Equal(t, []int{1, 1}, cfg.Degrees)
	assert.Equal(t, RingGF, cfg.Ring)
	assert.EqualValues(t, 3, cfg.Modulus)
}

func TestLoad_MissingMaxDegree(t *testing.T) {
	inTempDir(t)
	writeFile(t, DefaultFile, "names: [x]\n")

	_, used, err := Load("", nil)
	require.ErrorIs(t, err, ErrInvalidConfig)
	assert.Equal(t, DefaultFile, used)
}

func TestValidate(t *testing.T) {
	valid := Sample()
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"no generators", func(c *Config) { c.Names, c.Degrees = nil, nil }},
		{"negative max degree", func(c *Config) { c.MaxDegree = -1 }},
		{"unknown ring", func(c *Config) { c.Ring = "complex" }},
		{"gf without modulus", func(c *Config) { c.Ring = RingGF }},
		{"unknown output", func(c *Config) { c.Output = "json" }},
		{"empty mul symbol", func(c *Config) { c.MulSymbol = "" }},
		{"negative workers", func(c *Config) { c.Workers = -2 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Sample()
			tt.mutate(&c)
			assert.ErrorIs(t, c.Validate(), ErrInvalidConfig)
		})
	}
}
