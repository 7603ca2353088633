// SPDX-License-Identifier: MIT

package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gcalg/gca"
	"github.com/katalvlaran/gcalg/internal/cli/config"
)

// exteriorConfig is the exterior algebra on x, y, z.
func exteriorConfig(output string) *config.Config {
	cfg := config.Sample()
	cfg.Output = output

	return &cfg
}

// run executes cmd with cfg attached and returns its combined output.
func run(t *testing.T, cfg *config.Config, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	if args == nil {
		args = []string{}
	}
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	if cfg != nil {
		Attach(cmd, cfg, zap.NewNop())
	}
	err := cmd.Execute()

	return buf.String(), err
}

func TestBasisCommand(t *testing.T) {
	out, err := run(t, exteriorConfig(config.OutputPlain), NewBasisCommand())
	require.NoError(t, err)
	assert.Equal(t, "1\nz\ny\nx\ny*z\nx*z\nx*y\nx*y*z\n", out)

	out, err = run(t, exteriorConfig(config.OutputLatex), NewBasisCommand())
	require.NoError(t, err)
	assert.Contains(t, out, "x\\smile y\n")

	out, err = run(t, exteriorConfig(config.OutputTable), NewBasisCommand())
	require.NoError(t, err)
	assert.Contains(t, out, "Monomial")
	assert.Contains(t, out, "x*y*z")
	assert.Contains(t, out, "(dimension 8)")
}

func TestBasisCommand_YAML(t *testing.T) {
	out, err := run(t, exteriorConfig(config.OutputYAML), NewBasisCommand())
	require.NoError(t, err)

	var entries []BasisEntry
	require.NoError(t, yaml.Unmarshal([]byte(out), &entries))
	require.Len(t, entries, 8)
	assert.Equal(t, "x*y*z", entries[7].Monomial)
	assert.Equal(t, 3, entries[7].Degree)
	assert.Equal(t, []int{1, 1, 1}, []int(entries[7].Exponents))
}

func TestMulCommand(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"x", "y"}, "x*y\n"},
		{[]string{"y", "x"}, "-x*y\n"},
		{[]string{"x", "x"}, "0\n"},
		{[]string{"x + y", "x - y"}, "-2*x*y\n"},
		{[]string{"2*x*y - z + 3"}, "3 - z + 2*x*y\n"},
	}
	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			out, err := run(t, exteriorConfig(config.OutputPlain), NewMulCommand(), tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestMulCommand_Latex(t *testing.T) {
	out, err := run(t, exteriorConfig(config.OutputLatex), NewMulCommand(), "x", "y")
	require.NoError(t, err)
	assert.Equal(t, "x\\smile y\n", out)
}

func TestMulCommand_Errors(t *testing.T) {
	_, err := run(t, exteriorConfig(config.OutputPlain), NewMulCommand(), "x", "w")
	require.ErrorIs(t, err, gca.ErrUnknownGenerator)

	_, err = run(t, exteriorConfig(config.OutputPlain), NewMulCommand())
	require.Error(t, err)

	_, err = run(t, nil, NewMulCommand(), "x")
	require.ErrorIs(t, err, ErrNoConfig)
}

func TestMulCommand_AmbiguousMulSymbol(t *testing.T) {
	cfg := exteriorConfig(config.OutputPlain)
	cfg.MulSymbol = "-"
	_, err := run(t, cfg, NewMulCommand(), "x - y")
	require.ErrorIs(t, err, gca.ErrInvalidConfiguration)
}

func TestMulCommand_Rings(t *testing.T) {
	rat := exteriorConfig(config.OutputPlain)
	rat.Ring = config.RingRat
	out, err := run(t, rat, NewMulCommand(), "2*x", "3*y")
	require.NoError(t, err)
	assert.Equal(t, "6*x*y\n", out)

	gf2 := &config.Config{
		Names:     []string{"x", "y"},
		Degrees:   []int{2, 2},
		MaxDegree: 4,
		Ring:      config.RingGF,
		Modulus:   2,
		MulSymbol: "*",
		Output:    config.OutputPlain,
	}
	out, err = run(t, gf2, NewMulCommand(), "x + y", "x + y")
	require.NoError(t, err)
	assert.Equal(t, "y^2 + x^2\n", out)

	gf4 := *gf2
	gf4.Modulus = 4
	_, err = run(t, &gf4, NewMulCommand(), "x")
	require.Error(t, err)
}

func TestDegreeCommand(t *testing.T) {
	out, err := run(t, exteriorConfig(config.OutputPlain), NewDegreeCommand(), "x*y - y*z")
	require.NoError(t, err)
	assert.Equal(t, "2\n", out)

	_, err = run(t, exteriorConfig(config.OutputPlain), NewDegreeCommand(), "x + x*y")
	require.ErrorIs(t, err, gca.ErrNotHomogeneous)

	_, err = run(t, exteriorConfig(config.OutputPlain), NewDegreeCommand(), "x*x")
	require.ErrorIs(t, err, gca.ErrNotHomogeneous)
}

func TestHilbertCommand(t *testing.T) {
	out, err := run(t, exteriorConfig(config.OutputPlain), NewHilbertCommand())
	require.NoError(t, err)
	assert.Equal(t, "1 3 3 1\n", out)

	out, err = run(t, exteriorConfig(config.OutputTable), NewHilbertCommand())
	require.NoError(t, err)
	assert.Contains(t, out, "Dimension")

	out, err = run(t, exteriorConfig(config.OutputYAML), NewHilbertCommand())
	require.NoError(t, err)
	var series []int
	require.NoError(t, yaml.Unmarshal([]byte(out), &series))
	assert.Equal(t, []int{1, 3, 3, 1}, series)
}

func TestPairingCommand(t *testing.T) {
	out, err := run(t, exteriorConfig(config.OutputPlain), NewPairingCommand(), "1")
	require.NoError(t, err)
	assert.Equal(t, "[0, 0, 1]\n[0, -1, 0]\n[1, 0, 0]\ndet = 1, rank = 3\n", out)

	out, err = run(t, exteriorConfig(config.OutputYAML), NewPairingCommand(), "1")
	require.NoError(t, err)
	var rep pairingReport
	require.NoError(t, yaml.Unmarshal([]byte(out), &rep))
	assert.Equal(t, "1", rep.Determinant)
	assert.Equal(t, [][]int64{{0, 0, 1}, {0, -1, 0}, {1, 0, 0}}, rep.Matrix)

	_, err = run(t, exteriorConfig(config.OutputPlain), NewPairingCommand(), "one")
	require.Error(t, err)
}

func TestPairingCommand_NoTopClass(t *testing.T) {
	cfg := &config.Config{
		Names:     []string{"x", "y"},
		MaxDegree: 1,
		Ring:      config.RingInt,
		MulSymbol: "*",
		Output:    config.OutputPlain,
	}
	_, err := run(t, cfg, NewPairingCommand(), "0")
	require.ErrorIs(t, err, gca.ErrNoTopClass)
}

func TestCheckCommand(t *testing.T) {
	cfg := exteriorConfig(config.OutputPlain)
	cfg.Workers = 2
	out, err := run(t, cfg, NewCheckCommand())
	require.NoError(t, err)
	assert.Contains(t, out, "ok: identity, odd nilpotency, truncation, super-commutativity, associativity")
	assert.Contains(t, out, "dimension 8")
	assert.Contains(t, out, "poincare duality: true\n")

	out, err = run(t, exteriorConfig(config.OutputYAML), NewCheckCommand())
	require.NoError(t, err)
	var rep checkReport
	require.NoError(t, yaml.Unmarshal([]byte(out), &rep))
	assert.True(t, rep.Duality)
	assert.Len(t, rep.Laws, 5)
}

func TestInfoCommand(t *testing.T) {
	out, err := run(t, exteriorConfig(config.OutputPlain), NewInfoCommand())
	require.NoError(t, err)
	assert.Equal(t,
		"Graded commutative algebra with generators ('x', 'y', 'z') in degrees (1, 1, 1) with maximal degree 3 over ZZ\ndimension: 8\n",
		out)
}

func TestInitCommand(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, nil, NewInitCommand(), dir)
	require.NoError(t, err)
	path := filepath.Join(dir, config.DefaultFile)
	assert.Equal(t, "wrote "+path+"\n", out)

	body, err := os.ReadFile(path)
	require.NoError(t, err)
	var got config.Config
	require.NoError(t, yaml.Unmarshal(body, &got))
	assert.Equal(t, config.Sample(), got)

	_, err = run(t, nil, NewInitCommand(), dir)
	require.ErrorIs(t, err, ErrConfigExists)

	_, err = run(t, nil, NewInitCommand(), "--force", dir)
	require.NoError(t, err)
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, nil, NewVersionCommand("1.2.3"))
	require.NoError(t, err)
	assert.Equal(t, "gcalg v1.2.3\n", out)
}
