// SPDX-License-Identifier: MIT

package commands

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gcalg/internal/cli/config"
	"github.com/katalvlaran/gcalg/matrix"
)

type pairingReport struct {
	Degree      int       `yaml:"degree"`
	Matrix      [][]int64 `yaml:"matrix,flow"`
	Determinant string    `yaml:"determinant"`
	Rank        int       `yaml:"rank"`
}

// NewPairingCommand prints the pairing matrix A_k × A_{n-k} → A_n.
func NewPairingCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "pairing <k>",
		Short: "Print the Poincaré pairing matrix in degree k",
		Long: `Print the matrix of the pairing A_k × A_{n-k} → A_n, where n is the
top non-empty degree, together with its determinant and rank.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("degree %q: %w", args[0], err)
			}
			s, eng, err := loadEngine(cmd)
			if err != nil {
				return err
			}
			m, err := eng.Pairing(k)
			if err != nil {
				return err
			}
			detStr := "undefined"
			det, err := m.Determinant()
			switch {
			case err == nil:
				detStr = det.String()
			case !errors.Is(err, matrix.ErrNonSquare):
				return err
			}

			w := cmd.OutOrStdout()
			if s.cfg.Output == config.OutputYAML {
				return renderYAML(w, pairingReport{
					Degree:      k,
					Matrix:      m.Values(),
					Determinant: detStr,
					Rank:        m.Rank(),
				})
			}
			_, _ = fmt.Fprint(w, m.String())
			_, _ = fmt.Fprintf(w, "det = %s, rank = %d\n", detStr, m.Rank())

			return nil
		},
	}
}
