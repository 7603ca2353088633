// SPDX-License-Identifier: MIT

package commands

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gcalg/internal/cli/config"
)

// NewBasisCommand lists the basis monomials in canonical order.
func NewBasisCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "basis",
		Short: "List the basis monomials",
		Long: `List the basis of the algebra in canonical order: by degree, then
by exponent vector.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, eng, err := loadEngine(cmd)
			if err != nil {
				return err
			}
			entries := eng.Basis()
			w := cmd.OutOrStdout()

			switch s.cfg.Output {
			case config.OutputYAML:
				return renderYAML(w, entries)
			case config.OutputPlain:
				for _, e := range entries {
					_, _ = fmt.Fprintln(w, e.Monomial)
				}
			case config.OutputLatex:
				for _, e := range entries {
					_, _ = fmt.Fprintln(w, e.Latex)
				}
			default:
				rows := make([]table.Row, len(entries))
				for i, e := range entries {
					rows[i] = table.Row{e.Index, e.Monomial, e.Degree, e.Exponents.String()}
				}
				renderTable(w, table.Row{"#", "Monomial", "Degree", "Exponents"}, rows)
				_, _ = fmt.Fprintf(w, "(dimension %d)\n", len(entries))
			}

			return nil
		},
	}
}
