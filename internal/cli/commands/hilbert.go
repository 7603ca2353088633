// SPDX-License-Identifier: MIT

package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gcalg/internal/cli/config"
)

// NewHilbertCommand prints dim A_k for every degree k.
func NewHilbertCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "hilbert",
		Short: "Print the dimension of every degree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, eng, err := loadEngine(cmd)
			if err != nil {
				return err
			}
			series := eng.Hilbert()
			w := cmd.OutOrStdout()

			switch s.cfg.Output {
			case config.OutputYAML:
				return renderYAML(w, series)
			case config.OutputTable:
				rows := make([]table.Row, len(series))
				for k, d := range series {
					rows[k] = table.Row{k, d}
				}
				renderTable(w, table.Row{"Degree", "Dimension"}, rows)
			default:
				parts := make([]string, len(series))
				for k, d := range series {
					parts[k] = strconv.Itoa(d)
				}
				_, _ = fmt.Fprintln(w, strings.Join(parts, " "))
			}

			return nil
		},
	}
}
