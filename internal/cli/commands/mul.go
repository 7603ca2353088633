// SPDX-License-Identifier: MIT

package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/gcalg/internal/cli/config"
)

// NewMulCommand multiplies parsed elements left to right.
func NewMulCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "mul <expr> [expr...]",
		Short: "Multiply elements of the algebra",
		Long: `Parse each argument as a sum of integer multiples of monomials
(for example "2*x*y - z + 3") and print their product.`,
		Example: `  gcalg mul x y
  gcalg mul "x + y" "x - y" --output latex`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, eng, err := loadEngine(cmd)
			if err != nil {
				return err
			}
			v, err := eng.Eval(args...)
			if err != nil {
				return err
			}
			s.log.Debug("product", zap.Strings("factors", args), zap.String("value", v.Plain))

			w := cmd.OutOrStdout()
			switch s.cfg.Output {
			case config.OutputYAML:
				return renderYAML(w, v)
			case config.OutputLatex:
				_, _ = fmt.Fprintln(w, v.Latex)
			default:
				_, _ = fmt.Fprintln(w, v.Plain)
			}

			return nil
		},
	}
}
