// SPDX-License-Identifier: MIT

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gcalg/gca"
	"github.com/katalvlaran/gcalg/internal/cli/config"
)

// NewDegreeCommand prints the degree of a homogeneous element.
func NewDegreeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "degree <expr>",
		Short: "Print the degree of a homogeneous element",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, eng, err := loadEngine(cmd)
			if err != nil {
				return err
			}
			v, err := eng.Eval(args[0])
			if err != nil {
				return err
			}
			if !v.Homogeneous {
				return fmt.Errorf("%q evaluates to %s: %w", args[0], v.Plain, gca.ErrNotHomogeneous)
			}

			if s.cfg.Output == config.OutputYAML {
				return renderYAML(cmd.OutOrStdout(), v)
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), v.Degree)

			return nil
		},
	}
}
