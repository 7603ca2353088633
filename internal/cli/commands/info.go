// SPDX-License-Identifier: MIT

package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewInfoCommand describes the configured algebra.
func NewInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Describe the configured algebra",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, eng, err := loadEngine(cmd)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "%s over %s\n", eng.Describe(), eng.RingName())
			_, _ = fmt.Fprintf(w, "dimension: %d\n", len(eng.Basis()))

			return nil
		},
	}
}
