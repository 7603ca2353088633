// SPDX-License-Identifier: MIT

package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/gcalg/internal/cli/config"
)

type checkReport struct {
	Dimension int      `yaml:"dimension"`
	Laws      []string `yaml:"laws"`
	Products  int64    `yaml:"products"`
	Duality   bool     `yaml:"poincare_duality"`
}

// NewCheckCommand verifies the algebra laws over the whole basis.
func NewCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify the algebra laws over the whole basis",
		Long: `Exhaustively verify identity, truncation, super-commutativity, odd
nilpotency and associativity on basis monomials, using --workers
goroutines, and report whether Poincaré duality holds.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, eng, err := loadEngine(cmd)
			if err != nil {
				return err
			}
			start := time.Now()
			rep, err := eng.Check(cmd.Context(), s.cfg.Workers)
			if err != nil {
				s.log.Error("law check failed", zap.Error(err))
				return err
			}
			s.log.Debug("law check passed",
				zap.Int("dimension", rep.Dimension),
				zap.Int64("products", rep.Products),
				zap.Duration("elapsed", time.Since(start)),
			)

			out := checkReport{
				Dimension: rep.Dimension,
				Laws:      rep.Laws,
				Products:  rep.Products,
				Duality:   eng.PoincareDuality(),
			}
			w := cmd.OutOrStdout()
			if s.cfg.Output == config.OutputYAML {
				return renderYAML(w, out)
			}
			_, _ = fmt.Fprintf(w, "ok: %s (dimension %d, %d products)\n",
				strings.Join(out.Laws, ", "), out.Dimension, out.Products)
			_, _ = fmt.Fprintf(w, "poincare duality: %t\n", out.Duality)

			return nil
		},
	}
}
