// SPDX-License-Identifier: MIT

// Package cli wires the gcalg command tree.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/gcalg/internal/cli/commands"
	"github.com/katalvlaran/gcalg/internal/cli/config"
)

// Version is set at build time.
var Version = "0.1.0"

// buildLogger is replaced in tests.
var buildLogger = func(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	return cfg.Build()
}

// needsConfig reports whether cmd operates on a configured algebra.
func needsConfig(cmd *cobra.Command) bool {
	switch cmd.Name() {
	case "help", "completion", "__complete", "init", "version":
		return false
	}

	return true
}

// NewRootCmd creates the root command with every subcommand attached.
func NewRootCmd() *cobra.Command {
	var (
		cfgFile string
		logger  *zap.Logger
	)

	rootCmd := &cobra.Command{
		Use:   "gcalg",
		Short: "Finite graded-commutative algebras",
		Long: `gcalg builds the finite graded-commutative algebra generated by named
generators of positive degree, truncated above a maximal degree, and
computes in it: basis listings, products, degrees, Hilbert series,
Poincaré pairings and exhaustive law checks.

Configuration is read from gcalg.yaml, GCALG_* environment variables
and flags, in increasing order of precedence.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			verbose, _ := cmd.Flags().GetBool("verbose")
			if !needsConfig(cmd) {
				var err error
				logger, err = buildLogger(verbose)
				if err != nil {
					return fmt.Errorf("failed to initialize logger: %w", err)
				}

				return nil
			}

			cfg, used, err := config.Load(cfgFile, cmd.Flags())
			if err != nil {
				return err
			}
			logger, err = buildLogger(cfg.Verbose)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			if used != "" {
				logger.Debug("config loaded", zap.String("file", used))
			}
			commands.Attach(cmd, cfg, logger)

			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default: ./gcalg.yaml)")
	pf.StringSlice("names", nil, "generator names, e.g. x,y,z")
	pf.IntSlice("degrees", nil, "generator degrees, e.g. 1,2,3")
	pf.Int("max-degree", 0, "maximal degree n; products above n vanish")
	pf.String("ring", "", "coefficient ring (int|rat|gf)")
	pf.Uint64("modulus", 0, "prime modulus for --ring gf")
	pf.String("mul-symbol", "", "multiplication symbol for plain output")
	pf.String("latex-mul-symbol", "", `multiplication symbol for LaTeX output, e.g. \smile`)
	pf.Int("workers", 0, "goroutines for check (0: GOMAXPROCS)")
	pf.BoolP("verbose", "v", false, "debug logging")
	pf.StringP("output", "o", "", "output format (table|plain|latex|yaml)")

	_ = rootCmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{config.OutputTable, config.OutputPlain, config.OutputLatex, config.OutputYAML}, cobra.ShellCompDirectiveNoFileComp
	})
	_ = rootCmd.RegisterFlagCompletionFunc("ring", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{config.RingInt, config.RingRat, config.RingGF}, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(commands.NewVersionCommand(Version))
	rootCmd.AddCommand(commands.NewInitCommand())
	rootCmd.AddCommand(commands.NewInfoCommand())
	rootCmd.AddCommand(commands.NewBasisCommand())
	rootCmd.AddCommand(commands.NewMulCommand())
	rootCmd.AddCommand(commands.NewDegreeCommand())
	rootCmd.AddCommand(commands.NewHilbertCommand())
	rootCmd.AddCommand(commands.NewPairingCommand())
	rootCmd.AddCommand(commands.NewCheckCommand())

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}

	return nil
}
