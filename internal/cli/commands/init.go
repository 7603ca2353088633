// SPDX-License-Identifier: MIT

package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gcalg/internal/cli/config"
)

// ErrConfigExists is returned by init when the target file exists and
// --force is not set.
var ErrConfigExists = errors.New("commands: config file already exists")

// NewInitCommand writes a sample configuration file.
func NewInitCommand() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init [dir]",
		Short: "Write a sample gcalg.yaml",
		Long: `Write a sample configuration for the exterior algebra on x, y, z
into dir (default: the current directory).`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			path := filepath.Join(dir, config.DefaultFile)
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s: %w (use --force)", path, ErrConfigExists)
			}

			body, err := yaml.Marshal(config.Sample())
			if err != nil {
				return fmt.Errorf("encode sample config: %w", err)
			}
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return err
			}
			if err := os.WriteFile(path, body, 0o644); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)

			return nil
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")

	return cmd
}
