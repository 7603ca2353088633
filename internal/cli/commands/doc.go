// SPDX-License-Identifier: MIT

// Package commands implements the gcalg subcommands. Each constructor
// returns a *cobra.Command; the root command attaches the resolved
// configuration and logger with Attach before any of them run.
package commands
