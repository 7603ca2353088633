// SPDX-License-Identifier: MIT

// Command gcalg computes in finite graded-commutative algebras.
package main

import (
	"os"

	"github.com/katalvlaran/gcalg/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
