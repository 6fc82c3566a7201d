// SPDX-License-Identifier: MIT

// Command glmath evaluates transform scripts and runs matrix kernels from the
// command line.
package main

import (
	"os"

	"github.com/katalvlaran/glmath/cmd/glmath/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
