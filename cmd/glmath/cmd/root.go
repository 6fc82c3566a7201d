// SPDX-License-Identifier: MIT

// Package cmd implements the glmath command tree.
package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/glmath/matrix"
)

// globals holds the persistent flags shared by every subcommand.
type globals struct {
	format  string
	plain   bool
	verbose bool

	notation matrix.Notation
	log      *slog.Logger
}

// NewRootCmd builds a fresh command tree.
func NewRootCmd() *cobra.Command {
	g := &globals{}

	root := &cobra.Command{
		Use:   "glmath",
		Short: "Fixed-dimension linear algebra for graphics",
		Long: `glmath runs 2x2, 3x3 and 4x4 matrix kernels and replays transform
scripts written in YAML or TOML.

Matrix elements are given row-major on the command line; the dimension is
inferred from the element count unless -n is set.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return g.setup(cmd)
		},
	}

	root.PersistentFlags().StringVar(&g.format, "format", "default", "matrix notation: default or matrix")
	root.PersistentFlags().BoolVar(&g.plain, "plain", false, "print without terminal styling")
	root.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "debug logging on stderr")

	root.AddCommand(
		newEvalCmd(g),
		newDetCmd(g),
		newInverseCmd(g),
		newLUPCmd(g),
		newSolveCmd(g),
		newVersionCmd(),
	)

	return root
}

// Execute runs the command tree with os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

func (g *globals) setup(cmd *cobra.Command) error {
	level := slog.LevelInfo
	if g.verbose {
		level = slog.LevelDebug
	}
	g.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	switch g.format {
	case "", "default":
		g.notation = matrix.NotationDefault
	case string(matrix.NotationMatrix):
		g.notation = matrix.NotationMatrix
	default:
		return fmt.Errorf("--format %q: %w", g.format, matrix.ErrUnknownNotation)
	}
	g.log.Debug("configured", "format", g.format, "plain", g.plain)

	return nil
}
