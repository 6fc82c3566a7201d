// SPDX-License-Identifier: MIT

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/glmath/internal/scene"
)

func newEvalCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "eval <script.yaml|script.toml>",
		Short: "Replay a transform script and print the resulting matrix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := scene.Load(args[0])
			if err != nil {
				return err
			}
			g.log.Debug("loaded script", "path", args[0], "name", s.Name, "steps", len(s.Steps))

			st, err := scene.Run(s)
			if err != nil {
				return err
			}
			g.log.Debug("script finished", "depth", st.Depth())

			return g.printMatrix(cmd.OutOrStdout(), s.Name, st.Current())
		},
	}
}
