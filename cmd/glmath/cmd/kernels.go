// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/glmath/matrix"
	"github.com/katalvlaran/glmath/vector"
)

// parseElems converts command-line operands to float64.
func parseElems(args []string) ([]float64, error) {
	out := make([]float64, len(args))
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, fmt.Errorf("operand %d: %w", i+1, err)
		}
		out[i] = v
	}

	return out, nil
}

// inferDim returns n when set, otherwise the dimension whose size(d) equals count.
func inferDim(n, count int, size func(d int) int) (int, error) {
	if n != 0 {
		if size(n) != count {
			return 0, fmt.Errorf("-n %d needs %d operands, got %d: %w", n, size(n), count, matrix.ErrElementCount)
		}
		return n, nil
	}
	for d := matrix.MinDim; d <= matrix.MaxDim; d++ {
		if size(d) == count {
			return d, nil
		}
	}

	return 0, fmt.Errorf("%d operands: %w", count, matrix.ErrElementCount)
}

func square(d int) int { return d * d }

// parseMatrix reads an n×n matrix from row-major operands.
func parseMatrix(args []string, n int) (*matrix.Matrix[float64], error) {
	elems, err := parseElems(args)
	if err != nil {
		return nil, err
	}
	if n, err = inferDim(n, len(elems), square); err != nil {
		return nil, err
	}

	return matrix.New(n, elems)
}

// matrixCmd builds a subcommand that reads one matrix and hands it to run.
func matrixCmd(g *globals, use, short string, run func(cmd *cobra.Command, m *matrix.Matrix[float64]) error) *cobra.Command {
	var n int
	c := &cobra.Command{
		Use:   use + " <elements...>",
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := parseMatrix(args, n)
			if err != nil {
				return err
			}
			g.log.Debug("parsed matrix", "cmd", use, "dim", m.Dim())
			return run(cmd, m)
		},
	}
	c.Flags().IntVarP(&n, "dim", "n", 0, "matrix dimension (2, 3 or 4); inferred when 0")

	return c
}

func newDetCmd(g *globals) *cobra.Command {
	return matrixCmd(g, "det", "Print the determinant", func(cmd *cobra.Command, m *matrix.Matrix[float64]) error {
		g.printBlock(cmd.OutOrStdout(), "", fmt.Sprint(m.Determinant()))
		return nil
	})
}

func newInverseCmd(g *globals) *cobra.Command {
	return matrixCmd(g, "inverse", "Print the inverse matrix", func(cmd *cobra.Command, m *matrix.Matrix[float64]) error {
		inv, err := m.Inverse()
		if err != nil {
			return err
		}
		return g.printMatrix(cmd.OutOrStdout(), "", inv)
	})
}

func newLUPCmd(g *globals) *cobra.Command {
	return matrixCmd(g, "lup", "Print the LU decomposition with partial pivoting (P·A = L·U)", func(cmd *cobra.Command, m *matrix.Matrix[float64]) error {
		l, u, p, err := m.LUP()
		if err != nil {
			return err
		}
		w := cmd.OutOrStdout()
		for _, part := range []struct {
			title string
			m     *matrix.Matrix[float64]
		}{{"L", l}, {"U", u}, {"P", p}} {
			if err := g.printMatrix(w, part.title, part.m); err != nil {
				return err
			}
		}
		return nil
	})
}

func newSolveCmd(g *globals) *cobra.Command {
	var n int
	c := &cobra.Command{
		Use:   "solve <matrix elements...> <rhs...>",
		Short: "Solve A·x = b for x",
		Long:  "Operands are the n×n elements of A in row-major order followed by the n components of b.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			elems, err := parseElems(args)
			if err != nil {
				return err
			}
			d, err := inferDim(n, len(elems), func(d int) int { return d*d + d })
			if err != nil {
				return err
			}
			a, err := matrix.New(d, elems[:d*d])
			if err != nil {
				return err
			}
			x, err := a.SolveVec(elems[d*d:])
			if err != nil {
				return err
			}
			text, err := vectorText(x)
			if err != nil {
				return err
			}
			g.printBlock(cmd.OutOrStdout(), "", text)
			return nil
		},
	}
	c.Flags().IntVarP(&n, "dim", "n", 0, "system dimension (2, 3 or 4); inferred when 0")

	return c
}

// vectorText renders a solution vector one component per line.
func vectorText(x []float64) (string, error) {
	switch len(x) {
	case 2:
		return vector.Vec2(x).Text(vector.NotationColumn)
	case 3:
		return vector.Vec3(x).Text(vector.NotationColumn)
	case 4:
		return vector.Vec4(x).Text(vector.NotationColumn)
	}

	return "", matrix.ErrDimensionMismatch
}
