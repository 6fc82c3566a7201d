// SPDX-License-Identifier: MIT

package cmd_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/glmath/cmd/glmath/cmd"
	"github.com/katalvlaran/glmath/matrix"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := cmd.NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), errOut.String(), err
}

func TestDet(t *testing.T) {
	out, _, err := run(t, "det", "--plain", "1", "2", "3", "4")
	require.NoError(t, err)
	require.Equal(t, "-2\n", out)

	out, _, err = run(t, "det", "--plain", "-n", "3", "--", "2", "0", "0", "0", "3", "0", "0", "0", "-1")
	require.NoError(t, err)
	require.Equal(t, "-6\n", out)
}

func TestInverse(t *testing.T) {
	out, _, err := run(t, "inverse", "--plain", "--format", "matrix", "2", "1", "1", "1")
	require.NoError(t, err)
	require.Equal(t, "1\t-1\n-1\t2\n", out)

	out, _, err = run(t, "inverse", "--plain", "2", "1", "1", "1")
	require.NoError(t, err)
	require.Equal(t, "Matrix2[1, -1, -1, 2]\n", out)

	_, _, err = run(t, "inverse", "--plain", "1", "2", "2", "4")
	require.ErrorIs(t, err, matrix.ErrSingular)
}

func TestLUP(t *testing.T) {
	out, _, err := run(t, "lup", "--plain", "--format", "matrix", "0", "1", "1", "0")
	require.NoError(t, err)
	require.Contains(t, out, "L:\n")
	require.Contains(t, out, "U:\n")
	require.Contains(t, out, "P:\n0\t1\n1\t0\n")
}

func TestSolve(t *testing.T) {
	out, _, err := run(t, "solve", "--plain", "2", "1", "1", "1", "3", "2")
	require.NoError(t, err)
	require.Equal(t, "1\n1\n", out)

	_, _, err = run(t, "solve", "--plain", "1", "2", "3", "4")
	require.ErrorIs(t, err, matrix.ErrElementCount)
}

func TestOperandErrors(t *testing.T) {
	_, _, err := run(t, "det", "1", "2", "3")
	require.ErrorIs(t, err, matrix.ErrElementCount)

	_, _, err = run(t, "det", "-n", "3", "1", "2", "3", "4")
	require.ErrorIs(t, err, matrix.ErrElementCount)

	_, _, err = run(t, "det", "1", "2", "x", "4")
	require.Error(t, err)

	_, _, err = run(t, "det", "--format", "latex", "1", "2", "3", "4")
	require.ErrorIs(t, err, matrix.ErrUnknownNotation)
}

func TestEval(t *testing.T) {
	path := filepath.Join(t.TempDir(), "move.yaml")
	script := "name: move\nsteps:\n  - op: translate\n    args: [1, 2, 3]\n"
	require.NoError(t, os.WriteFile(path, []byte(script), 0o600))

	out, logs, err := run(t, "eval", "--plain", "--format", "matrix", "-v", path)
	require.NoError(t, err)
	require.Equal(t, "move:\n1\t0\t0\t1\n0\t1\t0\t2\n0\t0\t1\t3\n0\t0\t0\t1\n", out)
	require.Contains(t, logs, "steps=1")

	_, _, err = run(t, "eval", filepath.Join(t.TempDir(), "missing.toml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestStyledOutput(t *testing.T) {
	out, _, err := run(t, "det", "1", "2", "3", "4")
	require.NoError(t, err)
	require.Contains(t, out, "-2")
	require.Contains(t, out, "╭")
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, "version")
	require.NoError(t, err)
	require.Contains(t, out, "glmath v"+cmd.Version)
}
