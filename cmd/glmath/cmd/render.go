// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/glmath/matrix"
)

var (
	colorPrimary = lipgloss.Color("#7C3AED")
	colorMuted   = lipgloss.Color("#6B7280")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(0, 1)
)

// printBlock writes an optional title and a body, boxed unless plain.
func (g *globals) printBlock(w io.Writer, title, body string) {
	if g.plain {
		if title != "" {
			fmt.Fprintf(w, "%s:\n", title)
		}
		fmt.Fprintln(w, body)
		return
	}
	if title != "" {
		fmt.Fprintln(w, titleStyle.Render(title))
	}
	fmt.Fprintln(w, boxStyle.Render(body))
}

// printMatrix renders m in the configured notation.
func (g *globals) printMatrix(w io.Writer, title string, m *matrix.Matrix[float64]) error {
	text, err := m.Text(g.notation)
	if err != nil {
		return err
	}
	g.printBlock(w, title, text)

	return nil
}
