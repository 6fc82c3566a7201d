// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"strings"
)

// Notation selects a text rendering for Text.
type Notation string

// Supported notations.
const (
	NotationDefault Notation = ""       // "Matrix2[1, 2, 3, 4]"
	NotationMatrix  Notation = "matrix" // one line per row, tab-separated
)

// String implements fmt.Stringer: "MatrixN[e0, e1, ...]" in row-major order.
func (m *Matrix[T]) String() string {
	if m == nil {
		return "Matrix<nil>"
	}
	elems := make([]string, len(m.data))
	for i, v := range m.data {
		elems[i] = fmt.Sprint(v)
	}

	return fmt.Sprintf("Matrix%d[%s]", m.n, strings.Join(elems, ", "))
}

// Text renders m in the given notation.
//
// Errors: ErrNilMatrix, ErrUnknownNotation.
func (m *Matrix[T]) Text(n Notation) (string, error) {
	if err := ValidateNotNil(m); err != nil {
		return "", matrixErrorf(opText, err)
	}
	switch n {
	case NotationDefault:
		return m.String(), nil
	case NotationMatrix:
		var sb strings.Builder
		for r := 0; r < m.n; r++ {
			if r > 0 {
				sb.WriteByte('\n')
			}
			for c := 0; c < m.n; c++ {
				if c > 0 {
					sb.WriteByte('\t')
				}
				fmt.Fprint(&sb, m.at(r, c))
			}
		}
		return sb.String(), nil
	}

	return "", matrixErrorf(opText, ErrUnknownNotation)
}
