// SPDX-License-Identifier: MIT

// Package matrix: traversal modes.
//
// Each and EachWithIndex return range-over-func sequences. Sequences are lazy,
// finite and restartable: every range over them walks the selected cells in
// row-major order again, reading the matrix's current elements.

package matrix

import "iter"

// Traversal selects which cells an iteration visits.
type Traversal string

// Supported traversal modes.
const (
	TraverseAll         Traversal = "all"
	TraverseDiagonal    Traversal = "diagonal"
	TraverseOffDiagonal Traversal = "off_diagonal"
	TraverseLower       Traversal = "lower"        // r >= c
	TraverseStrictLower Traversal = "strict_lower" // r > c
	TraverseUpper       Traversal = "upper"        // r <= c
	TraverseStrictUpper Traversal = "strict_upper" // r < c
)

var traversals = map[Traversal]func(r, c int) bool{
	TraverseAll:         func(int, int) bool { return true },
	TraverseDiagonal:    func(r, c int) bool { return r == c },
	TraverseOffDiagonal: func(r, c int) bool { return r != c },
	TraverseLower:       func(r, c int) bool { return r >= c },
	TraverseStrictLower: func(r, c int) bool { return r > c },
	TraverseUpper:       func(r, c int) bool { return r <= c },
	TraverseStrictUpper: func(r, c int) bool { return r < c },
}

// ParseTraversal converts a mode token into a Traversal.
//
// Errors: ErrUnknownTraversal.
func ParseTraversal(s string) (Traversal, error) {
	t := Traversal(s)
	if _, ok := traversals[t]; !ok {
		return "", matrixErrorf(opEach, ErrUnknownTraversal)
	}

	return t, nil
}

// EachWithIndex returns the (coordinate, element) pairs selected by mode.
//
// Errors: ErrNilMatrix, ErrUnknownTraversal.
func (m *Matrix[T]) EachWithIndex(mode Traversal) (iter.Seq2[Coord, T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opEach, err)
	}
	keep, ok := traversals[mode]
	if !ok {
		return nil, matrixErrorf(opEach, ErrUnknownTraversal)
	}

	return func(yield func(Coord, T) bool) {
		for r := 0; r < m.n; r++ {
			for c := 0; c < m.n; c++ {
				if keep(r, c) && !yield(Coord{Row: r, Col: c}, m.at(r, c)) {
					return
				}
			}
		}
	}, nil
}

// Each returns the elements selected by mode.
//
// Errors: ErrNilMatrix, ErrUnknownTraversal.
func (m *Matrix[T]) Each(mode Traversal) (iter.Seq[T], error) {
	seq, err := m.EachWithIndex(mode)
	if err != nil {
		return nil, err
	}

	return func(yield func(T) bool) {
		for _, v := range seq {
			if !yield(v) {
				return
			}
		}
	}, nil
}

// All returns every (coordinate, element) pair in row-major order.
// A nil receiver yields an empty sequence.
func (m *Matrix[T]) All() iter.Seq2[Coord, T] {
	seq, err := m.EachWithIndex(TraverseAll)
	if err != nil {
		return func(func(Coord, T) bool) {}
	}

	return seq
}
