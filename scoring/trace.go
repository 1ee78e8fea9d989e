// SPDX-License-Identifier: MIT

package scoring

import "fmt"

// walk states of the affine traceback
const (
	inScore = iota // main matrix S
	inIns          // running horizontal gap I
	inDel          // running vertical gap D
)

// Start returns the traceback start cell and its score.
//   - Global: the bottom-right corner (m, n).
//   - Local: the cell with the matrix-wide maximum; among equal maxima the
//     first one in row-major order wins.
//
// Errors: ErrNotFilled.
// Complexity: O(1) Global, O(n·m) Local.
func (m *Matrix) Start() (Coord, int64, error) {
	if !m.filled {
		return Coord{}, 0, ErrNotFilled
	}
	if m.mode == Global {
		last := len(m.cells) - 1

		return Coord{Row: m.rows - 1, Col: m.cols - 1}, m.cells[last].Score, nil
	}

	best := 0
	for i := 1; i < len(m.cells); i++ {
		if m.cells[i].Score > m.cells[best].Score {
			best = i
		}
	}

	return Coord{Row: best / m.cols, Col: best % m.cols}, m.cells[best].Score, nil
}

// Trace walks predecessor flags backward from start and returns the aligned
// strings.
//
// At each cell the moves are consulted in fixed order: left, diagonal, top.
// A diagonal step emits A[c] over B[r], a left step A[c] over a gap, a top
// step a gap over B[r]. The walk stops at (0,0) in Global mode and at the
// first cell scoring 0 in Local mode.
//
// In Affine mode a left (top) step enters the running gap I (D) and keeps
// extending it until the cell where that gap was opened, then returns to the
// main matrix. Boundary moves along row 0 or column 0 are plain moves.
//
// Symbols are collected back to front and reversed once at the end.
// Errors: ErrNotFilled, ErrOutOfRange.
// Complexity: O(n+m).
func (m *Matrix) Trace(start Coord) (Traceback, error) {
	if !m.filled {
		return Traceback{}, ErrNotFilled
	}
	if _, err := m.index(start.Row, start.Col); err != nil {
		return Traceback{}, fmt.Errorf("Trace: %w", err)
	}

	r, c := start.Row, start.Col
	outA := make([]rune, 0, r+c)
	outB := make([]rune, 0, r+c)
	state := inScore

walk:
	for {
		idx := r*m.cols + c
		switch state {
		case inIns:
			outA, outB = append(outA, m.a[c-1]), append(outB, Gap)
			if m.origin[idx]&insOpened != 0 {
				state = inScore
			}
			c--

		case inDel:
			outA, outB = append(outA, Gap), append(outB, m.b[r-1])
			if m.origin[idx]&delOpened != 0 {
				state = inScore
			}
			r--

		default:
			cell := m.cells[idx]
			if m.mode == Local && cell.Score == 0 {
				break walk
			}
			if r == 0 && c == 0 {
				break walk
			}
			switch {
			case cell.From.Has(FromLeft):
				if m.gaps == Affine && r > 0 {
					state = inIns

					continue
				}
				outA, outB = append(outA, m.a[c-1]), append(outB, Gap)
				c--
			case cell.From.Has(FromDiagonal):
				outA, outB = append(outA, m.a[c-1]), append(outB, m.b[r-1])
				r--
				c--
			case cell.From.Has(FromTop):
				if m.gaps == Affine && c > 0 {
					state = inDel

					continue
				}
				outA, outB = append(outA, Gap), append(outB, m.b[r-1])
				r--
			default:
				// no predecessor: a local restart cell
				break walk
			}
		}
	}

	reverse(outA)
	reverse(outB)

	return Traceback{
		AlignedA: string(outA),
		AlignedB: string(outB),
		Start:    start,
		Stop:     Coord{Row: r, Col: c},
	}, nil
}

// reverse flips s in place.
func reverse(s []rune) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
