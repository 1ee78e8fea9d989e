// SPDX-License-Identifier: MIT

package scoring

import (
	"fmt"

	"github.com/katalvlaran/seqalign/penalty"
)

// Matrix is the score table of one alignment. Cells are stored row-major in
// a flat slice: row r (sequence B prefix) and column c (sequence A prefix)
// live at r*cols + c.
//
// A Matrix is owned by a single alignment call; it is filled once, traced
// once and dropped. It is not safe for concurrent use except internally by
// FillConcurrent.
type Matrix struct {
	a, b  []rune        // a spans columns, b spans rows
	model penalty.Model // normalized scoring scheme
	mode  Mode
	gaps  GapModel

	rows, cols int    // len(b)+1, len(a)+1
	cells      []Cell // rows*cols entries

	// affine only, same indexing as cells
	ins    []int64     // I: best score ending in a horizontal gap
	del    []int64     // D: best score ending in a vertical gap
	origin []gapOrigin // opening vs extension for I and D

	filled bool
}

// New allocates the matrix for a (columns) against b (rows) and writes the
// boundary row and column.
// Stage 1 (Prepare): allocate (len(b)+1)×(len(a)+1) cells, plus the
// running gap tables in Affine mode.
// Stage 2 (Boundary): Global → S[0,c] = c·indel flagged FromLeft and
// S[r,0] = r·indel flagged FromTop; Local → zeros without flags.
//
// The sequences are not copied; callers must not mutate them until the
// matrix is dropped.
// Complexity: O(n·m) memory, O(n+m) time.
func New(a, b []rune, model penalty.Model, mode Mode, gaps GapModel) *Matrix {
	rows, cols := len(b)+1, len(a)+1
	m := &Matrix{
		a:     a,
		b:     b,
		model: model,
		mode:  mode,
		gaps:  gaps,
		rows:  rows,
		cols:  cols,
		cells: make([]Cell, rows*cols),
	}
	if gaps == Affine {
		m.ins = make([]int64, rows*cols)
		m.del = make([]int64, rows*cols)
		m.origin = make([]gapOrigin, rows*cols)
	}

	// Local boundaries are already zero with no flags.
	if mode == Global {
		indel := int64(model.Indel)
		for c := 1; c < cols; c++ {
			m.cells[c] = Cell{Score: int64(c) * indel, From: FromLeft}
		}
		for r := 1; r < rows; r++ {
			m.cells[r*cols] = Cell{Score: int64(r) * indel, From: FromTop}
		}
	}
	// An empty sequence leaves nothing to compute.
	m.filled = rows == 1 || cols == 1

	return m
}

// Rows returns len(b)+1.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns len(a)+1.
func (m *Matrix) Cols() int { return m.cols }

// Mode returns the alignment mode the matrix was built for.
func (m *Matrix) Mode() Mode { return m.mode }

// GapModel returns the gap model the matrix was built for.
func (m *Matrix) GapModel() GapModel { return m.gaps }

// Filled reports whether every cell has been computed.
func (m *Matrix) Filled() bool { return m.filled }

// At returns the cell at (row, col).
// Errors: ErrOutOfRange.
func (m *Matrix) At(row, col int) (Cell, error) {
	idx, err := m.index(row, col)
	if err != nil {
		return Cell{}, err
	}

	return m.cells[idx], nil
}

// gapScores returns the running affine scores I[row,col] and D[row,col].
// Outside Affine mode, and on the boundary, both are zero.
// Errors: ErrOutOfRange.
func (m *Matrix) gapScores(row, col int) (ins, del int64, err error) {
	idx, err := m.index(row, col)
	if err != nil {
		return 0, 0, err
	}
	if m.gaps != Affine {
		return 0, 0, nil
	}

	return m.ins[idx], m.del[idx], nil
}

// index computes the flat offset for (row, col).
func (m *Matrix) index(row, col int) (int, error) {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		return 0, fmt.Errorf("Matrix.At(%d,%d) in %dx%d: %w", row, col, m.rows, m.cols, ErrOutOfRange)
	}

	return row*m.cols + col, nil
}
