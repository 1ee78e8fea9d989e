// SPDX-License-Identifier: MIT

package scoring

import "context"

// Fill computes every interior cell, row by row.
// Complexity: O(n·m) time.
func (m *Matrix) Fill() {
	// Background is never cancelled, so the error is always nil.
	_ = m.FillContext(context.Background())
}

// FillContext is Fill with a cancellation check between rows. On
// cancellation the matrix stays unfilled and ctx.Err() is returned.
func (m *Matrix) FillContext(ctx context.Context) error {
	if m.filled {
		return nil
	}
	for r := 1; r < m.rows; r++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		for c := 1; c < m.cols; c++ {
			m.fillCell(r, c)
		}
	}
	m.filled = true

	return nil
}

// fillCell applies the recurrence at (r, c). It reads only (r-1, c-1),
// (r, c-1) and (r-1, c), and writes only (r, c).
func (m *Matrix) fillCell(r, c int) {
	idx := r*m.cols + c

	diag := m.cells[idx-m.cols-1].Score + int64(m.model.LetterScore(m.a[c-1], m.b[r-1]))
	var left, top int64
	if m.gaps == Affine {
		left, top = m.gapCell(r, c, idx)
	} else {
		indel := int64(m.model.Indel)
		left = m.cells[idx-1].Score + indel
		top = m.cells[idx-m.cols].Score + indel
	}

	best := max(diag, left, top)
	if m.mode == Local {
		best = max(best, 0)
	}

	var from Direction
	if left == best {
		from |= FromLeft
	}
	if diag == best {
		from |= FromDiagonal
	}
	if top == best {
		from |= FromTop
	}
	m.cells[idx] = Cell{Score: best, From: from}
}

// gapCell computes I[r,c] and D[r,c], records whether each was reached by
// opening a gap, and returns them as the left and top options.
// The first interior column has no I predecessor and the first interior row
// has no D predecessor; there only the opening term applies. Ties between
// opening and extending count as opening.
func (m *Matrix) gapCell(r, c, idx int) (ins, del int64) {
	open, extend := int64(m.model.GapOpening), int64(m.model.Indel)
	var origin gapOrigin

	ins = m.cells[idx-1].Score + open
	if c > 1 && m.ins[idx-1]+extend > ins {
		ins = m.ins[idx-1] + extend
	} else {
		origin |= insOpened
	}

	del = m.cells[idx-m.cols].Score + open
	if r > 1 && m.del[idx-m.cols]+extend > del {
		del = m.del[idx-m.cols] + extend
	} else {
		origin |= delOpened
	}

	m.ins[idx], m.del[idx], m.origin[idx] = ins, del, origin

	return ins, del
}
