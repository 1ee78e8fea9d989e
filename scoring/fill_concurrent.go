// SPDX-License-Identifier: MIT

package scoring

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// minChunk is the smallest slice of an anti-diagonal handed to one worker.
// Shorter diagonals are computed inline.
const minChunk = 256

// FillConcurrent computes the matrix one anti-diagonal at a time, splitting
// each diagonal across at most workers goroutines.
//
// Cells on anti-diagonal d = r + c depend only on diagonals d-1 and d-2, so
// all cells of one diagonal are independent. Each diagonal ends with a
// barrier (errgroup.Wait), which guarantees every read sees a fully computed
// predecessor. The result is identical to Fill, cell for cell.
//
// workers == 0 or 1 falls back to the row-by-row FillContext.
// Errors: ErrWorkers for workers < 0; ctx.Err() on cancellation (the matrix
// then stays unfilled).
// Complexity: O(n·m) work, O(n+m) barriers.
func (m *Matrix) FillConcurrent(ctx context.Context, workers int) error {
	if workers < 0 {
		return fmt.Errorf("FillConcurrent(%d): %w", workers, ErrWorkers)
	}
	if workers <= 1 {
		return m.FillContext(ctx)
	}
	if m.filled {
		return nil
	}

	lastRow, lastCol := m.rows-1, m.cols-1
	for d := 2; d <= lastRow+lastCol; d++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		// Rows crossed by this diagonal inside the interior.
		lo, hi := max(1, d-lastCol), min(lastRow, d-1)
		span := hi - lo + 1
		if span < 2*minChunk {
			m.fillDiagonal(d, lo, hi)
			continue
		}

		chunk := max(minChunk, (span+workers-1)/workers)
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(workers)
		for from := lo; from <= hi; from += chunk {
			to := min(hi, from+chunk-1)
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				m.fillDiagonal(d, from, to)

				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}
	}
	m.filled = true

	return nil
}

// fillDiagonal computes cells (r, d-r) for r in [from, to].
func (m *Matrix) fillDiagonal(d, from, to int) {
	for r := from; r <= to; r++ {
		m.fillCell(r, d-r)
	}
}
