// SPDX-License-Identifier: MIT

package scoring

import "errors"

var (
	// ErrOutOfRange indicates a row or column outside the matrix.
	ErrOutOfRange = errors.New("scoring: index out of range")

	// ErrNotFilled indicates Start or Trace was called before a completed fill.
	ErrNotFilled = errors.New("scoring: matrix is not filled")

	// ErrWorkers indicates a negative worker count for FillConcurrent.
	ErrWorkers = errors.New("scoring: worker count must be >= 0")
)
