// SPDX-License-Identifier: MIT

// Package scoring builds the dynamic-programming score matrix of a pairwise
// alignment and walks it back into a pair of aligned strings.
//
// What is in here?
//
//	Matrix : the (m+1)×(n+1) table for sequence A (columns, length n) and
//	          sequence B (rows, length m), with per-cell predecessor flags.
//	Fill   : forward pass, row by row.
//	FillConcurrent: forward pass by anti-diagonals on a bounded worker set.
//	Start  : traceback start cell (bottom-right for Global, first maximum
//	          in row-major order for Local).
//	Trace  : backward walk from a start cell to the stop condition.
//
// Modes & gap models:
//
//	Global + Simple  — Needleman–Wunsch
//	Local  + Simple  — Smith–Waterman
//	Global + Affine  — Gotoh, global
//	Local  + Affine  — Gotoh, local
//
// Recurrence (letter = match if A[c]==B[r] else mismatch):
//
//	Simple:  left = S[r,c-1] + indel       top = S[r-1,c] + indel
//	Affine:  I[r,c] = max(S[r,c-1] + open, I[r,c-1] + indel)   left = I[r,c]
//	         D[r,c] = max(S[r-1,c] + open, D[r-1,c] + indel)   top  = D[r,c]
//	diag = S[r-1,c-1] + letter
//	S[r,c] = max(diag, left, top)          (Global)
//	S[r,c] = max(diag, left, top, 0)       (Local)
//
// Every option equal to S[r,c] sets its flag (ties keep several). The Local
// floor alone sets none, which makes the cell a traceback stop.
//
// Traceback precedence is fixed: left, then diagonal, then top.
//
// Complexity:
//
//	Time   = O(n·m)
//	Memory = O(n·m) (cells; affine mode adds two int64 and one byte per cell)
package scoring
