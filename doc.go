// SPDX-License-Identifier: MIT

// Package seqalign is a pairwise sequence alignment toolkit: classical
// dynamic-programming aligners behind one small API, plus a command-line
// front end.
//
// 🚀 What is in seqalign?
//
//	• Needleman–Wunsch — global alignment, linear gaps (NW)
//	• Smith–Waterman   — local alignment, linear gaps (SW)
//	• Gotoh            — global and local alignment, affine gaps (GG, GL)
//
// ✨ Why seqalign?
//
//   - Deterministic – one fixed tie-break, identical output on every run
//   - Any alphabet – DNA, proteins or arbitrary Unicode text
//   - Parallel fill – optional anti-diagonal workers, same results
//
// Packages:
//
//	align/          — entry point: Align, methods, options, sentinel errors
//	penalty/        — match/mismatch/indel/gap-opening scoring schemes
//	scoring/        — score matrix fill and traceback
//	cmd/seqalign/   — CLI printing "score;alignedA;alignedB"
//
// Quick example:
//
//	res, _ := align.Align("GCATGCU", "GATTACA", align.NW, nil)
//	// res.Score == 0
//	// GCA-TGCU
//	// G-ATTACA
//
//	go install github.com/katalvlaran/seqalign/cmd/seqalign@latest
package seqalign
