// SPDX-License-Identifier: MIT

// Package align is the entry point for pairwise sequence alignment.
//
// 🚀 What does it do?
//
//	Align takes two sequences, a method and a penalty configuration, and
//	returns the optimal score plus one optimal pair of aligned strings:
//	  • NW: Needleman–Wunsch: global, linear gaps
//	  • SW: Smith–Waterman:   local,  linear gaps
//	  • GG: Gotoh:            global, affine gaps
//	  • GL: Gotoh:            local,  affine gaps
//	  • AE: Altschul–Erickson: accepted, but fails with ErrNotImplemented
//
// ✨ Contract:
//   - Sequences are strings; every rune is one symbol. No alphabet checks.
//   - A nil *penalty.Config means {match:1, mismatch:-1, indel:-1}.
//   - GapOpening defaults to Indel, so NW/SW and GG/GL share one model.
//   - Deterministic: among several optimal alignments the traceback prefers
//     a gap in B (left), then a match/mismatch (diagonal), then a gap in A
//     (top).
//   - No partial results: on error the returned Result is the zero value.
//
// ⚙️ Usage:
//
//	res, err := align.Align("GCATGCU", "GATTACA", align.NW, nil)
//	// res.Score == 0, res.AlignedA == "GCA-TGCU", res.AlignedB == "G-ATTACA"
//
//	cfg := penalty.Affine(1, -1, -1, -5)
//	res, err = align.Align("CGGTCATAC", "CGGAT", align.GG, &cfg,
//		align.WithConcurrency(4))
//
// Errors (match with errors.Is):
//   - ErrParameter       : invalid sequence or malformed penalties.
//   - ErrUnknownAlgorithm: method outside NW, SW, GG, GL, AE.
//   - ErrNotImplemented  : AE selected.
//
// Performance:
//
//   - Time:   O(n·m)
//   - Memory: O(n·m)
package align
