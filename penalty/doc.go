// SPDX-License-Identifier: MIT

// Package penalty defines the scoring scheme used by pairwise alignment:
// a reward (or penalty) for matching symbols, one for mismatching symbols,
// the cost of extending a gap (indel) and the cost of opening one.
//
// Two shapes exist:
//
//   - Config: the caller-facing form with optional fields (nil = absent),
//     mirroring a string-keyed penalty mapping (see FromMap).
//   - Model : the complete, normalized form consumed by the scoring matrix.
//
// Normalization applies exactly one default rule: a missing GapOpening takes
// the value of Indel. Simple (non-affine) methods never read GapOpening, so
// the same Model serves every method without changing its behavior.
//
// No sign policy is enforced: negative, zero and positive values are all
// accepted for every field.
//
//	cfg := penalty.Simple(1, -1, -1)
//	m, err := cfg.Normalize() // m.GapOpening == -1
package penalty
