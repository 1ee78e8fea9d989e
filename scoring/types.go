// SPDX-License-Identifier: MIT

package scoring

import "strings"

// Gap is the symbol written opposite an inserted or deleted symbol.
const Gap = '-'

// Mode selects global (end-to-end) or local (best substring) alignment.
type Mode uint8

const (
	// Global alignment spans both sequences completely.
	Global Mode = iota

	// Local alignment may start and stop anywhere; scores never drop below 0.
	Local
)

// String returns "global" or "local".
func (m Mode) String() string {
	if m == Local {
		return "local"
	}

	return "global"
}

// GapModel selects linear or affine gap scoring.
type GapModel uint8

const (
	// Simple charges indel for every gap position.
	Simple GapModel = iota

	// Affine charges gap opening for the first gap position and indel for
	// each extension.
	Affine
)

// String returns "simple" or "affine".
func (g GapModel) String() string {
	if g == Affine {
		return "affine"
	}

	return "simple"
}

// Direction is a set of predecessor moves that reach a cell's best score.
type Direction uint8

const (
	// FromLeft: A[c] aligned with a gap, predecessor (r, c-1).
	FromLeft Direction = 1 << iota
	// FromDiagonal: A[c] aligned with B[r], predecessor (r-1, c-1).
	FromDiagonal
	// FromTop: a gap aligned with B[r], predecessor (r-1, c).
	FromTop
)

// Has reports whether every move in x is present in d.
func (d Direction) Has(x Direction) bool {
	return d&x == x
}

// String lists the moves in traceback precedence order, e.g. "left|diag".
func (d Direction) String() string {
	if d == 0 {
		return "none"
	}
	parts := make([]string, 0, 3)
	if d.Has(FromLeft) {
		parts = append(parts, "left")
	}
	if d.Has(FromDiagonal) {
		parts = append(parts, "diag")
	}
	if d.Has(FromTop) {
		parts = append(parts, "top")
	}

	return strings.Join(parts, "|")
}

// Cell is one entry of the score matrix.
type Cell struct {
	Score int64     // best cumulative score reaching this cell
	From  Direction // predecessor moves achieving Score
}

// Coord addresses a cell: Row indexes sequence B, Col indexes sequence A.
// Row 0 and Col 0 are the empty-prefix boundary.
type Coord struct {
	Row, Col int
}

// Traceback is the product of a backward walk.
//
// AlignedA and AlignedB have equal length. Start is the cell the walk began
// at and Stop the cell where it ended; for a global alignment Stop is (0,0),
// for a local one the aligned region covers A[Stop.Col:Start.Col] and
// B[Stop.Row:Start.Row].
type Traceback struct {
	AlignedA string
	AlignedB string
	Start    Coord
	Stop     Coord
}

// gapOrigin records, per affine cell, which running gap scores were reached
// by opening a new gap (as opposed to extending the previous one).
type gapOrigin uint8

const (
	insOpened gapOrigin = 1 << iota // I[r,c] came from S[r,c-1] + open
	delOpened                       // D[r,c] came from S[r-1,c] + open
)
