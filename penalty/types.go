// SPDX-License-Identifier: MIT

package penalty

import "fmt"

// Keys accepted by FromMap. They match the field names of the classic
// penalty dictionary.
const (
	KeyMatch      = "match"
	KeyMismatch   = "mismatch"
	KeyIndel      = "indel"
	KeyGapOpening = "gap_opening"
)

// Default scores used when the caller supplies no configuration at all.
const (
	DefaultMatch    = 1
	DefaultMismatch = -1
	DefaultIndel    = -1
)

// Config is a partially specified penalty scheme. A nil field is absent.
//
// Fields:
//   - Match     : score for aligning two equal symbols (required).
//   - Mismatch  : score for aligning two different symbols (required).
//   - Indel     : score for one gap position; in affine methods, for each
//     position that extends an already open gap (required).
//   - GapOpening: score for the first position of a gap in affine methods
//     (optional, defaults to Indel).
type Config struct {
	Match      *int
	Mismatch   *int
	Indel      *int
	GapOpening *int
}

// Model is a complete penalty scheme. Obtain one through Config.Normalize
// or Default; the zero Model is valid but scores everything as 0.
type Model struct {
	Match      int `json:"match" yaml:"match"`
	Mismatch   int `json:"mismatch" yaml:"mismatch"`
	Indel      int `json:"indel" yaml:"indel"`
	GapOpening int `json:"gap_opening" yaml:"gap_opening"`
}

// LetterScore returns Match when a and b are the same symbol, Mismatch otherwise.
func (m Model) LetterScore(a, b rune) int {
	if a == b {
		return m.Match
	}

	return m.Mismatch
}

// Affine reports whether opening a gap costs differently from extending one.
func (m Model) Affine() bool {
	return m.GapOpening != m.Indel
}

// String renders the model in its dictionary form.
func (m Model) String() string {
	return fmt.Sprintf("{match:%d mismatch:%d indel:%d gap_opening:%d}",
		m.Match, m.Mismatch, m.Indel, m.GapOpening)
}
