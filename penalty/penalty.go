// SPDX-License-Identifier: MIT

package penalty

import "fmt"

// Int returns a pointer to v. It keeps Config literals short:
//
//	penalty.Config{Match: penalty.Int(2), Mismatch: penalty.Int(-1), Indel: penalty.Int(-2)}
func Int(v int) *int {
	return &v
}

// Simple builds a Config for the linear gap methods (NW, SW).
// GapOpening stays absent and normalizes to indel.
func Simple(match, mismatch, indel int) Config {
	return Config{Match: Int(match), Mismatch: Int(mismatch), Indel: Int(indel)}
}

// Affine builds a Config with an explicit gap-opening score (GG, GL).
func Affine(match, mismatch, indel, gapOpening int) Config {
	c := Simple(match, mismatch, indel)
	c.GapOpening = Int(gapOpening)

	return c
}

// Default returns the classic Needleman–Wunsch scoring {1, -1, -1}.
func Default() Model {
	return Model{
		Match:      DefaultMatch,
		Mismatch:   DefaultMismatch,
		Indel:      DefaultIndel,
		GapOpening: DefaultIndel,
	}
}

// FromMap converts a string-keyed penalty mapping into a Config.
// Recognized keys are KeyMatch, KeyMismatch, KeyIndel and KeyGapOpening;
// unknown keys are ignored. Missing keys stay absent, so validation is
// deferred to Normalize.
func FromMap(values map[string]int) Config {
	var c Config
	if v, ok := values[KeyMatch]; ok {
		c.Match = Int(v)
	}
	if v, ok := values[KeyMismatch]; ok {
		c.Mismatch = Int(v)
	}
	if v, ok := values[KeyIndel]; ok {
		c.Indel = Int(v)
	}
	if v, ok := values[KeyGapOpening]; ok {
		c.GapOpening = Int(v)
	}

	return c
}

// Normalize validates c and returns the complete Model.
// Stage 1 (Validate): match, mismatch and indel must be present.
// Stage 2 (Default): gap opening falls back to indel when absent.
//
// Errors: ErrMalformed, wrapped with the name of the first missing field.
// Complexity: O(1).
func (c Config) Normalize() (Model, error) {
	switch {
	case c.Match == nil:
		return Model{}, fmt.Errorf("%w: missing %q", ErrMalformed, KeyMatch)
	case c.Mismatch == nil:
		return Model{}, fmt.Errorf("%w: missing %q", ErrMalformed, KeyMismatch)
	case c.Indel == nil:
		return Model{}, fmt.Errorf("%w: missing %q", ErrMalformed, KeyIndel)
	}

	m := Model{
		Match:      *c.Match,
		Mismatch:   *c.Mismatch,
		Indel:      *c.Indel,
		GapOpening: *c.Indel,
	}
	if c.GapOpening != nil {
		m.GapOpening = *c.GapOpening
	}

	return m, nil
}
