// SPDX-License-Identifier: MIT

package align

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/seqalign/scoring"
)

// Method selects the alignment algorithm.
type Method string

const (
	// MethodDefault is the unset method; it normalizes to NW.
	MethodDefault Method = ""

	NW Method = "NW" // Needleman–Wunsch, global, linear gaps
	SW Method = "SW" // Smith–Waterman, local, linear gaps
	GG Method = "GG" // Gotoh, global, affine gaps
	GL Method = "GL" // Gotoh, local, affine gaps
	AE Method = "AE" // Altschul–Erickson, not implemented
)

// Methods lists every selectable method, in documentation order.
func Methods() []Method {
	return []Method{NW, SW, GG, GL, AE}
}

// ParseMethod reads a method name case-insensitively, ignoring surrounding
// spaces. An empty name yields NW.
// Errors: ErrUnknownAlgorithm.
func ParseMethod(s string) (Method, error) {
	m := Method(strings.ToUpper(strings.TrimSpace(s)))
	if m == MethodDefault {
		return NW, nil
	}
	if !m.Known() {
		return MethodDefault, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
	}

	return m, nil
}

// Known reports whether m is one of NW, SW, GG, GL, AE or MethodDefault.
func (m Method) Known() bool {
	switch m {
	case MethodDefault, NW, SW, GG, GL, AE:
		return true
	}

	return false
}

// Description returns the algorithm's name.
func (m Method) Description() string {
	switch m {
	case MethodDefault, NW:
		return "Needleman-Wunsch"
	case SW:
		return "Smith-Waterman"
	case GG:
		return "Gotoh (global)"
	case GL:
		return "Gotoh (local)"
	case AE:
		return "Altschul-Erickson"
	}

	return "unknown"
}

// plan maps m to the matrix configuration that implements it.
// Errors: ErrUnknownAlgorithm, ErrNotImplemented.
func (m Method) plan() (scoring.Mode, scoring.GapModel, error) {
	switch m {
	case MethodDefault, NW:
		return scoring.Global, scoring.Simple, nil
	case SW:
		return scoring.Local, scoring.Simple, nil
	case GG:
		return scoring.Global, scoring.Affine, nil
	case GL:
		return scoring.Local, scoring.Affine, nil
	case AE:
		return 0, 0, fmt.Errorf("%w: %s", ErrNotImplemented, m.Description())
	}

	return 0, 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, string(m))
}
