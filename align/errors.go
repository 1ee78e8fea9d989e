// SPDX-License-Identifier: MIT

package align

import "errors"

// Sentinel errors. Failures are never transient: the computation is pure,
// so retrying with the same inputs fails the same way.
var (
	// ErrParameter indicates an input that cannot be aligned: a sequence that
	// does not decode into symbols, or a penalty configuration missing
	// match, mismatch or indel (then penalty.ErrMalformed is wrapped too).
	ErrParameter = errors.New("align: invalid parameter")

	// ErrUnknownAlgorithm indicates a method outside the recognized set.
	ErrUnknownAlgorithm = errors.New("align: unrecognized algorithm selection")

	// ErrNotImplemented indicates a recognized method without an
	// implementation (Altschul–Erickson).
	ErrNotImplemented = errors.New("align: algorithm not implemented")
)
