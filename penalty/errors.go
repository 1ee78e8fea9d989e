// SPDX-License-Identifier: MIT

package penalty

import "errors"

// ErrMalformed is returned when a penalty configuration lacks one of the
// required fields (match, mismatch, indel).
var ErrMalformed = errors.New("penalty: malformed penalty dictionary")
