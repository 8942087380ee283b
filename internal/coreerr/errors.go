// Package coreerr defines the three error kinds the core surfaces to
// callers, per the error handling policy: the solver never errors, only
// parsing and generation do.
package coreerr

import "errors"

// ErrInvalidParameters marks a request with out-of-range dimensions, a
// start square outside the board, or a mine count outside [0, W*H-9].
var ErrInvalidParameters = errors.New("invalid parameters")

// ErrInvalidBoard marks a parse failure: malformed JSON, an unknown
// character in text form, or inconsistent dimensions/cell counts.
var ErrInvalidBoard = errors.New("invalid board")

// ErrUnsolvableParameters marks a generator run that exhausted its full
// restart budget without reaching a solver-solvable layout.
var ErrUnsolvableParameters = errors.New("unsolvable parameters")
