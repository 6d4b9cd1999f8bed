// SPDX-License-Identifier: MPL-2.0

package interp

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidTapeSize is the sentinel error wrapped by InvalidTapeSizeError.
	ErrInvalidTapeSize = errors.New("invalid tape size")
	// ErrUnmatchedOpen is the sentinel error wrapped by UnmatchedOpenError.
	ErrUnmatchedOpen = errors.New("unmatched '['")
	// ErrUnmatchedClose is the sentinel error wrapped by UnmatchedCloseError.
	ErrUnmatchedClose = errors.New("unmatched ']'")
	// ErrStepLimit is the sentinel error wrapped by StepLimitError.
	ErrStepLimit = errors.New("step limit exceeded")
)

type (
	// InvalidTapeSizeError is returned by New when the requested tape size is
	// not positive. It wraps ErrInvalidTapeSize for errors.Is() compatibility.
	InvalidTapeSizeError struct {
		Size int
	}

	// UnmatchedOpenError is returned by MatchBrackets when the scan finishes
	// with a `[` still open. Pos is the position of the most recently opened
	// unmatched bracket (the scanner's stack top), not the leftmost one.
	UnmatchedOpenError struct {
		Pos int
	}

	// UnmatchedCloseError is returned by MatchBrackets when a `]` appears
	// with no `[` open. Pos is the position of the offending bracket.
	UnmatchedCloseError struct {
		Pos int
	}

	// StepLimitError is returned by Run when execution does not reach the end
	// of the program within the configured step budget. It signals a probable
	// non-terminating program; no output is returned alongside it.
	StepLimitError struct {
		Limit int
	}
)

// Error implements the error interface.
func (e *InvalidTapeSizeError) Error() string {
	return fmt.Sprintf("invalid tape size %d (must be > 0)", e.Size)
}

// Unwrap returns ErrInvalidTapeSize for errors.Is() compatibility.
func (e *InvalidTapeSizeError) Unwrap() error { return ErrInvalidTapeSize }

// Error implements the error interface.
func (e *UnmatchedOpenError) Error() string {
	return fmt.Sprintf("unmatched '[' at position %d", e.Pos)
}

// Unwrap returns ErrUnmatchedOpen for errors.Is() compatibility.
func (e *UnmatchedOpenError) Unwrap() error { return ErrUnmatchedOpen }

// Error implements the error interface.
func (e *UnmatchedCloseError) Error() string {
	return fmt.Sprintf("unmatched ']' at position %d", e.Pos)
}

// Unwrap returns ErrUnmatchedClose for errors.Is() compatibility.
func (e *UnmatchedCloseError) Unwrap() error { return ErrUnmatchedClose }

// Error implements the error interface.
func (e *StepLimitError) Error() string {
	return fmt.Sprintf("step limit exceeded (%d steps); the program may not terminate", e.Limit)
}

// Unwrap returns ErrStepLimit for errors.Is() compatibility.
func (e *StepLimitError) Unwrap() error { return ErrStepLimit }
