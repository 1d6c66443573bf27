// status.go - Closed status enumeration for collaborator failures.
//
// To the extent possible under law, the authors have waived all copyright
// and related or neighboring rights to ringlwe, using the Creative Commons
// "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package ringlwe

// Status is a closed enumeration of outcomes for every operation exposed
// by this package. It exists because the package's three operations
// (KeyGenA, AgreeB, AgreeA) are built on collaborator callbacks
// (RandomBytes, ExtendableOutput, StreamOutput) whose own failure Status
// is passed on unchanged, carried inside a StatusError.
type Status int

const (
	// StatusSuccess indicates the operation completed normally.
	StatusSuccess Status = iota

	// StatusErrorGeneric is a generic, unspecified failure.
	StatusErrorGeneric

	// StatusErrorDuringTest indicates a failure injected by a test
	// collaborator.
	StatusErrorDuringTest

	// StatusErrorUnknown indicates an internal inconsistency that
	// should be unreachable given the package's constant-time
	// invariants.
	StatusErrorUnknown

	// StatusErrorNotImplemented indicates a requested code path is not
	// implemented (reserved for future parameter sets).
	StatusErrorNotImplemented

	// StatusErrorNoMemory indicates an allocation failure.
	StatusErrorNoMemory

	// StatusErrorInvalidParameter indicates a caller supplied a
	// malformed argument (wrong length buffer, nil collaborator, etc).
	StatusErrorInvalidParameter

	// StatusErrorSharedKey indicates the two parties' shared secrets
	// are locally known to disagree. The package never returns this on
	// its own (disagreement is a cryptographic event with negligible
	// probability detected, if at all, by a higher-layer confirmation
	// step) but it is reserved for callers building such a layer.
	StatusErrorSharedKey

	// StatusErrorTooManyIterations indicates a rejection-sampling loop
	// exceeded its iteration budget.
	StatusErrorTooManyIterations
)

var statusStrings = map[Status]string{
	StatusSuccess:                "success",
	StatusErrorGeneric:           "generic error",
	StatusErrorDuringTest:        "error during test",
	StatusErrorUnknown:           "unknown error",
	StatusErrorNotImplemented:    "not implemented",
	StatusErrorNoMemory:          "out of memory",
	StatusErrorInvalidParameter:  "invalid parameter",
	StatusErrorSharedKey:         "shared key mismatch",
	StatusErrorTooManyIterations: "too many iterations",
}

// String returns the stable message associated with a Status. Unknown
// values (which should not occur, since Status is a closed enumeration)
// map to a fixed fallback string rather than panicking.
func (s Status) String() string {
	if msg, ok := statusStrings[s]; ok {
		return msg
	}
	return "unrecognized status"
}

// StatusError adapts a Status to the standard error interface so that
// collaborator and protocol failures compose with errors.Is/errors.As.
type StatusError struct {
	Status Status
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	return "ringlwe: " + e.Status.String()
}

// Is reports whether target is a StatusError with the same Status, so
// that errors.Is(err, &StatusError{Status: StatusErrorInvalidParameter})
// works as expected.
func (e *StatusError) Is(target error) bool {
	other, ok := target.(*StatusError)
	return ok && other.Status == e.Status
}

// newStatusError wraps a Status as an error, or returns nil for
// StatusSuccess so call sites can write `return newStatusError(st)`
// unconditionally.
func newStatusError(s Status) error {
	if s == StatusSuccess {
		return nil
	}
	return &StatusError{Status: s}
}
