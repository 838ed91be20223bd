package srs

import "errors"

var (
	// ErrInvalidTransition is returned when a locked or retired item is
	// reviewed. The item is returned unchanged; callers treat this as
	// "nothing to do".
	ErrInvalidTransition = errors.New("item cannot be reviewed in its current state")

	// ErrInvalidOutcome is returned for a quality or difficulty value
	// outside the policy's accepted domain. Rejected before any state
	// change.
	ErrInvalidOutcome = errors.New("outcome outside the policy's accepted domain")

	// ErrUnknownPolicy is returned by the policy selector for an
	// unrecognized kind.
	ErrUnknownPolicy = errors.New("unknown scheduling policy")
)
