package animator

import "errors"

var (
	// ErrInvalidConfig is returned by LoadConfig and Config.Validate.
	ErrInvalidConfig = errors.New("animator: invalid config")
	// ErrEmptyScript is returned when a script has no steps.
	ErrEmptyScript = errors.New("animator: script has no steps")
	// ErrUnknownStep is returned for a script step with an unknown action.
	ErrUnknownStep = errors.New("animator: unknown script step")
	// ErrNodeNotFound is returned when a script names a node that does not
	// exist.
	ErrNodeNotFound = errors.New("animator: node not found")
	// ErrExpectation is returned when a script expect step does not hold.
	ErrExpectation = errors.New("animator: expectation failed")
)
