package drain

import "errors"

// Domain errors for drainage runs.
var (
	// ErrTimeStep indicates a non-positive integration time step.
	ErrTimeStep = errors.New("drain: time step must be positive")
)
