package corpus

import "errors"

// ErrInvariantViolation marks a defect in the codec or generator, never bad
// input. Startup must abort when it surfaces.
var ErrInvariantViolation = errors.New("codec invariant violation")
