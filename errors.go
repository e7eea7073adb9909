package lwgl

import "errors"

// ErrInvariantViolation is returned when code attempts to break a structural
// invariant of the scene graph, such as assigning a parent to the stage root.
// It always signals a programming error in calling code, never a runtime
// condition, and the operation that returns it has had no effect.
//
// Test for it with errors.Is; the returned error carries context about the
// specific operation that was rejected.
var ErrInvariantViolation = errors.New("invariant violation")
