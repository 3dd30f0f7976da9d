package engine

import "errors"

// InvariantError indicates a logic bug, not a user or resource error. The
// turn is aborted and the previously persisted session is left untouched.
type InvariantError struct {
	Msg string
}

func (e *InvariantError) Error() string {
	return "invariant violation: " + e.Msg
}

// IsInvariant reports whether err is an InvariantError.
func IsInvariant(err error) bool {
	var ie *InvariantError
	return errors.As(err, &ie)
}

// ErrGenerationFailed indicates the content generation call failed or timed
// out. The session stays in GENERATING and the turn may be retried.
var ErrGenerationFailed = errors.New("content generation failed")
