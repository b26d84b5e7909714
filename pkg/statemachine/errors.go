package statemachine

import (
	"errors"
	"fmt"
)

// TransitionError indicates the current state has no transition for the
// fired event.
type TransitionError struct {
	State State
	Event Event
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("no transition from state %q for event %q", e.State, e.Event)
}

// IsTransitionError reports whether err is a rejected transition.
func IsTransitionError(err error) bool {
	var e *TransitionError
	return errors.As(err, &e)
}
