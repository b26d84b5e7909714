package regform

// State holds the current validation error for each field. Absence of a key
// means the field is currently valid. State is mutated only by the form
// engine on its own execution turn and cleared entirely on reset or on a
// successful submission.
type State struct {
	errors map[string]string
}

// NewState creates an empty validation state.
func NewState() *State {
	return &State{errors: make(map[string]string)}
}

// SetError records the current error message for a field.
func (s *State) SetError(fieldID, message string) {
	s.errors[fieldID] = message
}

// ClearError removes a field's error, marking it valid.
func (s *State) ClearError(fieldID string) {
	delete(s.errors, fieldID)
}

// ClearAll removes every error.
func (s *State) ClearAll() {
	clear(s.errors)
}

// Message returns the field's current error message, if any.
func (s *State) Message(fieldID string) (string, bool) {
	msg, ok := s.errors[fieldID]
	return msg, ok
}

// Errors returns a snapshot of the current error mapping.
func (s *State) Errors() map[string]string {
	snapshot := make(map[string]string, len(s.errors))
	for field, msg := range s.errors {
		snapshot[field] = msg
	}
	return snapshot
}

// IsValid reports whether no field currently has an error.
func (s *State) IsValid() bool {
	return len(s.errors) == 0
}
