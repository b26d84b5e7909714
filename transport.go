package regform

import "context"

// Transport delivers the validated field values to wherever submissions go.
// Send blocks until the outcome is known; the engine guarantees at most one
// call is in flight at a time. Cancellation is governed by the transport's
// own contract via ctx; the engine imposes no timeout.
type Transport interface {
	Send(ctx context.Context, values map[string]Value) error
}

// TransportFunc adapts a function to the Transport interface.
type TransportFunc func(ctx context.Context, values map[string]Value) error

func (f TransportFunc) Send(ctx context.Context, values map[string]Value) error {
	return f(ctx, values)
}

// Presenter is the presentation sink the engine pushes UI effects into:
// per-field error affordances, focus moves, and view swaps. Implementations
// must not call back into the engine.
type Presenter interface {
	// FieldError updates the visible error affordance for a field. An empty
	// message clears it.
	FieldError(fieldID, message string)
	// Focus moves input focus to the field.
	Focus(fieldID string)
	// SetSubmitEnabled toggles the submission trigger control.
	SetSubmitEnabled(enabled bool)
	// ShowSuccess swaps the form for the success view.
	ShowSuccess()
	// ShowForm restores the input view.
	ShowForm()
	// Notify surfaces a transient, form-wide notice.
	Notify(message string)
}

// NopPresenter discards all presentation effects. It is the default when the
// host embeds the engine headless (tests, server-side validation).
type NopPresenter struct{}

func (NopPresenter) FieldError(fieldID, message string) {}
func (NopPresenter) Focus(fieldID string)               {}
func (NopPresenter) SetSubmitEnabled(enabled bool)      {}
func (NopPresenter) ShowSuccess()                       {}
func (NopPresenter) ShowForm()                          {}
func (NopPresenter) Notify(message string)              {}
