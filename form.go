package regform

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/dkotenko/regform/pkg/statemachine"
)

// Phase is the engine's lifecycle state.
type Phase = statemachine.State

const (
	PhaseIdle       Phase = "idle"
	PhaseValidating Phase = "validating"
	PhaseBlocked    Phase = "blocked"
	PhaseSubmitting Phase = "submitting"
	PhaseSucceeded  Phase = "succeeded"
	PhaseFailed     Phase = "failed"
)

const (
	eventSubmit  statemachine.Event = "submit"
	eventPass    statemachine.Event = "pass"
	eventFail    statemachine.Event = "fail"
	eventSent    statemachine.Event = "sent"
	eventError   statemachine.Event = "error"
	eventRecover statemachine.Event = "recover"
	eventReset   statemachine.Event = "reset"
)

var (
	// ErrSubmitInFlight is returned when Submit is called while a prior
	// submission is still awaiting the transport.
	ErrSubmitInFlight = errors.New("submission already in flight")

	// ErrFormInvalid is returned when Submit is blocked by validation errors.
	ErrFormInvalid = errors.New("form has validation errors")

	// ErrAlreadySubmitted is returned when Submit is called after a successful
	// submission; the form must be Reset first.
	ErrAlreadySubmitted = errors.New("form already submitted, reset before submitting again")
)

// failureNotice is the generic user-visible message for transport failures;
// the underlying error goes to the log, never to the user.
const failureNotice = "something went wrong, please try again"

// newPhaseMachine declares the engine lifecycle. The submit event only has
// transitions out of settled states, so the machine itself rejects re-entrant
// submissions while one is in flight.
func newPhaseMachine() *statemachine.Machine {
	return statemachine.New(PhaseIdle,
		statemachine.Transition{From: PhaseIdle, Event: eventSubmit, To: PhaseValidating},
		statemachine.Transition{From: PhaseBlocked, Event: eventSubmit, To: PhaseValidating},
		statemachine.Transition{From: PhaseValidating, Event: eventPass, To: PhaseSubmitting},
		statemachine.Transition{From: PhaseValidating, Event: eventFail, To: PhaseBlocked},
		statemachine.Transition{From: PhaseSubmitting, Event: eventSent, To: PhaseSucceeded},
		statemachine.Transition{From: PhaseSubmitting, Event: eventError, To: PhaseFailed},
		statemachine.Transition{From: PhaseFailed, Event: eventRecover, To: PhaseIdle},
		statemachine.Transition{From: PhaseIdle, Event: eventReset, To: PhaseIdle},
		statemachine.Transition{From: PhaseBlocked, Event: eventReset, To: PhaseIdle},
		statemachine.Transition{From: PhaseSucceeded, Event: eventReset, To: PhaseIdle},
		statemachine.Transition{From: PhaseFailed, Event: eventReset, To: PhaseIdle},
	)
}

// Form orchestrates validation for one form: it looks up each field's rule in
// the registry, reads current values from the source, records outcomes in the
// validation state, and pushes results at the presenter. Submission runs the
// whole-form pass and, when clean, delegates to the transport.
type Form struct {
	registry  *Registry
	source    Source
	transport Transport
	presenter Presenter
	state     *State
	phase     *statemachine.Machine
	log       *slog.Logger
}

// Option configures a Form.
type Option func(*Form)

// WithPresenter attaches the presentation sink. Defaults to NopPresenter.
func WithPresenter(p Presenter) Option {
	return func(f *Form) {
		if p != nil {
			f.presenter = p
		}
	}
}

// WithLogger sets the diagnostics logger. Defaults to slog.Default().
func WithLogger(log *slog.Logger) Option {
	return func(f *Form) {
		if log != nil {
			f.log = log
		}
	}
}

// New wires a form engine to its collaborators. The registry must be fully
// built before the first validation pass and never mutated afterwards.
func New(registry *Registry, source Source, transport Transport, opts ...Option) *Form {
	f := &Form{
		registry:  registry,
		source:    source,
		transport: transport,
		presenter: NopPresenter{},
		state:     NewState(),
		phase:     newPhaseMachine(),
		log:       slog.Default(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Phase returns the engine's current lifecycle state.
func (f *Form) Phase() Phase {
	return f.phase.Current()
}

// Errors returns a snapshot of the current field error mapping.
func (f *Form) Errors() map[string]string {
	return f.state.Errors()
}

// IsValid reports whether no field currently has a recorded error.
func (f *Form) IsValid() bool {
	return f.state.IsValid()
}

// ValidateField re-runs one field's rule set against its current value,
// updates the validation state, and refreshes the field's error affordance.
// It is the entry point for input/change events. Unregistered fields are
// ignored and report valid. The pass is idempotent: repeating it with an
// unchanged value yields the same outcome.
func (f *Form) ValidateField(fieldID string) bool {
	d, ok := f.registry.Get(fieldID)
	if !ok {
		return true
	}

	msg := f.runField(d)
	f.presenter.FieldError(fieldID, msg)
	return msg == ""
}

// ValidateForm validates every registered field in registration order without
// short-circuiting, so all invalid fields are reported simultaneously. It
// returns true only when every field passed.
func (f *Form) ValidateForm() bool {
	valid := true
	for _, fieldID := range f.registry.FieldIDs() {
		if !f.ValidateField(fieldID) {
			valid = false
		}
	}
	return valid
}

// Submit runs the state machine of a submission attempt: whole-form
// validation, then a single transport call. A re-entrant call while a prior
// submission is in flight returns ErrSubmitInFlight without touching the
// transport, and a call after a success returns ErrAlreadySubmitted until the
// form is Reset. Validation failures return ErrFormInvalid, move focus to the
// first invalid field in registration order, and leave the engine ready for
// the next attempt.
func (f *Form) Submit(ctx context.Context) error {
	if phase, err := f.phase.Fire(eventSubmit); err != nil {
		if phase == PhaseSucceeded {
			return ErrAlreadySubmitted
		}
		return ErrSubmitInFlight
	}

	attemptID := uuid.New()
	log := f.log.With(slog.String("attempt_id", attemptID.String()))

	if !f.ValidateForm() {
		_, _ = f.phase.Fire(eventFail)
		if first, ok := f.firstInvalidField(); ok {
			f.presenter.Focus(first)
		}
		log.InfoContext(ctx, "submission blocked by validation errors",
			slog.Int("invalid_fields", len(f.state.Errors())))
		return ErrFormInvalid
	}
	_, _ = f.phase.Fire(eventPass)

	f.presenter.SetSubmitEnabled(false)
	defer f.presenter.SetSubmitEnabled(true)

	log.InfoContext(ctx, "submitting form", slog.Int("fields", f.registry.Len()))

	if err := f.transport.Send(ctx, f.collectValues()); err != nil {
		_, _ = f.phase.Fire(eventError)
		log.ErrorContext(ctx, "submission failed", slog.Any("error", err))
		f.presenter.Notify(failureNotice)
		_, _ = f.phase.Fire(eventRecover)
		return fmt.Errorf("submit form: %w", err)
	}

	_, _ = f.phase.Fire(eventSent)
	f.state.ClearAll()
	f.presenter.ShowSuccess()
	log.InfoContext(ctx, "submission succeeded")
	return nil
}

// Reset clears all validation state, returns the engine to idle, and restores
// the input view. Reset is rejected while a submission is in flight.
func (f *Form) Reset() error {
	if _, err := f.phase.Fire(eventReset); err != nil {
		return ErrSubmitInFlight
	}
	f.state.ClearAll()
	f.presenter.ShowForm()
	return nil
}

// runField evaluates one descriptor against fresh values and records the
// outcome. Cross-field rules receive the live values of their peers, read at
// the same instant; there is no implicit revalidation cascade between peers.
func (f *Form) runField(d Descriptor) string {
	value := f.source.Value(d.FieldID)

	var peers map[string]Value
	if len(d.Peers) > 0 {
		peers = make(map[string]Value, len(d.Peers))
		for _, id := range d.Peers {
			peers[id] = f.source.Value(id)
		}
	}

	msg := d.Validate(value, peers)
	if msg != "" {
		f.state.SetError(d.FieldID, msg)
	} else {
		f.state.ClearError(d.FieldID)
	}
	return msg
}

// firstInvalidField returns the first field in registration order that has a
// recorded error.
func (f *Form) firstInvalidField() (string, bool) {
	for _, fieldID := range f.registry.FieldIDs() {
		if _, ok := f.state.Message(fieldID); ok {
			return fieldID, true
		}
	}
	return "", false
}

// collectValues snapshots every registered field's current value for the
// transport.
func (f *Form) collectValues() map[string]Value {
	values := make(map[string]Value, f.registry.Len())
	for _, fieldID := range f.registry.FieldIDs() {
		values[fieldID] = f.source.Value(fieldID)
	}
	return values
}
