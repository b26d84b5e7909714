// Package regform is an embeddable validation engine for a single
// registration form: it holds the form's fixed rule set, runs per-field and
// whole-form validation passes against values supplied by the host, tracks
// the resulting error state, and drives the submission lifecycle.
//
// The engine owns logic only. Three collaborator contracts connect it to a
// host UI: a Source that reports each field's current value(s), a Presenter
// that receives error affordances and view swaps, and a Transport that
// performs the actual submission. All of them are injected; the engine never
// reaches into a live document, which keeps every validator pure and
// independently testable.
//
// # Usage
//
//	registry := regform.NewRegistrationRegistry(regform.DefaultLimits(), nil)
//	form := regform.New(registry, source, transport,
//	    regform.WithPresenter(ui),
//	)
//
//	form.ValidateField(regform.FieldEmail) // on input/change events
//	if err := form.Submit(ctx); err != nil {
//	    // regform.ErrFormInvalid: inspect form.Errors()
//	    // regform.ErrSubmitInFlight: a submission is already running
//	}
//
// Whole-form validation never short-circuits, so after a blocked submit every
// invalid field has its message recorded and presented simultaneously, with
// focus moved to the first invalid field in registration order.
//
// # Lifecycle
//
// A form moves through idle → validating → {blocked, submitting →
// {succeeded, failed}}. At most one submission is in flight at a time;
// re-entrant Submit calls are rejected without touching the transport.
// A transport failure surfaces a generic notice, logs the cause, and returns
// the engine to idle for retry.
package regform
