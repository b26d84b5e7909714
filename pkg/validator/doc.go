// Package validator provides the declarative rule set behind the
// registration-form engine: small Rule values that pair a boolean Check with
// a field-scoped error message, grouped per domain (strings, names, formats,
// dates, identity documents, passwords, numbers, choices, files).
//
// Rules are evaluated two ways. First runs rules in order and returns the
// first failing rule's message, which is the contract for per-field
// validation where check order decides which message surfaces. Apply runs
// every rule and aggregates all failures into a ValidationErrors slice that
// satisfies the error interface, for hosts that want a rule set's failures
// as a single error value.
//
// Every rule is pure given its inputs: no global state, no clock reads (date
// rules take an explicit now), no lookups outside the passed values. Cross
// field comparisons such as PasswordMatch take the sibling value as an
// explicit argument. Malformed input never causes an error or panic; it
// produces a message like any other failure.
//
// # Usage
//
//	msg := validator.First(
//	    validator.Required("salary", raw),
//	    validator.ParseableNumber("salary", raw),
//	)
//	if msg != "" {
//	    // surface msg for the salary field
//	}
//
// See the companion *_test.go files for the exact semantics of each rule.
package validator
