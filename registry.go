package regform

import "regexp"

// ValidateFunc runs a field's rule set against its current value. Fields with
// cross-field rules receive the live values of their declared peers. The
// returned string is the error message to surface, or "" when valid.
type ValidateFunc func(v Value, peers map[string]Value) string

// Descriptor is the static definition of how one field is validated.
// Descriptors are immutable once registered.
type Descriptor struct {
	// FieldID is the unique key of the field within the form.
	FieldID string
	// Required marks the field as mandatory; optional fields pass when empty.
	Required bool
	// Pattern is an optional shape constraint, kept alongside Validate for
	// hosts that want to mirror it into client attributes.
	Pattern *regexp.Regexp
	// Peers lists sibling fields whose live values the rule set reads.
	Peers []string
	// Validate runs the field's checks in their fixed order.
	Validate ValidateFunc
}

// Registry maps field identifiers to their rule descriptors. Registration
// order is the canonical whole-form validation order and the tie-break for
// first-invalid-field focus. The registry is built once at initialization and
// must not be mutated during the form's lifetime.
type Registry struct {
	order       []string
	descriptors map[string]Descriptor
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		descriptors: make(map[string]Descriptor),
	}
}

// Register adds the rule for the descriptor's field, or overwrites it while
// keeping the field's original position in the validation order.
func (r *Registry) Register(d Descriptor) {
	if _, exists := r.descriptors[d.FieldID]; !exists {
		r.order = append(r.order, d.FieldID)
	}
	r.descriptors[d.FieldID] = d
}

// Get returns the descriptor for the field, if registered.
func (r *Registry) Get(fieldID string) (Descriptor, bool) {
	d, ok := r.descriptors[fieldID]
	return d, ok
}

// FieldIDs returns all registered field identifiers in registration order.
func (r *Registry) FieldIDs() []string {
	ids := make([]string, len(r.order))
	copy(ids, r.order)
	return ids
}

// Len returns the number of registered fields.
func (r *Registry) Len() int {
	return len(r.order)
}
