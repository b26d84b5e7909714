package regform

// Kind discriminates the shapes a form field value can take.
type Kind int

const (
	// KindString is a single text value: inputs, selects, textareas.
	KindString Kind = iota
	// KindMulti is a set of selected option values: radio and checkbox groups.
	KindMulti
	// KindBool is a single checkbox.
	KindBool
	// KindFile is an attached file descriptor.
	KindFile
)

// FileMeta describes an attached file. The engine validates metadata only;
// it never opens the file.
type FileMeta struct {
	Name     string
	MIMEType string
	Size     int64
}

// Value is the polymorphic current value of one form field. Values are read
// fresh from the Source on every validation pass and never persisted.
type Value struct {
	kind    Kind
	str     string
	multi   []string
	checked bool
	file    *FileMeta
}

// String wraps a single text value.
func String(s string) Value {
	return Value{kind: KindString, str: s}
}

// Strings wraps a group selection (radio/checkbox groups). Radio groups
// report zero or one element; checkbox groups report every checked option.
func Strings(selected ...string) Value {
	return Value{kind: KindMulti, multi: selected}
}

// Bool wraps a single checkbox state.
func Bool(checked bool) Value {
	return Value{kind: KindBool, checked: checked}
}

// File wraps an attached file descriptor. A nil meta means no file attached.
func File(meta *FileMeta) Value {
	return Value{kind: KindFile, file: meta}
}

// Kind returns the value's shape.
func (v Value) Kind() Kind { return v.kind }

// Str returns the text value, or "" for non-string values.
func (v Value) Str() string { return v.str }

// Multi returns the group selection, or nil for non-group values.
func (v Value) Multi() []string { return v.multi }

// Checked returns the checkbox state, or false for non-bool values.
func (v Value) Checked() bool { return v.checked }

// File returns the attached file descriptor and whether one is present.
func (v Value) File() (FileMeta, bool) {
	if v.file == nil {
		return FileMeta{}, false
	}
	return *v.file, true
}

// Source supplies the current value(s) for a field identifier. It must be
// queryable synchronously at any time; the engine reads it on every
// validation pass instead of caching.
type Source interface {
	Value(fieldID string) Value
}

// MapSource is an in-memory Source, convenient for tests and for hosts that
// decode a request into a value map before validating.
type MapSource map[string]Value

func (m MapSource) Value(fieldID string) Value {
	return m[fieldID]
}
