package validator

import (
	"fmt"
	"strings"
)

// RequiredChoice validates that a select input carries a non-empty selection.
func RequiredChoice(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: ValidationError{
			Field:   field,
			Message: "an option must be selected",
		},
	}
}

// GroupSelected validates that a radio group has at least one option selected.
func GroupSelected(field string, selected []string) Rule {
	return Rule{
		Check: func() bool {
			return len(selected) > 0
		},
		Error: ValidationError{
			Field:   field,
			Message: "an option must be selected",
		},
	}
}

// MinSelected validates that a checkbox group has at least min options selected.
func MinSelected(field string, selected []string, min int) Rule {
	return Rule{
		Check: func() bool {
			return len(selected) >= min
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("select at least %d options", min),
		},
	}
}

// Accepted validates that a single checkbox (terms, consent) is checked.
func Accepted(field string, checked bool) Rule {
	return Rule{
		Check: func() bool {
			return checked
		},
		Error: ValidationError{
			Field:   field,
			Message: "must be accepted",
		},
	}
}

// InListString validates that a value is one of the allowed options.
func InListString(field, value string, allowedValues []string) Rule {
	return Rule{
		Check: func() bool {
			for _, allowed := range allowedValues {
				if value == allowed {
					return true
				}
			}
			return false
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(allowedValues, ", ")),
		},
	}
}
