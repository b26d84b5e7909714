package validator

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseableNumber validates that a string parses as a real number. Parse
// failure is a distinct error from range violations, so compose this rule
// ahead of MinNum/MaxNum on the parsed value.
func ParseableNumber(field, value string) Rule {
	return Rule{
		Check: func() bool {
			_, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
			return err == nil
		},
		Error: ValidationError{
			Field:   field,
			Message: "must be a number",
		},
	}
}

// MinNum validates that a numeric value is greater than or equal to the minimum.
func MinNum[T Numeric](field string, value T, min T) Rule {
	return Rule{
		Check: func() bool {
			return value >= min
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be at least %v", min),
		},
	}
}

// MaxNum validates that a numeric value is less than or equal to the maximum.
func MaxNum[T Numeric](field string, value T, max T) Rule {
	return Rule{
		Check: func() bool {
			return value <= max
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be at most %v", max),
		},
	}
}

// NotNegative validates that a numeric value is zero or above.
func NotNegative[T Numeric](field string, value T) Rule {
	return Rule{
		Check: func() bool {
			return value >= 0
		},
		Error: ValidationError{
			Field:   field,
			Message: "cannot be negative",
		},
	}
}

// MaxAmount validates a monetary ceiling with a plainly formatted limit
// (MaxNum would render large float limits in scientific notation).
func MaxAmount(field string, value, max float64) Rule {
	return Rule{
		Check: func() bool {
			return value <= max
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be at most %s", strconv.FormatFloat(max, 'f', -1, 64)),
		},
	}
}

// Convenience aliases for common numeric validation cases

// Min is an alias for MinNum for common numeric validation.
func Min[T Numeric](field string, value T, min T) Rule {
	return MinNum(field, value, min)
}

// Max is an alias for MaxNum for common numeric validation.
func Max[T Numeric](field string, value T, max T) Rule {
	return MaxNum(field, value, max)
}
