package validator

import (
	"fmt"
	"time"
)

// DateLayout is the wire format for date fields (HTML date inputs).
const DateLayout = "2006-01-02"

// ParseDate parses a date field value. The zero time and false are returned
// for anything that does not parse; callers surface a message instead of an
// error.
func ParseDate(value string) (time.Time, bool) {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// dateOnly truncates t to midnight UTC, the granularity of parsed date field
// values. Boundary comparisons must not depend on the clock's time of day.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// NotFutureDateAt validates that a date is not after now's calendar date.
func NotFutureDateAt(field string, value, now time.Time) Rule {
	return Rule{
		Check: func() bool {
			return !value.After(dateOnly(now))
		},
		Error: ValidationError{
			Field:   field,
			Message: "date cannot be in the future",
		},
	}
}

// MinAgeAt validates that a birthdate reaches minAge years as of now. A date
// exactly minAge years before now passes.
func MinAgeAt(field string, birthdate, now time.Time, minAge int) Rule {
	return Rule{
		Check: func() bool {
			return !birthdate.After(dateOnly(now).AddDate(-minAge, 0, 0))
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be at least %d years old", minAge),
		},
	}
}

// MaxAgeAt validates that a birthdate is not more than maxAge years before
// now. A date exactly maxAge years before now passes.
func MaxAgeAt(field string, birthdate, now time.Time, maxAge int) Rule {
	return Rule{
		Check: func() bool {
			return !birthdate.Before(dateOnly(now).AddDate(-maxAge, 0, 0))
		},
		Error: ValidationError{
			Field:   field,
			Message: "date is unrealistically far in the past",
		},
	}
}
