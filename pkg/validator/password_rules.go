package validator

import "regexp"

var (
	uppercaseRegex   = regexp.MustCompile(`[A-Z]`)
	lowercaseRegex   = regexp.MustCompile(`[a-z]`)
	digitRegex       = regexp.MustCompile(`[0-9]`)
	specialCharRegex = regexp.MustCompile(`[!@#$%^&*()_+\-=\[\]{};':"\\|,.<>\/?~` + "`" + `]`)
)

func PasswordUppercase(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return uppercaseRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:   field,
			Message: "must contain at least one uppercase letter",
		},
	}
}

func PasswordLowercase(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return lowercaseRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:   field,
			Message: "must contain at least one lowercase letter",
		},
	}
}

func PasswordDigit(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return digitRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:   field,
			Message: "must contain at least one digit",
		},
	}
}

func PasswordSpecialChar(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return specialCharRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:   field,
			Message: "must contain at least one special character",
		},
	}
}

// PasswordMatch validates that a confirmation value equals the primary
// password. The primary value is passed explicitly; cross-field reads are the
// caller's responsibility so the rule stays pure.
func PasswordMatch(field, value, password string) Rule {
	return Rule{
		Check: func() bool {
			return value == password
		},
		Error: ValidationError{
			Field:   field,
			Message: "passwords do not match",
		},
	}
}
