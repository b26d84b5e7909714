package validator

import (
	"regexp"
	"strings"
)

var (
	// Email shape for typical web use: no whitespace, exactly one @, and a
	// dot somewhere in the domain. Deliverability is out of scope.
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	// http(s) URL with optional www., a dotted host, a 1-6 character TLD and
	// an optional path or query.
	websiteRegex = regexp.MustCompile(`^https?://(www\.)?[a-zA-Z0-9-]+(\.[a-zA-Z0-9-]+)*\.[a-zA-Z]{1,6}([/?#]\S*)?$`)

	// Ecuadorian phone number after stripping separators: optional +593/593
	// country code or 0 trunk prefix, then a 9-digit local number whose first
	// digit is 2-9.
	phoneECRegex = regexp.MustCompile(`^(\+?593|0)?[2-9][0-9]{8}$`)

	phoneSeparators = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "")
)

// EmailPattern returns the compiled email shape, for hosts that mirror it
// into client-side attributes.
func EmailPattern() *regexp.Regexp { return emailRegex }

// WebsitePattern returns the compiled URL shape.
func WebsitePattern() *regexp.Regexp { return websiteRegex }

// PhoneECPattern returns the compiled phone shape matched after separators
// are stripped.
func PhoneECPattern() *regexp.Regexp { return phoneECRegex }

// ValidEmail validates that a string looks like a deliverable address shape
// (local@domain.tld). It does not verify the mailbox exists.
func ValidEmail(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return emailRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:   field,
			Message: "must be a valid email address",
		},
	}
}

// ValidWebsite validates an http(s) URL shape.
func ValidWebsite(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return websiteRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:   field,
			Message: "must be a valid URL starting with http:// or https://",
		},
	}
}

// ValidPhoneEC validates an Ecuadorian phone number. Spaces, hyphens and
// parentheses are stripped before matching; the raw value is left untouched.
func ValidPhoneEC(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return phoneECRegex.MatchString(phoneSeparators.Replace(value))
		},
		Error: ValidationError{
			Field:   field,
			Message: "must be a valid phone number",
		},
	}
}
