package sanitizer

import (
	"regexp"
	"strings"
)

var (
	nonDigitRegex   = regexp.MustCompile(`[^0-9]`)
	whitespaceRegex = regexp.MustCompile(`\s+`)
)

// Trim removes leading and trailing whitespace from a string.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// NormalizePhone strips formatting so equivalent numbers compare equal.
// Normalization is display-only; the value stored in the form is never
// rewritten.
func NormalizePhone(phone string) string {
	digits := nonDigitRegex.ReplaceAllString(phone, "")
	if strings.HasPrefix(strings.TrimSpace(phone), "+") {
		return "+" + digits
	}
	return digits
}

// FormatPhoneEC renders an Ecuadorian number as "0XX XXX XXXX"; preserves the
// original when the digits do not form a local 9-digit number to avoid data
// loss.
func FormatPhoneEC(phone string) string {
	digits := nonDigitRegex.ReplaceAllString(phone, "")
	switch {
	case len(digits) == 12 && strings.HasPrefix(digits, "593"):
		digits = "0" + digits[3:]
	case len(digits) == 9:
		digits = "0" + digits
	}
	if len(digits) != 10 || digits[0] != '0' {
		return phone
	}

	return digits[0:3] + " " + digits[3:6] + " " + digits[6:10]
}

// NormalizeWhitespace collapses runs of spaces, tabs, and newlines into a
// single space and trims the ends.
func NormalizeWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(s, " "))
}

// ExtractDigits concatenates all digit sequences in the input.
func ExtractDigits(s string) string {
	return nonDigitRegex.ReplaceAllString(s, "")
}
