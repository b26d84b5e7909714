package validator

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// fullNameRegex accepts letters from any script, including accented letters,
// separated by single or repeated spaces. Combining marks are folded away by
// NFC normalization before matching, so both composed and decomposed accents
// are accepted.
var fullNameRegex = regexp.MustCompile(`^[\p{L}]+(?: +[\p{L}]+)*$`)

// LettersAndSpaces validates that a string contains only letters (accented
// included) and spaces. The value is NFC-normalized before matching.
func LettersAndSpaces(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return fullNameRegex.MatchString(norm.NFC.String(strings.TrimSpace(value)))
		},
		Error: ValidationError{
			Field:   field,
			Message: "may only contain letters and spaces",
		},
	}
}

// MinWords validates that a string contains at least n whitespace-separated words.
func MinWords(field, value string, n int) Rule {
	return Rule{
		Check: func() bool {
			return len(strings.Fields(value)) >= n
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must contain at least %d words", n),
		},
	}
}
