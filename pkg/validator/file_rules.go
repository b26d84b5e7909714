package validator

import (
	"fmt"
	"slices"
	"strings"
)

// File rules operate on descriptor primitives (name, MIME type, byte size)
// rather than on an open handle; the engine only ever sees metadata reported
// by the value source.

// RequiredFile validates that a file was attached at all.
func RequiredFile(field string, present bool) Rule {
	return Rule{
		Check: func() bool {
			return present
		},
		Error: ValidationError{
			Field:   field,
			Message: "a file is required",
		},
	}
}

// FileMIMEType validates that the file's reported MIME type is allowed.
func FileMIMEType(field, mimeType string, allowed ...string) Rule {
	return Rule{
		Check: func() bool {
			return slices.Contains(allowed, mimeType)
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("file must be of type %s", strings.Join(allowed, " or ")),
		},
	}
}

// MaxFileSize validates that the file does not exceed maxBytes.
func MaxFileSize(field string, size, maxBytes int64) Rule {
	return Rule{
		Check: func() bool {
			return size <= maxBytes
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("file must be at most %d bytes", maxBytes),
		},
	}
}
