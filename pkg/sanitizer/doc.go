// Package sanitizer provides display-only normalization helpers for form
// values: phone formatting, whitespace collapsing, digit extraction.
//
// Sanitization never feeds back into validation or storage; validators always
// see the raw value the user typed.
package sanitizer
