// Package logger builds configured log/slog loggers with functional options
// for level, output format (text or json), destination, and static
// attributes shared by every record.
package logger
