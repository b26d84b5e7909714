// Package config loads typed configuration structs from environment
// variables, with an optional .env file for local development.
//
// Structs declare their environment bindings via `env` tags and defaults via
// `envDefault`, so a zero-configuration process still starts with sane
// values. Load returns detailed errors joined with ErrParsingConfig;
// MustLoad panics for configuration the process cannot run without.
package config
