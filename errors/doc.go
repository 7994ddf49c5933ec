// Package errors defines the curated error values used throughout the
// emulator. See the package comment in errors.go for details of how
// errors are composed.
package errors
