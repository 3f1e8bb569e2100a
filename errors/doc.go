// Package errors provides unified error handling for ssekit services.
// It implements a structured error type with machine-readable codes and
// HTTP status mapping.
package errors
