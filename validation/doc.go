// Package validation provides struct validation using go-playground/validator
// struct tags. Config structs across ssekit run through Validate before use.
package validation
