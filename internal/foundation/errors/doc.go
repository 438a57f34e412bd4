// Package errors provides the classified error primitives used across svldoc.
//
// Errors carry a category (config, validation, links, ...), a severity and an
// optional cause plus structured context. The CLI adapter turns them into
// exit codes and user-facing messages.
//
// Example usage:
//
//	err := errors.NewError(errors.CategoryConfig, "read site config").
//		WithContext("path", path).
//		WithCause(ioErr).
//		Build()
package errors
