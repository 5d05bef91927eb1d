// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeInvalidRequest,
//	    "could not convert version to OSGi version",
//	    cause,
//	    map[string]any{
//	        "version": raw,
//	    },
//	)
//
// Codes are transported unchanged to API clients, so the string values are part
// of the public contract.
package errors
