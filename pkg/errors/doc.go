// Package errors provides structured error types for programmatic error
// handling across fx-deploy.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeInvalidRequest,
//	    "invalid endpoint values",
//	    cause,
//	    map[string]interface{}{
//	        "release": release,
//	    },
//	)
package errors
