package errors

import (
	"errors"
)

// Domain-specific error types
var (
	// ErrNotFound indicates a resource was not found
	ErrNotFound = errors.New("resource not found")

	// ErrValidation indicates invalid input data
	ErrValidation = errors.New("validation failed")

	// ErrUnauthorized indicates a missing or invalid credential
	ErrUnauthorized = errors.New("unauthorized")

	// ErrTokenExpired indicates the credential is past its expiry
	ErrTokenExpired = errors.New("credential expired")

	// ErrStorageWrite indicates an upload could not be persisted to the
	// media store; no catalog row may exist for it
	ErrStorageWrite = errors.New("storage write failed")
)

// Error codes for API responses
const (
	CodeNotFound      = "NOT_FOUND"
	CodeValidation    = "VALIDATION_ERROR"
	CodeUnauthorized  = "UNAUTHORIZED"
	CodeTokenExpired  = "TOKEN_EXPIRED"
	CodeStorageWrite  = "STORAGE_WRITE_FAILED"
	CodeInternalError = "INTERNAL_ERROR"
)

// IsNotFound checks if the error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidation checks if the error is a validation error
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsStorageWrite checks if the error is a storage write failure
func IsStorageWrite(err error) bool {
	return errors.Is(err, ErrStorageWrite)
}

// GetErrorCode returns the appropriate error code for an error
func GetErrorCode(err error) string {
	switch {
	case IsNotFound(err):
		return CodeNotFound
	case IsValidation(err):
		return CodeValidation
	case errors.Is(err, ErrTokenExpired):
		return CodeTokenExpired
	case errors.Is(err, ErrUnauthorized):
		return CodeUnauthorized
	case IsStorageWrite(err):
		return CodeStorageWrite
	default:
		return CodeInternalError
	}
}
