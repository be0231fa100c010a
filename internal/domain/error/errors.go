package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeMissingFields     = 4001
	CodeInvalidUserID     = 4002
	CodeInvalidExpenseID  = 4003
	CodeEmailTaken        = 4009
	CodeIncorrectPassword = 4011
	CodeEmailNotFound     = 4041

	// 5xxx - Server errors
	CodeInternalServer = 5000
	CodeStorageBusy    = 5030
)

// Base error types
var (
	// ErrMissingFields is returned when a required request field is absent or empty
	ErrMissingFields = errors.New("missing required fields")

	// ErrInvalidUserID is returned when the user ID is not a positive integer
	ErrInvalidUserID = errors.New("user ID must be positive")

	// ErrInvalidExpenseID is returned when the expense ID is not a positive integer
	ErrInvalidExpenseID = errors.New("expense ID must be positive")

	// ErrEmailTaken is returned when registering an email that already exists
	ErrEmailTaken = errors.New("email already registered")

	// ErrEmailNotFound is returned when logging in with an unknown email
	ErrEmailNotFound = errors.New("email not registered")

	// ErrIncorrectPassword is returned when the password hash does not match
	ErrIncorrectPassword = errors.New("incorrect password")

	// ErrStorageBusy is returned when the storage engine cannot grant a
	// connection or lock within the configured timeout
	ErrStorageBusy = errors.New("storage is busy")

	// ErrStorage is returned for engine-level persistence failures
	ErrStorage = errors.New("storage error")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrMissingFields):
		return CodeMissingFields
	case errors.Is(err, ErrInvalidUserID):
		return CodeInvalidUserID
	case errors.Is(err, ErrInvalidExpenseID):
		return CodeInvalidExpenseID
	case errors.Is(err, ErrEmailTaken):
		return CodeEmailTaken
	case errors.Is(err, ErrIncorrectPassword):
		return CodeIncorrectPassword
	case errors.Is(err, ErrEmailNotFound):
		return CodeEmailNotFound
	case errors.Is(err, ErrStorageBusy):
		return CodeStorageBusy
	default:
		return CodeInternalServer
	}
}

// IsValidationError reports whether the error is caused by bad client input
func IsValidationError(err error) bool {
	return errors.Is(err, ErrMissingFields) ||
		errors.Is(err, ErrInvalidUserID) ||
		errors.Is(err, ErrInvalidExpenseID)
}

// IsConflictError reports whether the error is a uniqueness conflict
func IsConflictError(err error) bool {
	return errors.Is(err, ErrEmailTaken)
}

// IsAuthError reports whether the error is caused by bad credentials
func IsAuthError(err error) bool {
	return errors.Is(err, ErrIncorrectPassword)
}

// IsNotFoundError reports whether the error is a "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrEmailNotFound)
}

// IsStorageError reports whether the error is an engine-level storage failure
func IsStorageError(err error) bool {
	return errors.Is(err, ErrStorage) || errors.Is(err, ErrStorageBusy)
}

// RegistrationError represents a failure while creating a user account
type RegistrationError struct {
	Email string
	Err   error
}

// Error implements the error interface for RegistrationError
func (e *RegistrationError) Error() string {
	return fmt.Sprintf("registration failed for %s: %v", e.Email, e.Err)
}

// Unwrap returns the underlying error
func (e *RegistrationError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *RegistrationError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "registration_error",
		"email":      e.Email,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e.Err),
	}
}

// NewRegistrationError creates a detailed registration error
func NewRegistrationError(email string, err error) error {
	return &RegistrationError{Email: email, Err: err}
}

// StorageError wraps an engine-level failure with the operation that caused it
type StorageError struct {
	Operation string
	Err       error
}

// Error implements the error interface for StorageError
func (e *StorageError) Error() string {
	return fmt.Sprintf("storage failure during %s: %v", e.Operation, e.Err)
}

// Unwrap returns the underlying error
func (e *StorageError) Unwrap() error {
	return e.Err
}

// Is checks if the target error is an ErrStorage
func (e *StorageError) Is(target error) bool {
	return target == ErrStorage
}

// LogFields returns a map of fields for structured logging
func (e *StorageError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "storage_error",
		"operation":  e.Operation,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e.Err),
	}
}

// NewStorageError creates a detailed storage error
func NewStorageError(operation string, err error) error {
	return &StorageError{Operation: operation, Err: err}
}
