// Package errors defines the business error taxonomy shared by all layers.
// Every failure in this core is recoverable: the caller corrects its input,
// re-authenticates, or abandons the operation.
package errors

import (
	"salondesk/internal/errors"
)

// Kind classifies a business error so callers can decide how to recover.
type Kind string

const (
	// KindValidation marks malformed input; the caller corrects and retries.
	KindValidation Kind = "validation"
	// KindConstraint marks a uniqueness collision in the record store.
	KindConstraint Kind = "constraint"
	// KindNotFound marks an operation targeting a nonexistent record.
	KindNotFound Kind = "not_found"
	// KindAccessDenied marks insufficient session privilege.
	KindAccessDenied Kind = "access_denied"
	// KindInvalidOperation marks an operation that is well-formed but forbidden,
	// such as an admin soft-deleting their own staff record.
	KindInvalidOperation Kind = "invalid_operation"
	// KindInternal marks unexpected storage or infrastructure failures.
	KindInternal Kind = "internal"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	Kind() Kind        // Recovery classification
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	kind      Kind
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(kind Kind, errorCode, message, details string) *BaseError {
	return &BaseError{
		kind:      kind,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// Kind returns the recovery classification
func (e *BaseError) Kind() Kind {
	return e.kind
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		kind:      e.kind,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		KindValidation,
		"VALIDATION_FAILED",
		"input validation failed",
		"",
	)

	// Record store errors
	ErrConstraintViolation = NewBaseError(
		KindConstraint,
		"CONSTRAINT_VIOLATION",
		"a unique field collides with an existing record",
		"",
	)

	ErrRecordNotFound = NewBaseError(
		KindNotFound,
		"RECORD_NOT_FOUND",
		"no record exists with the given id",
		"",
	)

	// Session and authorization errors
	ErrInvalidCredentials = NewBaseError(
		KindAccessDenied,
		"INVALID_CREDENTIALS",
		"staff id or password is incorrect",
		"",
	)

	ErrAccessDenied = NewBaseError(
		KindAccessDenied,
		"ACCESS_DENIED",
		"the session lacks the privilege for this operation",
		"",
	)

	ErrInvalidOperation = NewBaseError(
		KindInvalidOperation,
		"INVALID_OPERATION",
		"the operation is not permitted on this record",
		"",
	)

	ErrSessionExpired = NewBaseError(
		KindAccessDenied,
		"SESSION_EXPIRED",
		"the session token is invalid or has expired",
		"",
	)

	// Credential hashing errors
	ErrPasswordHashFailed = NewBaseError(
		KindInternal,
		"PASSWORD_HASH_FAILED",
		"failed to process the password",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Kind returns the recovery classification
func (e *DatabaseExecuteError) Kind() Kind {
	return KindInternal
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

// Unwrap exposes the underlying driver error for errors.Is checks.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// FieldError is a validation failure that names the offending field.
// It wraps ErrValidationFailed so errors.Is(err, ErrValidationFailed) holds.
type FieldError struct {
	Field  string
	Reason string
}

// NewFieldError creates a validation error for a single named field.
func NewFieldError(field, reason string) *FieldError {
	return &FieldError{Field: field, Reason: reason}
}

// Error implements the error interface
func (e *FieldError) Error() string {
	return e.Reason
}

// Kind returns the recovery classification
func (e *FieldError) Kind() Kind {
	return KindValidation
}

// ErrorCode returns the business error code
func (e *FieldError) ErrorCode() string {
	return "VALIDATION_FAILED"
}

// Message returns the user-friendly error message
func (e *FieldError) Message() string {
	return e.Reason
}

// Details returns detailed error information
func (e *FieldError) Details() string {
	return e.Field
}

// Unwrap ties every field failure back to ErrValidationFailed.
func (e *FieldError) Unwrap() error {
	return ErrValidationFailed
}
