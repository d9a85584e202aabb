package errors

import (
	"net/http"

	"craftapp/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
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

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
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
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Account-related errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	ErrEmailAlreadyRegistered = NewBaseError(
		http.StatusConflict,
		"EMAIL_ALREADY_REGISTERED",
		"Email already registered",
		"",
	)

	ErrEmailAlreadyInUse = NewBaseError(
		http.StatusConflict,
		"EMAIL_ALREADY_IN_USE",
		"Email already in use",
		"",
	)

	ErrAccountAlreadyActivated = NewBaseError(
		http.StatusConflict,
		"ACCOUNT_ALREADY_ACTIVATED",
		"Account already activated",
		"",
	)

	ErrInvalidActivationCode = NewBaseError(
		http.StatusBadRequest,
		"INVALID_ACTIVATION_CODE",
		"Invalid activation code",
		"",
	)

	ErrInvalidResetCode = NewBaseError(
		http.StatusBadRequest,
		"INVALID_RESET_CODE",
		"Invalid email or reset code",
		"",
	)

	// Authentication-related errors. Wrong password and inactive account share
	// the same status and differ only in message.
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Incorrect email or password",
		"",
	)

	ErrAccountNotActivated = NewBaseError(
		http.StatusUnauthorized,
		"ACCOUNT_NOT_ACTIVATED",
		"Account not activated",
		"",
	)

	ErrInvalidToken = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_TOKEN",
		"Could not validate credentials",
		"",
	)

	// Asset-related errors
	ErrInvalidAssetPath = NewBaseError(
		http.StatusForbidden,
		"INVALID_ASSET_PATH",
		"Invalid asset path",
		"",
	)

	ErrAssetNotFound = NewBaseError(
		http.StatusNotFound,
		"ASSET_NOT_FOUND",
		"Asset not found",
		"",
	)

	ErrAssetAccessDenied = NewBaseError(
		http.StatusForbidden,
		"ASSET_ACCESS_DENIED",
		"Access denied to asset",
		"",
	)

	ErrUnsupportedFileType = NewBaseError(
		http.StatusBadRequest,
		"UNSUPPORTED_FILE_TYPE",
		"Only images (JPEG, PNG, WebP, GIF), PDF, Word documents, plain text and videos (MP4, MOV, AVI, WebM) are allowed",
		"",
	)

	ErrFileTooLarge = NewBaseError(
		http.StatusBadRequest,
		"FILE_TOO_LARGE",
		"File too large. Max 50MB allowed",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
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

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

// ObjectStoreError represents a failure reported by the object-store client
// that is neither a missing key nor an access denial.
type ObjectStoreError struct {
	err     error
	details string
}

// NewObjectStoreError creates an object-store related error
func NewObjectStoreError(err error, details string) AppError {
	return &ObjectStoreError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *ObjectStoreError) Error() string {
	return errors.Wrap(e.err, "object store operation failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *ObjectStoreError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *ObjectStoreError) ErrorCode() string {
	return "OBJECT_STORE_FAILED"
}

// Message returns the user-friendly error message
func (e *ObjectStoreError) Message() string {
	return "Object store operation failed"
}

// Details returns detailed error information
func (e *ObjectStoreError) Details() string {
	return e.details
}
