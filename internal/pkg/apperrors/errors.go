package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")
	ErrConflict              = errors.New("conflict")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrInvalidEmail     = errors.New("invalid email")
	ErrBadRequest       = errors.New("bad request")

	// Authorization errors
	ErrUnauthorized = errors.New("unauthorized")

	// User errors
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
)

// Mentor errors
var (
	ErrMentorNotFound      = errors.New("mentor not found")
	ErrMentorAlreadyExists = errors.New("mentor profile already exists for this user")
)

// Mentorship request errors
var (
	ErrMentorshipRequestNotFound = errors.New("mentorship request not found")
)

// Mentoring session errors
var (
	ErrMentoringSessionNotFound = errors.New("mentoring session not found")
)

// Reference data errors
var (
	ErrLanguageNotFound      = errors.New("language not found")
	ErrLanguageAlreadyExists = errors.New("language with this code already exists")
	ErrCountryNotFound       = errors.New("country not found")
	ErrCountryAlreadyExists  = errors.New("country with this code already exists")
	ErrMajorNotFound         = errors.New("major not found")
	ErrMajorAlreadyExists    = errors.New("major with this name already exists")
)

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewResourceNotFoundError creates a new custom error for resource not found with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewConflictError creates a new custom error for conflict situations with a message
func NewConflictError(message string) error {
	return &CustomError{
		Err:     ErrConflict,
		Message: message,
	}
}

// NewBadRequestError creates a new custom error for bad request with a message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}

// NewUnauthorizedError creates a new custom error for unauthorized access with a message
func NewUnauthorizedError(message string) error {
	return &CustomError{
		Err:     ErrUnauthorized,
		Message: message,
	}
}
