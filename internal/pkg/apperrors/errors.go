package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")
	ErrConflict              = errors.New("conflict")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrTokenNotFound      = errors.New("token not found")
	ErrTokenRevoked       = errors.New("token revoked")
	ErrAccountDisabled    = errors.New("account is disabled")
	ErrInvalidFormat      = errors.New("invalid token format")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	// User errors
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
)

// Student and class errors
var (
	ErrStudentNotFound          = errors.New("student not found")
	ErrStudentCodeAlreadyExists = errors.New("student code already exists")
	ErrClassNotFound            = errors.New("class not found")
	ErrClassAlreadyExists       = errors.New("class with this name already exists")
	ErrClassHasStudents         = errors.New("class has enrolled students and cannot be deleted")
)

// Health event errors
var (
	ErrEventNotFound     = errors.New("health event not found")
	ErrEventHasNoTargets = errors.New("health event targets no classes")
	ErrInvalidEventType  = errors.New("invalid event type")
)

// Confirmation state machine errors
var (
	ErrConfirmationNotFound         = errors.New("confirmation not found")
	ErrConfirmationAlreadyResponded = errors.New("confirmation has already been responded to")
	ErrConfirmationNotApproved      = errors.New("confirmation has not been approved by the parent")
	ErrConfirmationAlreadyCompleted = errors.New("confirmation result has already been recorded")
	ErrRejectionReasonRequired      = errors.New("a rejection reason is required")
	ErrFollowUpDateRequired         = errors.New("a follow-up date is required when follow-up is flagged")
)

// Result payload errors
var (
	ErrResultTypeMismatch   = errors.New("result payload type does not match the event type")
	ErrResultPayloadInvalid = errors.New("result payload is invalid")
)

// Consultation, medication and feedback errors
var (
	ErrConsultationNotFound = errors.New("consultation not found")
	ErrMedicationNotFound   = errors.New("medication not found")
	ErrFeedbackNotFound     = errors.New("feedback not found")
)

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

// NewForbiddenError creates a new custom error for permission denied with a message
func NewForbiddenError(message string) error {
	return &CustomError{
		Err:     ErrPermissionDenied,
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

// Is returns whether target or any error in errList matches err
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}
	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}
	return false
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Code    string
	Details map[string]interface{}
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

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// WithCode adds an error code
func (e *CustomError) WithCode(code string) *CustomError {
	e.Code = code
	return e
}
