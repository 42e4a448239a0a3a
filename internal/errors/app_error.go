package errors

import (
	"errors"
	"fmt"
	"net/http"
)

type AppError struct {
	Code       string
	Message    string
	Detail     string
	StatusCode int
	Err        error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(code, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
	}
}

func (e *AppError) WithDetail(detail string) *AppError {
	e.Detail = detail

	return e
}

func (e *AppError) WithError(err error) *AppError {
	e.Err = err

	return e
}

const (
	ErrCodeValidation             = "VALIDATION_ERROR"
	ErrCodeBadRequest             = "BAD_REQUEST"
	ErrCodeNotFound               = "NOT_FOUND"
	ErrCodeReferenceNotFound      = "REFERENCE_NOT_FOUND"
	ErrCodeInvalidStateTransition = "INVALID_STATE_TRANSITION"
	ErrCodeInternal               = "INTERNAL_ERROR"
	ErrCodeDatabaseError          = "DATABASE_ERROR"
	ErrCodeDuplicateEntry         = "DUPLICATE_ENTRY"
	ErrCodeThirdPartyError        = "THIRD_PARTY_ERROR"
)

func ValidationError(message string) *AppError {
	return NewAppError(ErrCodeValidation, message, http.StatusBadRequest)
}

func BadRequestError(message string) *AppError {
	return NewAppError(ErrCodeBadRequest, message, http.StatusBadRequest)
}

func NotFoundError(message string) *AppError {
	return NewAppError(ErrCodeNotFound, message, http.StatusNotFound)
}

// ReferenceNotFoundError reports a payload referencing an entity that does not
// exist, e.g. a request line pointing at an unknown inventory item.
func ReferenceNotFoundError(message string) *AppError {
	return NewAppError(ErrCodeReferenceNotFound, message, http.StatusUnprocessableEntity)
}

// InvalidStateTransitionError reports a status change attempted from a terminal
// state. Approved and Rejected are terminal, so re-approval is a conflict.
func InvalidStateTransitionError(message string) *AppError {
	return NewAppError(ErrCodeInvalidStateTransition, message, http.StatusConflict)
}

func InternalError(message string) *AppError {
	return NewAppError(ErrCodeInternal, message, http.StatusInternalServerError)
}

func DatabaseError(message string) *AppError {
	return NewAppError(ErrCodeDatabaseError, message, http.StatusInternalServerError)
}

func DuplicateEntryError(message string) *AppError {
	return NewAppError(ErrCodeDuplicateEntry, message, http.StatusConflict)
}

func ThirdPartyError(message string) *AppError {
	return NewAppError(ErrCodeThirdPartyError, message, http.StatusInternalServerError)
}

func IsAppError(err error) (*AppError, bool) {
	var appError *AppError

	if errors.As(err, &appError) {
		return appError, true
	}

	return nil, false
}

// field validation error.
func AddValidationError(field, reason string) *AppError {
	return ValidationError(fmt.Sprintf("Invalid field '%s': %s", field, reason))
}
