package errors

import (
	"context"
	stderrors "errors"
	"fmt"

	"gocorr/domain/core"
)

// AppError represents a structured application error
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Message == "" && e.Cause != nil {
		return e.Cause.Error()
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// New creates a new AppError
func New(code, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an error with additional context
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return &AppError{
			Code:    appErr.Code,
			Message: message,
			Cause:   err,
		}
	}
	return &AppError{
		Code:    CodeInternalError,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with formatted additional context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WithCode adds an error code to an existing error
func WithCode(code string, err error) error {
	if err == nil {
		return nil
	}
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return &AppError{
			Code:    code,
			Message: appErr.Message,
			Cause:   appErr.Cause,
		}
	}
	return &AppError{
		Code:  code,
		Cause: err,
	}
}

// IsAppError checks if an error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return stderrors.As(err, &appErr)
}

// GetCode returns the error code if it's an AppError, otherwise returns "UNKNOWN"
func GetCode(err error) string {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Code
	}
	return "UNKNOWN"
}

// Predefined error codes
const (
	CodeConfigInvalid   = "CONFIG_INVALID"
	CodeInternalError   = "INTERNAL_ERROR"
	CodeInvalidInput    = "INVALID_INPUT"
	CodeShapeError      = "SHAPE_ERROR"
	CodeDegenerateInput = "DEGENERATE_INPUT"
	CodeZeroWeightSum   = "ZERO_WEIGHT_SUM"
	CodeCancelled       = "CANCELLED"
)

// IsInputCode reports whether code describes a problem with caller-supplied data
func IsInputCode(code string) bool {
	switch code {
	case CodeInvalidInput, CodeShapeError, CodeDegenerateInput, CodeZeroWeightSum:
		return true
	}
	return false
}

// FromDomain classifies a domain error and attaches the matching code.
// Errors that are not input errors become INTERNAL_ERROR.
func FromDomain(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case stderrors.Is(err, core.ErrShapeMismatch), stderrors.Is(err, core.ErrNonFiniteValue):
		return WithCode(CodeShapeError, err)
	case stderrors.Is(err, core.ErrInsufficientSeries):
		return WithCode(CodeDegenerateInput, err)
	case stderrors.Is(err, core.ErrZeroWeightSum):
		return WithCode(CodeZeroWeightSum, err)
	case stderrors.Is(err, core.ErrInvalidWeight):
		return WithCode(CodeInvalidInput, err)
	case stderrors.Is(err, context.Canceled), stderrors.Is(err, context.DeadlineExceeded):
		return WithCode(CodeCancelled, err)
	}
	return WithCode(CodeInternalError, err)
}

// Common error constructors
func ConfigInvalid(message string) *AppError {
	return New(CodeConfigInvalid, message)
}

func InternalError(message string) *AppError {
	return New(CodeInternalError, message)
}

func InvalidInput(message string) *AppError {
	return New(CodeInvalidInput, message)
}

func ShapeError(message string) *AppError {
	return New(CodeShapeError, message)
}
