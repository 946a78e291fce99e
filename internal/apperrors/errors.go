package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates failed credential or token verification.
var ErrUnauthorized = errors.New("unauthorized")

// ErrLLMNotConfigured indicates the external completion API credential is absent.
var ErrLLMNotConfigured = errors.New("llm api key not configured")

// AppError is a handler-facing error carrying an HTTP status code and a
// client-safe message. It marshals directly into the error response body.
type AppError struct {
	Code    int    `json:"-"`
	Message string `json:"message"`
}

func (e *AppError) Error() string {
	return e.Message
}

// NewBadRequestError creates an AppError with a 400 status code.
func NewBadRequestError(message string) *AppError {
	return &AppError{Code: http.StatusBadRequest, Message: message}
}

// NewUnauthorizedError creates an AppError with a 401 status code.
func NewUnauthorizedError(message string) *AppError {
	return &AppError{Code: http.StatusUnauthorized, Message: message}
}

// NewInternalServerError creates an AppError with a 500 status code.
func NewInternalServerError(message string) *AppError {
	return &AppError{Code: http.StatusInternalServerError, Message: message}
}

// NewGatewayTimeoutError creates an AppError with a 504 status code.
func NewGatewayTimeoutError(message string) *AppError {
	return &AppError{Code: http.StatusGatewayTimeout, Message: message}
}

// UpstreamFormatError reports that the external completion API returned
// content no JSON object could be extracted from. Raw keeps the unparsed
// text for diagnostics; it is logged, never echoed to clients.
type UpstreamFormatError struct {
	ParseErr error
	Raw      string
}

func (e *UpstreamFormatError) Error() string {
	return fmt.Sprintf("upstream returned unparsable content: %v", e.ParseErr)
}

func (e *UpstreamFormatError) Unwrap() error {
	return e.ParseErr
}
