// Package errors defines the application-level error catalogue surfaced to
// clients, mapping domain failures onto HTTP codes, business codes and
// Spanish user-facing messages.
package errors

import (
	"net/http"

	"agroalerta/internal/errors"
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
	// Validation errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Los datos ingresados no son válidos",
		"",
	)

	ErrFormIncomplete = NewBaseError(
		http.StatusBadRequest,
		"FORM_INCOMPLETE",
		"Complete al menos la mitad del formulario antes de enviarlo",
		"",
	)

	ErrUnknownField = NewBaseError(
		http.StatusBadRequest,
		"UNKNOWN_FIELD",
		"El campo indicado no existe en el formulario",
		"",
	)

	// Authentication errors
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Teléfono o contraseña incorrectos.",
		"",
	)

	ErrNoRegisteredUser = NewBaseError(
		http.StatusUnauthorized,
		"NO_REGISTERED_USER",
		"No existe usuario registrado. Regístrese primero.",
		"",
	)

	ErrNoSession = NewBaseError(
		http.StatusUnauthorized,
		"NO_SESSION",
		"Inicie sesión para continuar",
		"",
	)

	// Lookup errors
	ErrCropNotFound = NewBaseError(
		http.StatusNotFound,
		"CROP_NOT_FOUND",
		"No se encontró el cultivo",
		"",
	)

	ErrAlertNotFound = NewBaseError(
		http.StatusNotFound,
		"ALERT_NOT_FOUND",
		"No se encontró la alerta",
		"",
	)

	ErrRecommendationNotFound = NewBaseError(
		http.StatusNotFound,
		"RECOMMENDATION_NOT_FOUND",
		"No se encontró la recomendación",
		"",
	)

	// Infrastructure errors
	ErrWeatherUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"WEATHER_UNAVAILABLE",
		"Los datos del clima aún no están disponibles",
		"",
	)

	ErrStorageFailed = NewBaseError(
		http.StatusInternalServerError,
		"STORAGE_FAILED",
		"No se pudo guardar la información",
		"",
	)
)
