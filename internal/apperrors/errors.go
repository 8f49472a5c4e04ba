package apperrors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// ErrorCode identifies an error kind independently of its user-facing message.
type ErrorCode string

// AppError is the application error carried from services up to the
// HTTP boundary. Message is user-facing (Spanish); Err holds the
// internal cause and is never serialized.
type AppError struct {
	Code     ErrorCode         `json:"code"`
	Message  string            `json:"message"`
	Errors   map[string]string `json:"errors,omitempty"`
	Err      error             `json:"-"`
	HTTPCode int               `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		HTTPCode: httpCode,
	}
}

func Wrap(err error, code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		Err:      err,
		HTTPCode: httpCode,
	}
}

// WithErrors returns a copy carrying a field-keyed validation error map.
func (e *AppError) WithErrors(errs map[string]string) *AppError {
	clone := *e
	clone.Errors = errs
	return &clone
}

func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// Predefined errors. Domain failures respond with HTTP 200 and
// success=false, matching the API contract; only auth-middleware and
// internal faults use non-200 status codes.
var (
	ErrUserInactive = New(CodeUserInactive,
		"El usuario no existe o no está activo.", http.StatusOK)
	ErrInvalidCredentials = New(CodeInvalidCredentials,
		"El usuario o contraseña son incorrectos.", http.StatusOK)
	ErrEmailAlreadyExists = New(CodeEmailAlreadyExists,
		"El correo electrónico ya esta registrado, por favor intente nuevamente con un correo electrónico diferente.", http.StatusOK)
	ErrUserCreateFailed = New(CodeCreateFailed,
		"Error al crear el usuario, por favor intente nuevamente.", http.StatusOK)
	ErrWrongCurrentPassword = New(CodeWrongPassword,
		"La contraseña actual es incorrecta.", http.StatusOK)

	ErrEventNotFound = New(CodeEventNotFound,
		"El evento no existe.", http.StatusOK)
	ErrEventNotEditable = New(CodeNotPermitted,
		"El evento no existe o no tienes permiso para editarlo.", http.StatusOK)
	ErrEventNotDeletable = New(CodeNotPermitted,
		"El evento no existe o no tienes permiso para eliminarlo.", http.StatusOK)
	ErrEventCreateFailed = New(CodeCreateFailed,
		"Error al crear el evento, por favor intente nuevamente.", http.StatusOK)

	ErrValidationFailed = New(CodeValidationFailed,
		"Error de validación.", http.StatusOK)

	ErrUnauthorized = New(CodeUnauthorized,
		"No autenticado.", http.StatusUnauthorized)
	ErrInvalidToken = New(CodeInvalidToken,
		"Token inválido o expirado.", http.StatusUnauthorized)
)

// ValidationError builds a validation failure carrying field messages.
func ValidationError(errs map[string]string) *AppError {
	return ErrValidationFailed.WithErrors(errs)
}

// InternalError wraps an unexpected fault. The cause is logged at the
// boundary; the client only ever sees the generic message.
func InternalError(err error) *AppError {
	return Wrap(err, CodeInternalError,
		"Ha ocurrido un error inesperado, por favor intente nuevamente más tarde.",
		http.StatusInternalServerError)
}
