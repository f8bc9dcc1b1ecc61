package errors

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
)

var (
	ErrBadRequest      = NewAppError("BAD_REQUEST", "Invalid request", http.StatusBadRequest)
	ErrInternalServer  = NewAppError("INTERNAL_SERVER_ERROR", "Internal server error", http.StatusInternalServerError)
	ErrCharityNotFound = NewAppError("CHARITY_NOT_FOUND", "Charity not found", http.StatusNotFound)
)

type AppError struct {
	Code       string
	Message    string
	StatusCode int
	Details    map[string]interface{}
	Err        error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s - %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func (e *AppError) WithDetails(details map[string]interface{}) *AppError {
	clone := e.clone()
	if details == nil {
		clone.Details = make(map[string]interface{})
		return clone
	}
	clone.Details = make(map[string]interface{}, len(details))
	for k, v := range details {
		clone.Details[k] = v
	}
	return clone
}

func (e *AppError) WithError(err error) *AppError {
	clone := e.clone()
	clone.Err = err
	return clone
}

func NewAppError(code, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
		Details:    make(map[string]interface{}),
	}
}

func WrapError(err error, code, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
		Err:        err,
		Details:    make(map[string]interface{}),
	}
}

func (e *AppError) clone() *AppError {
	if e == nil {
		return nil
	}
	clone := *e
	if e.Details != nil {
		clone.Details = make(map[string]interface{}, len(e.Details))
		for k, v := range e.Details {
			clone.Details[k] = v
		}
	} else {
		clone.Details = make(map[string]interface{})
	}
	return &clone
}

func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	ok := errors.As(err, &appErr)
	return appErr, ok
}

func FromError(err error) *AppError {
	if appErr, ok := AsAppError(err); ok {
		return appErr
	}

	if errors.Is(err, context.Canceled) {
		return WrapError(err, "REQUEST_CANCELED", "Request canceled by client", http.StatusRequestTimeout)
	}

	return WrapError(err, "UNKNOWN_ERROR", "Unexpected error", http.StatusInternalServerError)
}

// NewValidationError nomeia o campo que falhou; o contrato da API exige isso.
func NewValidationError(field, message string) *AppError {
	return &AppError{
		Code:       "VALIDATION_ERROR",
		Message:    message,
		StatusCode: http.StatusBadRequest,
		Details: map[string]interface{}{
			"field": field,
		},
	}
}

func ParseValidationErrors(err error) *AppError {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return ErrBadRequest.WithError(err)
	}

	fieldErrors := make([]map[string]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		fieldErrors = append(fieldErrors, map[string]string{
			"field":   fieldName(fieldErr),
			"message": validationMessage(fieldErr),
		})
	}

	return &AppError{
		Code:       "VALIDATION_ERROR",
		Message:    "One or more fields failed validation",
		StatusCode: http.StatusBadRequest,
		Details: map[string]interface{}{
			"fields": fieldErrors,
		},
	}
}

func fieldName(fe validator.FieldError) string {
	fieldMap := map[string]string{
		"CharityId":     "charityId",
		"AmountInCents": "amountInCents",
		"Recipient":     "recipient",
		"Amount":        "amount",
		"Note":          "note",
	}
	if mapped, ok := fieldMap[fe.Field()]; ok {
		return mapped
	}
	return fe.Field()
}

func validationMessage(fe validator.FieldError) string {
	name := fieldName(fe)

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", name)
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", name, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", name, fe.Param())
	case "min":
		return fmt.Sprintf("%s must have at least %s characters", name, fe.Param())
	case "max":
		return fmt.Sprintf("%s must have at most %s characters", name, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", name, fe.Param())
	case "email":
		return "Invalid email"
	case "numeric":
		return fmt.Sprintf("%s must be numeric", name)
	default:
		return fmt.Sprintf("Validation '%s' failed for %s", fe.Tag(), name)
	}
}
