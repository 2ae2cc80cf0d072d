package pkg

import (
	"fmt"
	"strings"

	"github.com/LerianStudio/dweb-gateway/constant"
)

// ValidationError records an error caused by an invalid inbound request.
type ValidationError struct {
	EntityType string `json:"entityType,omitempty"`
	Title      string
	Message    string
	Code       string
	Err        error `json:"err,omitempty"`
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	if strings.TrimSpace(e.Code) != "" {
		return fmt.Sprintf("%s - %s", e.Code, e.Message)
	}

	return e.Message
}

// Unwrap implements the error interface introduced in Go 1.13 to unwrap the internal error.
func (e ValidationError) Unwrap() error {
	return e.Err
}

// GatewayError indicates an upstream collaborator (record lookup, content
// gateway or passthrough origin) could not be reached.
type GatewayError struct {
	EntityType string `json:"entityType,omitempty"`
	Title      string `json:"title,omitempty"`
	Message    string `json:"message,omitempty"`
	Code       string `json:"code,omitempty"`
	Err        error  `json:"err,omitempty"`
}

func (e GatewayError) Error() string {
	if e.Err != nil && strings.TrimSpace(e.Message) == "" {
		return e.Err.Error()
	}

	return e.Message
}

// Unwrap implements the error interface introduced in Go 1.13 to unwrap the internal error.
func (e GatewayError) Unwrap() error {
	return e.Err
}

// InternalServerError indicates an unexpected failure while handling a request.
type InternalServerError struct {
	EntityType string `json:"entityType,omitempty"`
	Title      string `json:"title,omitempty"`
	Message    string `json:"message,omitempty"`
	Code       string `json:"code,omitempty"`
	Err        error  `json:"err,omitempty"`
}

func (e InternalServerError) Error() string {
	return e.Message
}

// Unwrap implements the error interface introduced in Go 1.13 to unwrap the internal error.
func (e InternalServerError) Unwrap() error {
	return e.Err
}

// ValidationKnownFieldsError records an error that occurred during a validation of known fields.
type ValidationKnownFieldsError struct {
	EntityType string           `json:"entityType,omitempty"`
	Title      string           `json:"title,omitempty"`
	Code       string           `json:"code,omitempty"`
	Message    string           `json:"message,omitempty"`
	Fields     FieldValidations `json:"fields,omitempty"`
}

// Error returns the error message for a ValidationKnownFieldsError.
func (r ValidationKnownFieldsError) Error() string {
	return r.Message
}

// FieldValidations is a map of known fields and their validation errors.
type FieldValidations map[string]string

// ValidateInternalError wraps err into an InternalServerError with the generic code.
func ValidateInternalError(err error, entityType string) error {
	return InternalServerError{
		EntityType: entityType,
		Code:       constant.ErrInternalServer.Error(),
		Title:      "Internal Server Error",
		Message:    "The server encountered an unexpected error. Please try again later or contact support.",
		Err:        err,
	}
}

// ValidateBusinessError maps a coded sentinel error to its business error with
// code, title and message. Unknown errors are returned unchanged.
func ValidateBusinessError(err error, entityType string, args ...any) error {
	errorMap := map[error]error{
		constant.ErrMissingHost: ValidationError{
			EntityType: entityType,
			Code:       constant.ErrMissingHost.Error(),
			Title:      "Missing Host",
			Message:    "The request has no host. Please address the request to a domain.",
		},
		constant.ErrLookupFailed: GatewayError{
			EntityType: entityType,
			Code:       constant.ErrLookupFailed.Error(),
			Title:      "Record Lookup Failed",
			Message:    fmt.Sprintf("The records of account %s could not be fetched. Please try again later.", args...),
		},
		constant.ErrUpstreamFetchFailed: GatewayError{
			EntityType: entityType,
			Code:       constant.ErrUpstreamFetchFailed.Error(),
			Title:      "Upstream Fetch Failed",
			Message:    fmt.Sprintf("The content gateway %s could not be reached. Please try again later.", args...),
		},
		constant.ErrPassthroughFailed: GatewayError{
			EntityType: entityType,
			Code:       constant.ErrPassthroughFailed.Error(),
			Title:      "Origin Unreachable",
			Message:    fmt.Sprintf("The origin %s could not be reached. Please try again later.", args...),
		},
		constant.ErrPassthroughLoop: GatewayError{
			EntityType: entityType,
			Code:       constant.ErrPassthroughLoop.Error(),
			Title:      "Passthrough Loop",
			Message:    fmt.Sprintf("The request for %s was forwarded back to the gateway. Please configure a passthrough origin.", args...),
		},
	}

	if mappedError, found := errorMap[err]; found {
		return mappedError
	}

	return err
}
