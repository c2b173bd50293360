package services

import (
	"fmt"
	"net/http"
)

type ErrorKind string

const (
	KindValidation    ErrorKind = "validation"
	KindExtraction    ErrorKind = "extraction"
	KindSummarization ErrorKind = "summarization"
	KindInternal      ErrorKind = "internal"
)

// ServiceError carries the HTTP status and client-facing detail of a failed step.
type ServiceError struct {
	Kind   ErrorKind
	Status int
	Detail string
	Err    error
}

func (e *ServiceError) Error() string {
	return e.Detail
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

func NewValidationError(format string, args ...interface{}) *ServiceError {
	return &ServiceError{
		Kind:   KindValidation,
		Status: http.StatusBadRequest,
		Detail: fmt.Sprintf(format, args...),
	}
}

func NewExtractionError(err error) *ServiceError {
	return &ServiceError{
		Kind:   KindExtraction,
		Status: http.StatusBadRequest,
		Detail: fmt.Sprintf("Error extracting text: %v", err),
		Err:    err,
	}
}

func NewSummarizationError(err error) *ServiceError {
	return &ServiceError{
		Kind:   KindSummarization,
		Status: http.StatusInternalServerError,
		Detail: fmt.Sprintf("Error generating summary: %v", err),
		Err:    err,
	}
}

func NewInternalError(err error) *ServiceError {
	return &ServiceError{
		Kind:   KindInternal,
		Status: http.StatusInternalServerError,
		Detail: fmt.Sprintf("Internal server error: %v", err),
		Err:    err,
	}
}
