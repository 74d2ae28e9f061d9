// Package apperrors defines the error taxonomy shared by services and
// handlers: validation failures, unresolved lookups and malformed composite
// requests. Handlers translate these into HTTP status codes.
package apperrors

import "errors"

// ValidationError signals a missing or malformed field on an otherwise
// well-formed request.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func NewValidation(message string) error {
	return &ValidationError{Message: message}
}

// NotFoundError signals that an id or lookup key did not resolve to a
// stored record.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

func NewNotFound(message string) error {
	return &NotFoundError{Message: message}
}

// InvalidRequestError signals a composite request that cannot be processed,
// e.g. an order with no items.
type InvalidRequestError struct {
	Message string
}

func (e *InvalidRequestError) Error() string { return e.Message }

func NewInvalidRequest(message string) error {
	return &InvalidRequestError{Message: message}
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func IsNotFound(err error) bool {
	var nfe *NotFoundError
	return errors.As(err, &nfe)
}

func IsInvalidRequest(err error) bool {
	var ire *InvalidRequestError
	return errors.As(err, &ire)
}
