package domain

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a domain error for the HTTP boundary.
type ErrorKind string

const (
	KindNotFound     ErrorKind = "not_found"
	KindBusinessRule ErrorKind = "business_rule"
	KindValidation   ErrorKind = "validation"
	KindConflict     ErrorKind = "conflict"
	KindInternal     ErrorKind = "internal"
)

// DomainError is a tagged error carried from the services to the HTTP layer.
type DomainError struct {
	Kind        ErrorKind
	Message     string
	FieldErrors map[string]string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewNotFoundError creates a not-found error for an entity and its id.
func NewNotFoundError(entity, id string) *DomainError {
	return &DomainError{
		Kind:    KindNotFound,
		Message: fmt.Sprintf("%s não encontrado com id: %s", entity, id),
	}
}

// NewBusinessError creates a business-rule violation error.
func NewBusinessError(message string) *DomainError {
	return &DomainError{Kind: KindBusinessRule, Message: message}
}

// NewValidationError creates a validation error with optional per-field messages.
func NewValidationError(message string, fieldErrors map[string]string) *DomainError {
	return &DomainError{Kind: KindValidation, Message: message, FieldErrors: fieldErrors}
}

// NewConflictError creates a conflict error for store-level rejections.
func NewConflictError(message string) *DomainError {
	return &DomainError{Kind: KindConflict, Message: message}
}

// KindOf extracts the error kind, defaulting to KindInternal.
func KindOf(err error) ErrorKind {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindInternal
}

// IsNotFound reports whether err is a not-found domain error.
func IsNotFound(err error) bool {
	return KindOf(err) == KindNotFound
}

// IsBusinessRule reports whether err is a business-rule domain error.
func IsBusinessRule(err error) bool {
	return KindOf(err) == KindBusinessRule
}
