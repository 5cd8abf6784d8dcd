package apperror

import (
	"errors"
	"fmt"
)

// Kind classifies a failure so the transport layer can map it to a response
// without parsing error strings.
type Kind string

const (
	KindNotFound         Kind = "not_found"
	KindDuplicateKey     Kind = "duplicate_key"
	KindInvalidReference Kind = "invalid_reference"
	KindValidation       Kind = "validation"
	KindStore            Kind = "store"
)

// Error is the typed failure surfaced by the usecases and repositories.
type Error struct {
	Kind   Kind
	Entity string // entity name for NotFound, e.g. "media"
	Field  string // offending field for duplicate/invalid/validation kinds
	Reason string // human-readable detail for validation failures
	cause  error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindNotFound:
		return fmt.Sprintf("%s not found", e.Entity)
	case KindDuplicateKey:
		return fmt.Sprintf("a record with that %s already exists", e.Field)
	case KindInvalidReference:
		return fmt.Sprintf("the referenced %s does not exist or is not active", e.Field)
	case KindValidation:
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
	case KindStore:
		return fmt.Sprintf("store failure: %v", e.cause)
	}
	return "unknown error"
}

func (e *Error) Unwrap() error {
	return e.cause
}

func NotFound(entity string) *Error {
	return &Error{Kind: KindNotFound, Entity: entity}
}

func DuplicateKey(field string) *Error {
	return &Error{Kind: KindDuplicateKey, Field: field}
}

func InvalidReference(field string) *Error {
	return &Error{Kind: KindInvalidReference, Field: field}
}

func Validation(field, reason string) *Error {
	return &Error{Kind: KindValidation, Field: field, Reason: reason}
}

func Store(err error) *Error {
	return &Error{Kind: KindStore, cause: err}
}

// KindOf returns the kind of err, or the empty string for untyped errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

func IsNotFound(err error) bool {
	return KindOf(err) == KindNotFound
}

func IsDuplicateKey(err error) bool {
	return KindOf(err) == KindDuplicateKey
}

func IsInvalidReference(err error) bool {
	return KindOf(err) == KindInvalidReference
}

func IsValidation(err error) bool {
	return KindOf(err) == KindValidation
}
