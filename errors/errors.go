package errors

import (
	// Go Internal Packages
	"fmt"
	"strings"
)

// Kind classifies an error for callers that branch on the failure class
// rather than on the message text.
type Kind uint8

const (
	Other Kind = iota
	Invalid
	NotFound
	Internal
)

func (k Kind) String() string {
	switch k {
	case Invalid:
		return "invalid"
	case NotFound:
		return "not_found"
	case Internal:
		return "internal"
	}
	return "other"
}

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %s", e.Kind, e.Message, e.Err.Error())
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// E builds an *Error from a kind, a message and an optional cause.
func E(kind Kind, msg string, err error) error {
	return &Error{Kind: kind, Message: msg, Err: err}
}

// ValidationErrors collects per-field validation failures so a config or
// payload check can report all of them in one error.
type ValidationErrors struct {
	fields []fieldError
}

type fieldError struct {
	field  string
	reason string
}

func ValidationErrs() *ValidationErrors {
	return &ValidationErrors{}
}

// Add records a failure for the given field.
func (v *ValidationErrors) Add(field, reason string) {
	v.fields = append(v.fields, fieldError{field: field, reason: reason})
}

// Err returns nil when no failures were recorded.
func (v *ValidationErrors) Err() error {
	if len(v.fields) == 0 {
		return nil
	}
	return v
}

func (v *ValidationErrors) Error() string {
	parts := make([]string, len(v.fields))
	for i, f := range v.fields {
		parts[i] = fmt.Sprintf("%s: %s", f.field, f.reason)
	}
	return strings.Join(parts, "; ")
}
