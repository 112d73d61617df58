package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Not found errors
	ErrNotFound       = errors.New("resource not found")
	ErrSourceNotFound = fmt.Errorf("%w: data source", ErrNotFound)

	// Validation errors
	ErrMalformed        = errors.New("malformed data source")
	ErrUnknownField     = errors.New("unknown field")
	ErrInsufficientData = errors.New("insufficient data for analysis")
)

// LoadErrorKind distinguishes the two ways loading a record source can fail.
type LoadErrorKind string

const (
	LoadNotFound  LoadErrorKind = "not_found"
	LoadMalformed LoadErrorKind = "malformed"
)

// LoadError is returned when a record source cannot be turned into a store.
// Row is 1-based over data rows (the header is row 0); zero means unknown.
type LoadError struct {
	Kind   LoadErrorKind
	Source string
	Row    int
	Column string
	Err    error
}

func (e *LoadError) Error() string {
	msg := fmt.Sprintf("load %s: %s", e.Source, e.Kind)
	if e.Row > 0 {
		msg += fmt.Sprintf(" at row %d", e.Row)
	}
	if e.Column != "" {
		msg += fmt.Sprintf(" column %q", e.Column)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Is lets callers match on the kind through the sentinel errors.
func (e *LoadError) Is(target error) bool {
	switch e.Kind {
	case LoadNotFound:
		return target == ErrNotFound || target == ErrSourceNotFound
	case LoadMalformed:
		return target == ErrMalformed
	}
	return false
}

// Error constructors with context
func NewNotFoundError(source string, err error) error {
	return &LoadError{Kind: LoadNotFound, Source: source, Err: err}
}

func NewMalformedError(source string, row int, column string, err error) error {
	return &LoadError{Kind: LoadMalformed, Source: source, Row: row, Column: column, Err: err}
}

func NewUnknownFieldError(field string) error {
	return fmt.Errorf("%w: %q", ErrUnknownField, field)
}

func NewInsufficientDataError(reason string) error {
	return fmt.Errorf("%w: %s", ErrInsufficientData, reason)
}

// Error checking helpers
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsMalformedError(err error) bool {
	return errors.Is(err, ErrMalformed)
}

func IsInsufficientData(err error) bool {
	return errors.Is(err, ErrInsufficientData)
}
