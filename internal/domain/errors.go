package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent error conditions in lagoon.
// These errors can be checked with errors.Is.
var (
	// ErrEmptyInput is returned when the input has no non-whitespace content.
	ErrEmptyInput = errors.New("lagoon: input is empty")

	// ErrMalformedLine is returned when a line is not "<letter> <number> (#<hex>)".
	ErrMalformedLine = errors.New("lagoon: malformed line")

	// ErrInvalidDirection is returned when a direction cannot be decoded.
	ErrInvalidDirection = errors.New("lagoon: invalid direction")

	// ErrOpenPath is returned by the closure check when the path does not end at the origin.
	ErrOpenPath = errors.New("lagoon: path does not return to origin")
)

// ErrorKind classifies a ParseError.
type ErrorKind int

const (
	EmptyInput ErrorKind = iota
	MalformedLine
	InvalidDirection
)

// String returns a human-readable representation of the kind.
func (k ErrorKind) String() string {
	switch k {
	case EmptyInput:
		return "EmptyInput"
	case MalformedLine:
		return "MalformedLine"
	case InvalidDirection:
		return "InvalidDirection"
	default:
		return "Unknown"
	}
}

// ParseError describes why an input could not be turned into a Plan.
type ParseError struct {
	Kind ErrorKind

	// Line is the 1-based line number, zero for whole-input errors.
	Line int

	// Input is the offending line as read.
	Input string

	// Reason is an optional detail, e.g. the rejected field.
	Reason string
}

func (e *ParseError) Error() string {
	var msg string
	switch e.Kind {
	case EmptyInput:
		return ErrEmptyInput.Error()
	case MalformedLine:
		msg = ErrMalformedLine.Error()
	case InvalidDirection:
		msg = ErrInvalidDirection.Error()
	default:
		msg = "lagoon: parse error"
	}
	if e.Reason != "" {
		msg += " (" + e.Reason + ")"
	}
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s: %q", e.Line, msg, e.Input)
	}
	return fmt.Sprintf("%s: %q", msg, e.Input)
}

// Unwrap returns the sentinel error matching the kind.
func (e *ParseError) Unwrap() error {
	switch e.Kind {
	case EmptyInput:
		return ErrEmptyInput
	case MalformedLine:
		return ErrMalformedLine
	case InvalidDirection:
		return ErrInvalidDirection
	default:
		return nil
	}
}
