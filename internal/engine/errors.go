package engine

import (
	"errors"
	"fmt"
	"strings"
)

// Error codes for progression operations.
const (
	// CodeInvalidInput marks malformed arguments (difficulty, priority,
	// task kind). Fatal to the calling operation; nothing is mutated.
	CodeInvalidInput = "INVALID_INPUT"

	// CodeRequirementsNotMet marks a purchase, toggle or profile change
	// attempted without the required coins, XP or achievements. Non-fatal;
	// the missing requirements are reported and nothing is mutated.
	CodeRequirementsNotMet = "REQUIREMENTS_NOT_MET"

	// CodeNotFound marks an operation referencing an unknown task or item.
	CodeNotFound = "NOT_FOUND"
)

// Error is the domain error for all progression operations.
type Error struct {
	Code    string
	Message string
	Err     error

	// Missing holds the unmet requirements for REQUIREMENTS_NOT_MET errors.
	Missing []string
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// ErrInvalidInput returns an error for a malformed argument value.
func ErrInvalidInput(field, value string) *Error {
	return &Error{
		Code:    CodeInvalidInput,
		Message: fmt.Sprintf("invalid %s: %q", field, value),
	}
}

// ErrNotFound returns an error for an unknown entity reference.
func ErrNotFound(entity string, id any) *Error {
	return &Error{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s %v not found", entity, id),
	}
}

// ErrRequirementsNotMet reports which requirements block an operation.
func ErrRequirementsNotMet(subject string, missing []string) *Error {
	return &Error{
		Code:    CodeRequirementsNotMet,
		Message: fmt.Sprintf("%s blocked: %s", subject, strings.Join(missing, "; ")),
		Missing: missing,
	}
}

// IsCode reports whether err is an engine Error carrying the given code.
func IsCode(err error, code string) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == code
}
