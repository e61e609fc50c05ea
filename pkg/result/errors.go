package result

import (
	"errors"
	"fmt"
)

var (
	// ErrNotResult matches every NonResultError and every decoding failure
	// caused by a value that does not have the Result shape.
	ErrNotResult = errors.New("non-result value")
	// ErrUnwrapErr matches every UnwrapError.
	ErrUnwrapErr = errors.New("unwrapping an error result")
	// ErrUnwrapOk matches every UnwrapOkError.
	ErrUnwrapOk = errors.New("unwrapping an ok result")
)

// NonResultError is raised when a value extracted from is not a Result.
type NonResultError struct {
	Value any
	msg   string
}

func newNonResultError(value any, label string) *NonResultError {
	msg := "Unwrapping a non-result value: " + render(value)
	if label != "" {
		msg = fmt.Sprintf("%s: Expecting result from a non-result value: %s", label, render(value))
	}
	return &NonResultError{Value: value, msg: msg}
}

func (e *NonResultError) Error() string {
	return e.msg
}

func (e *NonResultError) Unwrap() error {
	return ErrNotResult
}

// UnwrapError is raised when the success payload is requested from an Err.
type UnwrapError struct {
	Payload any
	msg     string
}

func newUnwrapError(payload any, label string) *UnwrapError {
	if label == "" {
		label = "Unwrapping an error result"
	}
	return &UnwrapError{
		Payload: payload,
		msg:     label + ": " + render(payload),
	}
}

func (e *UnwrapError) Error() string {
	return e.msg
}

// Unwrap exposes the failure payload too when it is itself an error.
func (e *UnwrapError) Unwrap() []error {
	if err, ok := e.Payload.(error); ok && !IsNil(err) {
		return []error{ErrUnwrapErr, err}
	}
	return []error{ErrUnwrapErr}
}

// UnwrapOkError is raised when the failure payload is requested from an Ok.
type UnwrapOkError struct {
	Payload any
	msg     string
}

func newUnwrapOkError(payload any) *UnwrapOkError {
	return &UnwrapOkError{
		Payload: payload,
		msg:     "Unwrapping an ok result: " + render(payload),
	}
}

func (e *UnwrapOkError) Error() string {
	return e.msg
}

func (e *UnwrapOkError) Unwrap() error {
	return ErrUnwrapOk
}
