package errors

import (
	"errors"
	"fmt"
)

// Category represents the type of error.
type Category string

const (
	CategoryConfig  Category = "config"
	CategoryPublish Category = "publish"
	CategoryServer  Category = "server"
	CategoryRender  Category = "render"
	CategoryCLI     Category = "cli"
)

// UIError is a structured error with an explanation and a suggested fix.
type UIError struct {
	// Code is a unique error identifier (e.g., "E101").
	Code string

	// Category is the error type.
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *UIError) Error() string {
	msg := e.Message
	if e.Code != "" {
		msg = e.Code + ": " + msg
	}
	if e.Wrapped != nil {
		msg += ": " + e.Wrapped.Error()
	}
	return msg
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *UIError) Unwrap() error {
	return e.Wrapped
}

// WithDetail adds a detailed explanation to the error.
func (e *UIError) WithDetail(d string) *UIError {
	e.Detail = d
	return e
}

// WithSuggestion adds a fix suggestion to the error.
func (e *UIError) WithSuggestion(s string) *UIError {
	e.Suggestion = s
	return e
}

// Wrap wraps another error.
func (e *UIError) Wrap(err error) *UIError {
	e.Wrapped = err
	return e
}

// New creates a UIError from a registered error code.
func New(code string) *UIError {
	template, ok := registry[code]
	if !ok {
		return &UIError{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &UIError{
		Code:     code,
		Category: template.Category,
		Message:  template.Message,
		Detail:   template.Detail,
	}
}

// Newf creates a UIError with a formatted message and no code.
func Newf(category Category, format string, args ...any) *UIError {
	return &UIError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps a standard error in a UIError with the given code. An
// error that already is (or wraps) a UIError is returned as that UIError.
func FromError(err error, code string) *UIError {
	if err == nil {
		return nil
	}
	var ue *UIError
	if errors.As(err, &ue) {
		return ue
	}
	return New(code).Wrap(err)
}

// HasCode reports whether err is, or wraps, a UIError with the given code.
func HasCode(err error, code string) bool {
	var ue *UIError
	return errors.As(err, &ue) && ue.Code == code
}
