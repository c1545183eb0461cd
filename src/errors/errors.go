// Package errors defines the error kinds surfaced while loading result sets and rendering charts.
package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCode classifies a ReportError.
type ErrorCode string

const (
	ErrNotFound       ErrorCode = "NOT_FOUND"       // input path absent
	ErrMalformedInput ErrorCode = "MALFORMED_INPUT" // expected key/field missing or of the wrong type
	ErrRender         ErrorCode = "RENDER"          // output could not be produced
	ErrInvalidSpec    ErrorCode = "INVALID_SPEC"    // chart specification failed validation
)

// ReportError is the structured error returned by the loader and the renderer.
type ReportError struct {
	Code    ErrorCode
	Path    string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ReportError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Code, e.Message)
	if e.Path != "" {
		msg = fmt.Sprintf("%s: %s: %s", e.Code, e.Path, e.Message)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying cause, if any.
func (e *ReportError) Unwrap() error { return e.Err }

// NewNotFound reports a missing input file.
func NewNotFound(path string, err error) *ReportError {
	return &ReportError{Code: ErrNotFound, Path: path, Message: "input not found", Err: err}
}

// NewMalformedInput reports a document that does not match the expected layout.
func NewMalformedInput(path, format string, args ...any) *ReportError {
	return &ReportError{Code: ErrMalformedInput, Path: path, Message: fmt.Sprintf(format, args...)}
}

// NewRender reports a failure of the drawing surface or output sink.
func NewRender(path string, err error, format string, args ...any) *ReportError {
	return &ReportError{Code: ErrRender, Path: path, Message: fmt.Sprintf(format, args...), Err: err}
}

// NewInvalidSpec reports a chart specification that cannot be rendered.
func NewInvalidSpec(format string, args ...any) *ReportError {
	return &ReportError{Code: ErrInvalidSpec, Message: fmt.Sprintf(format, args...)}
}

// Is checks whether err (or anything it wraps) is a ReportError with the given code.
func Is(err error, code ErrorCode) bool {
	var rErr *ReportError
	if stderrors.As(err, &rErr) {
		return rErr.Code == code
	}
	return false
}

// CodeOf returns the code of the first ReportError in err's chain, or "" when there is none.
func CodeOf(err error) ErrorCode {
	var rErr *ReportError
	if stderrors.As(err, &rErr) {
		return rErr.Code
	}
	return ""
}
