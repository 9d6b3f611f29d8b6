package errors

import (
	"errors"
	"fmt"
	"maps"
)

// Error is a coded error with a caller-facing message
type Error struct {
	Code    Code           `json:"code"`
	Message string         `json:"message"`
	Cause   error          `json:"-"`
	Meta    map[string]any `json:"meta,omitempty"`
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return string(e.Code) + ": " + e.Message
	}
	return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches any *Error carrying the same code
func (e *Error) Is(target error) bool {
	var other *Error
	return errors.As(target, &other) && other.Code == e.Code
}

// WithMeta attaches a key to the error and returns it
func (e *Error) WithMeta(key string, value any) *Error {
	if e.Meta == nil {
		e.Meta = make(map[string]any)
	}
	e.Meta[key] = value
	return e
}

func newError(code Code, format string, args ...any) *Error {
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	return &Error{Code: code, Message: msg}
}

// NotFound reports a missing actor, item or roll log
func NotFound(message string) *Error {
	return newError(CodeNotFound, message)
}

// NotFoundf is NotFound with a formatted message
func NotFoundf(format string, args ...any) *Error {
	return newError(CodeNotFound, format, args...)
}

// InvalidArgument reports a bad request or configuration
func InvalidArgument(message string) *Error {
	return newError(CodeInvalidArgument, message)
}

// InvalidArgumentf is InvalidArgument with a formatted message
func InvalidArgumentf(format string, args ...any) *Error {
	return newError(CodeInvalidArgument, format, args...)
}

// FailedPrecondition reports an actor that cannot perform the request as stored
func FailedPrecondition(message string) *Error {
	return newError(CodeFailedPrecondition, message)
}

// OutOfRangef reports a value outside its table
func OutOfRangef(format string, args ...any) *Error {
	return newError(CodeOutOfRange, format, args...)
}

// Internal reports a failure the caller cannot fix
func Internal(message string) *Error {
	return newError(CodeInternal, message)
}

// Wrap adds context to err. The code and metadata of the nearest *Error in
// the chain carry over; any other error becomes Internal.
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}
	return wrap(err, CodeOf(err), message)
}

// Wrapf is Wrap with a formatted message
func Wrapf(err error, format string, args ...any) *Error {
	if err == nil {
		return nil
	}
	return wrap(err, CodeOf(err), fmt.Sprintf(format, args...))
}

// WrapWithCode adds context to err under a new code. Typed causes stay
// reachable through As.
func WrapWithCode(err error, code Code, message string) *Error {
	if err == nil {
		return nil
	}
	return wrap(err, code, message)
}

func wrap(err error, code Code, message string) *Error {
	wrapped := &Error{Code: code, Message: message, Cause: err}

	var inner *Error
	if errors.As(err, &inner) && len(inner.Meta) > 0 {
		wrapped.Meta = maps.Clone(inner.Meta)
	}
	return wrapped
}
