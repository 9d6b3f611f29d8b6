package errors

import "errors"

// As is errors.As, re-exported so callers need only this package
func As(err error, target any) bool {
	return errors.As(err, target)
}

// CodeOf returns the code of the nearest *Error in err's chain. Plain errors
// are Internal and nil has no code.
func CodeOf(err error) Code {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeInternal
}

// IsNotFound reports whether err carries CodeNotFound
func IsNotFound(err error) bool { return CodeOf(err) == CodeNotFound }

// IsInvalidArgument reports whether err carries CodeInvalidArgument
func IsInvalidArgument(err error) bool { return CodeOf(err) == CodeInvalidArgument }

// IsFailedPrecondition reports whether err carries CodeFailedPrecondition
func IsFailedPrecondition(err error) bool { return CodeOf(err) == CodeFailedPrecondition }

// IsOutOfRange reports whether err carries CodeOutOfRange
func IsOutOfRange(err error) bool { return CodeOf(err) == CodeOutOfRange }

// IsInternal reports whether err carries CodeInternal
func IsInternal(err error) bool { return CodeOf(err) == CodeInternal }
