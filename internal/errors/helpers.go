package errors

import (
	"errors"
)

// As is errors.As narrowed to *Error
func As(err error, target **Error) bool {
	return errors.As(err, target)
}

// Is forwards to the standard library so callers need only one errors import
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// GetCode returns the code of err. Plain errors count as Internal.
func GetCode(err error) Code {
	if err == nil {
		return CodeOK
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeInternal
}

// GetMeta returns the metadata of err, or nil
func GetMeta(err error) map[string]any {
	var e *Error
	if errors.As(err, &e) {
		return e.Meta
	}
	return nil
}

func IsNotFound(err error) bool { return GetCode(err) == CodeNotFound }

func IsInvalidArgument(err error) bool { return GetCode(err) == CodeInvalidArgument }

func IsAlreadyExists(err error) bool { return GetCode(err) == CodeAlreadyExists }

func IsFailedPrecondition(err error) bool { return GetCode(err) == CodeFailedPrecondition }

func IsAborted(err error) bool { return GetCode(err) == CodeAborted }

func IsInternal(err error) bool { return GetCode(err) == CodeInternal }

func IsUnavailable(err error) bool { return GetCode(err) == CodeUnavailable }

func IsCanceled(err error) bool { return GetCode(err) == CodeCanceled }

func IsDeadlineExceeded(err error) bool { return GetCode(err) == CodeDeadlineExceeded }
