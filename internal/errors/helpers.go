package errors

import (
	"errors"
)

// As is errors.As narrowed to *Error.
func As(err error, target **Error) bool {
	return errors.As(err, target)
}

// Is forwards to the standard library so callers only import one package.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// find returns the outermost *Error in err's chain.
func find(err error) (*Error, bool) {
	if err == nil {
		return nil, false
	}
	var found *Error
	if !errors.As(err, &found) {
		return nil, false
	}
	return found, true
}

// GetCode reports CodeOK for nil and CodeInternal for foreign errors.
func GetCode(err error) Code {
	if err == nil {
		return CodeOK
	}
	if found, ok := find(err); ok {
		return found.Code
	}
	return CodeInternal
}

// GetMeta returns the metadata of the outermost *Error, which already
// includes anything it inherited through Wrap.
func GetMeta(err error) map[string]any {
	if found, ok := find(err); ok {
		return found.Meta
	}
	return nil
}

// GetMessage returns the message without the code prefix or cause chain.
func GetMessage(err error) string {
	if err == nil {
		return ""
	}
	if found, ok := find(err); ok {
		return found.Message
	}
	return err.Error()
}

// IsNotFound reports whether err is a NOT_FOUND error
func IsNotFound(err error) bool {
	return GetCode(err) == CodeNotFound
}

// IsInvalidArgument reports whether err is an INVALID_ARGUMENT error
func IsInvalidArgument(err error) bool {
	return GetCode(err) == CodeInvalidArgument
}

// IsFailedPrecondition reports whether err is a FAILED_PRECONDITION error
func IsFailedPrecondition(err error) bool {
	return GetCode(err) == CodeFailedPrecondition
}

// IsOutOfRange reports whether err is an OUT_OF_RANGE error
func IsOutOfRange(err error) bool {
	return GetCode(err) == CodeOutOfRange
}

// IsInternal reports whether err is INTERNAL, which includes foreign errors
func IsInternal(err error) bool {
	return GetCode(err) == CodeInternal
}
