package types

import "errors"

// ErrorCode is a machine-readable error code for CLI and JSON output.
type ErrorCode string

const (
	CodeUnknown       ErrorCode = "UNKNOWN"
	CodeNotFound      ErrorCode = "NOT_FOUND"
	CodeInvalidInput  ErrorCode = "INVALID_INPUT"
	CodeInvalidConfig ErrorCode = "INVALID_CONFIG"
)

// Code maps err to its ErrorCode. Wrapped sentinels are recognized.
func Code(err error) ErrorCode {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNotFound):
		return CodeNotFound
	case errors.Is(err, ErrInvalidInput):
		return CodeInvalidInput
	case errors.Is(err, ErrBackendEmpty),
		errors.Is(err, ErrBackendUnknown),
		errors.Is(err, ErrLogLevelUnknown):
		return CodeInvalidConfig
	default:
		return CodeUnknown
	}
}

// IsUserError reports whether err was caused by caller input rather than
// a system failure.
func IsUserError(err error) bool {
	return Code(err) != CodeUnknown && err != nil
}
