package serrors

import (
	"errors"
	"fmt"
	"regexp"
)

// Well-known error codes shared across the transport and store layers.
const (
	CodeEmptyResult   = "EMPTY_RESULT"
	CodeRequestFailed = "REQUEST_FAILED"
	CodeTransport     = "TRANSPORT_ERROR"
	CodeDecode        = "DECODE_FAILED"
	CodeValidation    = "VALIDATION_FAILED"
	CodeUnauthorized  = "UNAUTHORIZED"
	CodeForbidden     = "FORBIDDEN"
)

// Base is a coded error. Code is stable and machine-readable, Message is the
// human-readable text surfaced to the UI layer.
type Base struct {
	Code    string
	Message string
	cause   error
}

func NewError(code, message string) *Base {
	return &Base{Code: code, Message: message}
}

func Wrap(err error, code, message string) *Base {
	return &Base{Code: code, Message: message, cause: err}
}

func (e *Base) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Base) Unwrap() error { return e.cause }

// Is matches two coded errors by code alone, so sentinel comparisons work
// regardless of message wording.
func (e *Base) Is(target error) bool {
	var other *Base
	if !errors.As(target, &other) {
		return false
	}
	return other.Code == e.Code
}

// Code extracts the code from a coded error, or "" for any other error.
func Code(err error) string {
	var base *Base
	if errors.As(err, &base) {
		return base.Code
	}
	return ""
}

// Message returns the human-readable message for an error. Coded errors
// surface their Message field; anything else falls back to Error().
func Message(err error) string {
	if err == nil {
		return ""
	}
	var base *Base
	if errors.As(err, &base) {
		return base.Message
	}
	return err.Error()
}

// emptyResultPattern is the legacy fallback: backends that predate the
// EMPTY_RESULT code signal an empty collection with a "no <things> found"
// message body.
var emptyResultPattern = regexp.MustCompile(`(?i)\bno\b.*\bfound\b|\bnot found\b`)

// IsEmptyResult reports whether err represents an empty collection rather
// than a true failure. The structured EMPTY_RESULT code is authoritative;
// the message pattern is kept for backends that only return prose.
func IsEmptyResult(err error) bool {
	if err == nil {
		return false
	}
	if Code(err) == CodeEmptyResult {
		return true
	}
	return IsEmptyResultMessage(Message(err))
}

// IsEmptyResultMessage applies the legacy prose classification on its own.
func IsEmptyResultMessage(message string) bool {
	return emptyResultPattern.MatchString(message)
}
