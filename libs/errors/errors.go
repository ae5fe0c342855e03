// Package errors provides the generic error layer shared across packages:
// every low-level failure (decoding, key handling, signature libraries)
// surfaces as an *Error carrying a Kind, an optional message and an optional
// wrapped cause.
package errors

import (
	"errors"
	"fmt"
)

// Kind classifies an error.
type Kind int

const (
	// Crypto means a cryptographic operation failed.
	Crypto Kind = iota
	// InvalidKey means a malformatted or otherwise invalid cryptographic key.
	InvalidKey
	// Io means an input/output error.
	Io
	// Length means a length was incorrect or too long.
	Length
	// Parse means some input could not be parsed.
	Parse
	// Protocol means a network protocol-related error.
	Protocol
	// OutOfRange means a value was out of range.
	OutOfRange
	// SignatureInvalid means a signature failed to verify.
	SignatureInvalid
)

func (k Kind) String() string {
	switch k {
	case Crypto:
		return "cryptographic error"
	case InvalidKey:
		return "invalid key"
	case Io:
		return "I/O error"
	case Length:
		return "length error"
	case Parse:
		return "parse error"
	case Protocol:
		return "protocol error"
	case OutOfRange:
		return "value out of range"
	case SignatureInvalid:
		return "bad signature"
	default:
		return fmt.Sprintf("unknown kind (%d)", int(k))
	}
}

// Error pairs a Kind with an optional message and an optional underlying
// cause.
type Error struct {
	kind  Kind
	msg   string
	cause error
}

var _ error = (*Error)(nil)

// New returns an error of the given kind with an optional message.
func New(kind Kind, msg string) *Error {
	return &Error{kind: kind, msg: msg}
}

// Newf is like New, with a formatted message.
func Newf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{kind: kind, msg: fmt.Sprintf(format, args...)}
}

// Wrap returns an error of the given kind wrapping the cause.
func Wrap(kind Kind, msg string, cause error) *Error {
	return &Error{kind: kind, msg: msg, cause: cause}
}

func (e *Error) Error() string {
	s := e.kind.String()
	if e.msg != "" {
		s += ": " + e.msg
	}
	if e.cause != nil {
		s += ": " + e.cause.Error()
	}
	return s
}

// Kind returns the error's kind.
func (e *Error) Kind() Kind {
	return e.kind
}

// Message returns the message associated with this error, if any.
func (e *Error) Message() string {
	return e.msg
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.cause
}

// Cause implements the causer interface from github.com/pkg/errors.
func (e *Error) Cause() error {
	return e.cause
}

// Is reports whether any error in err's chain is an *Error of the given kind.
func Is(err error, kind Kind) bool {
	var e *Error
	for errors.As(err, &e) {
		if e.kind == kind {
			return true
		}
		err = e.cause
		if err == nil {
			break
		}
	}
	return false
}
