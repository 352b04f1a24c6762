package domain

import (
	"errors"
	"fmt"
)

// ErrorKind classifies pipeline failures.
type ErrorKind string

const (
	KindFormat         ErrorKind = "FORMAT_ERROR"
	KindEnvelope       ErrorKind = "ENVELOPE_ERROR"
	KindInvalidOrder   ErrorKind = "INVALID_ORDER_ERROR"
	KindQuote          ErrorKind = "QUOTE_ERROR"
	KindBuild          ErrorKind = "BUILD_ERROR"
	KindTimeout        ErrorKind = "TIMEOUT_ERROR"
	KindSignerNotFound ErrorKind = "SIGNER_NOT_FOUND_ERROR"
	KindBroadcast      ErrorKind = "BROADCAST_ERROR"
)

// Sentinels for errors.Is. Any *Error of the same kind matches.
var (
	ErrFormat         = &Error{Kind: KindFormat}
	ErrEnvelope       = &Error{Kind: KindEnvelope}
	ErrInvalidOrder   = &Error{Kind: KindInvalidOrder}
	ErrQuote          = &Error{Kind: KindQuote}
	ErrBuild          = &Error{Kind: KindBuild}
	ErrTimeout        = &Error{Kind: KindTimeout}
	ErrSignerNotFound = &Error{Kind: KindSignerNotFound}
	ErrBroadcast      = &Error{Kind: KindBroadcast}
)

// Error is a kinded pipeline failure. Message carries the remote service's
// text unchanged; Code is the program error code when one was decoded.
type Error struct {
	Kind    ErrorKind
	Op      string
	Message string
	Code    *int64
	Err     error
}

// NewError builds an *Error of kind for operation op.
func NewError(kind ErrorKind, op, msg string, cause error) *Error {
	return &Error{Kind: kind, Op: op, Message: msg, Err: cause}
}

func (e *Error) Error() string {
	s := string(e.Kind)
	if e.Op != "" {
		s += " (" + e.Op + ")"
	}
	switch {
	case e.Message != "":
		s += ": " + e.Message
	case e.Err != nil:
		s += ": " + e.Err.Error()
	}
	if e.Code != nil {
		s += fmt.Sprintf(" [program error code %d]", *e.Code)
	}
	return s
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches any *Error with the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// KindOf returns the kind of the first *Error in err's chain, or "".
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}
