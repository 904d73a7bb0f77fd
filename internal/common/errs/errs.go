// Released under an MIT license. See LICENSE.

// Package errs provides the error type returned by every stage of speak.
package errs

import (
	"errors"
	"fmt"
)

// Reason classifies an error.
type Reason int

// Error reasons.
const (
	Syntax Reason = iota
	Runtime
	System
	Assert
)

// String returns the name of the reason r.
func (r Reason) String() string {
	switch r {
	case Syntax:
		return "syntax error"
	case Runtime:
		return "runtime error"
	case System:
		return "system error"
	case Assert:
		return "invariant violation"
	}

	return "unknown error"
}

// T (errs) pairs a reason with a message.
type T struct {
	Reason  Reason
	Message string
}

// New creates a new error with the reason r and a formatted message.
func New(r Reason, format string, args ...interface{}) *T {
	return &T{Reason: r, Message: fmt.Sprintf(format, args...)}
}

// Error returns the reason and message as a single string.
func (e *T) Error() string {
	return e.Reason.String() + ": " + e.Message
}

// Constructors for each reason.

// Syntaxf creates a syntax error.
func Syntaxf(format string, args ...interface{}) *T {
	return New(Syntax, format, args...)
}

// Runtimef creates a runtime error.
func Runtimef(format string, args ...interface{}) *T {
	return New(Runtime, format, args...)
}

// Systemf creates a system error.
func Systemf(format string, args ...interface{}) *T {
	return New(System, format, args...)
}

// Assertf creates an invariant violation.
func Assertf(format string, args ...interface{}) *T {
	return New(Assert, format, args...)
}

// Wrap converts a Go error into a system error. Errors that are already
// a *T are returned unchanged.
func Wrap(err error) error {
	if err == nil {
		return nil
	}

	if _, ok := To(err); ok {
		return err
	}

	return &T{Reason: System, Message: err.Error()}
}

// Is returns true if err is a *T with the reason r.
func Is(err error, r Reason) bool {
	e, ok := To(err)

	return ok && e.Reason == r
}

// To returns the *T in err's chain, if any.
func To(err error) (*T, bool) {
	var e *T
	if errors.As(err, &e) {
		return e, true
	}

	return nil, false
}
