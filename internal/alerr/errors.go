// Package alerr provides the coded errors tstamp reports to users.
//
// Every error carries a stable code (E1xxx usage, E2xxx conversion, E9xxx
// internal), a message, optional key/value context, and the notes and help
// lines a diagnostic prints under it.
package alerr

import (
	"errors"
	"fmt"
	"runtime"
	"slices"
	"strings"
)

// Code represents a stable, machine-readable error code.
// Format: E{category}{number} where category is 1, 2 or 9 and number is 001-999.
type Code string

// Error codes organized by category.
const (
	// Usage errors (E1xxx) - malformed or contradictory invocations
	ErrConflictingOutput Code = "E1001" // More than one output flag was given
	ErrAmbiguousInput    Code = "E1002" // More than one input selector was given
	ErrMissingValue      Code = "E1003" // Input mode needs a value and none was given
	ErrUnknownInputMode  Code = "E1004" // --from keyword is not recognized
	ErrUnexpectedArgs    Code = "E1005" // Too many or misplaced positional arguments
	ErrInvalidFlag       Code = "E1006" // Flag parsing failed (unknown flag, bad syntax)

	// Conversion errors (E2xxx) - the input could not become an instant
	ErrInvalidInteger Code = "E2001" // Value is not a signed 64-bit integer
	ErrOutOfRange     Code = "E2002" // Seconds/nanoseconds pair is not a valid calendar instant

	// Internal errors (E9xxx)
	EInternalError Code = "E9001"
)

// Category groups codes by the kind of failure they describe.
type Category int

const (
	CategoryUnknown Category = iota
	CategoryUsage
	CategoryConversion
	CategoryInternal
)

// Category returns the category encoded in the code's leading digit.
func (c Code) Category() Category {
	if len(c) < 2 || c[0] != 'E' {
		return CategoryUnknown
	}
	switch c[1] {
	case '1':
		return CategoryUsage
	case '2':
		return CategoryConversion
	case '9':
		return CategoryInternal
	}
	return CategoryUnknown
}

// Error is a coded tstamp error.
type Error struct {
	code    Code
	message string
	context map[string]any
	notes   []string
	helps   []string
	cause   error
	stack   string // only captured for internal errors
}

// Error returns the single-string form used in logs and tests:
//
//	[E1001] conflicting output flags
//	  flags: --millis, --nanos
//	  cause: ...
func (e *Error) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s", e.code, e.message)
	for _, k := range e.ContextKeys() {
		fmt.Fprintf(&b, "\n  %s: %v", k, e.context[k])
	}
	if e.cause != nil {
		fmt.Fprintf(&b, "\n  cause: %v", e.cause)
	}
	return b.String()
}

func (e *Error) Unwrap() error { return e.cause }

// Is matches any *Error with the same code.
func (e *Error) Is(target error) bool {
	var other *Error
	if target == nil || !errors.As(target, &other) {
		return false
	}
	return e.code == other.code
}

func (e *Error) GetCode() Code              { return e.code }
func (e *Error) GetMessage() string         { return e.message }
func (e *Error) GetCause() error            { return e.cause }
func (e *Error) GetStack() string           { return e.stack }
func (e *Error) GetContext() map[string]any { return e.context }
func (e *Error) Notes() []string            { return e.notes }
func (e *Error) Helps() []string            { return e.helps }

// ContextKeys returns the context keys in sorted order.
func (e *Error) ContextKeys() []string {
	keys := make([]string, 0, len(e.context))
	for k := range e.context {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Detail returns the message followed by the cause, without code or context.
// This is the text shown after "Could not parse input:".
func (e *Error) Detail() string {
	if e.cause == nil {
		return e.message
	}
	return e.message + ": " + e.cause.Error()
}

// With adds a key-value pair to the error context.
func (e *Error) With(key string, value any) *Error {
	if e.context == nil {
		e.context = make(map[string]any)
	}
	e.context[key] = value
	return e
}

// WithFlag records the offending long flag, e.g. WithFlag("from") -> "--from".
func (e *Error) WithFlag(name string) *Error {
	return e.With("flag", "--"+name)
}

// WithValue records the offending raw value.
func (e *Error) WithValue(value string) *Error {
	return e.With("value", value)
}

// WithNote adds a "note: ..." line.
func (e *Error) WithNote(note string) *Error {
	e.notes = append(e.notes, note)
	return e
}

// WithHelp adds a "help: ..." line.
func (e *Error) WithHelp(help string) *Error {
	e.helps = append(e.helps, help)
	return e
}

// captureStack records the caller chain above the alerr constructors.
func captureStack() string {
	var pcs [32]uintptr
	n := runtime.Callers(4, pcs[:])
	if n == 0 {
		return ""
	}

	var b strings.Builder
	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()
		if !strings.Contains(frame.File, "runtime/") {
			fmt.Fprintf(&b, "%s\n\t%s:%d\n", frame.Function, frame.File, frame.Line)
		}
		if !more {
			break
		}
	}
	return b.String()
}

func newError(code Code, cause error, msg string) *Error {
	e := &Error{code: code, message: msg, cause: cause}
	if code.Category() == CategoryInternal {
		e.stack = captureStack()
	}
	return e
}

// New creates an Error with the given code and message.
func New(code Code, msg string) *Error {
	return newError(code, nil, msg)
}

// Newf creates an Error with a formatted message.
func Newf(code Code, format string, args ...any) *Error {
	return newError(code, nil, fmt.Sprintf(format, args...))
}

// Wrap creates an Error caused by err. A nil err behaves like New.
func Wrap(code Code, err error, msg string) *Error {
	return newError(code, err, msg)
}

// Wrapf is Wrap with a formatted message.
func Wrapf(code Code, err error, format string, args ...any) *Error {
	return newError(code, err, fmt.Sprintf(format, args...))
}

// GetErrorCode extracts the first code found in err's chain, or "".
func GetErrorCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.code
	}
	return ""
}

// Is checks if an error has the specified code.
func Is(err error, code Code) bool {
	return GetErrorCode(err) == code
}

// HasCode checks if an error has any error code.
func HasCode(err error) bool {
	return GetErrorCode(err) != ""
}

// IsUsage reports whether err carries a usage (E1xxx) code.
func IsUsage(err error) bool {
	return GetErrorCode(err).Category() == CategoryUsage
}

// IsConversion reports whether err carries a conversion (E2xxx) code.
func IsConversion(err error) bool {
	return GetErrorCode(err).Category() == CategoryConversion
}

// IsInternal reports whether err carries an internal (E9xxx) code.
func IsInternal(err error) bool {
	return GetErrorCode(err).Category() == CategoryInternal
}
