package alerr

import (
	"strings"
)

// NewConflictingOutputError creates an error for two or more output flags given together.
func NewConflictingOutputError(flags []string) *Error {
	return New(ErrConflictingOutput, "the output flags "+joinFlags(flags)+" cannot be used together").
		With("flags", joinFlags(flags)).
		WithHelp("pass at most one of --millis, --nanos, --rfc2822, --rfc3339")
}

// NewAmbiguousInputError creates an error for two or more input selectors given together.
func NewAmbiguousInputError(flags []string) *Error {
	return New(ErrAmbiguousInput, "the input selectors "+joinFlags(flags)+" cannot be used together").
		With("flags", joinFlags(flags)).
		WithHelp("select the input once, either with --from <mode> or with one --from-* flag")
}

// NewMissingValueError creates an error for an input mode that needs a value.
func NewMissingValueError(mode string) *Error {
	return New(ErrMissingValue, "an input value is required when reading "+mode).
		With("mode", mode).
		WithHelp("pass the timestamp as an argument, e.g. `tstamp --from " + mode + " 1627497005`")
}

// NewUnknownInputModeError creates an error for an unrecognized --from keyword.
// The closest known keyword, if any, is offered as a help suggestion.
func NewUnknownInputModeError(value string, keywords []string) *Error {
	e := New(ErrUnknownInputMode, "invalid value '"+value+"' for --from").
		WithValue(value).
		WithNote("possible values: " + strings.Join(keywords, ", "))
	if suggestion := SuggestSimilar(value, keywords); suggestion != "" {
		e.WithHelp(suggestion)
	}
	return e
}

// NewUnexpectedArgsError creates an error for surplus positional arguments.
func NewUnexpectedArgsError(args []string, reason string) *Error {
	return New(ErrUnexpectedArgs, reason).
		With("arguments", strings.Join(args, " "))
}

func joinFlags(flags []string) string {
	quoted := make([]string, len(flags))
	for i, f := range flags {
		quoted[i] = "--" + f
	}
	return strings.Join(quoted, ", ")
}
