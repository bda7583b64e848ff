package alerr

import (
	"errors"
	"strings"
	"testing"
)

// -----------------------------------------------------------------------------
// Constructor Tests
// -----------------------------------------------------------------------------

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    Code
		message string
	}{
		{
			name:    "usage error",
			code:    ErrConflictingOutput,
			message: "output flags conflict",
		},
		{
			name:    "conversion error",
			code:    ErrInvalidInteger,
			message: "not an integer",
		},
		{
			name:    "internal error",
			code:    EInternalError,
			message: "unexpected state",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code, tt.message)
			if err == nil {
				t.Fatal("expected non-nil error")
			}
			if err.GetCode() != tt.code {
				t.Errorf("code = %v, want %v", err.GetCode(), tt.code)
			}
			if err.GetMessage() != tt.message {
				t.Errorf("message = %v, want %v", err.GetMessage(), tt.message)
			}
			if err.GetCause() != nil {
				t.Error("expected nil cause for New()")
			}
			wantStack := tt.code.Category() == CategoryInternal
			if hasStack := err.GetStack() != ""; hasStack != wantStack {
				t.Errorf("stack captured = %v, want %v", hasStack, wantStack)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	t.Run("wrap existing error", func(t *testing.T) {
		cause := errors.New("underlying error")
		err := Wrap(ErrInvalidInteger, cause, "invalid integer")

		if err.GetCode() != ErrInvalidInteger {
			t.Errorf("code = %v, want %v", err.GetCode(), ErrInvalidInteger)
		}
		if err.GetCause() != cause {
			t.Error("cause should be the wrapped error")
		}
		if !errors.Is(err, cause) {
			t.Error("errors.Is should find the cause")
		}
	})

	t.Run("wrap nil error", func(t *testing.T) {
		err := Wrap(ErrOutOfRange, nil, "out of range")
		if err.GetCause() != nil {
			t.Error("wrapping nil should leave cause nil")
		}
		if err.GetMessage() != "out of range" {
			t.Errorf("message = %q, want %q", err.GetMessage(), "out of range")
		}
	})
}

func TestWrapf(t *testing.T) {
	cause := errors.New("invalid syntax")
	err := Wrapf(ErrInvalidInteger, cause, "invalid integer %q", "abc")

	if got, want := err.GetMessage(), `invalid integer "abc"`; got != want {
		t.Errorf("message = %q, want %q", got, want)
	}
}

func TestDetail(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "message only",
			err:  New(ErrOutOfRange, "nanosecond component -500000000 is negative"),
			want: "nanosecond component -500000000 is negative",
		},
		{
			name: "message and cause",
			err:  Wrap(ErrInvalidInteger, errors.New("invalid syntax"), `invalid integer "abc"`),
			want: `invalid integer "abc": invalid syntax`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Detail(); got != tt.want {
				t.Errorf("Detail() = %q, want %q", got, tt.want)
			}
		})
	}
}

// -----------------------------------------------------------------------------
// Context Tests
// -----------------------------------------------------------------------------

func TestWith(t *testing.T) {
	err := New(ErrMissingValue, "value required").
		With("mode", "millis").
		WithFlag("from").
		WithValue("12")

	ctx := err.GetContext()
	if ctx["mode"] != "millis" {
		t.Errorf("mode = %v, want millis", ctx["mode"])
	}
	if ctx["flag"] != "--from" {
		t.Errorf("flag = %v, want --from", ctx["flag"])
	}
	if ctx["value"] != "12" {
		t.Errorf("value = %v, want 12", ctx["value"])
	}
}

func TestContextKeys(t *testing.T) {
	err := New(ErrOutOfRange, "x").With("seconds", 1).With("nanoseconds", -1).WithHelp("h")

	got := err.ContextKeys()
	if len(got) != 2 || got[0] != "nanoseconds" || got[1] != "seconds" {
		t.Errorf("ContextKeys() = %v, want [nanoseconds seconds]", got)
	}
	if keys := New(ErrOutOfRange, "x").ContextKeys(); len(keys) != 0 {
		t.Errorf("ContextKeys() on bare error = %v", keys)
	}
}

func TestNotesAndHelps(t *testing.T) {
	err := New(ErrUnknownInputMode, "bad mode").
		WithNote("first note").
		WithNote("second note").
		WithHelp("try this")

	if got := err.Notes(); len(got) != 2 || got[0] != "first note" || got[1] != "second note" {
		t.Errorf("Notes() = %v", got)
	}
	if got := err.Helps(); len(got) != 1 || got[0] != "try this" {
		t.Errorf("Helps() = %v", got)
	}
}

func TestErrorFormat(t *testing.T) {
	err := New(ErrConflictingOutput, "conflicting output flags").
		With("flags", "--millis, --nanos").
		With("argv", "-m -n").
		WithHelp("pick one")

	got := err.Error()
	want := "[E1001] conflicting output flags\n  argv: -m -n\n  flags: --millis, --nanos"
	if got != want {
		t.Errorf("Error() =\n%s\nwant:\n%s", got, want)
	}

	wrapped := Wrap(ErrInvalidInteger, errors.New("invalid syntax"), "invalid integer")
	if !strings.HasSuffix(wrapped.Error(), "\n  cause: invalid syntax") {
		t.Errorf("Error() should end with cause, got %q", wrapped.Error())
	}
}

// -----------------------------------------------------------------------------
// Matching Tests
// -----------------------------------------------------------------------------

func TestIs(t *testing.T) {
	a := New(ErrMissingValue, "a")
	b := New(ErrMissingValue, "b")
	c := New(ErrOutOfRange, "c")

	if !a.Is(b) {
		t.Error("errors with the same code should match")
	}
	if a.Is(c) {
		t.Error("errors with different codes should not match")
	}
	if a.Is(nil) {
		t.Error("nil target should not match")
	}
	if !errors.Is(a, b) {
		t.Error("errors.Is should use the code comparison")
	}
}

func TestGetErrorCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Code
	}{
		{"nil", nil, ""},
		{"plain error", errors.New("plain"), ""},
		{"coded error", New(ErrOutOfRange, "x"), ErrOutOfRange},
		{"wrapped coded error", errors.Join(errors.New("outer"), New(ErrInvalidInteger, "x")), ErrInvalidInteger},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetErrorCode(tt.err); got != tt.want {
				t.Errorf("GetErrorCode() = %q, want %q", got, tt.want)
			}
			if got := HasCode(tt.err); got != (tt.want != "") {
				t.Errorf("HasCode() = %v, want %v", got, tt.want != "")
			}
		})
	}

	if !Is(New(ErrAmbiguousInput, "x"), ErrAmbiguousInput) {
		t.Error("Is() should match the error's own code")
	}
}

func TestErrorCodeCategories(t *testing.T) {
	tests := []struct {
		code Code
		want Category
	}{
		{ErrConflictingOutput, CategoryUsage},
		{ErrAmbiguousInput, CategoryUsage},
		{ErrMissingValue, CategoryUsage},
		{ErrUnknownInputMode, CategoryUsage},
		{ErrUnexpectedArgs, CategoryUsage},
		{ErrInvalidFlag, CategoryUsage},
		{ErrInvalidInteger, CategoryConversion},
		{ErrOutOfRange, CategoryConversion},
		{EInternalError, CategoryInternal},
		{"", CategoryUnknown},
		{"X1001", CategoryUnknown},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			if got := tt.code.Category(); got != tt.want {
				t.Errorf("Category() = %v, want %v", got, tt.want)
			}
		})
	}

	if !IsUsage(New(ErrMissingValue, "x")) {
		t.Error("IsUsage should be true for E1xxx")
	}
	if !IsConversion(New(ErrOutOfRange, "x")) {
		t.Error("IsConversion should be true for E2xxx")
	}
	if !IsInternal(New(EInternalError, "x")) {
		t.Error("IsInternal should be true for E9xxx")
	}
	if IsUsage(errors.New("plain")) || IsConversion(errors.New("plain")) {
		t.Error("plain errors have no category")
	}
}

// -----------------------------------------------------------------------------
// Constructor Helper Tests
// -----------------------------------------------------------------------------

func TestNewUnknownInputModeError(t *testing.T) {
	keywords := []string{"now", "secs", "millis", "nanos"}

	err := NewUnknownInputModeError("milis", keywords)
	if err.GetCode() != ErrUnknownInputMode {
		t.Errorf("code = %v, want %v", err.GetCode(), ErrUnknownInputMode)
	}
	if helps := err.Helps(); len(helps) != 1 || helps[0] != "did you mean 'millis'?" {
		t.Errorf("Helps() = %v", helps)
	}

	err = NewUnknownInputModeError("zzzzzzzz", keywords)
	if len(err.Helps()) != 0 {
		t.Errorf("expected no suggestion, got %v", err.Helps())
	}
	if len(err.Notes()) != 1 {
		t.Errorf("expected possible values note, got %v", err.Notes())
	}
}

func TestNewConflictingOutputError(t *testing.T) {
	err := NewConflictingOutputError([]string{"millis", "nanos"})
	if !strings.Contains(err.GetMessage(), "--millis, --nanos") {
		t.Errorf("message = %q, want flags listed", err.GetMessage())
	}
	if !IsUsage(err) {
		t.Error("conflicting output should be a usage error")
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("root")
	err := Wrap(ErrInvalidInteger, cause, "outer")
	if errors.Unwrap(err) != cause {
		t.Error("Unwrap should return the cause")
	}
}
