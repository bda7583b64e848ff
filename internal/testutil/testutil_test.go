package testutil

import (
	"errors"
	"testing"

	"github.com/hlop3z/tstamp/internal/alerr"
)

// recorder captures failures instead of failing the enclosing test.
type recorder struct {
	testing.TB
	failed bool
}

func (r *recorder) Helper() {}

func (r *recorder) Errorf(format string, args ...any) {
	r.failed = true
}

func (r *recorder) Fatalf(format string, args ...any) {
	r.failed = true
}

func TestAssertError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		code       alerr.Code
		wantFailed bool
	}{
		{"matching code", alerr.New(alerr.ErrOutOfRange, "x"), alerr.ErrOutOfRange, false},
		{"different code", alerr.New(alerr.ErrOutOfRange, "x"), alerr.ErrMissingValue, true},
		{"nil error", nil, alerr.ErrOutOfRange, true},
		{"plain error", errors.New("plain"), alerr.ErrOutOfRange, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &recorder{TB: t}
			AssertError(r, tt.err, tt.code)
			if r.failed != tt.wantFailed {
				t.Errorf("failed = %v, want %v", r.failed, tt.wantFailed)
			}
		})
	}
}

func TestAssertErrorContains(t *testing.T) {
	r := &recorder{TB: t}
	AssertErrorContains(r, errors.New("invalid syntax"), "syntax")
	if r.failed {
		t.Error("substring present, should not fail")
	}

	r = &recorder{TB: t}
	AssertErrorContains(r, nil, "syntax")
	if !r.failed {
		t.Error("nil error should fail")
	}
}

func TestAssertEqual(t *testing.T) {
	r := &recorder{TB: t}
	AssertEqual(r, 1, 1)
	if r.failed {
		t.Error("equal values should not fail")
	}

	r = &recorder{TB: t}
	AssertEqual(r, "a", "b")
	if !r.failed {
		t.Error("different values should fail")
	}
}

func TestMustValue(t *testing.T) {
	if got := MustValue(t, 42, nil); got != 42 {
		t.Errorf("MustValue() = %d, want 42", got)
	}

	r := &recorder{TB: t}
	MustValue(r, 0, errors.New("boom"))
	if !r.failed {
		t.Error("MustValue with error should fail")
	}
}
