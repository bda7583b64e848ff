package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hlop3z/tstamp/internal/alerr"
)

// Diagnostic is a labelled message with trailing note and help lines.
type Diagnostic struct {
	Label   string // "error", "warning", ...
	Code    string // e.g. "E1001"; empty for uncoded messages
	Message string
	Notes   []string
	Helps   []string
}

// DiagnosticOption configures a Diagnostic.
type DiagnosticOption func(*Diagnostic)

// WithNotes adds notes to a diagnostic.
func WithNotes(notes ...string) DiagnosticOption {
	return func(d *Diagnostic) { d.Notes = append(d.Notes, notes...) }
}

// WithHelps adds help suggestions to a diagnostic.
func WithHelps(helps ...string) DiagnosticOption {
	return func(d *Diagnostic) { d.Helps = append(d.Helps, helps...) }
}

// FormatError renders err Cargo-style. The first *alerr.Error in the chain
// supplies the code, context, notes and helps:
//
//	error[E1001]: the output flags --millis, --nanos cannot be used together
//	   |
//	   | flags: --millis, --nanos
//	help: pass at most one of --millis, --nanos, --rfc2822, --rfc3339
//
// Any other error prints as a single "error: ..." line.
func FormatError(err error) string {
	if err == nil {
		return ""
	}

	var coded *alerr.Error
	if !errors.As(err, &coded) {
		return Error("error") + ": " + err.Error() + "\n"
	}

	var b strings.Builder
	writeHeadline(&b, Error("error"), string(coded.GetCode()), coded.GetMessage())

	keys := coded.ContextKeys()
	if len(keys) > 0 {
		writeGutter(&b, "")
		for _, k := range keys {
			writeGutter(&b, fmt.Sprintf("%s: %v", k, coded.GetContext()[k]))
		}
	}
	if cause := coded.GetCause(); cause != nil {
		writeGutter(&b, "")
		writeLabelled(&b, Note("cause"), cause.Error())
	}
	if stack := coded.GetStack(); stack != "" {
		writeLabelled(&b, Note("stack"), "\n"+Dim(strings.TrimRight(stack, "\n")))
	}
	writeTrailer(&b, coded.Notes(), coded.Helps())

	return b.String()
}

// FormatWarning formats a warning message in Cargo style.
func FormatWarning(msg string, opts ...DiagnosticOption) string {
	d := &Diagnostic{Label: "warning", Message: msg}
	for _, opt := range opts {
		opt(d)
	}
	return d.String()
}

// FormatNote formats a note message.
func FormatNote(msg string) string {
	return (&Diagnostic{Label: "note", Message: msg}).String()
}

// FormatHelp formats a help message.
func FormatHelp(msg string) string {
	return (&Diagnostic{Label: "help", Message: msg}).String()
}

// String renders the diagnostic with the label styled for its kind.
func (d *Diagnostic) String() string {
	var b strings.Builder
	writeHeadline(&b, styleLabel(d.Label), d.Code, d.Message)
	writeTrailer(&b, d.Notes, d.Helps)
	return b.String()
}

func styleLabel(label string) string {
	switch label {
	case "error":
		return Error(label)
	case "warning":
		return Warning(label)
	case "note":
		return Note(label)
	case "help":
		return Help(label)
	}
	return Header(label)
}

func writeHeadline(b *strings.Builder, label, code, msg string) {
	b.WriteString(label)
	if code != "" {
		b.WriteString("[" + Code(code) + "]")
	}
	b.WriteString(": " + msg + "\n")
}

// writeGutter writes one "   | text" line; empty text gives a bare gutter.
func writeGutter(b *strings.Builder, text string) {
	b.WriteString("   " + Pipe())
	if text != "" {
		b.WriteString(" " + text)
	}
	b.WriteString("\n")
}

func writeLabelled(b *strings.Builder, label, text string) {
	b.WriteString(label + ": " + text + "\n")
}

func writeTrailer(b *strings.Builder, notes, helps []string) {
	for _, n := range notes {
		writeLabelled(b, Note("note"), n)
	}
	for _, h := range helps {
		writeLabelled(b, Help("help"), h)
	}
}
