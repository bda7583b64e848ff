// Package args turns a tstamp command line into a validated input mode, raw
// input value and output mode.
//
// Flags are declared on a pflag.FlagSet by Register so the same definitions
// serve both the cobra command and the standalone Resolve function.
package args

import (
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"github.com/hlop3z/tstamp/internal/alerr"
	"github.com/hlop3z/tstamp/internal/timestamp"
)

// Flag names.
const (
	FlagMillis     = "millis"
	FlagNanos      = "nanos"
	FlagRFC2822    = "rfc2822"
	FlagRFC3339    = "rfc3339"
	FlagFrom       = "from"
	FlagFromSecs   = "from-secs"
	FlagFromMillis = "from-millis"
	FlagFromNanos  = "from-nanos"
	FlagHelp       = "help"
	FlagVersion    = "version"
)

// nowSentinel is the --from-secs value (and bare-flag default) meaning "now".
const nowSentinel = "now"

// Sentinel errors returned by Resolve for informational flags.
var (
	ErrHelp    = errors.New("help requested")
	ErrVersion = errors.New("version requested")
)

// Resolved is the validated result of argument resolution.
type Resolved struct {
	Input  timestamp.InputMode
	Value  string // Raw input value; empty for InputNow
	Output timestamp.OutputMode

	// IgnoredArgs holds positional arguments accepted but not used, which
	// happens when a value is given while reading the current time.
	IgnoredArgs []string
}

// outputFlags lists output selectors in precedence order.
var outputFlags = []struct {
	name string
	mode timestamp.OutputMode
}{
	{FlagMillis, timestamp.OutputMillis},
	{FlagNanos, timestamp.OutputNanos},
	{FlagRFC2822, timestamp.OutputRFC2822},
	{FlagRFC3339, timestamp.OutputRFC3339},
}

// fromFlags lists the alternate one-flag-per-mode input selectors.
var fromFlags = []struct {
	name string
	mode timestamp.InputMode
}{
	{FlagFromSecs, timestamp.InputSeconds},
	{FlagFromMillis, timestamp.InputMillis},
	{FlagFromNanos, timestamp.InputNanos},
}

// Register declares every tstamp flag on fs.
func Register(fs *pflag.FlagSet) {
	fs.BoolP(FlagMillis, "m", false, "Unix-time in ms")
	fs.BoolP(FlagNanos, "n", false, "Unix-time in ns")
	fs.Bool(FlagRFC3339, false, "Uses RFC 3339 as output format. Example: '2021-07-28T18:30:05.12+00:00'")
	fs.Bool(FlagRFC2822, false, "Uses RFC 2822 as output format. Example: 'Wed, 28 Jul 2021 18:30:05 +0000'")

	fs.StringP(FlagFrom, "f", nowSentinel,
		"Specifies the input format, unless this is set to 'now' (default value) [possible values: now, secs, millis, nanos, s, m, n]")

	fs.String(FlagFromSecs, "", "Read the input as Unix seconds ('now' for the current time)")
	fs.Lookup(FlagFromSecs).NoOptDefVal = nowSentinel
	fs.String(FlagFromMillis, "", "Read the input as Unix milliseconds")
	fs.String(FlagFromNanos, "", "Read the input as Unix nanoseconds")

	fs.BoolP(FlagHelp, "h", false, "Prints help information")
	fs.BoolP(FlagVersion, "V", false, "Prints version information")

	fs.SortFlags = false
}

// NewFlagSet returns a flag set with every tstamp flag registered.
// Parse errors are returned, never printed.
func NewFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	Register(fs)
	return fs
}

// Resolve parses argv (without the program name) and validates it.
// It returns ErrHelp or ErrVersion when those flags are present, and an
// *alerr.Error with a usage code for every malformed invocation.
func Resolve(argv []string) (Resolved, error) {
	fs := NewFlagSet("tstamp")
	if err := fs.Parse(argv); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return Resolved{}, ErrHelp
		}
		return Resolved{}, FlagError(err)
	}
	if help, _ := fs.GetBool(FlagHelp); help {
		return Resolved{}, ErrHelp
	}
	if version, _ := fs.GetBool(FlagVersion); version {
		return Resolved{}, ErrVersion
	}
	return FromFlags(fs, fs.Args())
}

// FromFlags validates an already-parsed flag set plus its positional arguments.
func FromFlags(fs *pflag.FlagSet, positional []string) (Resolved, error) {
	output, err := resolveOutput(fs)
	if err != nil {
		return Resolved{}, err
	}

	input, value, fromValue, err := resolveInput(fs)
	if err != nil {
		return Resolved{}, err
	}

	res := Resolved{Input: input, Output: output}

	switch {
	case fromValue:
		// The --from-* flag carried the value (or "now").
		if len(positional) > 0 {
			return Resolved{}, alerr.NewUnexpectedArgsError(positional,
				"unexpected argument: the input value was already given to a --from-* flag").
				WithHelp("drop the positional value or use --from <mode> <value>")
		}
		if input.NeedsValue() {
			res.Value = value
		}
	case len(positional) > 1:
		return Resolved{}, alerr.NewUnexpectedArgsError(positional,
			"expected at most one input value, got "+strconv.Itoa(len(positional)))
	case !input.NeedsValue():
		res.IgnoredArgs = positional
	case len(positional) == 0:
		return Resolved{}, alerr.NewMissingValueError(input.String())
	default:
		res.Value = positional[0]
	}

	return res, nil
}

// resolveOutput enforces that at most one output flag is set.
func resolveOutput(fs *pflag.FlagSet) (timestamp.OutputMode, error) {
	mode := timestamp.OutputSeconds
	var set []string
	for _, f := range outputFlags {
		if on, _ := fs.GetBool(f.name); on {
			set = append(set, f.name)
			if len(set) == 1 {
				mode = f.mode
			}
		}
	}
	if len(set) > 1 {
		return timestamp.OutputSeconds, alerr.NewConflictingOutputError(set)
	}
	return mode, nil
}

// resolveInput determines the single active input selector. fromValue reports
// whether the value came from a --from-* flag rather than a positional.
func resolveInput(fs *pflag.FlagSet) (mode timestamp.InputMode, value string, fromValue bool, err error) {
	var set []string
	if fs.Changed(FlagFrom) {
		set = append(set, FlagFrom)
	}
	for _, f := range fromFlags {
		if fs.Changed(f.name) {
			set = append(set, f.name)
		}
	}
	if len(set) > 1 {
		return timestamp.InputNow, "", false, alerr.NewAmbiguousInputError(set)
	}

	if len(set) == 0 || set[0] == FlagFrom {
		keyword, _ := fs.GetString(FlagFrom)
		mode, err = timestamp.ParseInputMode(keyword)
		return mode, "", false, err
	}

	for _, f := range fromFlags {
		if f.name != set[0] {
			continue
		}
		value, _ = fs.GetString(f.name)
		if f.mode == timestamp.InputSeconds && value == nowSentinel {
			return timestamp.InputNow, "", true, nil
		}
		if value == "" {
			return f.mode, "", true, alerr.NewMissingValueError(f.mode.String()).WithFlag(f.name)
		}
		return f.mode, value, true, nil
	}
	return timestamp.InputNow, "", false, alerr.New(alerr.EInternalError, "unreachable input selector "+set[0])
}

// FlagError converts a pflag parse error into a usage error.
func FlagError(err error) error {
	if err == nil {
		return nil
	}
	if alerr.HasCode(err) {
		return err
	}
	msg := err.Error()
	e := alerr.Wrap(alerr.ErrInvalidFlag, err, "invalid command line")
	if name, ok := unknownFlagName(msg); ok {
		if suggestion := alerr.SuggestFlag(name, allFlagNames()); suggestion != "" {
			e.WithHelp(suggestion)
		}
	}
	if looksLikeNegativeNumber(msg) {
		e.WithHelp("negative values must follow `--`, e.g. `tstamp --from secs -- -86400`")
	}
	return e
}

// looksLikeNegativeNumber reports whether pflag rejected a shorthand that is
// really the start of a negative integer, e.g. "unknown shorthand flag: '8' in -86400".
func looksLikeNegativeNumber(msg string) bool {
	const prefix = "unknown shorthand flag: '"
	if !strings.HasPrefix(msg, prefix) || len(msg) <= len(prefix) {
		return false
	}
	c := msg[len(prefix)]
	return c >= '0' && c <= '9'
}

// unknownFlagName extracts the flag from pflag's "unknown flag: --xyz" message.
func unknownFlagName(msg string) (string, bool) {
	const prefix = "unknown flag: --"
	if !strings.HasPrefix(msg, prefix) {
		return "", false
	}
	return strings.TrimPrefix(msg, prefix), true
}

func allFlagNames() []string {
	names := make([]string, 0, len(outputFlags)+len(fromFlags)+1)
	for _, f := range outputFlags {
		names = append(names, f.name)
	}
	names = append(names, FlagFrom)
	for _, f := range fromFlags {
		names = append(names, f.name)
	}
	return names
}
