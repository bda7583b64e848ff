// Package timestamp resolves Unix timestamps to UTC instants and renders them
// as Unix seconds, milliseconds, nanoseconds, RFC 2822 or RFC 3339 text.
package timestamp

import "github.com/hlop3z/tstamp/internal/alerr"

// InputMode selects how the input value is interpreted.
type InputMode int

const (
	// InputNow ignores the value and reads the system clock.
	InputNow InputMode = iota
	// InputSeconds reads the value as whole seconds since the epoch.
	InputSeconds
	// InputMillis reads the value as milliseconds since the epoch.
	InputMillis
	// InputNanos reads the value as nanoseconds since the epoch.
	InputNanos
)

// InputKeywords lists the canonical --from keywords, in help order.
var InputKeywords = []string{"now", "secs", "millis", "nanos"}

// inputAliases maps every accepted --from keyword to its mode.
var inputAliases = map[string]InputMode{
	"now":    InputNow,
	"secs":   InputSeconds,
	"s":      InputSeconds,
	"millis": InputMillis,
	"m":      InputMillis,
	"nanos":  InputNanos,
	"n":      InputNanos,
}

// ParseInputMode maps a --from keyword (including the one-letter aliases) to its mode.
func ParseInputMode(s string) (InputMode, error) {
	if m, ok := inputAliases[s]; ok {
		return m, nil
	}
	return InputNow, alerr.NewUnknownInputModeError(s, InputKeywords).WithFlag("from")
}

// String returns the canonical keyword for the mode.
func (m InputMode) String() string {
	switch m {
	case InputSeconds:
		return "secs"
	case InputMillis:
		return "millis"
	case InputNanos:
		return "nanos"
	default:
		return "now"
	}
}

// NeedsValue reports whether the mode reads a user-supplied integer.
func (m InputMode) NeedsValue() bool {
	return m != InputNow
}

// OutputMode selects the textual rendering of an instant.
type OutputMode int

const (
	// OutputSeconds renders whole seconds since the epoch.
	OutputSeconds OutputMode = iota
	// OutputMillis renders milliseconds since the epoch.
	OutputMillis
	// OutputNanos renders nanoseconds since the epoch.
	OutputNanos
	// OutputRFC2822 renders e.g. "Wed, 28 Jul 2021 18:30:05 +0000".
	OutputRFC2822
	// OutputRFC3339 renders e.g. "2021-07-28T18:30:05.123456789+00:00".
	OutputRFC3339
)

// String returns the flag name that selects the mode.
func (m OutputMode) String() string {
	switch m {
	case OutputMillis:
		return "millis"
	case OutputNanos:
		return "nanos"
	case OutputRFC2822:
		return "rfc2822"
	case OutputRFC3339:
		return "rfc3339"
	default:
		return "secs"
	}
}
