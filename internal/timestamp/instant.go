package timestamp

import (
	"strconv"
	"time"

	"github.com/hlop3z/tstamp/internal/alerr"
)

// Calendar range: proleptic Gregorian years -262144 through 262143.
const (
	// MinSeconds is -262144-01-01T00:00:00Z.
	MinSeconds int64 = -8334632937600
	// MaxSeconds is +262143-12-31T23:59:59Z.
	MaxSeconds int64 = 8210298412799
)

const (
	nanosPerSecond = 1_000_000_000
	nanosPerMilli  = 1_000_000
	millisPerSec   = 1_000
)

// Instant is a UTC point in time: whole seconds since the epoch plus a
// nanosecond-of-second in [0, 999999999].
type Instant struct {
	Sec  int64
	Nsec int32
}

// Epoch is 1970-01-01T00:00:00Z.
var Epoch = Instant{}

// NewInstant validates a seconds/nanoseconds pair.
// A negative or oversized nanosecond component is rejected, not normalized.
func NewInstant(sec, nsec int64) (Instant, error) {
	if nsec < 0 || nsec >= nanosPerSecond {
		return Instant{}, alerr.Newf(ErrOutOfRange,
			"nanosecond component %d is outside [0, %d]", nsec, nanosPerSecond-1).
			With("seconds", sec).
			With("nanoseconds", nsec)
	}
	if sec < MinSeconds || sec > MaxSeconds {
		return Instant{}, alerr.Newf(ErrOutOfRange,
			"%d seconds is outside the representable calendar range", sec).
			With("seconds", sec)
	}
	return Instant{Sec: sec, Nsec: int32(nsec)}, nil
}

// FromTime converts a time.Time to an Instant.
func FromTime(t time.Time) Instant {
	return Instant{Sec: t.Unix(), Nsec: int32(t.Nanosecond())}
}

// Time returns the instant as a UTC time.Time.
func (i Instant) Time() time.Time {
	return time.Unix(i.Sec, int64(i.Nsec)).UTC()
}

// Resolve converts an input mode and integer value into an Instant.
// The value is ignored for InputNow.
//
// Millisecond and nanosecond values are split with truncating division, so a
// negative value that is not a whole number of seconds yields a negative
// nanosecond component and fails with ErrOutOfRange.
func Resolve(mode InputMode, value int64, clock Clock) (Instant, error) {
	switch mode {
	case InputNow:
		if clock == nil {
			clock = SystemClock{}
		}
		return FromTime(clock.Now()), nil
	case InputSeconds:
		return NewInstant(value, 0)
	case InputMillis:
		return NewInstant(value/millisPerSec, (value%millisPerSec)*nanosPerMilli)
	case InputNanos:
		return NewInstant(value/nanosPerSecond, value%nanosPerSecond)
	}
	return Instant{}, alerr.Newf(alerr.EInternalError, "unknown input mode %d", int(mode))
}

// ResolveString parses raw as a signed 64-bit decimal integer and resolves it.
// raw is not consulted for InputNow.
func ResolveString(mode InputMode, raw string, clock Clock) (Instant, error) {
	if !mode.NeedsValue() {
		return Resolve(mode, 0, clock)
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return Instant{}, alerr.Wrapf(ErrInvalidInteger, unwrapNumError(err), "invalid integer %q", raw).
			With("mode", mode.String()).
			WithValue(raw)
	}
	return Resolve(mode, value, clock)
}

// unwrapNumError drops strconv's "strconv.ParseInt: parsing ..." prefix.
func unwrapNumError(err error) error {
	if ne, ok := err.(*strconv.NumError); ok {
		return ne.Err
	}
	return err
}

// String renders the instant as RFC 3339 for debugging and logs.
func (i Instant) String() string {
	return Format(i, OutputRFC3339)
}

// Error codes re-exported for callers that only import this package.
const (
	ErrInvalidInteger = alerr.ErrInvalidInteger
	ErrOutOfRange     = alerr.ErrOutOfRange
)
