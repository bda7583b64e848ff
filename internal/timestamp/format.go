package timestamp

import (
	"fmt"
	"math/big"
	"strconv"
)

// Layouts for the calendar outputs, minus the year, which Go would render
// without the sign conventions below. The zone is always UTC, so the offset
// is written literally rather than through a zone verb.
const (
	// LayoutRFC2822 renders e.g. "Wed, 28 Jul 2021 18:30:05 +0000".
	LayoutRFC2822 = "Mon, 02 Jan 2006 15:04:05 +0000"

	layoutRFC2822Head = "Mon, 02 Jan "
	layoutRFC2822Tail = " 15:04:05 +0000"
	layoutRFC3339Tail = "-01-02T15:04:05"
	offsetRFC3339     = "+00:00"
	minFourDigitYear  = 0
	maxFourDigitYear  = 9999
)

// Format renders the instant in the given output mode.
func Format(i Instant, mode OutputMode) string {
	switch mode {
	case OutputMillis:
		return strconv.FormatInt(i.Sec*millisPerSec+int64(i.Nsec)/nanosPerMilli, 10)
	case OutputNanos:
		return totalNanos(i).String()
	case OutputRFC2822:
		t := i.Time()
		return t.Format(layoutRFC2822Head) + fmt.Sprintf("%04d", t.Year()) + t.Format(layoutRFC2822Tail)
	case OutputRFC3339:
		t := i.Time()
		return isoYear(t.Year()) + t.Format(layoutRFC3339Tail) + fraction(i.Nsec) + offsetRFC3339
	default:
		return strconv.FormatInt(i.Sec, 10)
	}
}

// isoYear writes years 0000..9999 as four digits and any other year with an
// explicit sign and at least four digits, e.g. "+10000" or "-0001".
func isoYear(year int) string {
	if year >= minFourDigitYear && year <= maxFourDigitYear {
		return fmt.Sprintf("%04d", year)
	}
	return fmt.Sprintf("%+05d", year)
}

// totalNanos returns Sec*1e9 + Nsec. The calendar range exceeds int64
// nanoseconds (about 1677-09-21 to 2262-04-11), so this uses big.Int.
func totalNanos(i Instant) *big.Int {
	n := big.NewInt(i.Sec)
	n.Mul(n, big.NewInt(nanosPerSecond))
	return n.Add(n, big.NewInt(int64(i.Nsec)))
}

// fraction returns the sub-second part of an RFC 3339 timestamp: empty for
// whole seconds, otherwise 3, 6 or 9 digits, whichever is the shortest exact form.
func fraction(nsec int32) string {
	switch {
	case nsec == 0:
		return ""
	case nsec%nanosPerMilli == 0:
		return "." + pad(int64(nsec)/nanosPerMilli, 3)
	case nsec%1_000 == 0:
		return "." + pad(int64(nsec)/1_000, 6)
	default:
		return "." + pad(int64(nsec), 9)
	}
}

func pad(n int64, width int) string {
	s := strconv.FormatInt(n, 10)
	for len(s) < width {
		s = "0" + s
	}
	return s
}
