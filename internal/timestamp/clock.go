package timestamp

import "time"

// Clock supplies the current time for InputNow.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now returns the current time in UTC.
func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

// FixedClock always returns the same time.
type FixedClock time.Time

// Now returns the fixed time in UTC.
func (c FixedClock) Now() time.Time {
	return time.Time(c).UTC()
}
