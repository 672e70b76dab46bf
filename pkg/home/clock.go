package home

import "time"

// Clock provides "now" for log and notification timestamps and for
// export filenames. Tests substitute a fixed implementation.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}
