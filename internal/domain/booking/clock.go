package booking

import "time"

// Clock supplies "now" to the validator so the future-time rule is
// deterministic under test.
type Clock interface {
	Now() time.Time
}

// SystemClock evaluates now as a naive UTC wall-clock value, the same
// frame appointment times are parsed and stored in.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}
