package booking

import "time"

// Interval is the half-open time range [Start, End) occupied by a booking.
// The end instant itself is free, so back-to-back bookings are legal.
type Interval struct {
	Start time.Time
	End   time.Time
}

func NewInterval(start time.Time, duration time.Duration) Interval {
	return Interval{Start: start, End: start.Add(duration)}
}

// Overlaps reports whether the two half-open intervals share any instant:
// a0 < b1 && a1 > b0. Touching endpoints do not overlap.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.Start.Before(other.End) && iv.End.After(other.Start)
}
