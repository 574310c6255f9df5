package monitor

import "time"

// HourGate decides whether a notification may be sent at a given
// moment. Gates exist to bound notification frequency; they are
// plain predicates so tests can exercise them without touching the
// wall clock.
type HourGate func(time.Time) bool

// Always admits every timestamp.
func Always(time.Time) bool { return true }

// Never rejects every timestamp.
func Never(time.Time) bool { return false }

// HoursGate admits timestamps whose hour-of-day, in loc, is one of
// the given hours.
func HoursGate(loc *time.Location, hours ...int) HourGate {
	set := make(map[int]bool, len(hours))
	for _, h := range hours {
		set[h] = true
	}
	return func(t time.Time) bool {
		return set[t.In(loc).Hour()]
	}
}

// HourRangeGate admits timestamps whose hour-of-day, in loc, falls in
// [start, end] inclusive.
func HourRangeGate(loc *time.Location, start, end int) HourGate {
	return func(t time.Time) bool {
		h := t.In(loc).Hour()
		return h >= start && h <= end
	}
}
