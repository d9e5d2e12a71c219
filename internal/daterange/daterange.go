// Package daterange implements closed calendar-day intervals. It is the
// single home of the overlap predicate used by availability checks and
// the confirmation gate.
package daterange

import (
	"fmt"
	"time"
)

// Range is a closed interval of calendar days: both Start and End are
// occupied. Start == End is a valid single-day range.
type Range struct {
	Start time.Time
	End   time.Time
}

// New normalizes both bounds to midnight UTC and rejects End before Start.
func New(start, end time.Time) (Range, error) {
	s, e := Day(start), Day(end)
	if e.Before(s) {
		return Range{}, fmt.Errorf("end date %s before start date %s", e.Format(time.DateOnly), s.Format(time.DateOnly))
	}
	return Range{Start: s, End: e}, nil
}

// Overlaps reports whether two closed ranges share at least one day:
// aStart <= bEnd && aEnd >= bStart. Adjacent ranges whose bounds touch
// on the same day DO overlap; ranges one day apart do not.
func (r Range) Overlaps(o Range) bool {
	return !r.Start.After(o.End) && !r.End.Before(o.Start)
}

// Contains reports whether day d falls inside the range.
func (r Range) Contains(d time.Time) bool {
	d = Day(d)
	return !d.Before(r.Start) && !d.After(r.End)
}

// Nights is the number of nights spanned, at least 1 for a single-day stay.
func (r Range) Nights() int {
	n := int(r.End.Sub(r.Start) / (24 * time.Hour))
	if n < 1 {
		return 1
	}
	return n
}

func (r Range) String() string {
	return r.Start.Format(time.DateOnly) + ".." + r.End.Format(time.DateOnly)
}

// Day truncates t to midnight UTC, discarding clock time and zone.
func Day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate accepts 2006-01-02 or a full RFC 3339 timestamp. Web clients
// historically send either form.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD or RFC 3339", s)
	}
	return Day(t), nil
}
