package daterange

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(time.DateOnly, s)
	require.NoError(t, err)
	return d
}

func rng(t *testing.T, start, end string) Range {
	t.Helper()
	r, err := New(day(t, start), day(t, end))
	require.NoError(t, err)
	return r
}

func TestNewRejectsReversedBounds(t *testing.T) {
	_, err := New(day(t, "2025-06-05"), day(t, "2025-06-01"))
	require.Error(t, err)
}

func TestOverlapsClosedInterval(t *testing.T) {
	cases := []struct {
		name    string
		a, b    Range
		overlap bool
	}{
		{"shared boundary day counts", rng(t, "2025-06-01", "2025-06-05"), rng(t, "2025-06-05", "2025-06-09"), true},
		{"adjacent non-touching", rng(t, "2025-06-01", "2025-06-05"), rng(t, "2025-06-06", "2025-06-09"), false},
		{"nested", rng(t, "2025-06-01", "2025-06-30"), rng(t, "2025-06-10", "2025-06-12"), true},
		{"identical", rng(t, "2025-06-01", "2025-06-05"), rng(t, "2025-06-01", "2025-06-05"), true},
		{"disjoint", rng(t, "2025-06-01", "2025-06-05"), rng(t, "2025-07-01", "2025-07-05"), false},
		{"single day with itself", rng(t, "2025-06-03", "2025-06-03"), rng(t, "2025-06-03", "2025-06-03"), true},
		{"single day touching range end", rng(t, "2025-06-03", "2025-06-03"), rng(t, "2025-06-01", "2025-06-03"), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.overlap, tc.a.Overlaps(tc.b))
			// symmetry
			assert.Equal(t, tc.overlap, tc.b.Overlaps(tc.a))
		})
	}
}

func TestDayDiscardsClockAndZone(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	late := time.Date(2025, 6, 1, 23, 45, 0, 0, time.UTC).In(loc)
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), Day(late))
}

func TestParseDateForms(t *testing.T) {
	d1, err := ParseDate("2025-06-01")
	require.NoError(t, err)
	d2, err := ParseDate("2025-06-01T14:30:00Z")
	require.NoError(t, err)
	assert.True(t, Day(d1).Equal(Day(d2)))

	_, err = ParseDate("June 1st")
	require.Error(t, err)
}

func TestContainsAndNights(t *testing.T) {
	r := rng(t, "2025-06-01", "2025-06-05")
	assert.True(t, r.Contains(day(t, "2025-06-01")))
	assert.True(t, r.Contains(day(t, "2025-06-05")))
	assert.False(t, r.Contains(day(t, "2025-06-06")))
	assert.Equal(t, 4, r.Nights())
	assert.Equal(t, 1, rng(t, "2025-06-01", "2025-06-01").Nights())
}
