package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanTransitionTo(t *testing.T) {
	cases := []struct {
		from, to BookingStatus
		want     bool
	}{
		{BookingStatusPending, BookingStatusConfirmed, true},
		{BookingStatusPending, BookingStatusRejected, true},
		{BookingStatusPending, BookingStatusPending, false},
		{BookingStatusConfirmed, BookingStatusRejected, true},
		{BookingStatusConfirmed, BookingStatusPending, false},
		{BookingStatusConfirmed, BookingStatusConfirmed, false},
		{BookingStatusRejected, BookingStatusPending, false},
		{BookingStatusRejected, BookingStatusConfirmed, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.from.CanTransitionTo(tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestBlocksUnder(t *testing.T) {
	assert.True(t, BookingStatusConfirmed.BlocksUnder(PolicySearch))
	assert.False(t, BookingStatusPending.BlocksUnder(PolicySearch))
	assert.False(t, BookingStatusRejected.BlocksUnder(PolicySearch))

	assert.True(t, BookingStatusConfirmed.BlocksUnder(PolicySubmission))
	assert.True(t, BookingStatusPending.BlocksUnder(PolicySubmission))
	assert.False(t, BookingStatusRejected.BlocksUnder(PolicySubmission))
}

func TestBookingRangeNormalizesToMidnightUTC(t *testing.T) {
	loc := time.FixedZone("IST", 5*3600+1800)
	b := Booking{
		StartDate: time.Date(2026, 3, 1, 14, 30, 0, 0, loc),
		EndDate:   time.Date(2026, 3, 4, 9, 0, 0, 0, time.UTC),
	}
	rng := b.Range()
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), rng.Start)
	assert.Equal(t, time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC), rng.End)
}
