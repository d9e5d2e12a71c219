package models

import (
	"time"

	"github.com/o2scale/goodboyholidayhomesverce/internal/daterange"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusRejected  BookingStatus = "rejected"
)

// ParseBookingStatus maps a wire string onto the tagged status set.
func ParseBookingStatus(s string) (BookingStatus, bool) {
	switch BookingStatus(s) {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusRejected:
		return BookingStatus(s), true
	}
	return "", false
}

// allowedTransitions is the authoritative transition table. Reopening a
// rejected or confirmed booking back to pending is not permitted, and a
// rejected booking cannot be confirmed; it must be resubmitted.
var allowedTransitions = map[BookingStatus][]BookingStatus{
	BookingStatusPending:   {BookingStatusConfirmed, BookingStatusRejected},
	BookingStatusConfirmed: {BookingStatusRejected},
	BookingStatusRejected:  {},
}

func (s BookingStatus) CanTransitionTo(target BookingStatus) bool {
	for _, t := range allowedTransitions[s] {
		if t == target {
			return true
		}
	}
	return false
}

// AvailabilityPolicy selects which booking statuses block a date range.
type AvailabilityPolicy string

const (
	// PolicySearch is used when filtering listings: only confirmed
	// bookings make a range unavailable.
	PolicySearch AvailabilityPolicy = "search"

	// PolicySubmission is the stricter advisory check applied before a
	// new request is submitted: anything not rejected blocks.
	PolicySubmission AvailabilityPolicy = "submission"
)

func ParseAvailabilityPolicy(s string) (AvailabilityPolicy, bool) {
	switch AvailabilityPolicy(s) {
	case PolicySearch, PolicySubmission:
		return AvailabilityPolicy(s), true
	}
	return "", false
}

// BlocksUnder reports whether a booking with this status makes its date
// range unavailable under the given policy.
func (s BookingStatus) BlocksUnder(p AvailabilityPolicy) bool {
	switch p {
	case PolicySubmission:
		return s != BookingStatusRejected
	default:
		return s == BookingStatusConfirmed
	}
}

// Booking occupies a property for a closed date interval
// [StartDate, EndDate]. GuestCount 0 is reserved for administrative
// blocking entries.
type Booking struct {
	ID            string        `json:"id"`
	PropertyID    string        `json:"propertyId"`
	StartDate     time.Time     `json:"startDate"`
	EndDate       time.Time     `json:"endDate"`
	GuestCount    int           `json:"guestCount"`
	Status        BookingStatus `json:"status"`
	CustomerName  string        `json:"customerName"`
	CustomerEmail string        `json:"customerEmail,omitempty"`
	CustomerPhone string        `json:"customerPhone,omitempty"`
	Meals         *bool         `json:"meals,omitempty"`
	CreatedAt     time.Time     `json:"created_at,omitempty"`
}

// Range returns the booking's closed stay interval.
func (b *Booking) Range() daterange.Range {
	return daterange.Range{Start: daterange.Day(b.StartDate), End: daterange.Day(b.EndDate)}
}

// IsAdminBlock reports whether this record only reserves calendar dates.
func (b *Booking) IsAdminBlock() bool {
	return b.GuestCount == 0
}
