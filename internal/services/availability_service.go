package services

import (
	"context"

	"github.com/o2scale/goodboyholidayhomesverce/internal/daterange"
	"github.com/o2scale/goodboyholidayhomesverce/internal/models"
	"github.com/o2scale/goodboyholidayhomesverce/internal/repositories"
)

// AvailabilityService answers "is property P free for [start,end]?"
// under the two conflict policies: search-time (only confirmed
// bookings block) and submission-time (anything not rejected blocks).
type AvailabilityService struct {
	bookingRepo repositories.BookingRepository
}

func NewAvailabilityService(bookingRepo repositories.BookingRepository) *AvailabilityService {
	return &AvailabilityService{bookingRepo: bookingRepo}
}

func (s *AvailabilityService) IsAvailable(
	ctx context.Context,
	propertyID string,
	rng daterange.Range,
	policy models.AvailabilityPolicy,
) (bool, error) {
	bookings, err := s.bookingRepo.ListByPropertyID(ctx, propertyID)
	if err != nil {
		return false, err
	}
	return !anyBlocking(bookings, rng, policy), nil
}

// anyBlocking applies the status filter and the overlap predicate over
// an already-fetched booking list. Search filtering reuses it to avoid
// a store round trip per property.
func anyBlocking(bookings []models.Booking, rng daterange.Range, policy models.AvailabilityPolicy) bool {
	for i := range bookings {
		b := &bookings[i]
		if !b.Status.BlocksUnder(policy) {
			continue
		}
		if rng.Overlaps(b.Range()) {
			return true
		}
	}
	return false
}
