package repositories

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/o2scale/goodboyholidayhomesverce/internal/models"
	"github.com/o2scale/goodboyholidayhomesverce/internal/store"
	"github.com/o2scale/goodboyholidayhomesverce/internal/utils"
)

/* ------------------------------------------------------------------
   Public interface
------------------------------------------------------------------ */

type BookingRepository interface {
	ListAll(ctx context.Context) ([]models.Booking, error)
	ListByPropertyID(ctx context.Context, propertyID string) ([]models.Booking, error)
	ListByCustomerEmail(ctx context.Context, email string) ([]models.Booking, error)
	ListByStatus(ctx context.Context, status models.BookingStatus) ([]models.Booking, error)
	GetByID(ctx context.Context, id string) (*models.Booking, error)

	Create(ctx context.Context, b *models.Booking) error
	TransitionStatus(ctx context.Context, id string, target models.BookingStatus) (*models.Booking, error)
}

/* ------------------------------------------------------------------
   Implementation
------------------------------------------------------------------ */

type bookingRepo struct {
	store *store.Store
}

func NewBookingRepository(s *store.Store) BookingRepository {
	return &bookingRepo{store: s}
}

func (r *bookingRepo) ListAll(ctx context.Context) ([]models.Booking, error) {
	return r.list(ctx, func(models.Booking) bool { return true })
}

func (r *bookingRepo) ListByPropertyID(ctx context.Context, propertyID string) ([]models.Booking, error) {
	return r.list(ctx, func(b models.Booking) bool { return b.PropertyID == propertyID })
}

func (r *bookingRepo) ListByCustomerEmail(ctx context.Context, email string) ([]models.Booking, error) {
	return r.list(ctx, func(b models.Booking) bool {
		return b.CustomerEmail != "" && strings.EqualFold(b.CustomerEmail, email)
	})
}

func (r *bookingRepo) ListByStatus(ctx context.Context, status models.BookingStatus) ([]models.Booking, error) {
	return r.list(ctx, func(b models.Booking) bool { return b.Status == status })
}

// list preserves insertion order.
func (r *bookingRepo) list(ctx context.Context, keep func(models.Booking) bool) ([]models.Booking, error) {
	var out []models.Booking
	err := r.store.View(ctx, func(d *store.Data) error {
		for _, b := range d.Bookings {
			if keep(b) {
				out = append(out, b)
			}
		}
		return nil
	})
	return out, err
}

func (r *bookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	var found *models.Booking
	err := r.store.View(ctx, func(d *store.Data) error {
		for i := range d.Bookings {
			if d.Bookings[i].ID == id {
				b := d.Bookings[i]
				found = &b
				return nil
			}
		}
		return nil
	})
	return found, err
}

// Create appends a new pending booking. The referenced property must
// exist; no conflict check happens here, so a property can accumulate
// competing pending requests for the admin to choose among.
func (r *bookingRepo) Create(ctx context.Context, b *models.Booking) error {
	b.ID = uuid.NewString()
	b.Status = models.BookingStatusPending
	b.CreatedAt = time.Now().UTC()
	return r.store.Update(ctx, func(d *store.Data) error {
		if !propertyExists(d, b.PropertyID) {
			return fmt.Errorf("property %s: %w", b.PropertyID, utils.ErrNotFound)
		}
		d.Bookings = append(d.Bookings, *b)
		return nil
	})
}

// TransitionStatus moves a booking through the status state machine.
// For the confirmed target it applies the confirmation gate: under the
// store's writer lock it scans every other confirmed booking on the
// same property and refuses any date overlap, so at most one confirmed
// booking can occupy a property on any calendar day.
func (r *bookingRepo) TransitionStatus(ctx context.Context, id string, target models.BookingStatus) (*models.Booking, error) {
	var updated *models.Booking
	err := r.store.Update(ctx, func(d *store.Data) error {
		idx := -1
		for i := range d.Bookings {
			if d.Bookings[i].ID == id {
				idx = i
				break
			}
		}
		if idx == -1 {
			return fmt.Errorf("booking %s: %w", id, utils.ErrNotFound)
		}

		b := &d.Bookings[idx]
		if !b.Status.CanTransitionTo(target) {
			return fmt.Errorf("booking %s: %s -> %s: %w", id, b.Status, target, utils.ErrInvalidTransition)
		}

		if target == models.BookingStatusConfirmed {
			rng := b.Range()
			for i := range d.Bookings {
				other := &d.Bookings[i]
				if other.ID == b.ID || other.PropertyID != b.PropertyID {
					continue
				}
				if other.Status != models.BookingStatusConfirmed {
					continue
				}
				if rng.Overlaps(other.Range()) {
					return fmt.Errorf("booking %s overlaps confirmed booking %s on property %s: %w",
						id, other.ID, b.PropertyID, utils.ErrBookingConflict)
				}
			}
		}

		b.Status = target
		copied := *b
		updated = &copied
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func propertyExists(d *store.Data, id string) bool {
	for i := range d.Properties {
		if d.Properties[i].ID == id {
			return true
		}
	}
	return false
}
