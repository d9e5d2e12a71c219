package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/o2scale/goodboyholidayhomesverce/internal/config"
	"github.com/o2scale/goodboyholidayhomesverce/internal/daterange"
	"github.com/o2scale/goodboyholidayhomesverce/internal/dtos"
	"github.com/o2scale/goodboyholidayhomesverce/internal/models"
	"github.com/o2scale/goodboyholidayhomesverce/internal/repositories"
	"github.com/o2scale/goodboyholidayhomesverce/internal/utils"
)

// BookingService is the booking ledger's service facade: request
// validation, creation, status transitions and the admin block flow.
type BookingService struct {
	cfg          *config.Config
	bookingRepo  repositories.BookingRepository
	propRepo     repositories.PropertyRepository
	availability *AvailabilityService
	notifier     *NotificationService
}

func NewBookingService(
	cfg *config.Config,
	bookingRepo repositories.BookingRepository,
	propRepo repositories.PropertyRepository,
	availability *AvailabilityService,
	notifier *NotificationService,
) *BookingService {
	return &BookingService{
		cfg:          cfg,
		bookingRepo:  bookingRepo,
		propRepo:     propRepo,
		availability: availability,
		notifier:     notifier,
	}
}

// Create validates and appends a pending booking. adminCaller loosens
// the guest-count floor: 0 guests is reserved for administrative
// entries. Creation never runs the conflict check; competing pending
// requests are resolved at confirmation time.
func (s *BookingService) Create(ctx context.Context, req dtos.CreateBookingRequest, adminCaller bool) (*models.Booking, error) {
	rng, err := parseStayRange(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(req.PropertyID) == "" {
		return nil, utils.NewValidationError("propertyId", "is required")
	}
	if strings.TrimSpace(req.CustomerName) == "" {
		return nil, utils.NewValidationError("customerName", "is required")
	}
	if strings.TrimSpace(req.CustomerPhone) == "" {
		return nil, utils.NewValidationError("customerPhone", "is required")
	}
	if req.GuestCount < 1 && !adminCaller {
		return nil, utils.NewValidationError("guestCount", "must be at least 1")
	}

	if s.cfg.EnforceSubmissionCheck && !adminCaller {
		free, err := s.availability.IsAvailable(ctx, req.PropertyID, rng, models.PolicySubmission)
		if err != nil {
			return nil, fmt.Errorf("submission availability check: %w", err)
		}
		if !free {
			return nil, fmt.Errorf("property %s for %s: %w", req.PropertyID, rng, utils.ErrDatesUnavailable)
		}
	}

	booking := &models.Booking{
		PropertyID:    req.PropertyID,
		StartDate:     rng.Start,
		EndDate:       rng.End,
		GuestCount:    req.GuestCount,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		Meals:         req.Meals,
	}
	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, err
	}

	prop, _ := s.propRepo.GetByID(ctx, booking.PropertyID)
	s.notifier.BookingCreated(booking, prop)
	return booking, nil
}

// SetStatus moves a booking through the transition table; the
// confirmed target is guarded by the ledger's confirmation gate.
func (s *BookingService) SetStatus(ctx context.Context, id string, target models.BookingStatus) (*models.Booking, error) {
	booking, err := s.bookingRepo.TransitionStatus(ctx, id, target)
	if err != nil {
		return nil, err
	}

	if target == models.BookingStatusConfirmed {
		prop, _ := s.propRepo.GetByID(ctx, booking.PropertyID)
		s.notifier.BookingConfirmed(booking, prop)
	}
	return booking, nil
}

// CreateBlock records an administrative block: an ordinary ledger
// entry with zero guests and a synthetic customer identity, pushed
// through the same confirmation gate as any booking. On a collision
// the block stays pending and the conflict is surfaced to the admin.
func (s *BookingService) CreateBlock(ctx context.Context, req dtos.CreateBlockRequest) (*models.Booking, error) {
	reason := strings.TrimSpace(req.Reason)
	if reason == "" {
		reason = "Admin Block"
	}

	booking, err := s.Create(ctx, dtos.CreateBookingRequest{
		PropertyID:    req.PropertyID,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		GuestCount:    0,
		CustomerName:  reason,
		CustomerPhone: "n/a",
	}, true)
	if err != nil {
		return nil, err
	}

	return s.bookingRepo.TransitionStatus(ctx, booking.ID, models.BookingStatusConfirmed)
}

func (s *BookingService) ListAll(ctx context.Context) ([]models.Booking, error) {
	return s.bookingRepo.ListAll(ctx)
}

func (s *BookingService) ListForProperty(ctx context.Context, propertyID string) ([]models.Booking, error) {
	return s.bookingRepo.ListByPropertyID(ctx, propertyID)
}

func (s *BookingService) ListForCustomer(ctx context.Context, email string) ([]models.Booking, error) {
	return s.bookingRepo.ListByCustomerEmail(ctx, email)
}

// parseStayRange turns the wire dates into a normalized closed range,
// reporting the offending field on failure.
func parseStayRange(startDate, endDate string) (daterange.Range, error) {
	if strings.TrimSpace(startDate) == "" {
		return daterange.Range{}, utils.NewValidationError("startDate", "is required")
	}
	if strings.TrimSpace(endDate) == "" {
		return daterange.Range{}, utils.NewValidationError("endDate", "is required")
	}
	start, err := daterange.ParseDate(startDate)
	if err != nil {
		return daterange.Range{}, utils.NewValidationError("startDate", err.Error())
	}
	end, err := daterange.ParseDate(endDate)
	if err != nil {
		return daterange.Range{}, utils.NewValidationError("endDate", err.Error())
	}
	rng, err := daterange.New(start, end)
	if err != nil {
		return daterange.Range{}, utils.NewValidationError("endDate", err.Error())
	}
	return rng, nil
}
