package services

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/o2scale/goodboyholidayhomesverce/internal/config"
	"github.com/o2scale/goodboyholidayhomesverce/internal/dtos"
	"github.com/o2scale/goodboyholidayhomesverce/internal/models"
	"github.com/o2scale/goodboyholidayhomesverce/internal/repositories"
	"github.com/o2scale/goodboyholidayhomesverce/internal/store"
	"github.com/o2scale/goodboyholidayhomesverce/internal/utils"
)

type harness struct {
	cfg          *config.Config
	bookingRepo  repositories.BookingRepository
	propRepo     repositories.PropertyRepository
	availability *AvailabilityService
	bookings     *BookingService
	properties   *PropertyService
}

// newHarness wires the service stack over a seeded temp-file store.
// Notification credentials stay empty so every channel is disabled.
func newHarness(t *testing.T) *harness {
	t.Helper()

	st := store.New(filepath.Join(t.TempDir(), "data.json"), 5*time.Second)
	require.NoError(t, st.Init(context.Background()))

	cfg := &config.Config{StoreOpTimeout: 5 * time.Second}
	bookingRepo := repositories.NewBookingRepository(st)
	propRepo := repositories.NewPropertyRepository(st)
	availability := NewAvailabilityService(bookingRepo)
	notifier := NewNotificationService(cfg)

	return &harness{
		cfg:          cfg,
		bookingRepo:  bookingRepo,
		propRepo:     propRepo,
		availability: availability,
		bookings:     NewBookingService(cfg, bookingRepo, propRepo, availability, notifier),
		properties:   NewPropertyService(propRepo, bookingRepo),
	}
}

func stayRequest(propertyID, start, end string) dtos.CreateBookingRequest {
	return dtos.CreateBookingRequest{
		PropertyID:    propertyID,
		StartDate:     start,
		EndDate:       end,
		GuestCount:    2,
		CustomerName:  "Asha Nair",
		CustomerEmail: "asha@example.com",
		CustomerPhone: "+911234567890",
	}
}

func TestCreateBookingValidation(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	cases := []struct {
		name   string
		mutate func(*dtos.CreateBookingRequest)
		field  string
	}{
		{"missing property", func(r *dtos.CreateBookingRequest) { r.PropertyID = " " }, "propertyId"},
		{"missing name", func(r *dtos.CreateBookingRequest) { r.CustomerName = "" }, "customerName"},
		{"missing phone", func(r *dtos.CreateBookingRequest) { r.CustomerPhone = "" }, "customerPhone"},
		{"missing start", func(r *dtos.CreateBookingRequest) { r.StartDate = "" }, "startDate"},
		{"missing end", func(r *dtos.CreateBookingRequest) { r.EndDate = "" }, "endDate"},
		{"garbage start", func(r *dtos.CreateBookingRequest) { r.StartDate = "next tuesday" }, "startDate"},
		{"reversed range", func(r *dtos.CreateBookingRequest) { r.StartDate, r.EndDate = r.EndDate, r.StartDate }, "endDate"},
		{"zero guests", func(r *dtos.CreateBookingRequest) { r.GuestCount = 0 }, "guestCount"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := stayRequest("1", "2026-03-01", "2026-03-04")
			tc.mutate(&req)

			_, err := h.bookings.Create(ctx, req, false)
			require.Error(t, err)
			var ve *utils.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tc.field, ve.Field)
		})
	}
}

func TestCreateBookingAcceptsBothDateForms(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	b, err := h.bookings.Create(ctx, stayRequest("1", "2026-03-01", "2026-03-04T00:00:00Z"), false)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusPending, b.Status)
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), b.StartDate)
	assert.Equal(t, time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC), b.EndDate)
}

func TestCreateBookingNeverConflictChecksByDefault(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	_, err := h.bookings.Create(ctx, stayRequest("1", "2026-03-01", "2026-03-04"), false)
	require.NoError(t, err)

	// Competing pending requests for the same dates are accepted; the
	// admin picks the winner at confirmation time.
	_, err = h.bookings.Create(ctx, stayRequest("1", "2026-03-02", "2026-03-05"), false)
	require.NoError(t, err)

	all, err := h.bookings.ListForProperty(ctx, "1")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestCreateBookingSubmissionCheckWhenEnforced(t *testing.T) {
	h := newHarness(t)
	h.cfg.EnforceSubmissionCheck = true
	ctx := context.Background()

	_, err := h.bookings.Create(ctx, stayRequest("1", "2026-03-01", "2026-03-04"), false)
	require.NoError(t, err)

	// A pending booking blocks under the submission policy.
	_, err = h.bookings.Create(ctx, stayRequest("1", "2026-03-04", "2026-03-06"), false)
	require.ErrorIs(t, err, utils.ErrDatesUnavailable)

	// Admin callers bypass the advisory check.
	_, err = h.bookings.Create(ctx, stayRequest("1", "2026-03-04", "2026-03-06"), true)
	require.NoError(t, err)

	// Non-overlapping dates still go through.
	_, err = h.bookings.Create(ctx, stayRequest("1", "2026-03-07", "2026-03-09"), false)
	require.NoError(t, err)
}

func TestSetStatusRunsConfirmationGate(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	a, err := h.bookings.Create(ctx, stayRequest("1", "2026-03-01", "2026-03-04"), false)
	require.NoError(t, err)
	b, err := h.bookings.Create(ctx, stayRequest("1", "2026-03-03", "2026-03-06"), false)
	require.NoError(t, err)

	confirmed, err := h.bookings.SetStatus(ctx, a.ID, models.BookingStatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusConfirmed, confirmed.Status)

	_, err = h.bookings.SetStatus(ctx, b.ID, models.BookingStatusConfirmed)
	require.ErrorIs(t, err, utils.ErrBookingConflict)
}

func TestCreateBlock(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	block, err := h.bookings.CreateBlock(ctx, dtos.CreateBlockRequest{
		PropertyID: "1",
		StartDate:  "2026-04-01",
		EndDate:    "2026-04-07",
		Reason:     "Monsoon maintenance",
	})
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusConfirmed, block.Status)
	assert.Equal(t, "Monsoon maintenance", block.CustomerName)
	assert.Zero(t, block.GuestCount)
	assert.True(t, block.IsAdminBlock())

	// Blocked dates behave like any confirmed booking.
	free, err := h.availability.IsAvailable(ctx, "1", block.Range(), models.PolicySearch)
	require.NoError(t, err)
	assert.False(t, free)

	guest, err := h.bookings.Create(ctx, stayRequest("1", "2026-04-03", "2026-04-05"), false)
	require.NoError(t, err)
	_, err = h.bookings.SetStatus(ctx, guest.ID, models.BookingStatusConfirmed)
	require.ErrorIs(t, err, utils.ErrBookingConflict)
}

func TestCreateBlockDefaultsReason(t *testing.T) {
	h := newHarness(t)

	block, err := h.bookings.CreateBlock(context.Background(), dtos.CreateBlockRequest{
		PropertyID: "2",
		StartDate:  "2026-04-01",
		EndDate:    "2026-04-02",
	})
	require.NoError(t, err)
	assert.Equal(t, "Admin Block", block.CustomerName)
}

func TestCreateBlockConflictLeavesBlockPending(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	first, err := h.bookings.CreateBlock(ctx, dtos.CreateBlockRequest{
		PropertyID: "1", StartDate: "2026-04-01", EndDate: "2026-04-07",
	})
	require.NoError(t, err)
	require.Equal(t, models.BookingStatusConfirmed, first.Status)

	_, err = h.bookings.CreateBlock(ctx, dtos.CreateBlockRequest{
		PropertyID: "1", StartDate: "2026-04-05", EndDate: "2026-04-09",
	})
	require.ErrorIs(t, err, utils.ErrBookingConflict)

	pending, err := h.bookingRepo.ListByStatus(ctx, models.BookingStatusPending)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.True(t, pending[0].IsAdminBlock())
}

func TestAvailabilityPolicies(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	pending, err := h.bookings.Create(ctx, stayRequest("1", "2026-05-10", "2026-05-14"), false)
	require.NoError(t, err)

	rng := pending.Range()

	// A pending booking blocks submission but not search.
	free, err := h.availability.IsAvailable(ctx, "1", rng, models.PolicySearch)
	require.NoError(t, err)
	assert.True(t, free)
	free, err = h.availability.IsAvailable(ctx, "1", rng, models.PolicySubmission)
	require.NoError(t, err)
	assert.False(t, free)

	// Once rejected it blocks nothing.
	_, err = h.bookings.SetStatus(ctx, pending.ID, models.BookingStatusRejected)
	require.NoError(t, err)
	free, err = h.availability.IsAvailable(ctx, "1", rng, models.PolicySubmission)
	require.NoError(t, err)
	assert.True(t, free)
}
