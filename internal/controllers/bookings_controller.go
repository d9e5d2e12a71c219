package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/o2scale/goodboyholidayhomesverce/internal/dtos"
	"github.com/o2scale/goodboyholidayhomesverce/internal/middleware"
	"github.com/o2scale/goodboyholidayhomesverce/internal/models"
	"github.com/o2scale/goodboyholidayhomesverce/internal/services"
	"github.com/o2scale/goodboyholidayhomesverce/internal/utils"
)

type BookingsController struct {
	bookingService *services.BookingService
}

func NewBookingsController(bs *services.BookingService) *BookingsController {
	return &BookingsController{bookingService: bs}
}

// ----------------------------------------------------------------
// POST /api/v1/bookings  (public; optional session)
// ----------------------------------------------------------------
func (c *BookingsController) CreateHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req dtos.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON body", nil, err)
		return
	}
	if err := validate.StructCtx(ctx, req); err != nil {
		respondValidation(w, err)
		return
	}

	caller := middleware.CallerFromContext(ctx)
	adminCaller := caller != nil && caller.Role == models.RoleAdmin

	booking, err := c.bookingService.Create(ctx, req, adminCaller)
	if err != nil {
		respondServiceError(w, err, "Failed to create booking")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, booking)
}

// ----------------------------------------------------------------
// GET /api/v1/bookings?property_id=  (admin)
// ----------------------------------------------------------------
func (c *BookingsController) ListHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var (
		bookings []models.Booking
		err      error
	)
	if propertyID := r.URL.Query().Get("property_id"); propertyID != "" {
		bookings, err = c.bookingService.ListForProperty(ctx, propertyID)
	} else {
		bookings, err = c.bookingService.ListAll(ctx)
	}
	if err != nil {
		respondServiceError(w, err, "Failed to list bookings")
		return
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	utils.RespondWithJSON(w, http.StatusOK, bookings)
}

// ----------------------------------------------------------------
// GET /api/v1/bookings/my  (authenticated; scoped by email claim)
// ----------------------------------------------------------------
func (c *BookingsController) ListMyHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	caller := middleware.CallerFromContext(ctx)
	if caller == nil || caller.Email == "" {
		utils.RespondErrorWithCode(w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "No caller identity in context", nil)
		return
	}

	bookings, err := c.bookingService.ListForCustomer(ctx, caller.Email)
	if err != nil {
		respondServiceError(w, err, "Failed to list your bookings")
		return
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	utils.RespondWithJSON(w, http.StatusOK, bookings)
}

// ----------------------------------------------------------------
// PATCH /api/v1/bookings/{id}/status  (admin)
// The confirmed target passes through the confirmation gate; a 409
// here means the dates collide with an existing confirmed booking.
// ----------------------------------------------------------------
func (c *BookingsController) SetStatusHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := mux.Vars(r)["id"]

	var req dtos.SetBookingStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON body", nil, err)
		return
	}
	if err := validate.StructCtx(ctx, req); err != nil {
		respondValidation(w, err)
		return
	}

	status, ok := models.ParseBookingStatus(req.Status)
	if !ok {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid status", nil)
		return
	}

	booking, err := c.bookingService.SetStatus(ctx, id, status)
	if err != nil {
		respondServiceError(w, err, "Failed to update booking")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, booking)
}

// ----------------------------------------------------------------
// POST /api/v1/bookings/block  (admin)
// ----------------------------------------------------------------
func (c *BookingsController) CreateBlockHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req dtos.CreateBlockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON body", nil, err)
		return
	}
	if err := validate.StructCtx(ctx, req); err != nil {
		respondValidation(w, err)
		return
	}

	booking, err := c.bookingService.CreateBlock(ctx, req)
	if err != nil {
		respondServiceError(w, err, "Failed to block dates")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, booking)
}
