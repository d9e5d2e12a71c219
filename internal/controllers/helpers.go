package controllers

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/o2scale/goodboyholidayhomesverce/internal/utils"
)

var validate = validator.New()

// respondValidation renders validator failures uniformly.
func respondValidation(w http.ResponseWriter, err error) {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Validation failed", validationErrors.Error())
		return
	}
	utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid request data", nil, err)
}

// respondServiceError maps domain errors onto HTTP codes. Validation
// and conflict outcomes get distinct codes so the UI can render a
// field-level or "dates no longer available" message; everything else
// collapses to a generic failure.
func respondServiceError(w http.ResponseWriter, err error, fallbackMsg string) {
	var ve *utils.ValidationError
	switch {
	case errors.As(err, &ve):
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, ve.Error(), ve.Field)
	case errors.Is(err, utils.ErrNotFound):
		utils.RespondErrorWithCode(w, http.StatusNotFound, utils.ErrCodeNotFound, "Not found", nil, err)
	case errors.Is(err, utils.ErrBookingConflict):
		utils.RespondErrorWithCode(w, http.StatusConflict, utils.ErrCodeConflict, "Booking conflict: dates are already booked", nil, err)
	case errors.Is(err, utils.ErrDatesUnavailable):
		utils.RespondErrorWithCode(w, http.StatusConflict, utils.ErrCodeDatesUnavailable, "Requested dates are no longer available", nil, err)
	case errors.Is(err, utils.ErrInvalidTransition):
		utils.RespondErrorWithCode(w, http.StatusConflict, utils.ErrCodeInvalidTransition, "Status change not allowed", nil, err)
	case errors.Is(err, utils.ErrEmailExists):
		utils.RespondErrorWithCode(w, http.StatusConflict, utils.ErrCodeEmailExists, "A user with this email already exists", nil, err)
	case errors.Is(err, utils.ErrLastAdmin):
		utils.RespondErrorWithCode(w, http.StatusConflict, utils.ErrCodeLastAdmin, "Cannot delete the last admin account", nil, err)
	case errors.Is(err, utils.ErrInvalidCredentials):
		utils.RespondErrorWithCode(w, http.StatusUnauthorized, utils.ErrCodeInvalidCredentials, "Invalid credentials", nil, err)
	default:
		utils.Logger.WithError(err).Error(fallbackMsg)
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal, fallbackMsg, nil, err)
	}
}
